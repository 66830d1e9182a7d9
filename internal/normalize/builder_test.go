package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/feed"
)

func TestBuildJob_EndToEnd(t *testing.T) {
	csv := "Job Title,Business Name,City,State,Zip,Apply URL\n" +
		"Plumber,Acme Plumbing,Boston,MA,02108,https://acme.example/apply\n"
	rows := feed.ParseCSV(csv)
	require.Len(t, rows, 1)

	j, keep := BuildJob(NewRow(rows[0]), 0)
	require.True(t, keep)

	assert.Equal(t, "acme-plumbing-plumber-boston-ma", j.ID)
	assert.Equal(t, "Plumber", j.Title)
	assert.Equal(t, "Acme Plumbing", j.BusinessName)
	assert.Equal(t, "Boston", j.City)
	assert.Equal(t, "MA", j.State)
	assert.Equal(t, "02108", j.PostalCode)
	assert.Equal(t, "https://acme.example/apply", j.ApplyURL)
}

func TestBuildJob_CompanyFallback(t *testing.T) {
	j, keep := BuildJob(rowFromPairs("Company", "Acme Roofing"), 0)
	require.True(t, keep)
	assert.Equal(t, "Acme Roofing", j.BusinessName)
	assert.Equal(t, domain.DefaultTitle, j.Title)
}

func TestBuildJob_BadDateLeftAbsent(t *testing.T) {
	j, keep := BuildJob(rowFromPairs("Job Title", "Plumber", "Date Posted", "not a date"), 0)
	require.True(t, keep)
	assert.Empty(t, j.DatePosted)
}

func TestBuildJob_RetentionNeedsTitleOrBusiness(t *testing.T) {
	j, keep := BuildJob(rowFromPairs("City", "Boston"), 0)
	assert.False(t, keep)
	// placeholders are still applied so downstream render never sees blanks
	assert.Equal(t, domain.DefaultTitle, j.Title)
	assert.Equal(t, domain.DefaultBusinessName, j.BusinessName)
}

func TestBuildJob_CompositeAddressSplit(t *testing.T) {
	j, keep := BuildJob(rowFromPairs(
		"Job Title", "Plumber",
		"Address", "12 Main St, Boston, MA 02108",
	), 0)
	require.True(t, keep)
	assert.Equal(t, "12 Main St", j.StreetAddress)
	assert.Equal(t, "Boston", j.City)
	assert.Equal(t, "MA", j.State)
	assert.Equal(t, "02108", j.PostalCode)
}

func TestBuildJob_UnsplittableAddressStaysStreet(t *testing.T) {
	j, _ := BuildJob(rowFromPairs(
		"Job Title", "Plumber",
		"Address", "Suite 5, Building C",
	), 0)
	assert.Equal(t, "Suite 5, Building C", j.StreetAddress)
	assert.Empty(t, j.City)
	assert.Empty(t, j.State)
}

func TestBuildJob_ExplicitCityNotClobberedBySplit(t *testing.T) {
	j, _ := BuildJob(rowFromPairs(
		"Job Title", "Plumber",
		"City", "Cambridge",
		"Address", "12 Main St, Boston, MA 02108",
	), 0)
	assert.Equal(t, "Cambridge", j.City)
	assert.Equal(t, "12 Main St", j.StreetAddress)
}

func TestBuildJob_Compensation(t *testing.T) {
	j, _ := BuildJob(rowFromPairs(
		"Job Title", "Plumber",
		"Salary", "$18.50 per hour",
	), 0)
	assert.Equal(t, "$18.50 per hour", j.BaseCompensation)
	assert.Equal(t, 18.5, j.BaseSalaryValue)
	assert.Equal(t, "hour", j.BaseCompensationUnit)
}

func TestBuildJob_CompensationNoDigits(t *testing.T) {
	j, _ := BuildJob(rowFromPairs(
		"Job Title", "Plumber",
		"Salary", "competitive",
	), 0)
	assert.Zero(t, j.BaseSalaryValue)
	assert.Empty(t, j.BaseCompensationUnit)
	assert.Equal(t, "competitive", j.BaseCompensation)
}

func TestBuildJob_ExperienceMonths(t *testing.T) {
	j, _ := BuildJob(rowFromPairs("Job Title", "Plumber", "Experience", "18"), 0)
	assert.Equal(t, 18, j.ExperienceMonths)

	j, _ = BuildJob(rowFromPairs("Job Title", "Plumber", "Experience", "2 years"), 0)
	assert.Equal(t, 24, j.ExperienceMonths)
}

func TestBuildJob_DescriptionMarkupStripped(t *testing.T) {
	j, _ := BuildJob(rowFromPairs(
		"Job Title", "Plumber",
		"Description", "<p>Fix <b>pipes</b></p>",
	), 0)
	assert.Equal(t, "Fix pipes", j.Description)
}

func TestBuildJob_LocationTypeInferred(t *testing.T) {
	j, _ := BuildJob(rowFromPairs(
		"Job Title", "Remote Bookkeeper",
		"Company", "Acme",
	), 0)
	assert.Equal(t, "Remote", j.JobLocationType)
}

func TestBuildJob_LogoURLStaysOutOfApplyURL(t *testing.T) {
	j, _ := BuildJob(rowFromPairs(
		"Job Title", "Plumber",
		"Logo URL", "https://cdn.example/logo.png",
	), 0)
	assert.Equal(t, "https://cdn.example/logo.png", j.LogoURL)
	assert.Empty(t, j.ApplyURL, "a logo image is not an apply link")
}

func TestBuildJob_EmailAddressStaysOutOfStreet(t *testing.T) {
	j, _ := BuildJob(rowFromPairs(
		"Job Title", "Plumber",
		"Email Address", "jobs@acme.example",
	), 0)
	assert.Equal(t, "jobs@acme.example", j.Email)
	assert.Empty(t, j.StreetAddress)
}

func TestBuildJob_RemoteCheckboxColumn(t *testing.T) {
	j, _ := BuildJob(rowFromPairs(
		"Job Title", "Bookkeeper",
		"Remote", "TRUE",
	), 0)
	assert.Equal(t, "Remote", j.JobLocationType)
}

func TestSlugID(t *testing.T) {
	id := SlugID("Acme Plumbing", "Plumber", "Boston", "MA", 0)
	assert.Equal(t, "acme-plumbing-plumber-boston-ma", id)

	// stable across invocations
	assert.Equal(t, id, SlugID("Acme Plumbing", "Plumber", "Boston", "MA", 0))

	// idempotent over its own output
	assert.Equal(t, id, SlugID(id, "", "", "", 0))

	// positional fallback is 1-based
	assert.Equal(t, "job-5", SlugID("", "", "", "", 4))
}

func TestBuildJob_IDStableAcrossRuns(t *testing.T) {
	row := rowFromPairs("Business Name", "Acme", "Job Title", "Plumber", "City", "Boston", "State", "MA")
	a, _ := BuildJob(row, 0)
	b, _ := BuildJob(row, 7)
	assert.Equal(t, a.ID, b.ID, "index must not leak into text-derived ids")
}
