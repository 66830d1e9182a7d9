package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gosimple/slug"

	"jobboard-engine/internal/domain"
)

// SlugID derives the job identifier from business name, title, city and
// state joined with "-" and slugified. Rows carrying none of those fall back
// to a 1-based positional id, which is only stable while the feed keeps its
// row order.
func SlugID(businessName, title, city, state string, idx int) string {
	var parts []string
	for _, p := range []string{businessName, title, city, state} {
		if v := strings.TrimSpace(p); v != "" {
			parts = append(parts, v)
		}
	}
	s := slug.Make(strings.Join(parts, "-"))
	if s == "" {
		return fmt.Sprintf("job-%d", idx+1)
	}
	return s
}

var digitRun = regexp.MustCompile(`\d+`)

// months reads an experience requirement. Bare numbers are taken as months;
// text mentioning years is converted.
func months(s string) (int, bool) {
	m := digitRun.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	if strings.Contains(strings.ToLower(s), "year") {
		n *= 12
	}
	return n, true
}

// BuildJob maps one normalized row onto the Job schema. idx is the 0-based
// row position, used only for the identifier fallback. The second return is
// false when the row carried neither a real title nor a real business name
// and should be dropped from the listing.
//
// Field-level coercion failures (unparseable dates, non-numeric pay, an
// address that doesn't split) leave the field empty; they never fail the row.
func BuildJob(r Row, idx int) (domain.Job, bool) {
	title := CleanText(resolve(r, titleSpec))
	business := CleanText(resolve(r, businessSpec))
	city := CleanText(resolve(r, citySpec))
	state := CleanText(resolve(r, stateSpec))
	zip := CleanText(resolve(r, postalSpec))

	street := CleanText(resolve(r, streetSpec))
	if strings.Contains(street, ",") {
		s, c, st, z := SplitAddress(street)
		street = s
		if city == "" {
			city = c
		}
		if state == "" {
			state = st
		}
		if zip == "" {
			zip = z
		}
	}

	desc := StripHTML(resolve(r, descriptionSpec))
	comp := CleanText(resolve(r, compensationSpec))

	j := domain.Job{
		ID:             SlugID(business, title, city, state, idx),
		Title:          title,
		BusinessName:   business,
		BusinessURL:    CleanText(resolve(r, businessURLSpec)),
		Category:       CleanText(resolve(r, categorySpec)),
		City:           city,
		State:          state,
		PostalCode:     zip,
		StreetAddress:  street,
		Description:    desc,
		Qualifications: StripHTML(resolve(r, qualificationsSpec)),
		EmploymentType: CleanText(resolve(r, employmentTypeSpec)),
		Benefits:       CleanText(resolve(r, benefitsSpec)),
		WorkingHours:   CleanText(resolve(r, workingHoursSpec)),
		Education:      CleanText(resolve(r, educationSpec)),
		DatePosted:     ToISO(resolve(r, datePostedSpec)),
		ValidThrough:   ToISO(resolve(r, validThroughSpec)),
		ContactName:    CleanText(resolve(r, contactNameSpec)),
		ContactTitle:   CleanText(resolve(r, contactTitleSpec)),
		Email:          CleanText(resolve(r, emailSpec)),
		Phone:          CleanText(resolve(r, phoneSpec)),
		ApplyURL:       CleanText(resolve(r, applyURLSpec)),
		LogoURL:        CleanText(resolve(r, logoURLSpec)),
		Status:         CleanText(resolve(r, statusSpec)),
	}

	j.BaseCompensation = comp
	if amt, ok := Amount(comp); ok {
		j.BaseSalaryValue = amt
	}
	unitText := resolve(r, compensationUnitSpec)
	if unitText == "" {
		unitText = comp
	}
	j.BaseCompensationUnit = Unit(unitText)
	j.CompensationType = CleanText(resolve(r, compensationTypeSpec))

	if v := resolve(r, experienceSpec); v != "" {
		if n, ok := months(v); ok {
			j.ExperienceMonths = n
		}
	}

	j.JobLocationType = CanonLocationType(resolve(r, locationTypeSpec))
	if j.JobLocationType == "" {
		j.JobLocationType = InferLocationType(city+" "+state, title, desc)
	}

	keep := title != "" || business != ""
	if j.Title == "" {
		j.Title = domain.DefaultTitle
	}
	if j.BusinessName == "" {
		j.BusinessName = domain.DefaultBusinessName
	}
	return j, keep
}
