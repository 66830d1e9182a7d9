package normalize

import "regexp"

// fieldSpec resolves one target field: exact canonical keys are tried in
// priority order first; when none carries a value the fuzzy patterns run
// through FindBest. Chains mirror the header synonyms the feed has used
// historically; patterns cover vocabularies the chains don't know.
type fieldSpec struct {
	keys     []string
	patterns []*regexp.Regexp
}

// resolve returns the first non-blank candidate value for the spec, or "".
func resolve(r Row, spec fieldSpec) string {
	for _, k := range spec.keys {
		if v := r.Get(k); v != "" {
			return v
		}
	}
	if len(spec.patterns) > 0 {
		if k, ok := FindBest(r, spec.patterns); ok {
			return r.Get(k)
		}
	}
	return ""
}

var (
	titleSpec = fieldSpec{
		keys:     []string{"job_title", "title", "position", "role"},
		patterns: mustPatterns(`^job_?title$`, `^position`, `^role$`, `opening`),
	}
	businessSpec = fieldSpec{
		keys:     []string{"business_name", "company", "employer", "organization", "business"},
		patterns: mustPatterns(`business`, `company`, `employer`, `organi[sz]ation`),
	}
	businessURLSpec = fieldSpec{
		keys:     []string{"business_url", "company_url", "website", "employer_url"},
		patterns: mustPatterns(`company_?(url|site)`, `web_?site`, `homepage`),
	}
	categorySpec = fieldSpec{
		keys:     []string{"category", "job_category", "department"},
		patterns: mustPatterns(`category`, `department`, `industry`),
	}
	citySpec = fieldSpec{
		keys:     []string{"city", "town"},
		patterns: mustPatterns(`city`, `town`, `locality`),
	}
	stateSpec = fieldSpec{
		keys:     []string{"state", "region", "province", "state_code"},
		patterns: mustPatterns(`^state`, `province`, `^region`),
	}
	postalSpec = fieldSpec{
		keys:     []string{"zip", "postal_code", "zip_code"},
		patterns: mustPatterns(`zip`, `postal`),
	}
	streetSpec = fieldSpec{
		keys:     []string{"street", "address", "street_address"},
		patterns: mustPatterns(`street`, `^(mailing_?)?address$`),
	}
	descriptionSpec = fieldSpec{
		keys:     []string{"description", "job_description", "summary"},
		patterns: mustPatterns(`description`, `summary`, `^about`),
	}
	qualificationsSpec = fieldSpec{
		keys:     []string{"qualifications", "requirements", "skills"},
		patterns: mustPatterns(`qualif`, `requirement`, `skill`),
	}
	datePostedSpec = fieldSpec{
		keys:     []string{"date_posted", "posted", "date"},
		patterns: mustPatterns(`posted`, `^date$`),
	}
	validThroughSpec = fieldSpec{
		keys:     []string{"valid_through", "expiration", "expires"},
		patterns: mustPatterns(`valid`, `expir`, `deadline`, `close_?date`),
	}
	employmentTypeSpec = fieldSpec{
		keys:     []string{"employment_type", "type", "job_type"},
		patterns: mustPatterns(`employment`, `job_?type`),
	}
	locationTypeSpec = fieldSpec{
		keys:     []string{"location_type", "job_location_type", "work_mode", "remote"},
		patterns: mustPatterns(`location_?type`, `work_?mode`, `remote`),
	}
	benefitsSpec = fieldSpec{
		keys:     []string{"benefits", "perks"},
		patterns: mustPatterns(`benefit`, `perk`),
	}
	workingHoursSpec = fieldSpec{
		keys:     []string{"working_hours", "hours", "schedule"},
		patterns: mustPatterns(`hours`, `schedule`, `shift`),
	}
	educationSpec = fieldSpec{
		keys:     []string{"education", "education_level"},
		patterns: mustPatterns(`education`, `degree`),
	}
	experienceSpec = fieldSpec{
		keys:     []string{"experience_months", "months_of_experience", "experience"},
		patterns: mustPatterns(`experience`),
	}
	compensationSpec = fieldSpec{
		keys:     []string{"salary", "base_salary", "compensation", "pay", "wage"},
		patterns: mustPatterns(`salary`, `compensation`, `^pay`, `wage`),
	}
	compensationUnitSpec = fieldSpec{
		keys:     []string{"salary_unit", "compensation_unit", "pay_period"},
		patterns: mustPatterns(`(salary|pay|compensation)_?(unit|period|frequency)`),
	}
	compensationTypeSpec = fieldSpec{
		keys:     []string{"compensation_type", "pay_type", "salary_type"},
		patterns: mustPatterns(`(compensation|pay|salary)_?type`),
	}
	contactNameSpec = fieldSpec{
		keys:     []string{"contact_name", "contact"},
		patterns: mustPatterns(`contact_?(person|name)`),
	}
	contactTitleSpec = fieldSpec{
		keys:     []string{"contact_title"},
		patterns: mustPatterns(`contact_?title`),
	}
	emailSpec = fieldSpec{
		keys:     []string{"apply_email", "email", "contact_email"},
		patterns: mustPatterns(`e_?mail`),
	}
	phoneSpec = fieldSpec{
		keys:     []string{"phone", "phone_number", "contact_phone"},
		patterns: mustPatterns(`phone`, `^tel`),
	}
	applyURLSpec = fieldSpec{
		keys:     []string{"apply_url", "url", "job_url", "listing_url"},
		patterns: mustPatterns(`^apply_?(url|link)?$`, `^application_?(url|link)?$`, `^(job|listing|posting)_?(url|link)$`, `^(url|link)$`),
	}
	logoURLSpec = fieldSpec{
		keys:     []string{"logo", "logo_url", "company_logo"},
		patterns: mustPatterns(`logo`),
	}
	statusSpec = fieldSpec{
		keys:     []string{"status", "job_status"},
		patterns: mustPatterns(`status`),
	}
)
