package domain

// Placeholder values used when a feed row carries no usable title or
// business name.
const (
	DefaultTitle        = "Job Opening"
	DefaultBusinessName = "BBB Accredited Business"
)

// Job is one normalized listing. Optional fields are empty (zero) and
// omitted on the wire.
type Job struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	BusinessName string `json:"businessName"`
	BusinessURL  string `json:"businessUrl,omitempty"`
	Category     string `json:"category,omitempty"`

	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	StreetAddress string `json:"streetAddress,omitempty"`

	Description    string `json:"description,omitempty"`
	Qualifications string `json:"qualifications,omitempty"`

	EmploymentType   string `json:"employmentType,omitempty"`  // feed text, e.g. "Full Time"
	JobLocationType  string `json:"jobLocationType,omitempty"` // Remote/Hybrid/Onsite
	Benefits         string `json:"benefits,omitempty"`
	WorkingHours     string `json:"workingHours,omitempty"`
	Education        string `json:"education,omitempty"`
	ExperienceMonths int    `json:"experienceMonths,omitempty"`

	DatePosted   string `json:"datePosted,omitempty"`   // RFC 3339
	ValidThrough string `json:"validThrough,omitempty"` // RFC 3339

	BaseCompensation     string  `json:"baseCompensation,omitempty"` // raw text, e.g. "$60,000 - $75,000"
	BaseSalaryValue      float64 `json:"baseSalaryValue,omitempty"`
	BaseCompensationUnit string  `json:"baseCompensationUnit,omitempty"` // hour/day/week/month/year
	CompensationType     string  `json:"compensationType,omitempty"`

	ContactName  string `json:"contactName,omitempty"`
	ContactTitle string `json:"contactTitle,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`

	ApplyURL string `json:"applyUrl,omitempty"`
	LogoURL  string `json:"logoUrl,omitempty"`
	Status   string `json:"status,omitempty"`
}
