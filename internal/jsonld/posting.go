// Package jsonld projects jobs into schema.org JobPosting structured data
// for search-engine consumption.
package jsonld

import (
	"strings"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/normalize"
)

type Organization struct {
	Type   string `json:"@type"`
	Name   string `json:"name"`
	SameAs string `json:"sameAs,omitempty"`
	Logo   string `json:"logo,omitempty"`
}

type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressCountry  string `json:"addressCountry"`
}

type Place struct {
	Type    string        `json:"@type"`
	Address PostalAddress `json:"address"`
}

type QuantitativeValue struct {
	Type     string  `json:"@type"`
	Value    float64 `json:"value"`
	UnitText string  `json:"unitText,omitempty"`
}

type MonetaryAmount struct {
	Type     string            `json:"@type"`
	Currency string            `json:"currency"`
	Value    QuantitativeValue `json:"value"`
}

type ContactPoint struct {
	Type      string `json:"@type"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	Name      string `json:"name,omitempty"`
}

type Posting struct {
	Context            string          `json:"@context"`
	Type               string          `json:"@type"`
	Title              string          `json:"title"`
	Description        string          `json:"description,omitempty"`
	DatePosted         string          `json:"datePosted,omitempty"`
	ValidThrough       string          `json:"validThrough,omitempty"`
	EmploymentType     string          `json:"employmentType,omitempty"`
	JobLocationType    string          `json:"jobLocationType,omitempty"`
	HiringOrganization Organization    `json:"hiringOrganization"`
	JobLocation        *Place          `json:"jobLocation,omitempty"`
	BaseSalary         *MonetaryAmount `json:"baseSalary,omitempty"`
	DirectApply        bool            `json:"directApply"`
	ApplicationContact *ContactPoint   `json:"applicationContact,omitempty"`
	URL                string          `json:"url"`
}

// FromJob is a field-by-field projection of one listing. siteURL is the
// public base used when the posting has no external apply link.
func FromJob(j domain.Job, siteURL string) Posting {
	p := Posting{
		Context:         "https://schema.org",
		Type:            "JobPosting",
		Title:           j.Title,
		Description:     j.Description,
		DatePosted:      j.DatePosted,
		ValidThrough:    j.ValidThrough,
		EmploymentType:  EmploymentType(j.EmploymentType),
		JobLocationType: j.JobLocationType,
		HiringOrganization: Organization{
			Type:   "Organization",
			Name:   j.BusinessName,
			SameAs: j.BusinessURL,
			Logo:   j.LogoURL,
		},
		DirectApply: j.ApplyURL != "",
		URL:         j.ApplyURL,
	}
	if p.URL == "" {
		p.URL = strings.TrimRight(siteURL, "/") + "/job/" + j.ID
	}

	if j.City != "" || j.State != "" || j.PostalCode != "" || j.StreetAddress != "" {
		p.JobLocation = &Place{
			Type: "Place",
			Address: PostalAddress{
				Type:            "PostalAddress",
				StreetAddress:   j.StreetAddress,
				AddressLocality: j.City,
				AddressRegion:   j.State,
				PostalCode:      j.PostalCode,
				AddressCountry:  "US",
			},
		}
	}

	if j.BaseSalaryValue > 0 {
		p.BaseSalary = &MonetaryAmount{
			Type:     "MonetaryAmount",
			Currency: "USD",
			Value: QuantitativeValue{
				Type:     "QuantitativeValue",
				Value:    j.BaseSalaryValue,
				UnitText: strings.ToUpper(j.BaseCompensationUnit),
			},
		}
	}

	if j.Email != "" || j.Phone != "" {
		p.ApplicationContact = &ContactPoint{
			Type:      "ContactPoint",
			Email:     j.Email,
			Telephone: j.Phone,
			Name:      j.ContactName,
		}
	}

	return p
}

// employmentTypes maps canonicalized feed text onto the schema.org tokens.
var employmentTypes = map[string]string{
	"full_time":  "FULL_TIME",
	"fulltime":   "FULL_TIME",
	"part_time":  "PART_TIME",
	"parttime":   "PART_TIME",
	"contract":   "CONTRACTOR",
	"contractor": "CONTRACTOR",
	"temporary":  "TEMPORARY",
	"temp":       "TEMPORARY",
	"intern":     "INTERN",
	"internship": "INTERN",
	"volunteer":  "VOLUNTEER",
	"per_diem":   "PER_DIEM",
	"seasonal":   "OTHER",
}

// EmploymentType canonicalizes free text like "Full Time" or "full-time"
// into the schema.org employment-type vocabulary. Unknown text is returned
// upper-snake so it still reads as a token.
func EmploymentType(s string) string {
	k := normalize.Key(s)
	if k == "" {
		return ""
	}
	if t, ok := employmentTypes[k]; ok {
		return t
	}
	return strings.ToUpper(k)
}
