package models

import "encoding/json"

// ParsedResume is the typed view of a resume extraction result. The model
// output is decoded leniently, so any field may be zero-valued; callers that
// need hard guarantees should validate the map in ResumeExtraction.Data.
type ParsedResume struct {
	Name                     string          `json:"name"`
	Location                 string          `json:"location"`
	Description              string          `json:"description"`
	Headline                 string          `json:"headline"`
	Languages                []string        `json:"languages"`
	Educations               []Education     `json:"educations"`
	Experiences              []Experience    `json:"experiences"`
	Skills                   []string        `json:"skills"`
	LicenseAndCertifications []Certification `json:"license_and_certifications"`
	Projects                 []Project       `json:"projects"`
}

// Education is a single education entry on a resume.
type Education struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	Description  string `json:"description"`
	Grade        string `json:"grade"`
	FieldOfStudy string `json:"field_of_study"`
}

// Experience is a single work experience entry on a resume.
type Experience struct {
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date"`
	Company          string  `json:"company"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Location         string  `json:"location"`
	CurrentlyWorking bool    `json:"currently_working"`
	EmploymentType   string  `json:"employment_type"`
}

// Certification is a license or certification entry on a resume.
type Certification struct {
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuing_organization"`
	IssueDate           string `json:"issue_date"`
	ExpirationDate      string `json:"expiration_date"`
	CredentialID        string `json:"credential_id"`
	CredentialURL       string `json:"credential_url"`
}

// Project is a personal or professional project entry on a resume.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	URL         *string  `json:"url"`
	SkillsUsed  []string `json:"skills_used"`
}

// DecodeResume converts the loosely-typed extraction map into a ParsedResume.
// Returns nil when the map cannot be represented in the typed schema.
func DecodeResume(data map[string]interface{}) *ParsedResume {
	if data == nil {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil
	}

	var resume ParsedResume
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil
	}
	return &resume
}
