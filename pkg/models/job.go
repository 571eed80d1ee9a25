package models

// JobRecord is the canonical, fully-typed job description produced by the
// normalization pipeline. Every field is always present on the wire: unknown
// values are null (pointers / nil slices), never absent.
type JobRecord struct {
	Title              string   `json:"title"`
	Seniority          *string  `json:"seniority"`
	CompanyName        string   `json:"company_name"`
	WorkMode           *string  `json:"work_mode"`
	Location           string   `json:"location"`
	EmploymentType     *string  `json:"employment_type"`
	Summary            string   `json:"summary"`
	Responsibilities   []string `json:"responsibilities"`
	Requirements       []string `json:"requirements"`
	Skills             []string `json:"skills"`
	YearsExperienceMin *int     `json:"years_experience_min"`
	YearsExperienceMax *int     `json:"years_experience_max"`
}

// ExtractionOutcome wraps a normalized JobRecord together with the audit
// trail of the extraction: non-fatal diagnostics, the untouched model output
// and usage/model metadata from the completion provider.
type ExtractionOutcome struct {
	Job       *JobRecord             `json:"job"`
	Errors    []string               `json:"errors"`
	RawOutput string                 `json:"llm_output_raw"`
	Usage     map[string]interface{} `json:"usage,omitempty"`
	Model     string                 `json:"llm_model,omitempty"`
}

// HeuristicJob is the richer diagnostic record produced by the deterministic
// (non-LLM) parser path. It is intentionally a different shape from JobRecord
// and never feeds the schema normalizer.
type HeuristicJob struct {
	Company          HeuristicCompany  `json:"company"`
	Role             HeuristicRole     `json:"role"`
	Summary          *string           `json:"summary"`
	Responsibilities []string          `json:"responsibilities"`
	Qualifications   Qualifications    `json:"qualifications"`
	Experience       ExperienceProfile `json:"experience"`
	Technologies     TechnologyProfile `json:"technologies"`
	Location         *string           `json:"location"`
	EmploymentType   *string           `json:"employment_type"`
	Compensation     *string           `json:"compensation"`
	Notes            []string          `json:"notes"`
	Raw              string            `json:"raw"`
}

// HeuristicCompany holds company details found by the pattern extractors.
type HeuristicCompany struct {
	Name    *string `json:"name"`
	Website *string `json:"website"`
	About   *string `json:"about"`
}

// HeuristicRole holds role details found by the pattern extractors.
type HeuristicRole struct {
	Title      *string `json:"title"`
	Department *string `json:"department"`
	Seniority  *string `json:"seniority"`
}

// Qualifications separates required from preferred qualification bullets.
type Qualifications struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// ExperienceProfile aggregates every experience-year mention in the posting.
type ExperienceProfile struct {
	TotalYearsMin    *int               `json:"total_years_min"`
	TotalYearsMax    *int               `json:"total_years_max"`
	DomainExperience []DomainExperience `json:"domain_experience"`
}

// DomainExperience is a single "<n> years in the <domain> sector" mention.
type DomainExperience struct {
	Domain string `json:"domain"`
	Years  int    `json:"years"`
}

// TechnologyProfile groups catalogue matches by category. Each list preserves
// catalogue order, not order of appearance in the text.
type TechnologyProfile struct {
	Languages     []string `json:"languages"`
	Frameworks    []string `json:"frameworks"`
	APIs          []string `json:"apis"`
	Architecture  []string `json:"architecture"`
	Databases     []string `json:"databases"`
	Cloud         []string `json:"cloud"`
	Tools         []string `json:"tools"`
	Methodologies []string `json:"methodologies"`
}

// ResumeExtraction wraps the loosely-typed resume structure extracted from
// PDF text. The decoded map has no shape guarantees; callers own validation.
type ResumeExtraction struct {
	Data      map[string]interface{} `json:"data"`
	Resume    *ParsedResume          `json:"resume,omitempty"`
	Errors    []string               `json:"errors"`
	RawOutput string                 `json:"llm_output_raw"`
	Usage     map[string]interface{} `json:"usage,omitempty"`
	Model     string                 `json:"llm_model,omitempty"`
}
