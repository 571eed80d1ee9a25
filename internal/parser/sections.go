package parser

import (
	"regexp"
	"strings"
)

// Sections holds the named sections of a job posting. A nil field means the
// section was never found, which downstream extractors treat differently
// from an empty one.
type Sections struct {
	About                   *string
	JobSummary              *string
	Responsibilities        *string
	RequiredQualifications  *string
	PreferredQualifications *string
}

// headingAliases maps normalized heading lines to section identifiers.
// English and Indonesian headings are mixed on purpose; the postings this
// service sees are frequently bilingual. "About the job" reopens the
// preamble rather than a section of its own, so an "About <Company>" line
// following it can still open the about section.
var headingAliases = map[string]string{
	"about the job":            "preamble",
	"about":                    "about",
	"job summary":              "job_summary",
	"job description":          "job_summary",
	"key responsibilities":     "responsibilities",
	"responsibilities":         "responsibilities",
	"required qualifications":  "required_qualifications",
	"qualifications":           "required_qualifications",
	"kualifikasi":              "required_qualifications",
	"preferred qualifications": "preferred_qualifications",
	"nice to have":             "preferred_qualifications",
}

// aboutOpenerRe detects an "About <Company>" opener while still in the
// preamble, e.g. "About Acme" but not a generic paragraph.
var aboutOpenerRe = regexp.MustCompile(`^about\s+([a-z0-9&.,\- ]{2,})$`)

// SplitSections splits normalized job posting text into named sections with
// a single forward pass. Heading lines switch the accumulation target and
// are themselves dropped; first alias match wins, no backtracking.
func SplitSections(text string) *Sections {
	lines := strings.Split(text, "\n")

	current := "preamble"
	acc := map[string][]string{
		"about":                    nil,
		"job_summary":              nil,
		"responsibilities":         nil,
		"required_qualifications":  nil,
		"preferred_qualifications": nil,
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		lc := strings.ToLower(strings.Trim(line, ": \t"))

		if target, ok := headingAliases[lc]; ok {
			current = target
			continue
		}

		if current == "preamble" && aboutOpenerRe.MatchString(lc) {
			current = "about"
			continue
		}

		if current == "preamble" {
			acc["job_summary"] = append(acc["job_summary"], line)
		} else {
			acc[current] = append(acc[current], line)
		}
	}

	return &Sections{
		About:                   sectionValue(acc["about"]),
		JobSummary:              sectionValue(acc["job_summary"]),
		Responsibilities:        sectionValue(acc["responsibilities"]),
		RequiredQualifications:  sectionValue(acc["required_qualifications"]),
		PreferredQualifications: sectionValue(acc["preferred_qualifications"]),
	}
}

// sectionValue joins accumulated lines and nulls out empty sections.
func sectionValue(lines []string) *string {
	joined := strings.TrimSpace(strings.Join(lines, "\n"))
	if joined == "" {
		return nil
	}
	return &joined
}

// NormalizeRawText prepares raw input for both parser paths: line endings
// are normalized and outer whitespace dropped.
func NormalizeRawText(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
}
