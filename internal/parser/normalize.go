package parser

import (
	"strconv"
	"strings"

	"jobdesk-utils/pkg/models"
)

const (
	maxResponsibilities = 12
	maxRequirements     = 12
	maxSkills           = 20
	summaryMaxLen       = 280
)

// seniorityAliases, workModeAliases and employmentAliases map alias keys
// (lowercased, spaces/hyphens/periods stripped) to canonical enum values.
// Unknown values normalize to null rather than passing through.
var seniorityAliases = map[string]string{
	"intern": "Intern", "internship": "Intern",
	"junior": "Junior", "jr": "Junior", "entry": "Junior", "entrylevel": "Junior",
	"mid": "Mid", "middle": "Mid", "midlevel": "Mid", "intermediate": "Mid",
	"senior": "Senior", "sr": "Senior",
	"lead": "Lead", "teamlead": "Lead", "techlead": "Lead",
	"principal": "Principal",
	"staff":     "Staff",
	"head":      "Head", "headof": "Head",
	"director": "Director",
}

var workModeAliases = map[string]string{
	"remote": "Remote", "fullyremote": "Remote", "workfromhome": "Remote", "wfh": "Remote",
	"hybrid": "Hybrid",
	"onsite": "Onsite", "inoffice": "Onsite", "office": "Onsite", "workfromoffice": "Onsite", "wfo": "Onsite",
}

var employmentAliases = map[string]string{
	"fulltime": "Full time", "ft": "Full time", "permanent": "Full time",
	"parttime": "Part time", "pt": "Part time",
	"contract": "Contract", "contractor": "Contract", "contractual": "Contract",
	"internship": "Internship", "intern": "Internship",
	"temporary": "Temporary", "temp": "Temporary",
	"freelance": "Freelance", "freelancer": "Freelance",
	"volunteer": "Volunteer",
}

// defaultRecord returns a fresh fully-populated map in the canonical shape.
// Callers always get a new map; the normalizer overlays input on top of it.
func defaultRecord() map[string]interface{} {
	return map[string]interface{}{
		"title":                "",
		"seniority":            nil,
		"company_name":         "",
		"work_mode":            nil,
		"location":             "",
		"employment_type":      nil,
		"summary":              "",
		"responsibilities":     []interface{}{},
		"requirements":         []interface{}{},
		"skills":               []interface{}{},
		"years_experience_min": nil,
		"years_experience_max": nil,
	}
}

// Normalize coerces an arbitrary decoded map into a valid JobRecord. The
// function is total and idempotent: any input map produces a record, and
// normalizing a normalized record changes nothing. Keys missing from the
// input keep their defaults; unknown keys are ignored.
func Normalize(input map[string]interface{}) *models.JobRecord {
	merged := defaultRecord()
	if input != nil {
		for k := range merged {
			if v, ok := input[k]; ok {
				merged[k] = v
			}
		}
	}

	rec := &models.JobRecord{
		Title:          coerceString(merged["title"]),
		Seniority:      canonicalEnum(merged["seniority"], seniorityAliases),
		CompanyName:    coerceString(merged["company_name"]),
		WorkMode:       canonicalEnum(merged["work_mode"], workModeAliases),
		Location:       coerceString(merged["location"]),
		EmploymentType: canonicalEnum(merged["employment_type"], employmentAliases),
		Summary:        truncateString(coerceString(merged["summary"]), summaryMaxLen),

		Responsibilities: coerceStringList(merged["responsibilities"], maxResponsibilities),
		Requirements:     coerceStringList(merged["requirements"], maxRequirements),
		Skills:           dedupeSkills(coerceStringList(merged["skills"], 0), maxSkills),

		YearsExperienceMin: coerceNullableInt(merged["years_experience_min"]),
		YearsExperienceMax: coerceNullableInt(merged["years_experience_max"]),
	}

	if rec.YearsExperienceMin != nil && rec.YearsExperienceMax != nil &&
		*rec.YearsExperienceMin > *rec.YearsExperienceMax {
		rec.YearsExperienceMin, rec.YearsExperienceMax = rec.YearsExperienceMax, rec.YearsExperienceMin
	}

	return rec
}

// canonicalEnum resolves a value against an alias table. The alias key is
// the lowercased value with spaces, hyphens and periods stripped. Anything
// unresolvable, including empty strings, becomes nil.
func canonicalEnum(v interface{}, aliases map[string]string) *string {
	s := strings.TrimSpace(coerceString(v))
	if s == "" {
		return nil
	}
	key := strings.NewReplacer(" ", "", "-", "", ".", "").Replace(strings.ToLower(s))
	if canonical, ok := aliases[key]; ok {
		return &canonical
	}
	return nil
}

// coerceString flattens any scalar or array into a string. Arrays join their
// coerced elements with single spaces; nil, objects and booleans that carry
// no text become the empty string.
func coerceString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, el := range t {
			if s := coerceString(el); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// coerceStringList turns any value into a clean []string. Non-array values
// become a single-element list when non-empty. A max of 0 means unbounded.
func coerceStringList(v interface{}, max int) []string {
	out := []string{}
	var items []interface{}
	switch t := v.(type) {
	case nil:
		return out
	case []interface{}:
		items = t
	default:
		items = []interface{}{t}
	}
	for _, el := range items {
		s := coerceString(el)
		if s == "" {
			continue
		}
		out = append(out, s)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

// dedupeSkills drops case-insensitive duplicates keeping the first spelling
// seen, then truncates to max.
func dedupeSkills(skills []string, max int) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range skills {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

// coerceNullableInt accepts numbers, numeric strings and strings with a
// leading integer ("5+ years" -> 5). Everything else is nil. Negative
// values are rejected.
func coerceNullableInt(v interface{}) *int {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		n := int(t)
		if n < 0 {
			return nil
		}
		return &n
	case int:
		if t < 0 {
			return nil
		}
		n := t
		return &n
	case string:
		return leadingInt(strings.TrimSpace(t))
	default:
		return nil
	}
}

func truncateString(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max]))
}

// DefaultRecordJSON renders the default record shape as compact JSON for
// embedding in prompt templates.
func DefaultRecordJSON() string {
	return `{"title":"","seniority":null,"company_name":"","work_mode":null,"location":"","employment_type":null,"summary":"","responsibilities":[],"requirements":[],"skills":[],"years_experience_min":null,"years_experience_max":null}`
}
