package evaluation

import (
	"regexp"
	"strings"

	"jobdesk-utils/pkg/models"
)

var (
	scoreRe      = regexp.MustCompile(`(?i)Score:\s*(\d{1,2})`)
	intRe        = regexp.MustCompile(`-?\d+`)
	listPrefixRe = regexp.MustCompile(`^(\d+\.|[•\-*])\s*`)
)

// Section extracts the first <tag>...</tag> block from content. The match is
// case-insensitive, spans newlines and comes back trimmed; nil means the tag
// was not present, which callers treat differently from an empty block.
func Section(content, tag string) *string {
	re := regexp.MustCompile(`(?is)<` + regexp.QuoteMeta(tag) + `>\s*(.*?)\s*</` + regexp.QuoteMeta(tag) + `>`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	body := strings.TrimSpace(m[1])
	return &body
}

// ParseScored splits a section into justification text and the trailing
// "Score: N" line. When several score lines appear the last one wins, and
// the justification is everything before it.
func ParseScored(section *string) models.ScoredSection {
	if section == nil {
		return models.ScoredSection{}
	}

	matches := scoreRe.FindAllStringSubmatchIndex(*section, -1)
	if len(matches) == 0 {
		just := strings.TrimSpace(*section)
		if just == "" {
			return models.ScoredSection{}
		}
		return models.ScoredSection{Justification: &just}
	}

	last := matches[len(matches)-1]
	score := atoiOK((*section)[last[2]:last[3]])

	just := strings.TrimSpace((*section)[:last[0]])
	result := models.ScoredSection{Score: score}
	if just != "" {
		result.Justification = &just
	}
	return result
}

// ParseList splits a block into list items, dropping numbering and generic
// bullet glyphs. Leading checkmarks and crosses survive, the comparative
// analysis section depends on them. A missing or empty block yields nil.
func ParseList(block *string) []string {
	if block == nil {
		return nil
	}
	var items []string
	for _, line := range strings.Split(strings.TrimSpace(*block), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		line = listPrefixRe.ReplaceAllString(line, "")
		items = append(items, line)
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// ToInt pulls the first integer out of a string, nil when there is none.
func ToInt(s *string) *int {
	if s == nil {
		return nil
	}
	m := intRe.FindString(*s)
	if m == "" {
		return nil
	}
	return atoiOK(m)
}

func atoiOK(s string) *int {
	n := 0
	neg := false
	for i, c := range s {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			return nil
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return &n
}
