package parser

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	structuredTagRe = regexp.MustCompile(`(?s)<structured_json>(.*?)</structured_json>`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractJSON pulls a single JSON object out of raw model output, repairing
// the common failure modes on the way. It never returns an error value;
// failures accumulate as diagnostics and the map comes back nil.
//
// Stages, in order: tag extraction, character normalization, strict decode,
// lenient decode (trailing commas, single quotes), first-balanced-object
// scan. The first stage that yields an object wins. The scan only runs when
// the tags never matched; it then covers the entire response.
func ExtractJSON(raw string) (map[string]interface{}, []string) {
	var errs []string

	tagged := false
	candidate := raw
	if m := structuredTagRe.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
		tagged = true
	} else {
		errs = append(errs, "structured_json tags not found, scanning full output")
	}

	candidate = normalizeJSONText(candidate)

	if obj, ok := decodeObject(candidate); ok {
		return obj, errs
	}
	errs = append(errs, "strict decode failed")

	repaired := trailingCommaRe.ReplaceAllString(candidate, "$1")
	if obj, ok := decodeObject(repaired); ok {
		return obj, errs
	}

	if obj, ok := decodeObject(flipSingleQuotes(repaired)); ok {
		errs = append(errs, "decoded after single-quote repair")
		return obj, errs
	}
	errs = append(errs, "lenient decode failed")

	if !tagged {
		if span := firstBalancedObject(candidate); span != "" {
			span = trailingCommaRe.ReplaceAllString(span, "$1")
			if obj, ok := decodeObject(span); ok {
				errs = append(errs, "decoded from embedded object")
				return obj, errs
			}
		}
	}

	errs = append(errs, "no JSON object could be recovered")
	return nil, errs
}

// decodeObject decodes strictly and rejects any top-level value that is not
// an object. Arrays, strings and numbers at the top level are treated as
// failures so later stages get a chance.
func decodeObject(s string) (map[string]interface{}, bool) {
	var v interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &v); err != nil {
		return nil, false
	}
	obj, ok := v.(map[string]interface{})
	return obj, ok
}

// normalizeJSONText replaces smart quotes with ASCII ones and strips control
// characters that models occasionally leak into string literals.
func normalizeJSONText(s string) string {
	replacer := strings.NewReplacer(
		"“", `"`, "”", `"`,
		"‘", "'", "’", "'",
	)
	s = replacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 && r != '\n' && r != '\t' && r != '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// flipSingleQuotes swaps single-quoted strings to double-quoted ones. Only
// applied after strict decoding failed, since it is lossy on apostrophes.
func flipSingleQuotes(s string) string {
	if strings.Contains(s, `"`) {
		return s
	}
	return strings.ReplaceAll(s, "'", `"`)
}

// firstBalancedObject returns the first top-level {...} span with balanced
// braces, ignoring braces inside string literals.
func firstBalancedObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
