package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PasteCleaner converts HTML pasted into the parse endpoints back to plain
// text. Job postings are frequently copied straight out of a browser, so the
// input arrives with markup the line-based extractors cannot handle.
type PasteCleaner struct {
	removeTags []string
}

var (
	htmlTagRe    = regexp.MustCompile(`(?i)<\s*(?:html|body|div|p|br|ul|ol|li|span|h[1-6])\b`)
	blockBreakRe = regexp.MustCompile(`(?i)<\s*br\s*/?\s*>|</\s*(?:p|div|li|h[1-6]|tr|section|article)\s*>`)
	multiBlankRe = regexp.MustCompile(`\n{3,}`)
	lineSpaceRe  = regexp.MustCompile(`[ \t]+`)
)

// NewPasteCleaner creates a new paste cleaner instance
func NewPasteCleaner() *PasteCleaner {
	return &PasteCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"form", "input", "button", "select", "textarea",
			"nav", "header", "footer", "aside", "menu",
			"svg", "meta", "link", "title", "base",
		},
	}
}

// CleanPaste returns plain text for HTML input and passes plain text through
// untouched. Block boundaries become newlines so the section splitter still
// sees headings on their own lines.
func (pc *PasteCleaner) CleanPaste(input string) (string, error) {
	if !pc.LooksLikeHTML(input) {
		return input, nil
	}

	// Turn block boundaries into newlines before parsing; goquery's Text()
	// flattens structure otherwise.
	withBreaks := blockBreakRe.ReplaceAllString(input, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(withBreaks))
	if err != nil {
		return "", err
	}

	for _, tag := range pc.removeTags {
		doc.Find(tag).Remove()
	}

	text := doc.Text()

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(lineSpaceRe.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = multiBlankRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text), nil
}

// LooksLikeHTML reports whether the input carries enough markup to be worth
// running through the cleaner.
func (pc *PasteCleaner) LooksLikeHTML(input string) bool {
	return htmlTagRe.MatchString(input)
}
