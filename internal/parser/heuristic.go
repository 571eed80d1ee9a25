package parser

import (
	"regexp"
	"strconv"
	"strings"

	"jobdesk-utils/pkg/models"
)

var (
	companyHeadingRe  = regexp.MustCompile(`(?im)^about\s+([A-Z][A-Za-z0-9 &.,\-]{1,})$`)
	companyFallbackRe = regexp.MustCompile(`(?i)^([A-Z][A-Za-z0-9 &.,\-]{1,})\s+is\s+a`)

	websiteRe     = regexp.MustCompile(`(?i)https?://[\w.\-]+\.[a-z]{2,}(?:/[\w\-/.?=&%#]*)?`)
	bareWebsiteRe = regexp.MustCompile(`(?i)www\.[\w.\-]+\.[a-z]{2,}(?:/[\w\-/.?=&%#]*)?`)

	seekingRe     = regexp.MustCompile(`(?i)we\s+are\s+seeking\s+an?\s+([^.\n]+?)\s+to`)
	titleSuffixRe = regexp.MustCompile(`(?i)\b([A-Za-z0-9.\-/+ ]+\b(?:Developer|Engineer|Manager|Architect|Specialist))\b`)
	seniorityRe   = regexp.MustCompile(`(?i)\b(Senior|Junior|Lead|Principal|Staff)\b`)

	yearRangeEnDashRe = regexp.MustCompile(`(?i)(\d+)–(\d+)\s+(?:years?|tahun)`)
	yearRangeDashRe   = regexp.MustCompile(`(?i)(\d+)-(\d+)\s+(?:years?|tahun)`)
	yearStandaloneRe  = regexp.MustCompile(`\d+\+?\s+(?:years?|tahun)`)

	domainSectorRe   = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|tahun)\s+of\s+experience\s+in\s+the\s+([a-z ]+?)\s+(?:sector|industry)`)
	domainBilingualRe = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|tahun)\s+.*?(?:pengalaman|experience).*?(?:di|in)\s+([a-z ]+?)\s+(?:sector|industry|industri)`)

	bulletMarkerRe = regexp.MustCompile(`^[\-*\x{2022}\x{25CF}\x{25E6}\x{2023}]\s*`)
	numberingRe    = regexp.MustCompile(`^\d+\.\s*`)

	locationRe   = regexp.MustCompile(`(?i)\b(Remote|Hybrid|On-site)\b`)
	employmentRe = regexp.MustCompile(`(?i)\b(Full[- ]?time|Part[- ]?time|Contract|Internship|Temporary)\b`)

	equalOppRe = regexp.MustCompile(`(?i)equal\s+opportunit(?:y|ies)`)
	trainingRe = regexp.MustCompile(`(?i)training|learning\s+programs?`)
)

// ParseHeuristic runs the deterministic extractor suite over raw job text.
// It never fails; unknown fields come back nil and list fields come back
// empty, so the result is always safe to serialize.
func ParseHeuristic(raw string) *models.HeuristicJob {
	text := NormalizeRawText(raw)
	sections := SplitSections(text)

	name := extractCompanyName(text, sections.About)
	title, seniority := extractRole(text, sections.JobSummary)

	return &models.HeuristicJob{
		Company: models.HeuristicCompany{
			Name:    name,
			Website: extractWebsite(text),
			About:   sections.About,
		},
		Role: models.HeuristicRole{
			Title:     title,
			Seniority: seniority,
		},
		Summary:          sections.JobSummary,
		Responsibilities: ExtractBullets(sections.Responsibilities),
		Qualifications: models.Qualifications{
			Required:  ExtractBullets(sections.RequiredQualifications),
			Preferred: ExtractBullets(sections.PreferredQualifications),
		},
		Experience:     extractExperience(text),
		Technologies:   extractTechnologies(text),
		Location:       extractLocation(text),
		EmploymentType: extractEmploymentType(text),
		Notes:          extractNotes(text),
		Raw:            text,
	}
}

// ExtractBullets turns a section body into clean list items. Bullet glyphs
// and "1." style numbering are stripped and a trailing period dropped; every
// non-empty line becomes one item.
func ExtractBullets(section *string) []string {
	out := []string{}
	if section == nil {
		return out
	}
	for _, line := range strings.Split(*section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if bulletMarkerRe.MatchString(line) {
			line = bulletMarkerRe.ReplaceAllString(line, "")
		} else {
			line = numberingRe.ReplaceAllString(line, "")
		}
		out = append(out, strings.TrimRight(line, "."))
	}
	return out
}

// extractCompanyName prefers an "About <Name>" heading anywhere in the text,
// skipping the generic "About the job". Falls back to "<Name> is a ..." at
// the start of the about section.
func extractCompanyName(text string, about *string) *string {
	for _, m := range companyHeadingRe.FindAllStringSubmatch(text, -1) {
		candidate := strings.TrimSpace(m[1])
		if strings.ToLower(candidate) != "the job" {
			return &candidate
		}
	}
	if about != nil {
		if m := companyFallbackRe.FindStringSubmatch(*about); m != nil {
			name := strings.TrimSpace(m[1])
			return &name
		}
	}
	return nil
}

func extractWebsite(text string) *string {
	if m := websiteRe.FindString(text); m != "" {
		return &m
	}
	if m := bareWebsiteRe.FindString(text); m != "" {
		url := "https://" + m
		return &url
	}
	return nil
}

func extractRole(text string, summary *string) (title, seniority *string) {
	hay := text
	if summary != nil {
		hay = *summary
	}

	if m := seekingRe.FindStringSubmatch(hay); m != nil {
		t := strings.TrimSpace(m[1])
		title = &t
	}
	if title == nil {
		if m := titleSuffixRe.FindStringSubmatch(hay); m != nil {
			t := strings.TrimSpace(m[1])
			title = &t
		}
	}
	if title != nil {
		if m := seniorityRe.FindStringSubmatch(*title); m != nil {
			s := capitalize(m[1])
			seniority = &s
		}
	}
	return title, seniority
}

// extractExperience collects every years-of-experience mention. Range matches
// are found first and masked out of the text so the standalone pass cannot
// re-count their endpoints.
func extractExperience(text string) models.ExperienceProfile {
	var all []int
	masked := []byte(text)

	for _, re := range []*regexp.Regexp{yearRangeEnDashRe, yearRangeDashRe} {
		for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
			lo, _ := strconv.Atoi(text[idx[2]:idx[3]])
			hi, _ := strconv.Atoi(text[idx[4]:idx[5]])
			all = append(all, lo, hi)
			for i := idx[0]; i < idx[1]; i++ {
				masked[i] = ' '
			}
		}
	}

	for _, m := range yearStandaloneRe.FindAllString(string(masked), -1) {
		if n := leadingInt(m); n != nil {
			all = append(all, *n)
		}
	}

	profile := models.ExperienceProfile{DomainExperience: []models.DomainExperience{}}
	if unique := uniqueInts(all); len(unique) > 0 {
		lo, hi := unique[0], unique[0]
		for _, n := range unique[1:] {
			if n < lo {
				lo = n
			}
			if n > hi {
				hi = n
			}
		}
		profile.TotalYearsMin = &lo
		profile.TotalYearsMax = &hi
	}

	for _, re := range []*regexp.Regexp{domainSectorRe, domainBilingualRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			years, _ := strconv.Atoi(m[1])
			profile.DomainExperience = append(profile.DomainExperience, models.DomainExperience{
				Domain: strings.TrimSpace(m[2]),
				Years:  years,
			})
			break
		}
	}

	return profile
}

func extractTechnologies(text string) models.TechnologyProfile {
	found := map[string][]string{}
	for _, group := range technologyCatalog {
		matches := []string{}
		for _, token := range group.Tokens {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
			if re.MatchString(text) {
				matches = append(matches, token)
			}
		}
		found[group.Group] = matches
	}
	return models.TechnologyProfile{
		Languages:     found["languages"],
		Frameworks:    found["frameworks"],
		APIs:          found["apis"],
		Architecture:  found["architecture"],
		Databases:     found["databases"],
		Cloud:         found["cloud"],
		Tools:         found["tools"],
		Methodologies: found["methodologies"],
	}
}

func extractLocation(text string) *string {
	if m := locationRe.FindStringSubmatch(text); m != nil {
		loc := capitalize(m[1])
		return &loc
	}
	return nil
}

func extractEmploymentType(text string) *string {
	if m := employmentRe.FindStringSubmatch(text); m != nil {
		et := capitalize(strings.ReplaceAll(m[1], "-", " "))
		return &et
	}
	return nil
}

func extractNotes(text string) []string {
	notes := []string{}
	if equalOppRe.MatchString(text) {
		notes = append(notes, "Equal opportunities statement present")
	}
	if trainingRe.MatchString(text) {
		notes = append(notes, "Training and development mentioned")
	}
	return notes
}

// capitalize lowercases the token then upper-cases the first byte, matching
// how seniority and location values are canonicalized.
func capitalize(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func leadingInt(s string) *int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return nil
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return nil
	}
	return &n
}

func uniqueInts(in []int) []int {
	seen := map[int]bool{}
	out := []int{}
	for _, n := range in {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
