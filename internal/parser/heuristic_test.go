package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const englishPosting = `About Accenture
Accenture is a global professional services company with leading capabilities in digital, cloud and security.
Visit https://www.accenture.com to learn more.

About the job
We are looking for a Node.js Developer to strengthen our growing engineering organization.
This is a Full-time, Remote position.
The role requires 2-3 years of experience building backend services and 2 years of experience in the banking sector.
You will work with Node.js, PostgreSQL, Redis, Docker and AWS in a Microservices architecture following Agile practices.

Responsibilities:
- Design and build REST APIs.
- Review code and mentor juniors.
1. Keep services observable.

Required Qualifications
- Strong JavaScript fundamentals
- Experience with GraphQL

Nice to Have
- Kubernetes exposure

We are an equal opportunity employer and offer extensive training programs.`

const indonesianPosting = `Deskripsi Pekerjaan
Kami mencari kandidat untuk bergabung dengan tim kami.

Kualifikasi:
- Minimal 2-4 tahun pengalaman di bidang pengembangan perangkat lunak
- Menguasai PHP dan MySQL`

func TestParseHeuristic_EnglishPosting(t *testing.T) {
	job := ParseHeuristic(englishPosting)

	require.NotNil(t, job.Company.Name)
	assert.Equal(t, "Accenture", *job.Company.Name)

	require.NotNil(t, job.Company.Website)
	assert.Contains(t, *job.Company.Website, "accenture.com")

	require.NotNil(t, job.Company.About)
	assert.Contains(t, *job.Company.About, "global professional services company")

	require.NotNil(t, job.Role.Title)
	assert.Contains(t, *job.Role.Title, "Node.js Developer")
	assert.Nil(t, job.Role.Seniority)

	require.NotNil(t, job.Experience.TotalYearsMin)
	require.NotNil(t, job.Experience.TotalYearsMax)
	assert.Equal(t, 2, *job.Experience.TotalYearsMin)
	assert.Equal(t, 3, *job.Experience.TotalYearsMax)

	require.Len(t, job.Experience.DomainExperience, 1)
	assert.Equal(t, "banking", job.Experience.DomainExperience[0].Domain)
	assert.Equal(t, 2, job.Experience.DomainExperience[0].Years)

	assert.Equal(t, []string{
		"Design and build REST APIs",
		"Review code and mentor juniors",
		"Keep services observable",
	}, job.Responsibilities)

	assert.Contains(t, job.Qualifications.Required, "Strong JavaScript fundamentals")
	assert.Contains(t, job.Qualifications.Preferred, "Kubernetes exposure")

	require.NotNil(t, job.Location)
	assert.Equal(t, "Remote", *job.Location)

	require.NotNil(t, job.EmploymentType)
	assert.Equal(t, "Full time", *job.EmploymentType)

	assert.Contains(t, job.Notes, "Equal opportunities statement present")
	assert.Contains(t, job.Notes, "Training and development mentioned")
}

func TestParseHeuristic_IndonesianPosting(t *testing.T) {
	job := ParseHeuristic(indonesianPosting)

	assert.Nil(t, job.Role.Title)
	assert.Nil(t, job.Company.Name)

	require.NotNil(t, job.Experience.TotalYearsMin)
	require.NotNil(t, job.Experience.TotalYearsMax)
	assert.Equal(t, 2, *job.Experience.TotalYearsMin)
	assert.Equal(t, 4, *job.Experience.TotalYearsMax)

	assert.Contains(t, job.Qualifications.Required, "Menguasai PHP dan MySQL")
}

func TestParseHeuristic_Technologies(t *testing.T) {
	job := ParseHeuristic(englishPosting)

	assert.Contains(t, job.Technologies.Languages, "Node.js")
	assert.Contains(t, job.Technologies.Languages, "JavaScript")
	assert.Contains(t, job.Technologies.Databases, "PostgreSQL")
	assert.Contains(t, job.Technologies.Databases, "Redis")
	assert.Contains(t, job.Technologies.Cloud, "AWS")
	assert.Contains(t, job.Technologies.Tools, "Docker")
	assert.Contains(t, job.Technologies.APIs, "REST")
	assert.Contains(t, job.Technologies.APIs, "GraphQL")
	assert.Contains(t, job.Technologies.Architecture, "Microservices")
	assert.Contains(t, job.Technologies.Methodologies, "Agile")
}

func TestParseHeuristic_SymbolLanguagesNeverMatch(t *testing.T) {
	job := ParseHeuristic("We need engineers fluent in C# and C++ as well as Go.")

	assert.Contains(t, job.Technologies.Languages, "Go")
	assert.NotContains(t, job.Technologies.Languages, "C#")
	assert.NotContains(t, job.Technologies.Languages, "C++")
}

func TestParseHeuristic_SeniorityFromTitle(t *testing.T) {
	job := ParseHeuristic("We are hiring a Senior Backend Engineer for our core team.")

	require.NotNil(t, job.Role.Title)
	assert.Contains(t, *job.Role.Title, "Senior Backend Engineer")
	require.NotNil(t, job.Role.Seniority)
	assert.Equal(t, "Senior", *job.Role.Seniority)
}

func TestParseHeuristic_NeverNilLists(t *testing.T) {
	job := ParseHeuristic("Nothing useful here.")

	assert.NotNil(t, job.Responsibilities)
	assert.NotNil(t, job.Qualifications.Required)
	assert.NotNil(t, job.Qualifications.Preferred)
	assert.NotNil(t, job.Notes)
	assert.NotNil(t, job.Experience.DomainExperience)
	assert.Nil(t, job.Experience.TotalYearsMin)
}

func TestExtractBullets(t *testing.T) {
	section := "- First item.\n• Second item\n2. Third item\n\n* Fourth"
	assert.Equal(t, []string{"First item", "Second item", "Third item", "Fourth"}, ExtractBullets(&section))
}

func TestExtractBullets_NilSection(t *testing.T) {
	out := ExtractBullets(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestExtractExperience_RangeEndpointsNotDoubleCounted(t *testing.T) {
	job := ParseHeuristic("Requires 2-3 years of experience plus 5+ years in total.")

	require.NotNil(t, job.Experience.TotalYearsMin)
	require.NotNil(t, job.Experience.TotalYearsMax)
	assert.Equal(t, 2, *job.Experience.TotalYearsMin)
	assert.Equal(t, 5, *job.Experience.TotalYearsMax)
}
