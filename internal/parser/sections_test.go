package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSections_EnglishPosting(t *testing.T) {
	text := `About Acme
Acme is a global software company.

About the job
We are building payment infrastructure.

Responsibilities:
- Design APIs
- Review code

Required Qualifications
- 3 years of Go experience

Nice to Have
- Kubernetes`

	sections := SplitSections(text)

	require.NotNil(t, sections.About)
	assert.Contains(t, *sections.About, "Acme is a global software company.")
	assert.NotContains(t, *sections.About, "About Acme")

	require.NotNil(t, sections.JobSummary)
	assert.Contains(t, *sections.JobSummary, "payment infrastructure")

	require.NotNil(t, sections.Responsibilities)
	assert.Contains(t, *sections.Responsibilities, "Design APIs")
	assert.NotContains(t, *sections.Responsibilities, "Responsibilities")

	require.NotNil(t, sections.RequiredQualifications)
	assert.Contains(t, *sections.RequiredQualifications, "3 years of Go experience")

	require.NotNil(t, sections.PreferredQualifications)
	assert.Contains(t, *sections.PreferredQualifications, "Kubernetes")
}

func TestSplitSections_AboutCompanyAfterJobHeading(t *testing.T) {
	text := `About the job
About Acme
Acme builds things.

Responsibilities
- Design APIs`

	sections := SplitSections(text)

	require.NotNil(t, sections.About)
	assert.Equal(t, "Acme builds things.", *sections.About)
	assert.Nil(t, sections.JobSummary)

	require.NotNil(t, sections.Responsibilities)
	assert.Contains(t, *sections.Responsibilities, "Design APIs")
}

func TestSplitSections_PreambleGoesToSummary(t *testing.T) {
	text := `Exciting opportunity in fintech.
Join a fast growing team.

Responsibilities
- Ship features`

	sections := SplitSections(text)

	require.NotNil(t, sections.JobSummary)
	assert.Contains(t, *sections.JobSummary, "Exciting opportunity in fintech.")
	assert.Contains(t, *sections.JobSummary, "Join a fast growing team.")
	assert.Nil(t, sections.About)
}

func TestSplitSections_IndonesianHeadings(t *testing.T) {
	text := `Deskripsi pekerjaan singkat.

Kualifikasi:
- Minimal 2 tahun pengalaman
- Menguasai PHP`

	sections := SplitSections(text)

	require.NotNil(t, sections.RequiredQualifications)
	assert.Contains(t, *sections.RequiredQualifications, "Minimal 2 tahun pengalaman")
	assert.Nil(t, sections.PreferredQualifications)
}

func TestSplitSections_HeadingTrimsColonAndCase(t *testing.T) {
	text := `KEY RESPONSIBILITIES:
- Own the roadmap`

	sections := SplitSections(text)

	require.NotNil(t, sections.Responsibilities)
	assert.Equal(t, "- Own the roadmap", *sections.Responsibilities)
}

func TestSplitSections_EmptyInput(t *testing.T) {
	sections := SplitSections("")

	assert.Nil(t, sections.About)
	assert.Nil(t, sections.JobSummary)
	assert.Nil(t, sections.Responsibilities)
	assert.Nil(t, sections.RequiredQualifications)
	assert.Nil(t, sections.PreferredQualifications)
}

func TestNormalizeRawText(t *testing.T) {
	assert.Equal(t, "a\nb", NormalizeRawText("  a\r\nb \n"))
}
