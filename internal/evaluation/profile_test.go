package evaluation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileResponse = `<evaluation>
<impact>
<quantifying_impact>
<score>7</score>
<feedback>Some metrics present, add more.</feedback>
</quantifying_impact>
<focus_on_achievements>
<score>6</score>
<feedback>Still duty-focused in places.</feedback>
</focus_on_achievements>
</impact>

<skills_and_traits>
<problem_solving>
<score>8</score>
<feedback>Strong debugging stories.</feedback>
</problem_solving>
</skills_and_traits>

<alignment_with_job>
<skills_match>
<score>9</score>
<feedback>Stack overlaps almost entirely.</feedback>
</skills_match>
</alignment_with_job>

<overall_recommendation>
<overall_score>74</overall_score>
Strong candidate for this role.
<improvements>
<strengths>
• Clear metrics in recent roles<br/>
• Relevant stack
</strengths>
<areas_for_improvement>
• Expand the summary section<br/>
• Add certifications
</areas_for_improvement>
</improvements>
</overall_recommendation>

<specific_change>
[{"section": "summary", "current": "Engineer.", "suggested": "Backend engineer with 7 years building payment systems.",}]
</specific_change>
</evaluation>`

func TestEvaluateProfile_FullResponse(t *testing.T) {
	stub := &stubCompleter{content: profileResponse}
	svc := NewProfileService(testConfig(), stub)

	profile := map[string]interface{}{"name": "Jane"}
	job := map[string]interface{}{"title": "Backend Engineer"}

	outcome, err := svc.EvaluateProfile(context.Background(), profile, job)

	require.NoError(t, err)
	assert.Empty(t, outcome.Errors)

	data := outcome.Data
	require.NotNil(t, data)

	require.Contains(t, data.Impact, "quantifying_impact")
	require.NotNil(t, data.Impact["quantifying_impact"].Score)
	assert.Equal(t, 7, *data.Impact["quantifying_impact"].Score)
	require.NotNil(t, data.Impact["quantifying_impact"].Feedback)
	assert.Equal(t, "Some metrics present, add more.", *data.Impact["quantifying_impact"].Feedback)

	// Criteria the model omitted stay out of the maps entirely.
	assert.NotContains(t, data.Impact, "writing_quality")
	assert.Len(t, data.SkillsAndTraits, 1)
	assert.Len(t, data.AlignmentWithJob, 1)

	require.NotNil(t, data.Overall.TotalScore)
	assert.Equal(t, 74, *data.Overall.TotalScore)
	assert.Contains(t, data.Overall.Recommendation, "Strong candidate for this role.")

	require.NotNil(t, data.Overall.Strengths)
	assert.Contains(t, *data.Overall.Strengths, "Clear metrics in recent roles")
	assert.NotContains(t, *data.Overall.Strengths, "•")
	assert.NotContains(t, *data.Overall.Strengths, "<br/>")

	require.NotNil(t, data.Overall.AreasForImprovement)
	assert.Contains(t, *data.Overall.AreasForImprovement, "Add certifications")

	require.Len(t, data.SpecificChanges, 1)
	assert.Equal(t, "summary", data.SpecificChanges[0]["section"])
}

func TestEvaluateProfile_TotalScoreFallsBackToCriterionSum(t *testing.T) {
	stub := &stubCompleter{content: `<evaluation>
<impact>
<quantifying_impact>
<score>5</score>
<feedback>ok</feedback>
</quantifying_impact>
</impact>
<skills_and_traits>
<problem_solving>
<score>6</score>
<feedback>ok</feedback>
</problem_solving>
</skills_and_traits>
</evaluation>`}
	svc := NewProfileService(testConfig(), stub)

	outcome, err := svc.EvaluateProfile(context.Background(), nil, nil)

	require.NoError(t, err)
	require.NotNil(t, outcome.Data.Overall.TotalScore)
	assert.Equal(t, 11, *outcome.Data.Overall.TotalScore)
}

func TestEvaluateProfile_MissingRootTag(t *testing.T) {
	stub := &stubCompleter{content: `<impact>
<quantifying_impact>
<score>4</score>
<feedback>thin</feedback>
</quantifying_impact>
</impact>`}
	svc := NewProfileService(testConfig(), stub)

	outcome, err := svc.EvaluateProfile(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Contains(t, outcome.Errors, "Missing <evaluation> root tag.")

	// Parsing still proceeds over the raw content.
	require.Contains(t, outcome.Data.Impact, "quantifying_impact")
	require.NotNil(t, outcome.Data.Impact["quantifying_impact"].Score)
	assert.Equal(t, 4, *outcome.Data.Impact["quantifying_impact"].Score)
}

func TestEvaluateProfile_BadSpecificChangesIsDiagnosticOnly(t *testing.T) {
	stub := &stubCompleter{content: `<evaluation>
<specific_change>
not json at all
</specific_change>
</evaluation>`}
	svc := NewProfileService(testConfig(), stub)

	outcome, err := svc.EvaluateProfile(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Nil(t, outcome.Data.SpecificChanges)

	found := false
	for _, e := range outcome.Errors {
		if strings.HasPrefix(e, "Failed to decode specific_changes JSON") {
			found = true
		}
	}
	assert.True(t, found, "expected a specific_changes decode diagnostic")
}

func TestEvaluateProfile_PromptEmbedsBothDocuments(t *testing.T) {
	stub := &stubCompleter{content: profileResponse}
	svc := NewProfileService(testConfig(), stub)

	profile := map[string]interface{}{"name": "Jane Q. Unique"}
	job := map[string]interface{}{"title": "Distinctly Named Role"}

	_, err := svc.EvaluateProfile(context.Background(), profile, job)

	require.NoError(t, err)
	require.Len(t, stub.lastRequest.Messages, 1)
	prompt := stub.lastRequest.Messages[0].Content
	assert.Contains(t, prompt, "Jane Q. Unique")
	assert.Contains(t, prompt, "Distinctly Named Role")
}
