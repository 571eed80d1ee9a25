package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"jobdesk-utils/internal/config"
	"jobdesk-utils/internal/logging"
	"jobdesk-utils/internal/parser"
	"jobdesk-utils/pkg/models"
	"jobdesk-utils/pkg/utils"
)

var (
	htmlBreakReplacer = strings.NewReplacer("<br/>", "\n", "<br />", "\n", "<br>", "\n")
	htmlTagStripRe    = regexp.MustCompile(`<[^>]*>`)
	bulletPrefixRe    = regexp.MustCompile(`(?m)^[\s•\-]+`)
	trailingCommaRe   = regexp.MustCompile(`,(\s*[}\]])`)
)

var (
	impactCriteria = []string{
		"quantifying_impact",
		"focus_on_achievements",
		"writing_quality",
		"varied_industry_specific_verbs",
	}
	skillsCriteria = []string{
		"problem_solving",
		"communication_collaboration",
		"initiative_innovation",
		"leadership_teamwork",
	}
	alignmentCriteria = []string{
		"skills_match",
		"job_title_match",
		"responsibilities_qualifications",
		"industry_keywords_synonyms",
	}
)

// ProfileService evaluates a candidate profile against a job description and
// parses the tag-structured scoring rubric out of the model output.
type ProfileService struct {
	config    *config.Config
	completer parser.Completer
	logger    logging.Logger
}

// NewProfileService creates a new profile evaluation service
func NewProfileService(cfg *config.Config, completer parser.Completer) *ProfileService {
	return &ProfileService{
		config:    cfg,
		completer: completer,
		logger:    logging.GetGlobalLogger(),
	}
}

// EvaluateProfile runs the full profile-vs-job evaluation. Parse failures
// degrade to diagnostics on the outcome, only transport errors are fatal.
func (s *ProfileService) EvaluateProfile(ctx context.Context, profile, job map[string]interface{}) (*models.ProfileEvaluationOutcome, error) {
	startTime := time.Now()

	response, err := s.completer.Complete(ctx, models.CompletionRequest{
		Model:       s.config.LLM.Model,
		Temperature: s.config.LLM.Temperature,
		MaxTokens:   s.config.LLM.MaxTokens,
		Messages: []models.CompletionMessage{
			{Role: "user", Content: buildProfilePrompt(profile, job)},
		},
	})
	if err != nil {
		return nil, utils.NewLLMError(err.Error())
	}

	data, diagnostics := parseProfileEvaluation(response.Content)

	s.logger.Info("Profile evaluation completed", map[string]interface{}{
		"total_score":     data.Overall.TotalScore,
		"diagnostics":     len(diagnostics),
		"processing_time": time.Since(startTime).String(),
		"model":           response.Model,
	})

	return &models.ProfileEvaluationOutcome{
		Data:      data,
		Errors:    diagnostics,
		RawOutput: response.Content,
		Usage:     response.Usage,
		Model:     response.Model,
	}, nil
}

// parseProfileEvaluation extracts the scoring rubric from the tag-structured
// response. A missing <evaluation> root is a diagnostic, not a failure; the
// parser then tries the raw content.
func parseProfileEvaluation(content string) (*models.ProfileEvaluation, []string) {
	var errs []string

	eval := content
	if root := Section(content, "evaluation"); root != nil {
		eval = *root
	} else {
		errs = append(errs, "Missing <evaluation> root tag.")
	}

	impact := parseCriterionBlock(Section(eval, "impact"), impactCriteria)
	skills := parseCriterionBlock(Section(eval, "skills_and_traits"), skillsCriteria)
	alignment := parseCriterionBlock(Section(eval, "alignment_with_job"), alignmentCriteria)

	overallSection := ""
	if s := Section(eval, "overall_recommendation"); s != nil {
		overallSection = *s
	}

	totalScore := ToInt(Section(overallSection, "overall_score"))
	improvements := Section(overallSection, "improvements")

	// Fall back to summing parsed criterion scores when the model omitted
	// the overall score.
	if totalScore == nil {
		sum := 0
		for _, group := range []map[string]models.CriterionResult{impact, skills, alignment} {
			for _, item := range group {
				if item.Score != nil {
					sum += *item.Score
				}
			}
		}
		if sum > 0 {
			totalScore = &sum
		}
	}

	var specificChanges []map[string]interface{}
	if changesRaw := Section(eval, "specific_change"); changesRaw != nil && *changesRaw != "" {
		decoded, decodeErr := decodeJSONLenient(*changesRaw)
		if decodeErr != nil {
			errs = append(errs, fmt.Sprintf("Failed to decode specific_changes JSON: %v", decodeErr))
		} else {
			specificChanges = decoded
		}
	}

	strengths, areas := splitImprovements(improvements)

	return &models.ProfileEvaluation{
		Impact:           impact,
		SkillsAndTraits:  skills,
		AlignmentWithJob: alignment,
		Overall: models.OverallRecommendation{
			TotalScore:          totalScore,
			Recommendation:      stripTags(overallSection),
			Improvements:        improvements,
			Strengths:           strengths,
			AreasForImprovement: areas,
		},
		SpecificChanges: specificChanges,
	}, errs
}

// parseCriterionBlock extracts score/feedback pairs for the expected keys.
// Keys whose tags are missing are left out of the result map entirely.
func parseCriterionBlock(block *string, expectedKeys []string) map[string]models.CriterionResult {
	out := map[string]models.CriterionResult{}
	if block == nil {
		return out
	}
	for _, key := range expectedKeys {
		chunk := Section(*block, key)
		if chunk == nil {
			continue
		}
		out[key] = models.CriterionResult{
			Score:    ToInt(Section(*chunk, "score")),
			Feedback: Section(*chunk, "feedback"),
		}
	}
	return out
}

// splitImprovements pulls the <strengths> and <areas_for_improvement> blocks
// out of the improvements text and flattens them to plain text.
func splitImprovements(improvements *string) (strengths, areas *string) {
	if improvements == nil {
		return nil, nil
	}
	if block := Section(*improvements, "strengths"); block != nil {
		cleaned := cleanImprovementBlock(*block)
		strengths = &cleaned
	}
	if block := Section(*improvements, "areas_for_improvement"); block != nil {
		cleaned := cleanImprovementBlock(*block)
		areas = &cleaned
	}
	return strengths, areas
}

// cleanImprovementBlock converts <br/> variants to newlines, strips the
// remaining markup and drops leading bullet glyphs from every line.
func cleanImprovementBlock(block string) string {
	block = htmlBreakReplacer.Replace(block)
	block = stripTags(block)
	block = bulletPrefixRe.ReplaceAllString(block, "")
	return strings.TrimSpace(block)
}

func stripTags(s string) string {
	return strings.TrimSpace(htmlTagStripRe.ReplaceAllString(s, ""))
}

// decodeJSONLenient decodes a JSON array of objects, repairing trailing
// commas on a second attempt.
func decodeJSONLenient(raw string) ([]map[string]interface{}, error) {
	raw = strings.TrimSpace(raw)

	var decoded []map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		return decoded, nil
	}

	repaired := trailingCommaRe.ReplaceAllString(raw, "$1")
	if err := json.Unmarshal([]byte(repaired), &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

// buildProfilePrompt renders the evaluation prompt with the profile and job
// JSON embedded.
func buildProfilePrompt(profile, job map[string]interface{}) string {
	profileJSON, _ := json.Marshal(profile)
	jobJSON, _ := json.Marshal(job)

	return fmt.Sprintf(`You are an expert in resume evaluation. Your task is to analyze a given profile, score it based on specific criteria, provide detailed feedback, and suggest improvements that will help the candidate secure the desired job. You must strictly base your assessment on the content of the profile and job description. Do not infer anything from demographic details such as names, pronouns, race, gender, age, or other protected characteristics, and do not let them influence scores or feedback.

1. Here is the profile you will be evaluating:
<profile_json>
%s
</profile_json>

2. Consider the following job description to evaluate the profile's alignment with the desired position:
<job_json>
%s
</job_json>

3. Carefully analyze the provided profile data. Pay attention to the following sections: summary, skills (array of {name, proficiency_level}), experiences, education, projects, and certifications. Focus your evaluation on explicit, job-relevant information; do not guess or assume.

4. Evaluate the profile based on the following criteria:

A. Impact (Total Score: 40)
- Quantifying Impact (10 points): Look for numbers and metrics that quantify accomplishments (e.g., "increased revenue by 30%%" or "reduced customer wait time by 50%%"). Award full points when most bullets include measurable results.
- Focus on Achievements (10 points): Highlight accomplishments rather than listing duties. Evidence of results matters more than responsibilities.
- Writing Quality (12 points): No spelling or grammar errors and correct verb tenses. Bullets should start with strong active verbs; avoid passive constructions and weak phrasing.
- Varied and Industry-Specific Verbs (8 points): Use varied, descriptive action verbs that are relevant to the industry and role. Do not repeat the same verb in multiple bullets.

B. Evidence of Skills & Professional Traits (Total Score: 20)
- Problem-Solving and Analytical Ability (5 points): Does the profile describe specific analytical work or problem-solving results?
- Communication & Collaboration (5 points): Are there examples of clear communication, teamwork, or collaboration outcomes?
- Initiative & Innovation (5 points): Does the candidate take proactive steps, introduce improvements, or innovate without prompting?
- Leadership & Teamwork (5 points): Evidence of leading teams or projects and motivating others.

C. Alignment with Job (ATS) Keywords (Total Score: 40)
- Skills Match (10 points): Do the profile's skills explicitly match the required skills in the job description?
- Job Title Match (10 points): Are the candidate's past roles and titles closely related to the target job title?
- Responsibilities & Qualifications (10 points): Does the profile contain keywords and phrases from the "Responsibilities" and "Qualifications" sections of the job description?
- Industry Keywords & Synonyms (10 points): Does the profile use industry-specific terms and synonyms that align with the job description and will help in ATS searches?

5. For each sub-component, do the following:
   a. Provide the awarded score (an integer) in the `+"`<score>`"+` tag.
   b. Provide specific feedback explaining how the profile aligns or misaligns with the criteria and what improvements are needed.
   c. Justify the score using concrete examples from the profile (e.g., mention the metrics used, specific action verbs, or missing keywords).

6. After evaluating all components, provide an overall recommendation:
   a. Calculate the total score from the combined sub-component scores.
   b. Summarize strengths and areas for improvement, emphasizing alignment with the job. Include actionable advice, both immediate (e.g., "add quantifiable results to role X") and longer term (e.g., "gain experience with skill Y").
   c. Format the improvements section with <strengths> and <areas_for_improvement> tags, each containing bullet points.

7. Suggest specific immediate changes:
   a. Identify exact words, phrases, sentences, or sections of the profile to modify.
   b. Provide clear, actionable modifications for these sections.
   c. Recommend changes in **JSON array** format. Each object must contain:
      - `+"`field`"+`: one of the valid fields (summary, skills, experiences.*.description, educations.*.description, projects.*.description, or licenses_and_certifications.*.description). Do not use wildcard patterns in your final output.
      - `+"`id`"+`: the unique identifier of the parent entity if available (use the profile's `+"`id`"+`, `+"`name`"+`, or zero-based `+"`index`"+` as a stable locator).
      - `+"`specific_field`"+`: the nested field name (e.g., "description") when modifying a nested entity.
      - `+"`old_value`"+`: the current value.
      - `+"`new_value`"+`: the suggested value.
   d. If there are no specific immediate changes to recommend, leave `+"`<specific_change>`"+` empty.

8. Guidelines:
   - Fairness: Exclude all demographic or personal identity factors from consideration; score solely on job-relevant content.
   - Alignment: Keep feedback and scoring tied to the target role and job description.
   - Consistency: Apply the same standards across all profiles.
   - Relevance: Base evaluation strictly on the profile, job JSON, and criteria.
   - Depth & Clarity: Provide detailed, clear reasoning and concrete examples for every point.
   - Accuracy: Ensure scores reflect the evidence cited and avoid over- or under-scoring.
   - Actionable Feedback: Focus on high-impact, practical advice. Do not suggest changes when none are needed.

9. Format your output exactly as shown below:

<evaluation>
<impact>
<quantifying_impact>
<score></score>
<feedback></feedback>
</quantifying_impact>
<focus_on_achievements>
<score></score>
<feedback></feedback>
</focus_on_achievements>
<writing_quality>
<score></score>
<feedback></feedback>
</writing_quality>
<varied_industry_specific_verbs>
<score></score>
<feedback></feedback>
</varied_industry_specific_verbs>
</impact>

<skills_and_traits>
<problem_solving>
<score></score>
<feedback></feedback>
</problem_solving>
<communication_collaboration>
<score></score>
<feedback></feedback>
</communication_collaboration>
<initiative_innovation>
<score></score>
<feedback></feedback>
</initiative_innovation>
<leadership_teamwork>
<score></score>
<feedback></feedback>
</leadership_teamwork>
</skills_and_traits>

<alignment_with_job>
<skills_match>
<score></score>
<feedback></feedback>
</skills_match>
<job_title_match>
<score></score>
<feedback></feedback>
</job_title_match>
<responsibilities_qualifications>
<score></score>
<feedback></feedback>
</responsibilities_qualifications>
<industry_keywords_synonyms>
<score></score>
<feedback></feedback>
</industry_keywords_synonyms>
</alignment_with_job>

<overall_recommendation>
<overall_score></overall_score>
<improvements>
<strengths>
</strengths>
<areas_for_improvement>
</areas_for_improvement>
</improvements>
</overall_recommendation>

<specific_change>
[JSON array of recommended immediate changes]
</specific_change>
</evaluation>

Your evaluation must be fair, thorough, consistent, and focused on alignment with the job description.`, profileJSON, jobJSON)
}
