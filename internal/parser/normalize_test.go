package parser

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_NilInputYieldsDefaultRecord(t *testing.T) {
	rec := Normalize(nil)

	assert.Equal(t, "", rec.Title)
	assert.Nil(t, rec.Seniority)
	assert.Equal(t, "", rec.CompanyName)
	assert.Nil(t, rec.WorkMode)
	assert.Nil(t, rec.EmploymentType)
	assert.NotNil(t, rec.Responsibilities)
	assert.Empty(t, rec.Responsibilities)
	assert.NotNil(t, rec.Skills)
	assert.Nil(t, rec.YearsExperienceMin)
	assert.Nil(t, rec.YearsExperienceMax)
}

func TestNormalize_EnumAliases(t *testing.T) {
	cases := []struct {
		field string
		in    interface{}
		want  string
	}{
		{"seniority", "sr", "Senior"},
		{"seniority", "Sr.", "Senior"},
		{"seniority", "entry level", "Junior"},
		{"seniority", "Tech Lead", "Lead"},
		{"work_mode", "wfo", "Onsite"},
		{"work_mode", "Work From Home", "Remote"},
		{"work_mode", "HYBRID", "Hybrid"},
		{"employment_type", "full-time", "Full time"},
		{"employment_type", "FullTime", "Full time"},
		{"employment_type", "permanent", "Full time"},
		{"employment_type", "Part Time", "Part time"},
	}

	for _, tc := range cases {
		t.Run(tc.field+"/"+tc.want, func(t *testing.T) {
			rec := Normalize(map[string]interface{}{tc.field: tc.in})
			var got *string
			switch tc.field {
			case "seniority":
				got = rec.Seniority
			case "work_mode":
				got = rec.WorkMode
			case "employment_type":
				got = rec.EmploymentType
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestNormalize_UnknownEnumBecomesNull(t *testing.T) {
	rec := Normalize(map[string]interface{}{
		"seniority":       "ninja",
		"work_mode":       "sometimes",
		"employment_type": 42.0,
	})

	assert.Nil(t, rec.Seniority)
	assert.Nil(t, rec.WorkMode)
	assert.Nil(t, rec.EmploymentType)
}

func TestNormalize_StringCoercion(t *testing.T) {
	rec := Normalize(map[string]interface{}{
		"title":        []interface{}{"Senior", "Engineer"},
		"company_name": 42.0,
		"location":     true,
	})

	assert.Equal(t, "Senior Engineer", rec.Title)
	assert.Equal(t, "42", rec.CompanyName)
	assert.Equal(t, "true", rec.Location)
}

func TestNormalize_YearsExperience(t *testing.T) {
	t.Run("leading digits from strings", func(t *testing.T) {
		rec := Normalize(map[string]interface{}{
			"years_experience_min": "5+ years",
			"years_experience_max": 8.0,
		})
		require.NotNil(t, rec.YearsExperienceMin)
		require.NotNil(t, rec.YearsExperienceMax)
		assert.Equal(t, 5, *rec.YearsExperienceMin)
		assert.Equal(t, 8, *rec.YearsExperienceMax)
	})

	t.Run("negative values rejected", func(t *testing.T) {
		rec := Normalize(map[string]interface{}{
			"years_experience_min": -2.0,
		})
		assert.Nil(t, rec.YearsExperienceMin)
	})

	t.Run("min greater than max swaps", func(t *testing.T) {
		rec := Normalize(map[string]interface{}{
			"years_experience_min": 6.0,
			"years_experience_max": 2.0,
		})
		require.NotNil(t, rec.YearsExperienceMin)
		require.NotNil(t, rec.YearsExperienceMax)
		assert.Equal(t, 2, *rec.YearsExperienceMin)
		assert.Equal(t, 6, *rec.YearsExperienceMax)
	})

	t.Run("non-numeric strings become null", func(t *testing.T) {
		rec := Normalize(map[string]interface{}{
			"years_experience_min": "several",
		})
		assert.Nil(t, rec.YearsExperienceMin)
	})
}

func TestNormalize_SkillDedup(t *testing.T) {
	rec := Normalize(map[string]interface{}{
		"skills": []interface{}{"AWS", "aws", "GCP", "Aws"},
	})

	assert.Equal(t, []string{"AWS", "GCP"}, rec.Skills)
}

func TestNormalize_ListCaps(t *testing.T) {
	items := make([]interface{}, 30)
	for i := range items {
		items[i] = "item"
	}

	rec := Normalize(map[string]interface{}{
		"responsibilities": items,
		"requirements":     items,
	})

	assert.Len(t, rec.Responsibilities, 12)
	assert.Len(t, rec.Requirements, 12)
}

func TestNormalize_NonArrayListBecomesSingleton(t *testing.T) {
	rec := Normalize(map[string]interface{}{
		"responsibilities": "Ship features",
	})

	assert.Equal(t, []string{"Ship features"}, rec.Responsibilities)
}

func TestNormalize_SummaryTruncation(t *testing.T) {
	rec := Normalize(map[string]interface{}{
		"summary": strings.Repeat("a", 500),
	})

	assert.Len(t, rec.Summary, 280)
}

func TestNormalize_UnknownKeysIgnored(t *testing.T) {
	rec := Normalize(map[string]interface{}{
		"title":     "X",
		"salary":    "lots",
		"benefits":  []interface{}{"gym"},
		"job_title": "Y",
	})

	assert.Equal(t, "X", rec.Title)
}

func TestNormalize_Idempotent(t *testing.T) {
	first := Normalize(map[string]interface{}{
		"title":                "Backend Engineer",
		"seniority":            "sr",
		"work_mode":            "wfh",
		"employment_type":      "fulltime",
		"skills":               []interface{}{"Go", "go", "SQL"},
		"years_experience_min": "7 years",
	})

	raw, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTrip map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &roundTrip))

	second := Normalize(roundTrip)
	assert.Equal(t, first, second)
}

func TestDefaultRecordJSON_MatchesNormalizerDefaults(t *testing.T) {
	var fromJSON map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(DefaultRecordJSON()), &fromJSON))

	rec := Normalize(fromJSON)
	assert.Equal(t, Normalize(nil), rec)
}
