package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/intelliproject/internal/project"
)

func validRequest() project.FormInput {
	return project.FormInput{
		Skills:     "Python, Machine Learning",
		Domain:     "Healthcare",
		Difficulty: project.Intermediate,
		TimeWeeks:  "8",
	}
}

func TestGenerateProducesThreeIdeas(t *testing.T) {
	resp, err := NewGenerator().Generate(validRequest())
	require.NoError(t, err)

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, validRequest(), resp.InputSummary)
	require.Len(t, resp.Recommendations, 3)

	first := resp.Recommendations[0]
	assert.Equal(t, "AI-Powered Healthcare Diagnostic Assistant", first.Title)
	assert.Contains(t, first.ProblemStatement, "Python, Machine Learning")
	assert.NotEmpty(t, first.Architecture)
	assert.Len(t, first.TechStack, 6)
	assert.Len(t, first.Challenges, 4)

	for _, p := range resp.Recommendations {
		assert.Contains(t, p.Title, "Healthcare")
		assert.Len(t, p.ImplementationRoadmap, 5)
	}
}

func TestGenerateRoadmapWeeks(t *testing.T) {
	req := validRequest()
	req.TimeWeeks = "9"
	resp, err := NewGenerator().Generate(req)
	require.NoError(t, err)

	roadmap := resp.Recommendations[0].ImplementationRoadmap
	assert.True(t, strings.HasPrefix(roadmap[2], "Week 5–4 :"), roadmap[2])
	assert.True(t, strings.HasPrefix(roadmap[3], "Week 5–8 :"), roadmap[3])
	assert.True(t, strings.HasPrefix(roadmap[4], "Week 9 :"), roadmap[4])
}

func TestGenerateScores(t *testing.T) {
	tests := []struct {
		difficulty     project.Difficulty
		wantResume     []float64
		wantInnovation []float64
	}{
		{project.Beginner, []float64{88, 84, 80}, []float64{82, 79, 85}},
		{project.Intermediate, []float64{98, 94, 90}, []float64{92, 89, 95}},
		{project.Advanced, []float64{100, 100, 100}, []float64{100, 99, 100}},
		{"Wizard", []float64{98, 94, 90}, []float64{92, 89, 95}},
	}
	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			req := validRequest()
			req.Difficulty = tt.difficulty
			resp, err := NewGenerator().Generate(req)
			require.NoError(t, err)
			for i, p := range resp.Recommendations {
				assert.Equal(t, tt.wantResume[i], p.ResumeScore, "resume score of idea %d", i)
				assert.Equal(t, tt.wantInnovation[i], p.InnovationScore, "innovation score of idea %d", i)
			}
		})
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*project.FormInput)
		field  string
	}{
		{"short skills", func(f *project.FormInput) { f.Skills = "C" }, "skills"},
		{"empty domain", func(f *project.FormInput) { f.Domain = "" }, "domain"},
		{"non-numeric weeks", func(f *project.FormInput) { f.TimeWeeks = "six" }, "time_weeks"},
		{"empty weeks", func(f *project.FormInput) { f.TimeWeeks = "" }, "time_weeks"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			resp, err := NewGenerator().Generate(req)
			assert.Nil(t, resp)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestGenerateLenientFields(t *testing.T) {
	req := validRequest()
	req.Difficulty = ""
	req.TimeWeeks = "0"

	resp, err := NewGenerator().Generate(req)
	require.NoError(t, err)

	first := resp.Recommendations[0]
	assert.Equal(t, float64(98), first.ResumeScore)
	assert.True(t, strings.HasPrefix(first.ImplementationRoadmap[2], "Week 5–0 :"), first.ImplementationRoadmap[2])
	assert.True(t, strings.HasPrefix(first.ImplementationRoadmap[3], "Week 1–-1 :"), first.ImplementationRoadmap[3])
	assert.True(t, strings.HasPrefix(first.ImplementationRoadmap[4], "Week 0 :"), first.ImplementationRoadmap[4])
}

func TestGenerateNegativeWeeksFloor(t *testing.T) {
	req := validRequest()
	req.TimeWeeks = "-3"

	resp, err := NewGenerator().Generate(req)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Recommendations[0].ImplementationRoadmap[2], "Week 5–-2 :"))
}

func TestGenerateCopiesStaticLists(t *testing.T) {
	g := NewGenerator()
	resp, err := g.Generate(validRequest())
	require.NoError(t, err)
	resp.Recommendations[0].TechStack[0] = "COBOL"

	resp, err = g.Generate(validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Python 3.11", resp.Recommendations[0].TechStack[0])
}

func TestNewGeneratorWithIdeasRejectsBadTemplate(t *testing.T) {
	_, err := NewGeneratorWithIdeas([]Idea{{Title: "{{.Domain"}})
	assert.Error(t, err)
}

func TestDifficultyWeight(t *testing.T) {
	assert.Equal(t, 0, DifficultyWeight("Beginner"))
	assert.Equal(t, 10, DifficultyWeight("intermediate"))
	assert.Equal(t, 20, DifficultyWeight(" ADVANCED "))
	assert.Equal(t, 10, DifficultyWeight("unknown"))
}
