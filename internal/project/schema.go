package project

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when a response body does not match the
// Project schema.
var ErrMalformedResponse = errors.New("malformed response")

// wireProject mirrors Project with pointer fields so absent keys can be told
// apart from zero values.
type wireProject struct {
	Title                 *string   `json:"title"`
	ProblemStatement      *string   `json:"problem_statement"`
	TechStack             *[]string `json:"tech_stack"`
	Architecture          string    `json:"architecture"`
	ImplementationRoadmap *[]string `json:"implementation_roadmap"`
	Challenges            *[]string `json:"challenges"`
	ResumeScore           *float64  `json:"resume_score"`
	InnovationScore       *float64  `json:"innovation_score"`
}

type wireResponse struct {
	Recommendations *[]wireProject `json:"recommendations"`
}

// DecodeRecommendations parses a generate response body and returns its
// recommendations. Any missing or mistyped required field is reported as
// ErrMalformedResponse; nothing partial is returned.
func DecodeRecommendations(data []byte) ([]Project, error) {
	var resp wireResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if resp.Recommendations == nil {
		return nil, fmt.Errorf("%w: missing recommendations", ErrMalformedResponse)
	}

	projects := make([]Project, 0, len(*resp.Recommendations))
	for i, w := range *resp.Recommendations {
		p, err := w.toProject()
		if err != nil {
			return nil, fmt.Errorf("%w: recommendation %d: %v", ErrMalformedResponse, i, err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (w wireProject) toProject() (Project, error) {
	var missing []string
	if w.Title == nil {
		missing = append(missing, "title")
	}
	if w.ProblemStatement == nil {
		missing = append(missing, "problem_statement")
	}
	if w.TechStack == nil {
		missing = append(missing, "tech_stack")
	}
	if w.ResumeScore == nil {
		missing = append(missing, "resume_score")
	}
	if w.InnovationScore == nil {
		missing = append(missing, "innovation_score")
	}
	if w.ImplementationRoadmap == nil {
		missing = append(missing, "implementation_roadmap")
	}
	if w.Challenges == nil {
		missing = append(missing, "challenges")
	}
	if len(missing) > 0 {
		return Project{}, fmt.Errorf("missing fields %v", missing)
	}

	return Project{
		Title:                 *w.Title,
		ProblemStatement:      *w.ProblemStatement,
		TechStack:             *w.TechStack,
		Architecture:          w.Architecture,
		ImplementationRoadmap: *w.ImplementationRoadmap,
		Challenges:            *w.Challenges,
		ResumeScore:           *w.ResumeScore,
		InnovationScore:       *w.InnovationScore,
	}, nil
}
