// Package engine generates templated project recommendations for the
// reference backend.
package engine

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/f3rmion/intelliproject/internal/project"
)

// minFieldLength is the minimum length of skills and domain.
const minFieldLength = 2

// ValidationError reports a request the generator refuses to process.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Idea is the template for one recommendation. Text fields are parsed as
// text/template against SceneData.
type Idea struct {
	Title            string
	ProblemStatement string
	Architecture     string
	TechStack        []string
	Roadmap          []string
	Challenges       []string
	ResumeBase       int
	InnovationBase   int
}

// SceneData holds the resolved request values available to idea templates.
type SceneData struct {
	Skills     string
	Domain     string
	Difficulty string
	Weeks      int
	Half       int // Weeks / 2
	HalfNext   int // Weeks/2 + 1
	LastButOne int // Weeks - 1
}

type compiledIdea struct {
	idea             Idea
	title            *template.Template
	problemStatement *template.Template
	architecture     *template.Template
	roadmap          []*template.Template
}

// Generator turns a request into a fixed set of recommendations.
type Generator struct {
	ideas []compiledIdea
}

// NewGenerator creates a generator from the built-in ideas.
func NewGenerator() *Generator {
	g, err := NewGeneratorWithIdeas(DefaultIdeas())
	if err != nil {
		panic(err)
	}
	return g
}

// NewGeneratorWithIdeas compiles the given idea templates.
func NewGeneratorWithIdeas(ideas []Idea) (*Generator, error) {
	g := &Generator{}
	for i, idea := range ideas {
		ci := compiledIdea{idea: idea}
		var err error
		name := fmt.Sprintf("idea%d", i)
		if ci.title, err = parse(name+".title", idea.Title); err != nil {
			return nil, err
		}
		if ci.problemStatement, err = parse(name+".problem", idea.ProblemStatement); err != nil {
			return nil, err
		}
		if ci.architecture, err = parse(name+".architecture", idea.Architecture); err != nil {
			return nil, err
		}
		for j, step := range idea.Roadmap {
			t, err := parse(fmt.Sprintf("%s.roadmap%d", name, j), step)
			if err != nil {
				return nil, err
			}
			ci.roadmap = append(ci.roadmap, t)
		}
		g.ideas = append(g.ideas, ci)
	}
	return g, nil
}

func parse(name, text string) (*template.Template, error) {
	t, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return t, nil
}

// Generate validates req and renders every idea against it.
func (g *Generator) Generate(req project.FormInput) (*project.Response, error) {
	data, err := buildSceneData(req)
	if err != nil {
		return nil, err
	}

	weight := DifficultyWeight(string(req.Difficulty))
	recs := make([]project.Project, 0, len(g.ideas))
	for _, ci := range g.ideas {
		p, err := ci.render(data, weight)
		if err != nil {
			return nil, err
		}
		recs = append(recs, p)
	}

	return &project.Response{
		Status:          "success",
		InputSummary:    req,
		Recommendations: recs,
	}, nil
}

func buildSceneData(req project.FormInput) (SceneData, error) {
	if utf8.RuneCountInString(req.Skills) < minFieldLength {
		return SceneData{}, &ValidationError{Field: "skills", Message: "must be at least 2 characters"}
	}
	if utf8.RuneCountInString(req.Domain) < minFieldLength {
		return SceneData{}, &ValidationError{Field: "domain", Message: "must be at least 2 characters"}
	}
	// Any difficulty label is accepted; unknown ones weigh as intermediate.
	// Week counts are not range checked, so "0" yields a "Week 5–0" step.
	weeks, err := strconv.Atoi(strings.TrimSpace(req.TimeWeeks))
	if err != nil {
		return SceneData{}, &ValidationError{Field: "time_weeks", Message: "must be a whole number of weeks"}
	}

	half := floorDiv(weeks, 2)
	return SceneData{
		Skills:     req.Skills,
		Domain:     req.Domain,
		Difficulty: string(req.Difficulty),
		Weeks:      weeks,
		Half:       half,
		HalfNext:   half + 1,
		LastButOne: weeks - 1,
	}, nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (ci compiledIdea) render(data SceneData, weight int) (project.Project, error) {
	title, err := execute(ci.title, data)
	if err != nil {
		return project.Project{}, err
	}
	problem, err := execute(ci.problemStatement, data)
	if err != nil {
		return project.Project{}, err
	}
	arch, err := execute(ci.architecture, data)
	if err != nil {
		return project.Project{}, err
	}

	roadmap := make([]string, 0, len(ci.roadmap))
	for _, t := range ci.roadmap {
		step, err := execute(t, data)
		if err != nil {
			return project.Project{}, err
		}
		roadmap = append(roadmap, step)
	}

	return project.Project{
		Title:                 title,
		ProblemStatement:      problem,
		TechStack:             append([]string(nil), ci.idea.TechStack...),
		Architecture:          arch,
		ImplementationRoadmap: roadmap,
		Challenges:            append([]string(nil), ci.idea.Challenges...),
		ResumeScore:           float64(min(ci.idea.ResumeBase+weight, 100)),
		InnovationScore:       float64(min(ci.idea.InnovationBase+weight, 100)),
	}, nil
}

func execute(t *template.Template, data SceneData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", t.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// DifficultyWeight maps a difficulty label to its score modifier. Unknown
// labels weigh the same as intermediate.
func DifficultyWeight(difficulty string) int {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case "beginner":
		return 0
	case "advanced":
		return 20
	default:
		return 10
	}
}
