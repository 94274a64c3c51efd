// Package project provides the core types exchanged with the recommendation backend.
package project

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is the user's preferred project difficulty.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Difficulties lists the selectable difficulties in display order.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// DefaultDifficulty is preselected in a new form.
const DefaultDifficulty = Intermediate

var (
	// ErrUnknownField is returned when a form field name is not one of the four known fields.
	ErrUnknownField = errors.New("unknown form field")
	// ErrInvalidDifficulty is returned for a difficulty outside the fixed set.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// ParseDifficulty matches s against the known difficulties, ignoring case
// and surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	for _, d := range Difficulties {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// Next returns the difficulty after d, wrapping around.
func (d Difficulty) Next() Difficulty {
	return d.offset(1)
}

// Prev returns the difficulty before d, wrapping around.
func (d Difficulty) Prev() Difficulty {
	return d.offset(-1)
}

func (d Difficulty) offset(n int) Difficulty {
	idx := 0
	for i, v := range Difficulties {
		if v == d {
			idx = i
			break
		}
	}
	l := len(Difficulties)
	return Difficulties[((idx+n)%l+l)%l]
}

// Field names accepted by FormInput.Set.
const (
	FieldSkills     = "skills"
	FieldDomain     = "domain"
	FieldDifficulty = "difficulty"
	FieldTimeWeeks  = "time_weeks"
)

// FormInput is the query sent to the backend. Every field is always present;
// the empty string means unset.
type FormInput struct {
	Skills     string     `json:"skills" yaml:"skills"`         // Comma-separated by convention, never parsed here
	Domain     string     `json:"domain" yaml:"domain"`         // Target domain or industry
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"` // One of Difficulties
	TimeWeeks  string     `json:"time_weeks" yaml:"time_weeks"` // Free text, not coerced to a number
}

// NewFormInput returns an empty form with the default difficulty selected.
func NewFormInput() FormInput {
	return FormInput{Difficulty: DefaultDifficulty}
}

// Set assigns value to the named field. Free-text fields accept any string;
// difficulty must parse with ParseDifficulty and is left unchanged otherwise.
func (f *FormInput) Set(name, value string) error {
	switch name {
	case FieldSkills:
		f.Skills = value
	case FieldDomain:
		f.Domain = value
	case FieldTimeWeeks:
		f.TimeWeeks = value
	case FieldDifficulty:
		d, err := ParseDifficulty(value)
		if err != nil {
			return err
		}
		f.Difficulty = d
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Get returns the value of the named field.
func (f FormInput) Get(name string) (string, error) {
	switch name {
	case FieldSkills:
		return f.Skills, nil
	case FieldDomain:
		return f.Domain, nil
	case FieldTimeWeeks:
		return f.TimeWeeks, nil
	case FieldDifficulty:
		return string(f.Difficulty), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Project is one recommended project returned by the backend.
type Project struct {
	Title                 string   `json:"title" yaml:"title"`
	ProblemStatement      string   `json:"problem_statement" yaml:"problem_statement"`
	TechStack             []string `json:"tech_stack" yaml:"tech_stack"`
	Architecture          string   `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	ImplementationRoadmap []string `json:"implementation_roadmap" yaml:"implementation_roadmap"` // Ordered steps
	Challenges            []string `json:"challenges" yaml:"challenges"`
	ResumeScore           float64  `json:"resume_score" yaml:"resume_score"`
	InnovationScore       float64  `json:"innovation_score" yaml:"innovation_score"`
}

// Response is the body returned by the generate endpoint.
type Response struct {
	Status          string    `json:"status" yaml:"status"`
	InputSummary    FormInput `json:"input_summary" yaml:"input_summary"`
	Recommendations []Project `json:"recommendations" yaml:"recommendations"`
}

// FormatScore renders a score without trailing zeros, e.g. 8 or 9.5.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
