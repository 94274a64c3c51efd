package tui

import (
	"github.com/f3rmion/intelliproject/internal/project"
	"github.com/f3rmion/intelliproject/internal/recommend"
)

// RequestState is the status of the most recent generate request.
//
// Every Begin issues a new sequence number. Only the resolution carrying the
// latest number is applied; older in-flight requests are left to finish and
// their results dropped.
type RequestState struct {
	Loading bool
	Error   string
	Results []project.Project

	seq uint64
}

// Begin starts a new request: it sets Loading, clears Error and Results, and
// returns the request's sequence number.
func (s *RequestState) Begin() uint64 {
	s.seq++
	s.Loading = true
	s.Error = ""
	s.Results = nil
	return s.seq
}

// Resolve applies the outcome of request seq. It returns false, leaving the
// state untouched, when seq is not the latest issued request.
func (s *RequestState) Resolve(seq uint64, results []project.Project, err error) bool {
	if seq != s.seq {
		return false
	}

	s.Loading = false
	if err != nil {
		s.Error = recommend.FailureMessage
		s.Results = nil
		return true
	}

	s.Error = ""
	s.Results = results
	return true
}

// Seq returns the sequence number of the latest issued request.
func (s RequestState) Seq() uint64 {
	return s.seq
}
