package constant

import "errors"

// Failure classes for the ranking path. Collaborator outages must degrade
// the affected factor, never fail the whole request.
var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	ErrDataInconsistency       = errors.New("data inconsistency")
	ErrNotFound                = errors.New("not found")
)

// RankingExperimentID is the experiment every recommendation request is
// bucketed through.
const RankingExperimentID = "ranking_algorithm_v2"

// ExplanationExperimentID controls how verbose recommendation reasons are.
const ExplanationExperimentID = "reason_style"
