// Package experiment implements deterministic A/B bucket assignment with
// per-variant exposure accounting.
package experiment

import (
	"crypto/md5"
	"fmt"
	"sync"
)

// VariantControl is the sentinel assignment for unknown or inactive
// experiments.
const VariantControl = "control"

// Variant IDs of the ranking experiment. The pipeline gates its scoring
// stages on these.
const (
	VariantEmbedding     = "embedding"
	VariantEmbeddingPlus = "embedding_plus"
	VariantHybrid        = "hybrid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Variant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

type Experiment struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Variants    []Variant `json:"variants"`
	Metrics     []string  `json:"metrics"`
}

type Assignment struct {
	ExperimentID   string `json:"experiment_id"`
	ExperimentName string `json:"experiment_name,omitempty"`
	Variant        string `json:"variant"`
	VariantName    string `json:"variant_name,omitempty"`
}

// Registry holds experiment configurations and exposure counters. Safe for
// concurrent use.
type Registry struct {
	mu          sync.RWMutex
	experiments map[string]Experiment
	exposures   map[string]map[string]int64
}

func NewRegistry() *Registry {
	return &Registry{
		experiments: make(map[string]Experiment),
		exposures:   make(map[string]map[string]int64),
	}
}

func (r *Registry) Register(exp Experiment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.experiments[exp.ID] = exp
	if _, ok := r.exposures[exp.ID]; !ok {
		r.exposures[exp.ID] = make(map[string]int64)
	}
}

func (r *Registry) Get(experimentID string) (Experiment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exp, ok := r.experiments[experimentID]
	return exp, ok
}

func (r *Registry) All() []Experiment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Experiment, 0, len(r.experiments))
	for _, exp := range r.experiments {
		out = append(out, exp)
	}
	return out
}

// Bucket maps a user deterministically into [0, 100). The full 128-bit MD5
// of "{experimentID}:{userID}" is reduced mod 100, so assignments are stable
// across processes and languages that hash the same way.
func Bucket(experimentID, userID string) int {
	sum := md5.Sum([]byte(fmt.Sprintf("%s:%s", experimentID, userID)))
	mod := 0
	for _, b := range sum {
		mod = (mod*256 + int(b)) % 100
	}
	return mod
}

// AssignVariant walks the cumulative variant weights for the user's bucket.
// Unknown or inactive experiments assign control. If the weights sum to less
// than 100, buckets past the last bound fall through to the final variant.
func (r *Registry) AssignVariant(experimentID, userID string) Assignment {
	r.mu.RLock()
	exp, ok := r.experiments[experimentID]
	r.mu.RUnlock()

	if !ok || exp.Status != StatusActive || len(exp.Variants) == 0 {
		return Assignment{ExperimentID: experimentID, Variant: VariantControl}
	}

	bucket := Bucket(experimentID, userID)
	cumulative := 0
	for _, v := range exp.Variants {
		cumulative += v.Weight
		if bucket < cumulative {
			return Assignment{
				ExperimentID:   experimentID,
				ExperimentName: exp.Name,
				Variant:        v.ID,
				VariantName:    v.Name,
			}
		}
	}

	last := exp.Variants[len(exp.Variants)-1]
	return Assignment{
		ExperimentID:   experimentID,
		ExperimentName: exp.Name,
		Variant:        last.ID,
		VariantName:    last.Name,
	}
}

func (r *Registry) RecordExposure(experimentID, variant string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exposures[experimentID]; !ok {
		r.exposures[experimentID] = make(map[string]int64)
	}
	r.exposures[experimentID][variant]++
}

type VariantStats struct {
	Variant   string  `json:"variant"`
	Exposures int64   `json:"exposures"`
	Share     float64 `json:"share"`
}

type Stats struct {
	ExperimentID string         `json:"experiment_id"`
	Total        int64          `json:"total"`
	Variants     []VariantStats `json:"variants"`
}

func (r *Registry) Stats(experimentID string) Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{ExperimentID: experimentID}
	counts := r.exposures[experimentID]
	for _, c := range counts {
		stats.Total += c
	}

	// Report variants in configured order so stats are stable.
	if exp, ok := r.experiments[experimentID]; ok {
		for _, v := range exp.Variants {
			vs := VariantStats{Variant: v.ID, Exposures: counts[v.ID]}
			if stats.Total > 0 {
				vs.Share = float64(vs.Exposures) / float64(stats.Total)
			}
			stats.Variants = append(stats.Variants, vs)
		}
	}
	if c, ok := counts[VariantControl]; ok {
		vs := VariantStats{Variant: VariantControl, Exposures: c}
		if stats.Total > 0 {
			vs.Share = float64(c) / float64(stats.Total)
		}
		stats.Variants = append(stats.Variants, vs)
	}
	return stats
}

// DefaultExperiments seeds the registry with the ranking experiment the
// recommendation pipeline branches on.
func DefaultExperiments() []Experiment {
	return []Experiment{
		{
			ID:          "ranking_algorithm_v2",
			Name:        "Ranking Algorithm V2",
			Description: "Compare pure embedding ranking against behavior-weighted and fully hybrid ranking",
			Status:      StatusActive,
			Variants: []Variant{
				{ID: VariantEmbedding, Name: "Embedding Only", Weight: 40},
				{ID: VariantEmbeddingPlus, Name: "Embedding + Behavior", Weight: 30},
				{ID: VariantHybrid, Name: "Hybrid Full Stack", Weight: 30},
			},
			Metrics: []string{"ctr", "order_rate", "avg_order_value"},
		},
		{
			ID:          "reason_style",
			Name:        "Recommendation Reason Style",
			Description: "Concise versus detailed recommendation explanations",
			Status:      StatusActive,
			Variants: []Variant{
				{ID: "concise", Name: "Concise", Weight: 70},
				{ID: "detailed", Name: "Detailed", Weight: 30},
			},
			Metrics: []string{"ctr"},
		},
	}
}
