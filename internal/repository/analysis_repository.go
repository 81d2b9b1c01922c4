package repository

import (
	"errors"
	"sync"

	"interview-forecaster/internal/model"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisRepository holds results in memory only. Analyses are
// session-scoped by design: nothing survives a restart and saving under
// an existing id overwrites the previous entry.
type AnalysisRepository struct {
	mu       sync.RWMutex
	analyses map[string]*model.Analysis
}

func NewAnalysisRepository() *AnalysisRepository {
	return &AnalysisRepository{analyses: make(map[string]*model.Analysis)}
}

func (r *AnalysisRepository) Save(a *model.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses[a.ID.String()] = a
	return nil
}

func (r *AnalysisRepository) FindByID(id string) (*model.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.analyses[id]
	if !ok {
		return nil, ErrAnalysisNotFound
	}
	return a, nil
}

func (r *AnalysisRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.analyses, id)
}
