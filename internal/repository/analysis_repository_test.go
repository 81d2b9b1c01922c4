package repository

import (
	"testing"
	"time"

	"interview-forecaster/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndFind(t *testing.T) {
	repo := NewAnalysisRepository()
	a := &model.Analysis{
		ID:        uuid.New(),
		Model:     "gpt-4o-mini",
		Requested: 3,
		Result:    &model.AnalysisResult{Summary: "S"},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Save(a))

	found, err := repo.FindByID(a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, a, found)
}

func TestFindUnknownID(t *testing.T) {
	repo := NewAnalysisRepository()
	_, err := repo.FindByID(uuid.NewString())
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}

func TestSaveOverwrites(t *testing.T) {
	repo := NewAnalysisRepository()
	id := uuid.New()
	require.NoError(t, repo.Save(&model.Analysis{ID: id, Result: &model.AnalysisResult{Summary: "old"}}))
	require.NoError(t, repo.Save(&model.Analysis{ID: id, Result: &model.AnalysisResult{Summary: "new"}}))

	found, err := repo.FindByID(id.String())
	require.NoError(t, err)
	assert.Equal(t, "new", found.Result.Summary)
}

func TestDelete(t *testing.T) {
	repo := NewAnalysisRepository()
	id := uuid.New()
	require.NoError(t, repo.Save(&model.Analysis{ID: id}))

	repo.Delete(id.String())
	_, err := repo.FindByID(id.String())
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}
