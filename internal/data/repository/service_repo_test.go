package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServiceRepositoryFindByCategory_IterationErrorSurfaces(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{remaining: 1, err: errors.New("unexpected EOF")}}
	repo := NewServiceRepository(db, zap.NewNop())

	services, err := repo.FindByCategoryID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterate service rows")
	assert.Nil(t, services)
}
