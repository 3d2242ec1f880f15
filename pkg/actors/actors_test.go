package actors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/actors/pkg/actors"
	"github.com/mesh-intelligence/actors/pkg/types"
)

func TestPublicRepository(t *testing.T) {
	repo := actors.NewRepository()
	a, err := types.NewActor(0, "Tom Hanks", 1956, "USA")
	require.NoError(t, err)
	_, err = repo.Add(a)
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID())

	restored, err := actors.Restore(repo.Snapshot())
	require.NoError(t, err)
	got, ok := restored.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "Tom Hanks", got.Name())
}
