package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/actors/pkg/types"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	repo := NewRepository()
	for _, n := range []string{"Tom Hanks", "Meryl Streep", "Idris Elba"} {
		a, err := types.NewActor(0, n, 1960, "")
		require.NoError(t, err)
		_, err = repo.Add(a)
		require.NoError(t, err)
	}
	repo.Delete(3)

	snap := repo.Snapshot()
	assert.Equal(t, 4, snap.NextID)
	require.Len(t, snap.Actors, 2)

	restored, err := Restore(snap)
	require.NoError(t, err)
	assert.Equal(t, snap, restored.Snapshot())

	a, err := types.NewActor(0, "Cate Blanchett", 1969, "Australia")
	require.NoError(t, err)
	added, err := restored.Add(a)
	require.NoError(t, err)
	assert.Equal(t, 4, added.ID(), "restored counter resumes after retired ids")
}

func TestRestore(t *testing.T) {
	t.Run("empty snapshot", func(t *testing.T) {
		r, err := Restore(types.EmptySnapshot())
		require.NoError(t, err)
		assert.Equal(t, 0, r.Len())
		assert.Equal(t, 1, r.Snapshot().NextID)
	})

	t.Run("zero next id is raised to one", func(t *testing.T) {
		r, err := Restore(types.Snapshot{})
		require.NoError(t, err)
		assert.Equal(t, 1, r.Snapshot().NextID)
	})

	t.Run("next id below highest record is raised", func(t *testing.T) {
		r, err := Restore(types.Snapshot{
			NextID: 2,
			Actors: []types.ActorRecord{{ID: 9, Name: "John Doe", BirthYear: 1990}},
		})
		require.NoError(t, err)
		assert.Equal(t, 10, r.Snapshot().NextID)
	})

	t.Run("invalid record is rejected", func(t *testing.T) {
		_, err := Restore(types.Snapshot{
			NextID: 2,
			Actors: []types.ActorRecord{{ID: 1, Name: "Al", BirthYear: 1990}},
		})
		assert.ErrorIs(t, err, types.ErrNameTooShort)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		_, err := Restore(types.Snapshot{
			NextID: 3,
			Actors: []types.ActorRecord{
				{ID: 1, Name: "John Doe", BirthYear: 1990},
				{ID: 1, Name: "Jane Doe", BirthYear: 1991},
			},
		})
		assert.ErrorIs(t, err, types.ErrInvalidArgument)
	})
}
