package memory

import (
	"fmt"

	"github.com/mesh-intelligence/actors/pkg/types"
)

// Snapshot returns the repository's records in insertion order together
// with the next id it would assign.
func (r *Repository) Snapshot() types.Snapshot {
	records := make([]types.ActorRecord, 0, len(r.actors))
	for _, a := range r.actors {
		records = append(records, a.Record())
	}
	return types.Snapshot{NextID: r.nextID, Actors: records}
}

// Restore rebuilds a repository from a snapshot. Records keep their ids and
// order. The counter resumes at the larger of snap.NextID and one past the
// highest restored id, so ids retired before the snapshot stay retired.
// Returns the record's validation error for an invalid record and
// ErrInvalidArgument for duplicate ids.
func Restore(snap types.Snapshot, opts ...Option) (*Repository, error) {
	r := NewRepository(opts...)
	seen := make(map[int]bool, len(snap.Actors))
	for i, rec := range snap.Actors {
		a, err := types.ActorFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("restoring record %d: %w", i, err)
		}
		if seen[a.ID()] {
			return nil, fmt.Errorf("%w: duplicate actor id %d", types.ErrInvalidArgument, a.ID())
		}
		seen[a.ID()] = true
		r.actors = append(r.actors, a)
		r.nextID = max(r.nextID, a.ID()+1)
	}
	r.nextID = max(r.nextID, snap.NextID)

	r.log.Debug().Int("actors", len(r.actors)).Int("next_id", r.nextID).Msg("repository restored")
	return r, nil
}
