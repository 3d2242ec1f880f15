// Package memory implements the in-memory actor repository: an ordered
// collection that assigns ids on insert and answers filtered, sorted queries.
//
// A Repository is not safe for concurrent use. Callers that share one
// across goroutines must guard every call with their own mutex.
package memory

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/actors/pkg/types"
)

// Repository holds actors in insertion order. Ids come from a counter that
// only moves forward, so an id is never handed out twice by one instance.
type Repository struct {
	actors []*types.Actor
	nextID int
	log    zerolog.Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger used for mutation events.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Repository) {
		r.log = l
	}
}

// NewRepository returns an empty repository whose first Add assigns id 1.
func NewRepository(opts ...Option) *Repository {
	r := &Repository{
		nextID: 1,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of actors held.
func (r *Repository) Len() int {
	return len(r.actors)
}

// Add assigns the next id to actor, appends it and returns the same pointer.
// Any id the caller set beforehand is overwritten.
// Returns ErrInvalidArgument if actor is nil, or the actor's validation
// error if it was not built through NewActor.
func (r *Repository) Add(actor *types.Actor) (*types.Actor, error) {
	if actor == nil {
		return nil, fmt.Errorf("%w: actor cannot be nil", types.ErrInvalidArgument)
	}
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := actor.SetID(r.nextID); err != nil {
		return nil, err
	}
	r.nextID++
	r.actors = append(r.actors, actor)

	r.log.Debug().Int("id", actor.ID()).Str("name", actor.Name()).Msg("actor added")
	return actor, nil
}

// GetAll returns every actor in insertion order. The slice is a copy; the
// actors are shared with the repository.
func (r *Repository) GetAll() []*types.Actor {
	return slices.Clone(r.actors)
}

// GetByID returns the actor with the given id. The bool is false when no
// actor matches.
func (r *Repository) GetByID(id int) (*types.Actor, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return r.actors[i], true
}

// Delete removes the actor with the given id and returns it. The bool is
// false, and nothing changes, when no actor matches. The id stays retired.
func (r *Repository) Delete(id int) (*types.Actor, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, false
	}
	actor := r.actors[i]
	r.actors = slices.Delete(r.actors, i, i+1)

	r.log.Debug().Int("id", id).Msg("actor deleted")
	return actor, true
}

// Update copies name, birth year and country from data onto the actor with
// the given id and returns that actor. The id is never changed. data is
// validated in full before anything is written, so a failed update leaves
// the stored actor untouched.
// Returns ErrInvalidArgument if data is nil. A missing id is reported by
// the bool, not by an error.
func (r *Repository) Update(id int, data *types.Actor) (*types.Actor, bool, error) {
	if data == nil {
		return nil, false, fmt.Errorf("%w: actor data cannot be nil", types.ErrInvalidArgument)
	}
	existing, ok := r.GetByID(id)
	if !ok {
		return nil, false, nil
	}
	if err := data.Validate(); err != nil {
		return nil, false, err
	}
	// data is valid, so none of these setters can fail.
	if err := existing.SetName(data.Name()); err != nil {
		return nil, false, err
	}
	if err := existing.SetBirthYear(data.BirthYear()); err != nil {
		return nil, false, err
	}
	existing.SetCountry(data.Country())

	r.log.Debug().Int("id", id).Str("name", existing.Name()).Msg("actor updated")
	return existing, true, nil
}

// FilterByBirthYear returns the actors born strictly before `before` and
// strictly after `after`, ordered by id. Nil bounds are ignored.
func (r *Repository) FilterByBirthYear(before, after *int) []*types.Actor {
	return r.Query(types.Query{BirthYearBefore: before, BirthYearAfter: after})
}

// GetByName returns the actors whose name contains the trimmed needle,
// ignoring case. A blank needle returns every actor.
func (r *Repository) GetByName(needle string) []*types.Actor {
	return r.Query(types.Query{NameContains: needle})
}

// Query returns the actors matching every filter in q, sorted by q.SortBy.
// The sort is stable: actors that compare equal keep insertion order.
// Bounds that exclude everything yield an empty slice, not an error.
func (r *Repository) Query(q types.Query) []*types.Actor {
	needle := strings.ToLower(strings.TrimSpace(q.NameContains))

	result := make([]*types.Actor, 0, len(r.actors))
	for _, a := range r.actors {
		if q.BirthYearBefore != nil && a.BirthYear() >= *q.BirthYearBefore {
			continue
		}
		if q.BirthYearAfter != nil && a.BirthYear() <= *q.BirthYearAfter {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(a.Name()), needle) {
			continue
		}
		result = append(result, a)
	}

	compare := comparator(q.SortBy)
	if q.Descending {
		asc := compare
		compare = func(a, b *types.Actor) int { return asc(b, a) }
	}
	slices.SortStableFunc(result, compare)
	return result
}

// comparator returns the ascending ordering for key. Unknown keys order by id.
func comparator(key types.SortKey) func(a, b *types.Actor) int {
	switch key {
	case types.SortByName:
		return func(a, b *types.Actor) int { return strings.Compare(a.Name(), b.Name()) }
	case types.SortByBirthYear:
		return func(a, b *types.Actor) int { return cmp.Compare(a.BirthYear(), b.BirthYear()) }
	default:
		return func(a, b *types.Actor) int { return cmp.Compare(a.ID(), b.ID()) }
	}
}

func (r *Repository) indexOf(id int) int {
	return slices.IndexFunc(r.actors, func(a *types.Actor) bool { return a.ID() == id })
}
