// Package actors provides the public API for the in-memory actor repository.
// This package exposes the constructors while keeping the implementation
// internal.
//
// Example:
//
//	repo := actors.NewRepository()
//	a, err := types.NewActor(0, "Tom Hanks", 1956, "USA")
//	if err != nil {
//	    return err
//	}
//	repo.Add(a) // a.ID() == 1
//	born := repo.Query(types.Query{BirthYearBefore: types.Year(1970), SortBy: types.SortByName})
package actors

import (
	"github.com/mesh-intelligence/actors/internal/memory"
	"github.com/mesh-intelligence/actors/pkg/types"
)

// Version is the module release reported by the CLI.
const Version = "0.1.0"

// Repository is the in-memory actor repository.
type Repository = memory.Repository

// Option configures a Repository.
type Option = memory.Option

// WithLogger sets the logger used for mutation events.
var WithLogger = memory.WithLogger

// NewRepository returns an empty repository whose first Add assigns id 1.
func NewRepository(opts ...Option) *Repository {
	return memory.NewRepository(opts...)
}

// Restore rebuilds a repository from a snapshot taken with Snapshot.
func Restore(snap types.Snapshot, opts ...Option) (*Repository, error) {
	return memory.Restore(snap, opts...)
}
