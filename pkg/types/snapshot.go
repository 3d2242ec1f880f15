package types

// Snapshot is the serializable state of a repository: its records in
// insertion order and the next id it will assign.
type Snapshot struct {
	NextID int           `json:"next_id" yaml:"next_id"`
	Actors []ActorRecord `json:"actors" yaml:"actors"`
}

// EmptySnapshot is the state of a repository that has never assigned an id.
func EmptySnapshot() Snapshot {
	return Snapshot{NextID: 1, Actors: []ActorRecord{}}
}
