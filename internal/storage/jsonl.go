package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/actors/pkg/types"
)

// JSONL file names inside the data directory.
const (
	actorsFile   = "actors.jsonl"
	sequenceFile = "sequence.json"
)

// sequence is the content of sequence.json.
type sequence struct {
	NextID int `json:"next_id"`
}

// JSONLStore keeps one actor record per line in actors.jsonl and the id
// counter in sequence.json. Both files are written atomically.
type JSONLStore struct {
	dir string
}

var _ Store = (*JSONLStore)(nil)

// NewJSONLStore creates dataDir if needed and returns a store rooted there.
func NewJSONLStore(dataDir string) (*JSONLStore, error) {
	dir := dataDirOrDefault(dataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &JSONLStore{dir: dir}, nil
}

// Load reads both files. Missing files yield an empty snapshot; malformed
// lines in actors.jsonl are skipped.
func (s *JSONLStore) Load(ctx context.Context) (types.Snapshot, error) {
	snap := types.EmptySnapshot()

	lines, err := readJSONL(filepath.Join(s.dir, actorsFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return types.Snapshot{}, err
	}
	for _, line := range lines {
		var rec types.ActorRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		snap.Actors = append(snap.Actors, rec)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, sequenceFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return types.Snapshot{}, fmt.Errorf("reading %s: %w", sequenceFile, err)
	default:
		var seq sequence
		if err := json.Unmarshal(data, &seq); err != nil {
			return types.Snapshot{}, fmt.Errorf("decoding %s: %w", sequenceFile, err)
		}
		snap.NextID = seq.NextID
	}
	return normalize(snap), nil
}

// Save writes actors.jsonl first, then sequence.json.
func (s *JSONLStore) Save(ctx context.Context, snap types.Snapshot) error {
	records := make([]json.RawMessage, 0, len(snap.Actors))
	for _, rec := range snap.Actors {
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding actor %d: %w", rec.ID, err)
		}
		records = append(records, line)
	}
	if err := writeJSONL(filepath.Join(s.dir, actorsFile), records); err != nil {
		return fmt.Errorf("persisting %s: %w", actorsFile, err)
	}

	seq, err := json.Marshal(sequence{NextID: snap.NextID})
	if err != nil {
		return fmt.Errorf("encoding sequence: %w", err)
	}
	if err := writeJSONL(filepath.Join(s.dir, sequenceFile), []json.RawMessage{seq}); err != nil {
		return fmt.Errorf("persisting %s: %w", sequenceFile, err)
	}
	return nil
}

// Close is a no-op; files are closed after each operation.
func (s *JSONLStore) Close() error {
	return nil
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line as
// a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to path using the temp-file, fsync,
// rename pattern. A reader never sees a half-written file.
func writeJSONL(path string, records []json.RawMessage) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail(fmt.Errorf("writing record: %w", err))
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail(fmt.Errorf("writing newline: %w", err))
		}
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("flushing buffer: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
