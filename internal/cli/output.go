package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mesh-intelligence/actors/pkg/types"
)

// printActor writes a single actor as its text form or, in JSON mode, as
// an indented ActorRecord.
func printActor(w io.Writer, jsonMode bool, a *types.Actor) error {
	if jsonMode {
		return printJSON(w, a.Record())
	}
	_, err := fmt.Fprintln(w, a.String())
	return err
}

// printActors writes one actor per line, or a JSON array.
func printActors(w io.Writer, jsonMode bool, actors []*types.Actor) error {
	if jsonMode {
		records := make([]types.ActorRecord, 0, len(actors))
		for _, a := range actors {
			records = append(records, a.Record())
		}
		return printJSON(w, records)
	}
	for _, a := range actors {
		if _, err := fmt.Fprintln(w, a.String()); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// parseID parses a positional id argument.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, userError(fmt.Errorf("invalid id %q: must be an integer", s))
	}
	return id, nil
}

// parseBirthYear parses a positional birth year argument.
func parseBirthYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, userError(fmt.Errorf("invalid birth year %q: must be an integer", s))
	}
	return year, nil
}
