package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// fileEntry is one validated "name = value" / "name value" line from a
// parameter file, carrying its already-typed value and source line for
// diagnostics.
type fileEntry struct {
	Key   string
	Value any
	Line  int
}

// parseParamFile reads name/value pairs, one per line, skipping blank
// lines and lines starting with '#'. Either "name = value" or
// "name value" is accepted, matching spec.md §6. Every entry is
// validated against paramSpecs immediately so a bad file fails with a
// single diagnostic naming its line, rather than surfacing later as an
// inscrutable type-cast error.
func parseParamFile(r io.Reader) ([]fileEntry, error) {
	var entries []fileEntry
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var key, raw string
		if idx := strings.Index(text, "="); idx >= 0 {
			key = strings.TrimSpace(text[:idx])
			raw = strings.TrimSpace(text[idx+1:])
		} else if fields := strings.SplitN(text, " ", 2); len(fields) == 2 {
			key = fields[0]
			raw = strings.TrimSpace(fields[1])
		}
		if key == "" || raw == "" {
			return nil, fmt.Errorf("%w: line %d: expected \"name = value\" or \"name value\"", ErrInvalidParameter, lineNum)
		}

		value, err := validate(key, raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		entries = append(entries, fileEntry{Key: key, Value: value, Line: lineNum})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: reading parameter file: %w", err)
	}
	return entries, nil
}
