package fixture

import (
	_ "embed"
	"fmt"
	"strings"

	"agmtrack/internal/store"
)

// seedJSON is the built-in AGM 2026 plan, used when no fixture file is
// configured.
//
//go:embed seed.json
var seedJSON []byte

// Load reads, validates, and converts a fixture file into a store snapshot.
func Load(path string) (store.Snapshot, error) {
	f, err := Read(path)
	if err != nil {
		return store.Snapshot{}, err
	}
	if errs := Validate(f); len(errs) > 0 {
		return store.Snapshot{}, fmt.Errorf("invalid fixture %s:\n%s", path, joinErrors(errs))
	}
	return Convert(f), nil
}

// Default returns the embedded seed dataset.
// The embedded fixture is covered by tests, so a parse failure here is a
// build defect; it panics rather than returning an error every caller would
// have to ignore.
func Default() store.Snapshot {
	f, err := Parse(seedJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded seed fixture is invalid: %v", err))
	}
	return Convert(f)
}

// SeedJSON returns a copy of the raw embedded seed document.
func SeedJSON() []byte {
	out := make([]byte, len(seedJSON))
	copy(out, seedJSON)
	return out
}

func joinErrors(errs []error) string {
	var b strings.Builder
	for _, err := range errs {
		b.WriteString("  - ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	return b.String()
}
