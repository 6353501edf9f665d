// Package migrate upgrades palettegen.toml files written by older releases
// to the current schema. Each step rewrites the serialized bytes from one
// schema version to the next; the config loader backs the file up, runs the
// chain, and re-saves.
package migrate

import (
	"fmt"
	"log/slog"
	"sort"
)

// ConfigVersion is the schema version this release reads and writes.
const ConfigVersion = 1

// ///////////////////////////////////////////////
// Types
// ///////////////////////////////////////////////

// Step rewrites a serialized config from the previous schema version to To.
type Step struct {
	// To is the schema version the step produces.
	To int
	// Note is a short label for log output.
	Note string
	// Apply transforms the raw TOML bytes.
	Apply func(data []byte) ([]byte, error)
}

// ConfigSteps is the upgrade chain for palettegen.toml, normally populated
// through [Register]. Empty at schema v1; exported so tests can substitute
// a chain.
var ConfigSteps []Step

// ///////////////////////////////////////////////
// Public API
// ///////////////////////////////////////////////

// Register appends a step to the chain. It panics if a step producing the
// same version is already registered, so conflicting upgrades fail at init
// rather than corrupting a user's file.
func Register(s Step) {
	for _, existing := range ConfigSteps {
		if existing.To == s.To {
			panic(fmt.Sprintf("migrate: duplicate step to v%d (%q)", s.To, s.Note))
		}
	}
	ConfigSteps = append(ConfigSteps, s)
}

// Needed reports whether a file at fileVersion must be upgraded before use.
func Needed(fileVersion int) bool {
	return fileVersion != ConfigVersion
}

// Upgrade applies every step with To greater than fileVersion, in ascending
// order, and returns the rewritten bytes along with the version reached.
// The input comes back untouched when no step applies.
func Upgrade(data []byte, fileVersion int, steps []Step) ([]byte, int, error) {
	chain := make([]Step, len(steps))
	copy(chain, steps)
	sort.Slice(chain, func(i, j int) bool { return chain[i].To < chain[j].To })

	version := fileVersion
	for _, s := range chain {
		if version >= s.To {
			continue
		}
		slog.Info("upgrading config schema", "to", s.To, "note", s.Note)
		var err error
		data, err = s.Apply(data)
		if err != nil {
			return nil, version, fmt.Errorf("upgrade config schema to v%d: %w", s.To, err)
		}
		version = s.To
	}
	return data, version, nil
}
