// Package palettegen provides embedded assets for the palettegen CLI.
//
// The root package exists solely to embed [config.default.toml] via
// [DefaultConfigTOML]. The -init flag copies this file into the working
// directory as a documented starting point.
package palettegen

import _ "embed"

// DefaultConfigTOML holds the raw bytes of config.default.toml, embedded at
// build time. Regenerate with go generate ./internal/config after changing
// the schema or field docs.
//
//go:embed config.default.toml
var DefaultConfigTOML []byte
