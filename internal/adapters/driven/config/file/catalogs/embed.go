// Package catalogs embeds the bundled shop catalog.
package catalogs

import _ "embed"

// Default is the TOML catalog used when no catalog file is configured.
//
//go:embed default.toml
var Default []byte
