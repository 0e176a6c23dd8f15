// Package file provides file-based implementations of driven port interfaces.
// These adapters read and persist data on the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - CatalogFile: TOML shop catalog, or the bundled default catalog
package file
