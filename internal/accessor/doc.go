// Package accessor defines the contract shared by every version accessor.
//
// An accessor knows where a version lives inside one file format and offers
// two operations over in-memory contents: ReadVersion extracts it and
// WriteVersion returns new contents carrying a different version. Accessors
// never touch the file system themselves; see package parser for that.
//
// Implementations live in the subpackages action (YAML action descriptors),
// manifest (TOML package manifests) and pkgjson (JSON package manifests).
package accessor
