// Package manifest reads and writes package.version in a TOML package
// manifest such as Cargo.toml.
//
// Two write strategies are provided. Editor rewrites the document itself and
// is the default. Delegate hands the update to an external tool (for example
// "cargo set-version") and leaves the document untouched; the tool's outcome
// is reported through Task and Delegate.Wait rather than the return value.
package manifest
