// Package parser applies version accessors to files on disk. Reader loads a
// file and extracts its version; Writer loads, rewrites and persists it.
// The accessor for a file is chosen by a Resolver from the file's kind.
package parser
