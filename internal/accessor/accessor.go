package accessor

// Accessor reads and writes the version embedded in a document.
type Accessor interface {
	// ReadVersion returns the version stored in contents.
	ReadVersion(contents []byte) (string, error)

	// WriteVersion returns contents with the version replaced by version.
	WriteVersion(contents []byte, version string) ([]byte, error)
}

// Deferred is implemented by accessors whose writes happen out of band.
// WriteVersion on a Deferred accessor returns the input unchanged; the real
// update is applied to the file by someone else and Wait reports its outcome.
type Deferred interface {
	Accessor

	// Wait blocks until every write started so far has finished and
	// returns their combined error.
	Wait() error
}
