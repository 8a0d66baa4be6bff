package manifest

// Task tracks one run of a delegated version-setting tool.
type Task struct {
	// Version is the version passed to the tool.
	Version string

	done   chan struct{}
	output []byte
	err    error
}

func newTask(version string) *Task {
	return &Task{Version: version, done: make(chan struct{})}
}

func (t *Task) finish(output []byte, err error) {
	t.output = output
	t.err = err
	close(t.done)
}

// Done returns a channel that is closed when the tool exits.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the tool exits and returns its error, if any.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Output blocks until the tool exits and returns its combined output.
func (t *Task) Output() []byte {
	<-t.done
	return t.output
}
