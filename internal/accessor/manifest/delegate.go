package manifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/indaco/bumpfile/internal/accessor"
	"github.com/indaco/bumpfile/internal/core"
	"github.com/indaco/bumpfile/internal/printer"
)

// DefaultCommand is the tool used by Delegate when none is configured.
var DefaultCommand = []string{"cargo", "set-version"}

// Delegate implements accessor.Deferred by running an external tool that
// updates the manifest on disk. WriteVersion never modifies contents.
type Delegate struct {
	ctx     context.Context
	command []string
	dir     string
	timeout time.Duration
	reader  *Editor

	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
	logError    func(string)

	mu    sync.Mutex
	tasks []*Task
}

// Option configures a Delegate.
type Option func(*Delegate)

// WithCommand sets the tool and its leading arguments. The version is
// appended as the last argument.
func WithCommand(command ...string) Option {
	return func(d *Delegate) {
		if len(command) > 0 {
			d.command = append([]string(nil), command...)
		}
	}
}

// WithContext sets the parent context of every tool run. Cancelling it
// stops running tools.
func WithContext(ctx context.Context) Option {
	return func(d *Delegate) {
		if ctx != nil {
			d.ctx = ctx
		}
	}
}

// WithDir sets the working directory the tool runs in.
func WithDir(dir string) Option {
	return func(d *Delegate) {
		d.dir = dir
	}
}

// WithTimeout bounds each tool run. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Delegate) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithExecCommand replaces exec.CommandContext.
func WithExecCommand(fn func(ctx context.Context, name string, arg ...string) *exec.Cmd) Option {
	return func(d *Delegate) {
		d.execCommand = fn
	}
}

// WithErrorLogger replaces the function used to report tool failures.
func WithErrorLogger(fn func(string)) Option {
	return func(d *Delegate) {
		d.logError = fn
	}
}

// NewDelegate returns a manifest accessor that delegates writes.
func NewDelegate(opts ...Option) *Delegate {
	d := &Delegate{
		ctx:         context.Background(),
		command:     append([]string(nil), DefaultCommand...),
		timeout:     core.TimeoutTool,
		reader:      NewEditor(),
		execCommand: exec.CommandContext,
		logError:    printer.PrintError,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var _ accessor.Deferred = (*Delegate)(nil)

// ReadVersion returns package.version verbatim.
func (d *Delegate) ReadVersion(contents []byte) (string, error) {
	return d.reader.ReadVersion(contents)
}

// WriteVersion starts the tool with version and returns contents unchanged.
// A launch failure is returned together with the unchanged contents; the
// tool's exit status is reported by Wait.
func (d *Delegate) WriteVersion(contents []byte, version string) ([]byte, error) {
	if _, err := d.Start(version); err != nil {
		return contents, err
	}
	return contents, nil
}

// Start launches the tool without waiting for it.
func (d *Delegate) Start(version string) (*Task, error) {
	name, args := d.command[0], append(append([]string(nil), d.command[1:]...), version)

	ctx, cancel := context.WithTimeout(d.ctx, d.timeout)
	cmd := d.execCommand(ctx, name, args...)
	cmd.Dir = d.dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Start(); err != nil {
		cancel()
		msg := fmt.Sprintf("failed to start %s: %v", d.commandLine(version), err)
		d.logError(msg)
		return nil, fmt.Errorf("%w: %s", accessor.ErrExternalTool, msg)
	}

	task := newTask(version)
	d.mu.Lock()
	d.tasks = append(d.tasks, task)
	d.mu.Unlock()

	go func() {
		defer cancel()
		err := cmd.Wait()
		if err != nil {
			detail := strings.TrimSpace(output.String())
			switch {
			case errors.Is(ctx.Err(), context.DeadlineExceeded):
				detail = fmt.Sprintf("timeout after %v", d.timeout)
			case errors.Is(ctx.Err(), context.Canceled):
				detail = "cancelled"
			}
			msg := fmt.Sprintf("%s failed: %v", d.commandLine(version), err)
			if detail != "" {
				msg = fmt.Sprintf("%s: %s", msg, detail)
			}
			d.logError(msg)
			err = fmt.Errorf("%w: %s", accessor.ErrExternalTool, msg)
		}
		task.finish(output.Bytes(), err)
	}()

	return task, nil
}

// Wait blocks until every task started so far has finished and returns
// their joined errors.
func (d *Delegate) Wait() error {
	d.mu.Lock()
	tasks := d.tasks
	d.tasks = nil
	d.mu.Unlock()

	var errs []error
	for _, t := range tasks {
		if err := t.Wait(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *Delegate) commandLine(version string) string {
	return strings.Join(append(append([]string(nil), d.command...), version), " ")
}
