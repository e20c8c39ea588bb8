package convert

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/danielmiessler/tw2s/internal/log"
)

// Runner executes Requests against one Converter.
type Runner struct {
	Converter  Converter
	Stdin      io.Reader
	Stdout     io.Writer
	LineEnding string

	// openOutput is replaced in tests to inject write failures.
	openOutput func(path string, force bool) (io.WriteCloser, error)
}

// NewRunner returns a Runner bound to the process's standard streams.
func NewRunner(conv Converter) *Runner {
	return &Runner{
		Converter:  conv,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		LineEnding: DefaultLineEnding,
	}
}

// Run performs req in the Mode it selects.
func (r *Runner) Run(req Request) error {
	if req.Mode() == ModeStream {
		return r.runStream()
	}
	return r.runFile(req)
}

func (r *Runner) runStream() error {
	stats, err := Stream(r.Stdin, r.Stdout, r.Converter, StreamOptions{
		Framing:    FrameNormalize,
		LineEnding: r.LineEnding,
	})
	if err != nil {
		return err
	}
	log.Debug(log.Detailed, "converted %d lines from standard input", stats.Lines)
	return nil
}

func (r *Runner) runFile(req Request) error {
	paths, err := Resolve(req, r.Converter)
	if err != nil {
		return err
	}
	if err = CheckOverwrite(paths.Output, req.Force); err != nil {
		return err
	}
	log.Debug(log.Basic, "converting %s -> %s (derived: %t)", paths.Input, paths.Output, paths.Derived)
	logInputType(paths.Input)

	in, err := os.Open(paths.Input)
	if err != nil {
		return NewError(KindInputOpenFailed, paths.Input, err)
	}
	defer in.Close()

	open := r.openOutput
	if open == nil {
		open = createOutput
	}
	out, err := open(paths.Output, req.Force)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return NewError(KindOutputAlreadyExists, paths.Output, nil)
		}
		return NewError(KindOutputCreateFailed, paths.Output, err)
	}

	closed := false
	discard := func() {
		if !closed {
			out.Close()
			closed = true
		}
		if rmErr := os.Remove(paths.Output); rmErr != nil {
			log.Debug(log.Basic, "could not remove %s: %v", paths.Output, rmErr)
		}
	}

	stats, err := Stream(in, out, r.Converter, StreamOptions{
		Framing: FramePreserve,
		Cleanup: discard,
		Source:  paths.Input,
		Sink:    paths.Output,
	})
	if err != nil {
		return err
	}

	closed = true
	if err = out.Close(); err != nil {
		discard()
		return NewError(KindIoFailure, paths.Output, err)
	}
	log.Debug(log.Detailed, "wrote %d lines (%d bytes) to %s", stats.Lines, stats.Bytes, paths.Output)
	return nil
}

// createOutput opens path for writing. Without force the file must not
// exist yet, closing the window between CheckOverwrite and the open.
func createOutput(path string, force bool) (io.WriteCloser, error) {
	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flag |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func logInputType(path string) {
	if log.GetLevel() < log.Detailed {
		return
	}
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		log.Debug(log.Detailed, "could not detect type of %s: %v", path, err)
		return
	}
	log.Debug(log.Detailed, "input %s detected as %s", path, mime.String())
}
