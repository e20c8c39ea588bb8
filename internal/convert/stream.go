package convert

import (
	"bufio"
	"io"
	"strings"

	"github.com/danielmiessler/tw2s/internal/log"
)

// Framing controls what happens to line terminators.
type Framing int

const (
	// FramePreserve hands each line to the Converter with its terminator and
	// writes the result verbatim, so output framing matches the input byte
	// for byte.
	FramePreserve Framing = iota
	// FrameNormalize drops a trailing \n or \r\n, converts the rest and
	// terminates every output line with StreamOptions.LineEnding.
	FrameNormalize
)

// DefaultLineEnding terminates lines written in FrameNormalize mode.
const DefaultLineEnding = "\n"

// StreamOptions configures Stream.
type StreamOptions struct {
	Framing    Framing
	LineEnding string

	// Cleanup runs once, before the error is returned, when a read, write
	// or flush fails. Its own failures are not reported.
	Cleanup func()

	// Source and Sink name the two ends in error messages; empty means a
	// standard stream.
	Source string
	Sink   string
}

// Stats counts what Stream wrote.
type Stats struct {
	Lines int64
	Bytes int64
}

// Stream converts src into dst one line at a time until src is exhausted.
// The first I/O error stops it: Cleanup is run and an *Error of
// KindIoFailure wrapping the cause is returned.
func Stream(src io.Reader, dst io.Writer, conv Converter, opts StreamOptions) (Stats, error) {
	var stats Stats
	lineEnding := opts.LineEnding
	if lineEnding == "" {
		lineEnding = DefaultLineEnding
	}

	fail := func(path string, cause error) (Stats, error) {
		if opts.Cleanup != nil {
			opts.Cleanup()
		}
		log.Debug(log.Basic, "stream aborted after %d lines: %v", stats.Lines, cause)
		return stats, NewError(KindIoFailure, path, cause)
	}

	r := bufio.NewReader(src)
	w := bufio.NewWriter(dst)
	var buf []byte
	for {
		var readErr error
		buf, readErr = readLine(r, buf[:0])
		if readErr != nil && readErr != io.EOF {
			return fail(opts.Source, readErr)
		}
		if len(buf) == 0 {
			break
		}

		line := string(buf)
		var out string
		if opts.Framing == FrameNormalize {
			if strings.HasSuffix(line, "\n") {
				line = strings.TrimSuffix(line[:len(line)-1], "\r")
			}
			out = conv.Convert(line) + lineEnding
		} else {
			out = conv.Convert(line)
		}
		log.Debug(log.Wire, "line %d: %q -> %q", stats.Lines+1, line, out)

		if _, err := w.WriteString(out); err != nil {
			return fail(opts.Sink, err)
		}
		if opts.Framing == FrameNormalize {
			if err := w.Flush(); err != nil {
				return fail(opts.Sink, err)
			}
		}
		stats.Lines++
		stats.Bytes += int64(len(out))

		if readErr == io.EOF {
			break
		}
	}

	if err := w.Flush(); err != nil {
		return fail(opts.Sink, err)
	}
	return stats, nil
}

// readLine appends the next line of r, terminator included, to buf.
func readLine(r *bufio.Reader, buf []byte) ([]byte, error) {
	for {
		chunk, err := r.ReadSlice('\n')
		buf = append(buf, chunk...)
		if err != bufio.ErrBufferFull {
			return buf, err
		}
	}
}
