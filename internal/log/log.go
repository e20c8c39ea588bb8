package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the verbosity selected with --debug.
type Level int

const (
	Off Level = iota
	Basic
	Detailed
	Trace
	Wire
)

var mu sync.RWMutex

var level = Off

var output io.Writer = os.Stderr

// LevelFromInt maps a --debug value to a Level, clamping out-of-range values.
func LevelFromInt(i int) Level {
	switch {
	case i <= 0:
		return Off
	case i >= int(Wire):
		return Wire
	default:
		return Level(i)
	}
}

func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Basic:
		return "basic"
	case Detailed:
		return "detailed"
	case Trace:
		return "trace"
	case Wire:
		return "wire"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// SetLevel sets the global debug level.
func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

// GetLevel returns the global debug level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetOutput redirects debug output. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	mu.Lock()
	output = w
	mu.Unlock()
}

// Debug writes a line when the current level is at least l.
func Debug(l Level, format string, a ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if l == Off || level < l {
		return
	}
	fmt.Fprintf(output, "DEBUG: "+format+"\n", a...)
}

// Log writes a line regardless of level.
func Log(format string, a ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, format+"\n", a...)
}
