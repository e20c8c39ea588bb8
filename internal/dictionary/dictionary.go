// Package dictionary is the Traditional to Simplified Chinese conversion
// engine. The rune table is generated once from the gojianfan charsets,
// cached as a static artifact in a caller supplied directory and loaded from
// there by later runs.
package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/danielmiessler/tw2s/internal/log"
)

const (
	// ArtifactName is the file name of the cached dictionary.
	ArtifactName = "tw2s-t2s.json"

	checksumSuffix = ".sha256"
)

// Dictionary maps Traditional Chinese runes to their Simplified form.
// It is read-only after Initialize.
type Dictionary struct {
	table map[rune]rune
	path  string
}

// Initialize loads the dictionary artifact from dir, generating and caching
// it first when it is missing or fails verification. An empty dir means
// os.TempDir().
func Initialize(dir string) (*Dictionary, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create dictionary directory %s", dir)
	}

	path := filepath.Join(dir, ArtifactName)
	table, err := load(path)
	if err != nil {
		log.Debug(log.Basic, "generating dictionary %s (%v)", path, err)
		table = Generate()
		if err = store(path, table); err != nil {
			return nil, err
		}
	} else {
		log.Debug(log.Detailed, "loaded dictionary %s with %d entries", path, len(table))
	}

	d := &Dictionary{table: table, path: path}
	if err = d.selfCheck(); err != nil {
		return nil, err
	}
	return d, nil
}

// Convert maps every rune of text through the table. Runes without an entry,
// including line terminators and invalid UTF-8 bytes, are copied unchanged.
func (d *Dictionary) Convert(text string) string {
	first := -1
	for i, r := range text {
		if _, ok := d.table[r]; ok {
			first = i
			break
		}
	}
	if first < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	b.WriteString(text[:first])
	for i := first; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if s, ok := d.table[r]; ok {
			b.WriteRune(s)
		} else {
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}

// Len returns the number of mapped runes.
func (d *Dictionary) Len() int {
	return len(d.table)
}

// Path returns the location of the cached artifact.
func (d *Dictionary) Path() string {
	return d.path
}

func (d *Dictionary) selfCheck() error {
	const probe, want = "測試", "测试"
	if got := d.Convert(probe); got != want {
		return errors.Errorf("dictionary %s failed self check: %q converted to %q, want %q", d.path, probe, got, want)
	}
	return nil
}
