package dictionary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/siongui/gojianfan"
)

const formatVersion = 1

type artifact struct {
	Version int               `json:"version"`
	Source  string            `json:"source"`
	Mapping map[string]string `json:"mapping"`
}

type block struct {
	first, last rune
}

// Unicode blocks scanned when generating the table.
var blocks = []block{
	{0x3400, 0x4DBF}, // CJK Unified Ideographs Extension A
	{0x4E00, 0x9FFF}, // CJK Unified Ideographs
	{0xF900, 0xFAFF}, // CJK Compatibility Ideographs
}

// Generate builds the rune table by running every ideograph of the scanned
// blocks through gojianfan and keeping the ones that change.
func Generate() map[rune]rune {
	table := make(map[rune]rune)
	for _, b := range blocks {
		src := lo.RangeFrom(b.first, int(b.last-b.first)+1)
		dst := []rune(gojianfan.T2S(string(src)))
		if len(dst) != len(src) {
			// gojianfan is rune for rune; fall back to one call per rune
			// rather than misalign the whole block.
			dst = lo.Map(src, func(r rune, _ int) rune {
				out, _ := utf8.DecodeRuneInString(gojianfan.T2S(string(r)))
				return out
			})
		}
		for i, r := range src {
			if dst[i] != r {
				table[r] = dst[i]
			}
		}
	}
	return table
}

func load(path string) (map[rune]rune, error) {
	want, err := os.ReadFile(path + checksumSuffix)
	if err != nil {
		return nil, errors.Wrap(err, "read checksum")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read dictionary")
	}
	// Verify the bytes that get decoded; the file may be replaced meanwhile.
	if strings.TrimSpace(string(want)) != ComputeBytesHash(data) {
		return nil, errors.Errorf("checksum mismatch for %s", path)
	}

	var a artifact
	if err = json.Unmarshal(data, &a); err != nil {
		return nil, errors.Wrap(err, "decode dictionary")
	}
	if a.Version != formatVersion {
		return nil, errors.Errorf("unsupported dictionary version %d", a.Version)
	}

	table := make(map[rune]rune, len(a.Mapping))
	for k, v := range a.Mapping {
		if utf8.RuneCountInString(k) != 1 || utf8.RuneCountInString(v) != 1 {
			return nil, errors.Errorf("malformed dictionary entry %q: %q", k, v)
		}
		from, _ := utf8.DecodeRuneInString(k)
		to, _ := utf8.DecodeRuneInString(v)
		table[from] = to
	}
	return table, nil
}

// store writes the artifact and then its checksum, each through a temporary
// file renamed into place so readers never observe a partial file.
func store(path string, table map[rune]rune) error {
	a := artifact{
		Version: formatVersion,
		Source:  "github.com/siongui/gojianfan",
		Mapping: lo.MapEntries(table, func(k, v rune) (string, string) {
			return string(k), string(v)
		}),
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode dictionary")
	}
	if err = writeAtomic(path, data); err != nil {
		return err
	}
	return writeAtomic(path+checksumSuffix, []byte(ComputeBytesHash(data)+"\n"))
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create temporary file for %s", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", tmpName)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmpName)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrapf(err, "chmod %s", tmpName)
	}
	return errors.Wrapf(os.Rename(tmpName, path), "rename %s", tmpName)
}
