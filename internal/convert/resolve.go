package convert

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/danielmiessler/tw2s/internal/util"
)

const (
	// TraditionalMarker is stripped from the input stem when deriving an
	// output name, so a.cht.txt becomes a.chs.txt.
	TraditionalMarker = ".cht"

	// SimplifiedMarker is inserted before the extension of a derived name.
	SimplifiedMarker = ".chs"
)

// ResolvedPaths are the absolute paths of a file mode run.
type ResolvedPaths struct {
	Input   string
	Output  string
	Derived bool
}

// Resolve validates req.Input and settles the output path, deriving it with
// DeriveOutputPath when req.Output is empty. It must only be called in
// ModeFile.
func Resolve(req Request, conv Converter) (ResolvedPaths, error) {
	input, err := util.GetAbsolutePath(req.Input)
	if err != nil {
		return ResolvedPaths{}, NewError(KindInputOpenFailed, req.Input, err)
	}
	if err = checkInput(input); err != nil {
		return ResolvedPaths{}, err
	}

	paths := ResolvedPaths{Input: input}
	if req.Output != "" {
		if paths.Output, err = util.GetAbsolutePath(req.Output); err != nil {
			return ResolvedPaths{}, NewError(KindOutputCreateFailed, req.Output, err)
		}
	} else {
		if paths.Output, err = DeriveOutputPath(input, conv); err != nil {
			return ResolvedPaths{}, err
		}
		paths.Derived = true
	}

	if sameFile(paths.Input, paths.Output) {
		return ResolvedPaths{}, NewError(KindOutputIsInput, paths.Output, nil)
	}
	return paths, nil
}

func checkInput(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NewError(KindInputNotFound, path, nil)
	case err != nil:
		return NewError(KindInputOpenFailed, path, err)
	case info.IsDir():
		return NewError(KindInputIsDirectory, path, nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return NewError(KindInputOpenFailed, path, err)
	}
	return f.Close()
}

// DeriveOutputPath names the Simplified Chinese counterpart of input: the
// stem, without a trailing TraditionalMarker, is converted and given
// SimplifiedMarker ahead of the original extension. The result stays in the
// input's directory.
func DeriveOutputPath(input string, conv Converter) (string, error) {
	dir, name := filepath.Split(input)
	stem, ext, hasExt := splitExt(name)
	if !utf8.ValidString(stem) {
		return "", NewError(KindUnsupportedPath, input, nil)
	}

	stem = conv.Convert(strings.TrimSuffix(stem, TraditionalMarker))
	if hasExt {
		name = stem + SimplifiedMarker + "." + ext
	} else {
		name = stem + SimplifiedMarker
	}
	return filepath.Join(dir, name), nil
}

// splitExt splits name at its last dot. A dot that only starts the name,
// as in .bashrc, does not begin an extension.
func splitExt(name string) (stem, ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}

func sameFile(a, b string) bool {
	if a == b {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
