package convert

import (
	"errors"
	"io/fs"
	"os"
)

// CheckOverwrite reports whether output may be written. A missing path
// passes; an existing file passes only with force; a directory never does.
func CheckOverwrite(output string, force bool) error {
	info, err := os.Stat(output)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return NewError(KindIoFailure, output, err)
	}
	if info.IsDir() {
		return NewError(KindOutputIsDirectory, output, nil)
	}
	if !force {
		return NewError(KindOutputAlreadyExists, output, nil)
	}
	return nil
}
