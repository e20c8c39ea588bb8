package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/danielmiessler/tw2s/internal/convert"
	"github.com/danielmiessler/tw2s/internal/dictionary"
	"github.com/danielmiessler/tw2s/internal/i18n"
	"github.com/danielmiessler/tw2s/internal/log"
)

// Cli Controls the cli. It takes in the flags and runs the appropriate functions
func Cli(version string) error {
	return Run(os.Args[1:], os.Stdin, os.Stdout, version)
}

// Run is Cli with explicit arguments and standard streams.
func Run(args []string, stdin io.Reader, stdout io.Writer, version string) (err error) {
	if err = loadEnvFile(); err != nil {
		return err
	}

	var currentFlags *Flags
	if currentFlags, err = Init(args); err != nil {
		return err
	}

	if currentFlags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	log.SetLevel(log.LevelFromInt(currentFlags.Debug))
	if _, err = i18n.Init(currentFlags.Language); err != nil {
		return err
	}
	log.Debug(log.Trace, "flags: %s", currentFlags)

	dictDir := currentFlags.DictionaryDir()
	var dict *dictionary.Dictionary
	if dict, err = dictionary.Initialize(dictDir); err != nil {
		return convert.NewError(convert.KindEngineInitFailure, dictDir, err)
	}
	log.Debug(log.Basic, "dictionary %s ready (%d entries)", dict.Path(), dict.Len())

	runner := convert.NewRunner(dict)
	runner.Stdin = stdin
	runner.Stdout = stdout
	return runner.Run(currentFlags.Request())
}
