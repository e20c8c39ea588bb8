package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/danielmiessler/tw2s/internal/convert"
	"github.com/danielmiessler/tw2s/internal/i18n"
	"github.com/danielmiessler/tw2s/internal/util"
)

// Flags create flags struct. the users flags go into this, this will be passed to the run
type Flags struct {
	Force    bool   `short:"f" long:"force" description:"Force to output if the output file exists"`
	DictDir  string `long:"dict-dir" env:"TW2S_DICT_DIR" description:"Directory that caches the conversion dictionary (default: the system temporary directory)"`
	Config   string `long:"config" description:"Path to YAML config file (default: ~/.config/tw2s/config.yaml)"`
	Language string `long:"language" env:"TW2S_LANGUAGE" description:"Language for messages: en, zh-TW or zh-CN"`
	Debug    int    `long:"debug" env:"TW2S_DEBUG" description:"Debug level: 0=off, 1=basic, 2=detailed, 3=trace, 4=wire" default:"0"`
	Version  bool   `long:"version" description:"Print current version"`

	Args struct {
		TwPath string `positional-arg-name:"TW_PATH" description:"Path of the Traditional Chinese document; standard input when omitted"`
		SPath  string `positional-arg-name:"S_PATH" description:"Path of the Simplified Chinese document; derived from TW_PATH when omitted"`
	} `positional-args:"yes"`
}

// Init parses args into Flags and fills options that were not given on the
// command line from the YAML config file.
func Init(args []string) (ret *Flags, err error) {
	ret = &Flags{}
	parser := flags.NewParser(ret, flags.Default)
	parser.Name = "tw2s"
	parser.Usage = "[OPTIONS] [TW_PATH] [S_PATH]"
	parser.LongDescription = usageExamples

	var extraArgs []string
	if extraArgs, err = parser.ParseArgs(args); err != nil {
		return nil, err
	}
	if len(extraArgs) > 0 {
		return nil, invalidInvocationf(i18n.T("cli_error_too_many_arguments"), strings.Join(extraArgs, " "))
	}
	if ret.Args.TwPath == "" && ret.Args.SPath != "" {
		return nil, invalidInvocationf(i18n.T("cli_error_output_without_input"), ret.Args.SPath)
	}

	if ret.Config == "" {
		if ret.Config, err = util.GetDefaultConfigPath(); err != nil {
			return nil, err
		}
	}
	if ret.Config != "" {
		var cfg *fileConfig
		if cfg, err = loadYAMLConfig(ret.Config); err != nil {
			return nil, err
		}
		ret.applyConfig(cfg, parser)
	}
	return ret, nil
}

const usageExamples = `A simple tool for converting Traditional Chinese(TW) to Simple Chinese.

EXAMPLES:
  tw2s                      # Convert each of input lines from Traditional Chinese to Simple Chinese
  tw2s cht.txt chs.txt      # Convert cht.txt (in Traditional Chinese) to chs.txt (in Simple Chinese)
  tw2s a.cht.txt            # Convert a.cht.txt (in Traditional Chinese) to a.chs.txt (in Simple Chinese)`

// applyConfig copies the keys present in the config file into options the
// user did not pass explicitly. Environment values count as defaults, so the
// file wins over them.
func (o *Flags) applyConfig(cfg *fileConfig, parser *flags.Parser) {
	if cfg.Force != nil && !setOnCommandLine(parser, "force") {
		o.Force = *cfg.Force
	}
	if cfg.DictDir != nil && !setOnCommandLine(parser, "dict-dir") {
		o.DictDir = *cfg.DictDir
	}
	if cfg.Language != nil && !setOnCommandLine(parser, "language") {
		o.Language = *cfg.Language
	}
	if cfg.Debug != nil && !setOnCommandLine(parser, "debug") {
		o.Debug = *cfg.Debug
	}
}

func setOnCommandLine(parser *flags.Parser, longName string) bool {
	opt := parser.FindOptionByLongName(longName)
	return opt != nil && opt.IsSet() && !opt.IsSetDefault()
}

// Request turns the positional arguments into a conversion request.
func (o *Flags) Request() convert.Request {
	return convert.Request{
		Input:  o.Args.TwPath,
		Output: o.Args.SPath,
		Force:  o.Force,
	}
}

// DictionaryDir is the directory handed to the dictionary engine.
func (o *Flags) DictionaryDir() string {
	if o.DictDir != "" {
		return o.DictDir
	}
	return os.TempDir()
}

func (o *Flags) String() string {
	return fmt.Sprintf("force=%t dictDir=%q language=%q debug=%d input=%q output=%q",
		o.Force, o.DictDir, o.Language, o.Debug, o.Args.TwPath, o.Args.SPath)
}
