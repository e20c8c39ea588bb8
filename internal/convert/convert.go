// Package convert drives a Traditional to Simplified Chinese conversion run:
// resolving and guarding paths, then streaming lines through a Converter.
package convert

// Converter is the character mapping engine. Convert must be total and must
// leave runes it does not map, line terminators included, untouched.
type Converter interface {
	Convert(text string) string
}

// ConverterFunc adapts a plain function to Converter.
type ConverterFunc func(string) string

func (f ConverterFunc) Convert(text string) string {
	return f(text)
}

// Mode selects where a run reads from and writes to.
type Mode int

const (
	// ModeStream converts standard input to standard output.
	ModeStream Mode = iota
	// ModeFile converts one file into another.
	ModeFile
)

// Request describes one run. An empty Input selects ModeStream. An empty
// Output in ModeFile asks for a derived output name.
type Request struct {
	Input  string
	Output string
	Force  bool
}

func (r Request) Mode() Mode {
	if r.Input == "" {
		return ModeStream
	}
	return ModeFile
}
