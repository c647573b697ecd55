package command

import (
	"fmt"
	"io"

	"github.com/henderiw/intervals/pkg/intervalset"
	"gopkg.in/yaml.v3"
)

// Printer renders a set after each command.
type Printer interface {
	Print(w io.Writer, s *intervalset.Set) error
}

// NewPrinter returns the printer for an output format name.
func NewPrinter(format string) (Printer, error) {
	switch format {
	case "", "text":
		return TextPrinter{}, nil
	case "yaml":
		return YAMLPrinter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q, expected text or yaml", format)
	}
}

// TextPrinter writes one {[l1, r1), [l2, r2)} line per set.
type TextPrinter struct{}

func (TextPrinter) Print(w io.Writer, s *intervalset.Set) error {
	_, err := fmt.Fprintln(w, s.String())
	return err
}

// YAMLPrinter writes each set as a YAML document holding a list of
// left/right pairs.
type YAMLPrinter struct{}

func (YAMLPrinter) Print(w io.Writer, s *intervalset.Set) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.Intervals()); err != nil {
		return err
	}
	return enc.Close()
}
