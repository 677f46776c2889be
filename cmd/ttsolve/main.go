// Command ttsolve reads a source program (§6.2) and prints the truth
// table for every show/show_ones instruction it contains (§6.3).
//
// Usage: ttsolve [-v] <input-file>
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/VittorioRossi/truth-table-solver/internal/lang"
	"github.com/VittorioRossi/truth-table-solver/internal/tt"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ttsolve [-v] <input-file>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(path, log); err != nil {
		reportError(path, err)
		os.Exit(1)
	}
}

func run(path string, log *logrus.Logger) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	prog, err := lang.Parse(path, string(source))
	if err != nil {
		return err
	}
	log.WithField("vars", len(prog.Vars)).Debug("parsed program")

	for _, instr := range prog.Instructions {
		if log.IsLevelEnabled(logrus.DebugLevel) {
			stats, err := tt.Stats(prog, instr)
			if err != nil {
				return err
			}
			for _, line := range stats {
				log.Debug(line)
			}
		}
		if err := tt.Render(os.Stdout, prog, instr); err != nil {
			return err
		}
	}
	return nil
}

// reportError prints one diagnostic line identifying the error kind and,
// where available, its source position (§7's propagation policy),
// grounded on kanso-cli/main.go's reportParseError caret-style reporting.
func reportError(path string, err error) {
	switch e := err.(type) {
	case *lang.SyntaxError:
		color.Red("syntax error in %s at %d:%d: %s", path, e.Line, e.Column, e.Message)
	case *lang.SemanticError:
		color.Red("semantic error in %s at %d:%d: %s", path, e.Line, e.Column, e.Message)
	case participle.Error:
		pos := e.Position()
		color.Red("syntax error in %s at %d:%d: %s", path, pos.Line, pos.Column, e.Message())
	default:
		color.Red("%s: %s", path, strings.TrimSpace(err.Error()))
	}
}
