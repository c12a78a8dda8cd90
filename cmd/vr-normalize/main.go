// Command vr-normalize normalizes a variation document against a set
// of reference sequences and optionally attaches its GA4GH identifier.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	vrerrors "github.com/reece/vr/errors"
	"github.com/reece/vr/internal/ctxlog"
	"github.com/reece/vr/internal/digest"
	"github.com/reece/vr/models"
	"github.com/reece/vr/normalize"
	"github.com/reece/vr/sequence"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vr-normalize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sequencesPath := fs.String("sequences", "", "path to FASTA file of reference sequences")
	modeName := fs.String("mode", "expand", "indel placement: expand, left, or right")
	identify := fs.Bool("identify", false, "attach the computed GA4GH identifier")
	verbose := fs.Bool("v", false, "enable debug logging")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s --sequences <refs.fasta> [<variation.json>]\n\n", os.Args[0]),
			writeln(stderr, "Normalizes a variation document; reads stdin when no file is given."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *sequencesPath == "" {
		if err := writeln(stderr, "error: --sequences is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	mode, err := normalize.ParseMode(*modeName)
	if err != nil {
		if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		return 2
	}

	input := stdin
	if remaining := fs.Args(); len(remaining) > 0 {
		if len(remaining) != 1 {
			if err := writeln(stderr, "error: at most one variation file argument is allowed"); err != nil {
				return 1
			}
			return 2
		}
		f, err := os.Open(remaining[0])
		if err != nil {
			if writeErr := writef(stderr, "error opening variation: %v\n", err); writeErr != nil {
				return 1
			}
			return 1
		}
		defer func() { _ = f.Close() }()
		input = f
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	store, err := loadSequences(*sequencesPath)
	if err != nil {
		if writeErr := writef(stderr, "error loading sequences: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}

	data, err := io.ReadAll(input)
	if err != nil {
		if writeErr := writef(stderr, "error reading variation: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}
	v, err := models.ParseVariation(data)
	if err != nil {
		return reportError(stderr, err)
	}

	opts := normalize.NewOptions().WithMode(mode)
	normalized, err := normalize.Variation(ctx, v, store, opts)
	if err != nil {
		return reportError(stderr, err)
	}

	if *identify {
		normalized, err = withIdentifier(normalized)
		if err != nil {
			if writeErr := writef(stderr, "error identifying: %v\n", err); writeErr != nil {
				return 1
			}
			return 1
		}
	}

	out, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		if writeErr := writef(stderr, "error encoding result: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}
	if err := writef(stdout, "%s\n", out); err != nil {
		return 1
	}
	return 0
}

func loadSequences(path string) (*sequence.MemoryStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return sequence.ReadFASTA(f)
}

func withIdentifier(v models.Variation) (models.Variation, error) {
	id, err := digest.Identify(v)
	if err != nil {
		return nil, err
	}
	switch m := v.(type) {
	case models.Allele:
		m.ID = id
		return m, nil
	case models.Text:
		m.ID = id
		return m, nil
	default:
		return nil, fmt.Errorf("cannot attach identifier to %T", v)
	}
}

func reportError(stderr io.Writer, err error) int {
	if violations, ok := vrerrors.AsValidations(err); ok {
		for _, v := range violations {
			if writeErr := writeln(stderr, v.Error()); writeErr != nil {
				return 1
			}
		}
		return 1
	}
	if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
		return 1
	}
	return 1
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
