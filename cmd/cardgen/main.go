package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/alovak/testcards/internal/cardgen"
	"github.com/alovak/testcards/internal/config"
	"github.com/alovak/testcards/internal/output"
	"github.com/fatih/color"
	"golang.org/x/exp/slog"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	cardType  string
	count     int
	format    string
	validate  string
	listTypes bool
	years     int
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := "error"
	if opts.verbose {
		level = "debug"
	}
	logger := config.NewTextLogger(level, stderr)

	switch {
	case opts.listTypes:
		if err := output.RenderTypes(stdout, cardgen.Types()); err != nil {
			return fail(stderr, "Error: %v", err)
		}
		return exitOK
	case opts.validate != "":
		return validate(stdout, opts.validate)
	}

	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return fail(stderr, "Error: %v", err)
	}

	gen := cardgen.NewGenerator(cardgen.WithYearsAhead(opts.years))
	cards, err := gen.GenerateBatch(opts.count, opts.cardType)
	if err != nil {
		return fail(stderr, "Error: %v", err)
	}
	logger.Debug("cards generated",
		slog.Int("count", len(cards)),
		slog.String("type", opts.cardType),
		slog.String("format", string(format)),
	)

	if err := output.Render(stdout, format, cards); err != nil {
		return fail(stderr, "Error: %v", err)
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("cardgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.cardType, "type", "", "card type (see -list-types); random when empty")
	fs.StringVar(&opts.cardType, "t", "", "shorthand for -type")
	fs.IntVar(&opts.count, "number", 1, "number of cards to generate")
	fs.IntVar(&opts.count, "n", 1, "shorthand for -number")
	fs.StringVar(&opts.format, "format", string(output.FormatText), "output format: text|json|csv|table|iso8583")
	fs.StringVar(&opts.format, "f", string(output.FormatText), "shorthand for -format")
	fs.StringVar(&opts.validate, "validate", "", "validate a card number with the Luhn checksum")
	fs.BoolVar(&opts.listTypes, "list-types", false, "list available card types")
	fs.IntVar(&opts.years, "years", cardgen.DefaultYearsAhead, "maximum years until expiry")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return nil, errors.New("unexpected arguments")
	}
	if opts.count < 1 {
		fmt.Fprintln(stderr, "-number must be at least 1")
		return nil, errors.New("invalid -number")
	}
	if opts.years < 1 || opts.years > cardgen.MaxYearsAhead {
		fmt.Fprintf(stderr, "-years must be 1..%d\n", cardgen.MaxYearsAhead)
		return nil, errors.New("invalid -years")
	}
	return opts, nil
}

func validate(w io.Writer, number string) int {
	fmt.Fprintf(w, "Card number: %s\n", number)
	if cardgen.ValidateLuhn(number) {
		color.New(color.FgGreen).Fprintln(w, "Valid: ✓ YES")
		return exitOK
	}
	color.New(color.FgRed).Fprintln(w, "Valid: ✗ NO")
	return exitError
}

func fail(stderr io.Writer, format string, a ...any) int {
	fmt.Fprintf(stderr, format+"\n", a...)
	return exitError
}
