package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	dir     string
	config  string
	strict  bool
	quiet   bool
	verbose bool
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	json   bool
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common commonFlags
	addr   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.dir, "dir", "C", ".", "project root containing data/")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.strict, "strict", false, "fail when a reference tag is missing")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show stage timings")
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseGenerateFlags parses generate command flags.
// Positional arguments are rejected: every path is fixed.
func parseGenerateFlags(args []string, stderr io.Writer) (*commonFlags, error) {
	f := &commonFlags{}
	fs := newFlagSet("generate", stderr, printGenerateUsage)
	addCommonFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, unexpectedArgs(fs.Args())
	}
	return f, nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string, stderr io.Writer) (*doctorFlags, error) {
	f := &doctorFlags{}
	fs := newFlagSet("doctor", stderr, printDoctorUsage)
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.json, "json", false, "output as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, unexpectedArgs(fs.Args())
	}
	return f, nil
}

// parsePreviewFlags parses preview command flags.
func parsePreviewFlags(args []string, stderr io.Writer) (*previewFlags, error) {
	f := &previewFlags{}
	fs := newFlagSet("preview", stderr, printPreviewUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.addr, "addr", "", "listen address (default from config: 127.0.0.1:8080)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, unexpectedArgs(fs.Args())
	}
	return f, nil
}

// flagErrorCode maps a parse error to an exit code.
// pflag prints the usage itself for --help and stays silent otherwise.
func flagErrorCode(stderr io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if !errors.Is(err, ErrUsage) {
		err = fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return reportError(stderr, err)
}
