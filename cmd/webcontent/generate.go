package main

import "fmt"

// Console lines printed after a successful run.
const (
	successMessage = "WebContent.h regenerated successfully!"
	sizeFormat     = "Total size: %d chars\n"
)

// runGenerateCmd regenerates WebContent.h and returns an exit code.
func runGenerateCmd(args []string, env *Environment) int {
	f, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return flagErrorCode(env.Stderr, err)
	}

	s, err := resolveSettings(f, env)
	if err != nil {
		return reportError(env.Stderr, err)
	}

	if err := runGenerate(s, f.quiet, env); err != nil {
		return reportError(env.Stderr, err)
	}
	return ExitSuccess
}

// runGenerate runs the pipeline and prints the summary unless quiet.
func runGenerate(s *settings, quiet bool, env *Environment) error {
	gen, err := newGenerator(s)
	if err != nil {
		return err
	}

	result, err := gen.Generate()
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintln(env.Stdout, successMessage)
		fmt.Fprintf(env.Stdout, sizeFormat, result.Size())
	}
	return nil
}
