package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webcontent [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Regenerates WebContent.h from data/index.html, data/style.css and data/app.js.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Regenerate WebContent.h (default)")
	fmt.Fprintln(w, "  doctor     Check sources and output directory")
	fmt.Fprintln(w, "  preview    Serve the assembled page locally")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'webcontent help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags shared by every command.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -C, --dir <path>          Project root containing data/ (default: .)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file path, or name searched in the project")
	fmt.Fprintln(w, "                            root then the user config directory")
	fmt.Fprintln(w, "      --strict              Fail when a reference tag is missing")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show stage timings")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webcontent generate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inline style.css and app.js into index.html, escape the result as a")
	fmt.Fprintln(w, "C string and write it to WebContent.h as a PROGMEM array.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The markup must reference the assets with exactly:")
	fmt.Fprintln(w, `  <link rel="stylesheet" href="style.css">`)
	fmt.Fprintln(w, `  <script src="app.js"></script>`)
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  WEBCONTENT_CONFIG         Config file name or path")
	fmt.Fprintln(w, "  WEBCONTENT_STRICT         true or false")
	fmt.Fprintln(w, "  WEBCONTENT_LOG_LEVEL      debug, info, warn, error, disabled")
	fmt.Fprintln(w, "  WEBCONTENT_PREVIEW_ADDR   Preview listen address")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webcontent doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that every source exists and is UTF-8, that the markup contains")
	fmt.Fprintln(w, "both reference tags, and that WebContent.h can be written.")
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w, "      --json                Output as JSON")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webcontent preview [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the assembled page at / and the header at /WebContent.h.")
	fmt.Fprintln(w, "Sources are rebuilt on every request. Nothing is written.")
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w, "      --addr <host:port>    Listen address (default: 127.0.0.1:8080)")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: webcontent version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: webcontent help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
