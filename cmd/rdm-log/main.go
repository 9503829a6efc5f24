// Command rdm-log views and analyzes RDM protocol trace files.
//
// Trace files are written by rdm-dummy with the -protocol-log flag, or by
// any program that gives a port a log.FileLogger.
//
// Usage:
//
//	rdm-log <command> [flags] <file.rlog>
//
// Commands:
//
//	view     Print events in human-readable form
//	export   Export events as JSONL or CSV
//	filter   Copy matching events to a new trace file
//	stats    Summarize a trace
//
// Examples:
//
//	# Everything that happened to one fixture
//	rdm-log view -uid 7a70:ffffff00 port.rlog
//
//	# Requests that found no responder
//	rdm-log view -category message -direction out port.rlog
//
//	# DMX writes as CSV
//	rdm-log export -format csv -category dmx port.rlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rdm-protocol/rdm-go/cmd/rdm-log/commands"
	"github.com/rdm-protocol/rdm-go/pkg/log"
)

const usage = `rdm-log - RDM Protocol Log Analyzer

Usage:
  rdm-log <command> [flags] <file.rlog>

Commands:
  view     Print events in human-readable form
  export   Export events as JSONL or CSV
  filter   Copy matching events to a new trace file
  stats    Summarize a trace

Use "rdm-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates a flag set carrying the shared filter flags.
func newFlagSet(name, summary string) (*flag.FlagSet, *commands.FilterOptions) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "rdm-log %s - %s\n\nUsage:\n  rdm-log %s [flags] <file.rlog>\n\nFlags:\n", name, summary, name)
		fs.PrintDefaults()
	}

	var opts commands.FilterOptions
	fs.StringVar(&opts.Session, "session", "", "Filter by port session ID")
	fs.StringVar(&opts.Port, "port", "", "Filter by port index")
	fs.StringVar(&opts.UID, "uid", "", "Filter by UID (mmmm:dddddddd)")
	fs.StringVar(&opts.PID, "pid", "", "Filter by parameter ID (name or number)")
	fs.StringVar(&opts.Layer, "layer", "", "Filter by layer (port, responder)")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (message, discovery, dmx, error)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return fs, &opts
}

// parse parses args and returns the trace path and filter, exiting on
// error.
func parse(fs *flag.FlagSet, opts *commands.FilterOptions, args []string) (string, log.Filter) {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	filter, err := opts.Build()
	if err != nil {
		fail(err)
	}
	return fs.Arg(0), filter
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs, opts := newFlagSet("view", "Print events in human-readable form")
	path, filter := parse(fs, opts, args)

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs, opts := newFlagSet("export", "Export events as JSONL or CSV")
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path, filter := parse(fs, opts, args)

	if err := commands.RunExport(path, *format, *output, filter); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs, opts := newFlagSet("filter", "Copy matching events to a new trace file")
	output := fs.String("o", "", "Output file (required)")
	path, filter := parse(fs, opts, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}
	if err := commands.RunFilter(path, *output, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs, opts := newFlagSet("stats", "Summarize a trace")
	path, filter := parse(fs, opts, args)

	if err := commands.RunStats(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}
