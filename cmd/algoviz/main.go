// Command algoviz runs the trace engines from the terminal and serves them
// over HTTP.
//
//	algoviz serve  [-config algoviz.yaml] [-env .env] [-addr :8080] [-log-mode dev]
//	algoviz sweep  [-config algoviz.yaml] [-format table|csv|json|yaml|xlsx] [-progress]
//	algoviz sort   -algo quick -n 16 -kind random -seed 7 [-steps]
//	algoviz path   -algo astar -mode maze -rows 21 -cols 31 -seed 1
//	algoviz config [-config algoviz.yaml]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/algoviz/config"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type command struct {
	name  string
	usage string
	run   func(args []string, stdout, stderr io.Writer) error
}

var commands = []command{
	{"serve", "run the HTTP API", runServe},
	{"sweep", "measure sort growth over a size range", runSweep},
	{"sort", "trace one sort and print its metrics", runSort},
	{"path", "trace one path search and draw the grid", runPath},
	{"config", "print the effective configuration", runConfig},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		err := c.run(args[1:], stdout, stderr)
		switch {
		case err == nil:
			return exitOK
		case errors.Is(err, flag.ErrHelp):
			return exitOK
		case errors.Is(err, errUsage):
			fmt.Fprintf(stderr, "algoviz %s: %v\n", c.name, err)
			return exitUsage
		default:
			fmt.Fprintf(stderr, "algoviz %s: %v\n", c.name, err)
			return exitError
		}
	}
	fmt.Fprintf(stderr, "algoviz: unknown command %q\n", args[0])
	usage(stderr)

	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: algoviz <command> [flags]")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-7s %s\n", c.name, c.usage)
	}
}

var errUsage = errors.New("invalid arguments")

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("algoviz "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}

// parse wraps flag parsing failures as usage errors.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}

	return nil
}

// loadConfig returns Default when path is empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

// setFlags reports which flags were given explicitly.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return set
}

func runConfig(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("config", stderr)
	path := fs.String("config", "", "YAML configuration file")
	if err := parse(fs, args); err != nil {
		return err
	}
	cfg, err := loadConfig(*path)
	if err != nil {
		return err
	}
	b, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = stdout.Write(b)

	return err
}
