// Package main is the command line front end for the proofline correction
// surface: it locates the cursor line, gathers issues from the configured
// checking backends, merges them, and prints the bounded result.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dshills/proofline/internal/checker"
	"github.com/dshills/proofline/internal/config"
	"github.com/dshills/proofline/internal/engine/line"
	"github.com/dshills/proofline/internal/hotkey"
	"github.com/dshills/proofline/internal/issue"
	"github.com/dshills/proofline/internal/panel"
	"github.com/dshills/proofline/internal/preview"
	"github.com/dshills/proofline/internal/tooltip"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath      string
	cursor          int
	primaryIssues   string
	secondaryIssues string
	maxIssues       int
	timeout         time.Duration
	tooltips        bool
	showVersion     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, file := parseFlags()

	if opts.showVersion {
		fmt.Printf("proofline %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.maxIssues > 0 {
		cfg.Panel.MaxIssues = opts.maxIssues
	}

	text, err := readInput(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.cursor >= 0 {
		printCursorLine(cfg, text, opts.cursor)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	primary, secondary, err := collectIssues(ctx, opts, cfg, text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	printIssues(cfg, opts, issue.Merge(primary, secondary))
	return 0
}

func parseFlags() (options, string) {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to proofline.toml")
	flag.IntVar(&opts.cursor, "cursor", -1, "cursor offset; prints the line containing it")
	flag.StringVar(&opts.primaryIssues, "primary-issues", "", "read primary issues from a JSON file instead of a backend")
	flag.StringVar(&opts.secondaryIssues, "secondary-issues", "", "read secondary issues from a JSON file instead of a backend")
	flag.IntVar(&opts.maxIssues, "max", 0, "override the issue display cap")
	flag.DurationVar(&opts.timeout, "timeout", 10*time.Second, "backend check timeout")
	flag.BoolVar(&opts.tooltips, "tooltips", false, "print a tooltip sentence under each issue")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()

	return opts, flag.Arg(0)
}

// readInput reads the text buffer from a file, or stdin when no file is given.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// printCursorLine reports the line the cursor sits on, with the fix-line
// shortcut when one is bound.
func printCursorLine(cfg config.Config, text string, cursor int) {
	ln, ok := line.Locate(text, cursor)
	if !ok {
		fmt.Printf("%s: nothing to fix on this line\n", panel.FixLineLabel)
		return
	}

	label := panel.FixLineLabel
	if binding, ok := hotkey.ParseBinding(cfg.Hotkeys["fix-line"]); ok {
		label = fmt.Sprintf("%s (%s)", label, binding)
	}
	fmt.Printf("%s %s: %s\n", label, ln.Span, preview.Truncate(ln.Text, cfg.Panel.PreviewLength))
}

// collectIssues gathers the two issue lists, preferring JSON files when given
// and configured backend processes otherwise.
func collectIssues(ctx context.Context, opts options, cfg config.Config, text string) ([]issue.Issue, []issue.Issue, error) {
	primary, cleanupPri, err := backendFor(ctx, opts.primaryIssues, cfg.Primary)
	if err != nil {
		return nil, nil, err
	}
	defer cleanupPri()

	secondary, cleanupSec, err := backendFor(ctx, opts.secondaryIssues, cfg.Secondary)
	if err != nil {
		return nil, nil, err
	}
	defer cleanupSec()

	pair := checker.Pair{Primary: primary, Secondary: secondary}
	pri, sec, err := pair.Check(ctx, text)
	if err != nil {
		return nil, nil, err
	}
	return pri, sec, nil
}

// backendFor builds the issue source for one side of the pair.
// Returns a nil Backend when neither a JSON file nor a command is configured.
func backendFor(ctx context.Context, issuesPath string, bc config.BackendConfig) (checker.Backend, func(), error) {
	noop := func() {}

	if issuesPath != "" {
		return checker.Func{
			BackendName: bc.Name,
			CheckFunc: func(context.Context, string) ([]issue.Issue, error) {
				data, err := os.ReadFile(issuesPath)
				if err != nil {
					return nil, fmt.Errorf("reading %s: %w", issuesPath, err)
				}
				return checker.DecodeResults(data)
			},
		}, noop, nil
	}

	if !bc.Enabled() {
		return nil, noop, nil
	}

	bridge := checker.NewBridge(bc.Name, bc.Command, bc.Args...)
	if err := bridge.Start(ctx); err != nil {
		return nil, noop, fmt.Errorf("starting %s: %w", bc.Name, err)
	}
	return bridge, func() { _ = bridge.Close() }, nil
}

// printIssues renders the merged list, capped for the panel.
func printIssues(cfg config.Config, opts options, merged []issue.Issue) {
	if len(merged) == 0 {
		fmt.Println(panel.EmptyMessage)
		return
	}

	sorted := issue.SortBySpan(merged)
	shown := preview.Cap(sorted, cfg.Panel.MaxIssues)

	shortcut := ""
	if binding, ok := hotkey.ParseBinding(cfg.Hotkeys["fix-line"]); ok {
		shortcut = binding.String()
	}

	for _, is := range shown {
		fmt.Println(issue.FormatWithSpan(is))
		if opts.tooltips {
			if tip := tooltip.ForIssue(is, shortcut); tip != "" {
				fmt.Printf("  %s\n", preview.Truncate(tip, panel.TooltipMaxLength))
			}
		}
	}

	if hidden := len(sorted) - len(shown); hidden > 0 {
		fmt.Printf("(%d more)\n", hidden)
	}

	s := issue.Summarize(merged)
	fmt.Printf("%d issues: %d spelling, %d grammar, %d style\n",
		s.Total(), s.Spelling, s.Grammar, s.Style)
}
