package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ldevran/grep-tui/internal/config"
	"github.com/ldevran/grep-tui/internal/engine"
	"github.com/ldevran/grep-tui/internal/model"
	"github.com/ldevran/grep-tui/internal/render"
	"github.com/ldevran/grep-tui/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	modeName := flag.String("mode", "plain", "Search mode: plain or haskell")
	listOnly := flag.Bool("list", false, "Print a grouped report instead of the interactive UI")
	configPath := flag.String("config", "", "Config file (default: "+config.DefaultPath()+")")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: grep-tui [flags] [query] [root...]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("grep-tui", version)
		os.Exit(0)
	}

	mode, err := parseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path := *configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	query, roots, err := queryAndRoots(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	eng, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *listOnly || (cfg.ShowListByDefault && query != "") {
		if query == "" {
			fmt.Fprintln(os.Stderr, "Error: -list needs a query argument")
			os.Exit(1)
		}
		runList(eng, mode, query, roots)
		return
	}

	app := tui.NewApp(cfg, eng, mode, roots, query)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseMode(name string) (model.Mode, error) {
	switch name {
	case "plain":
		return model.ModePlain, nil
	case "haskell":
		return model.ModeHaskell, nil
	default:
		return 0, fmt.Errorf("unknown search mode: %s", name)
	}
}

// queryAndRoots splits positional arguments into the optional query and
// the search roots. With no roots given, the working directory is the
// single root. Roots are made absolute so engine output stays resolvable
// after the process chdirs into the first root.
func queryAndRoots(args []string) (string, []string, error) {
	var query string
	var roots []string
	if len(args) > 0 {
		query = args[0]
		roots = args[1:]
	}

	if len(roots) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return "", nil, config.ErrNoSearchRoots
		}
		return query, []string{cwd}, nil
	}

	abs := make([]string, 0, len(roots))
	for _, root := range roots {
		a, err := filepath.Abs(root)
		if err != nil {
			return "", nil, fmt.Errorf("bad search root %q: %w", root, err)
		}
		if fi, err := os.Stat(a); err != nil || !fi.IsDir() {
			return "", nil, fmt.Errorf("search root %q is not a directory", root)
		}
		abs = append(abs, a)
	}
	return query, abs, nil
}

func runList(eng *engine.Engine, mode model.Mode, query string, roots []string) {
	matches, err := eng.Search(context.Background(), mode, model.Request{
		Query: query,
		Roots: roots,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(matches) == 0 {
		fmt.Printf("No results for %q\n", query)
		return
	}
	render.PrintReport(os.Stdout, matches, query)
}
