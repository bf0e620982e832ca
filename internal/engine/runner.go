package engine

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/ldevran/grep-tui/internal/config"
)

// RunTimeout bounds a single engine invocation. Searches that take longer
// than this are aborted and surfaced as an EngineError.
const RunTimeout = 10 * time.Second

// Runner invokes the configured engine once per query and returns its
// stdout as raw lines. It is stateless; one Runner can serve any number
// of sequential searches.
type Runner struct {
	cfg  config.Config
	bin  string
	caps config.EngineCaps
}

// NewRunner resolves the engine executable up front so a misconfigured
// path fails before the first search.
func NewRunner(cfg config.Config) (*Runner, error) {
	bin, err := cfg.ResolveExecutable()
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, bin: bin, caps: cfg.Caps()}, nil
}

// Run executes one search. The argument order matches what grep-family
// engines expect: required args, then the pattern, then every root. The
// process runs with the first root as working directory so relative paths
// in the output resolve against it.
//
// An empty (trimmed) query returns no lines without spawning the process:
// an empty pattern matches every line of every file, which is never
// useful and can be pathologically slow.
func (r *Runner) Run(ctx context.Context, query string, roots []string) ([]string, error) {
	if len(roots) == 0 {
		return nil, config.ErrNoSearchRoots
	}
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, RunTimeout)
	defer cancel()

	args := make([]string, 0, len(r.cfg.RequiredArgs)+1+len(roots))
	args = append(args, r.cfg.RequiredArgs...)
	args = append(args, query)
	args = append(args, roots...)

	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = roots[0]
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctx.Err() != nil {
		return nil, &EngineError{Engine: r.cfg.EngineName, Err: ctx.Err()}
	}

	errText := strings.TrimSpace(stderr.String())
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			// Spawn failure, not an engine exit.
			return nil, &EngineError{Engine: r.cfg.EngineName, Stderr: errText, Err: runErr}
		}
		// Some engines exit nonzero just to say "no matches" and only
		// write stderr on real failures. For those, a silent nonzero
		// exit is a success with zero matches.
		if !r.caps.NeedsStderrToConfirmError || errText != "" {
			return nil, &EngineError{Engine: r.cfg.EngineName, Stderr: errText, Err: runErr}
		}
	}

	return splitOutputLines(stdout.String()), nil
}

func splitOutputLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
