package gitctx

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Selection picks which comparison to collect. Zero value means staged.
type Selection struct {
	Range       string // explicit ref range, two- or three-dot, passed verbatim
	Base        string // three-dot base ref; takes precedence over everything else
	Head        string // head ref for Base comparisons, defaults to HEAD
	Unstaged    bool   // working tree vs index instead of index vs HEAD
	FindRenames bool   // pass --find-renames so moves stay single entries
}

// Result holds the two raw text streams for one comparison plus a
// human-readable label of what was compared.
type Result struct {
	Numstat     string
	Patch       string
	SourceLabel string
}

// Empty reports whether the comparison produced no output at all.
func (r Result) Empty() bool {
	return strings.TrimSpace(r.Numstat) == "" && strings.TrimSpace(r.Patch) == ""
}

// CommandError is a failed git invocation: the argv that ran and whatever
// the command wrote to stderr.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed: git %s\n%s", strings.Join(e.Args, " "), e.Stderr)
}

func (e *CommandError) Unwrap() error { return e.Err }

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), &CommandError{Args: args, Stderr: string(exitErr.Stderr), Err: err}
		}
		return "", &CommandError{Args: args, Err: err}
	}
	return string(out), nil
}

// EnsureRepo returns an error when the current directory is not inside a
// git work tree.
func EnsureRepo() error {
	if _, err := gitOutput("rev-parse", "--is-inside-work-tree"); err != nil {
		return fmt.Errorf("not a git repository: %w", err)
	}
	return nil
}

// diffArgs builds the stat and patch argv (without the leading "git") plus
// the source label for a selection.
func diffArgs(sel Selection) (statArgs, patchArgs []string, label string) {
	var common []string
	if sel.FindRenames {
		common = append(common, "--find-renames")
	}

	switch {
	case sel.Base != "":
		head := sel.Head
		if head == "" {
			head = "HEAD"
		}
		span := sel.Base + "..." + head
		statArgs = append(append([]string{"diff"}, common...), "--numstat", span)
		patchArgs = append(append([]string{"diff"}, common...), span)
		label = "branch delta " + span
	case sel.Range != "":
		statArgs = append(append([]string{"diff"}, common...), "--numstat", sel.Range)
		patchArgs = append(append([]string{"diff"}, common...), sel.Range)
		label = "range " + sel.Range
	case sel.Unstaged:
		statArgs = append(append([]string{"diff"}, common...), "--numstat")
		patchArgs = append([]string{"diff"}, common...)
		label = "working tree (unstaged)"
	default:
		statArgs = append(append([]string{"diff"}, common...), "--cached", "--numstat")
		patchArgs = append(append([]string{"diff"}, common...), "--cached")
		label = "index (staged)"
	}
	return statArgs, patchArgs, label
}

// Collect runs the stat and patch commands for a selection, sequentially
// and exactly once each.
func Collect(sel Selection) (Result, error) {
	statArgs, patchArgs, label := diffArgs(sel)

	numstat, err := gitOutput(statArgs...)
	if err != nil {
		return Result{}, err
	}
	patch, err := gitOutput(patchArgs...)
	if err != nil {
		return Result{}, err
	}
	return Result{Numstat: numstat, Patch: patch, SourceLabel: label}, nil
}

// baseGuesses are tried in order when the remote's symbolic default ref is
// not available.
var baseGuesses = []string{"origin/main", "main", "origin/master", "master"}

// fallbackBase is the literal last resort when no guess resolves.
const fallbackBase = "main"

// DetectDefaultBase resolves the default base branch for comparisons,
// preferring the remote's symbolic HEAD, then conventional branch names,
// then a literal "main".
func DetectDefaultBase() string {
	if out, err := gitOutput("symbolic-ref", "--quiet", "refs/remotes/origin/HEAD"); err == nil {
		if base := baseFromSymbolicRef(out); base != "" {
			return base
		}
	}
	for _, guess := range baseGuesses {
		if _, err := gitOutput("rev-parse", "--verify", guess); err == nil {
			return guess
		}
	}
	return fallbackBase
}

// baseFromSymbolicRef turns "refs/remotes/origin/main" into "origin/main".
func baseFromSymbolicRef(out string) string {
	ref := strings.TrimSpace(out)
	if rest, ok := strings.CutPrefix(ref, "refs/remotes/"); ok {
		return rest
	}
	return ""
}

// RepoName returns the basename of the repository root, or "unknown-repo"
// when it cannot be determined.
func RepoName() string {
	out, err := gitOutput("rev-parse", "--show-toplevel")
	if err != nil {
		return "unknown-repo"
	}
	root := strings.TrimSpace(out)
	if root == "" {
		return "unknown-repo"
	}
	return filepath.Base(root)
}
