// Package cli wires together the Cobra command tree for the gitdraft
// binary.
//
// It defines the root command and all subcommands (commit, pr, hook,
// config, version), binds flags, runs the analysis pipeline, and returns
// deterministic exit codes: 0 on success, 1 when a git invocation fails,
// 2 outside a git work tree or on usage errors.
package cli
