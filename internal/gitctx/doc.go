// Package gitctx collects change-set text from a git repository.
//
// It shells out to git for the numstat report and unified diff of a
// selection — staged, unstaged, an explicit ref range, or a three-dot
// comparison against a base branch — and detects the repository's default
// base branch for the pull-request fallback path. Each invocation is
// attempted exactly once; failures surface the exact git argv and stderr.
package gitctx
