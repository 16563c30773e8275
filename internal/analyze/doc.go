// Package analyze builds a structured summary of a change set from the raw
// numstat and patch text produced by git.
//
// [Summarize] parses the per-file added/deleted counts, classifies each file
// by extension, and scans file paths plus added/removed diff lines against a
// fixed table of change-intent keyword rules (fix, refactor, feat, perf,
// docs, test, build, security, chore). The resulting [Analysis] is read-only
// input for the prompt builder; nothing here touches the repository itself.
package analyze
