// Package prompt assembles the final assistant-ready prompt text.
//
// [SuggestTitle] derives an advisory one-line title from the analysis,
// [Truncate] caps the scrubbed diff to a character budget with a visible
// marker, and [BuildCommit] / [BuildPR] render the commit-message and
// pull-request framings around the shared context block.
package prompt
