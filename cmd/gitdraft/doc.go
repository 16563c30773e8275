// Gitdraft turns pending or historical git changes into assistant-ready
// prompt files.
//
// It collects a diff, summarizes per-file stats and change-intent signals,
// scrubs secret-shaped content, truncates to a character budget, and writes
// a commit-message or pull-request prompt for pasting into a chat
// assistant.
//
// Usage:
//
//	gitdraft commit                      # prompt.md from staged changes
//	gitdraft commit --unstaged           # from working tree changes
//	gitdraft commit --range HEAD~3..HEAD # from an explicit range
//	gitdraft pr                          # pr_prompt.md, falls back to base...HEAD
//	gitdraft pr --against origin/release/2025.11
//	gitdraft hook install                # regenerate prompt.md on every commit
//
// See https://github.com/gitdraft/gitdraft for full documentation.
package main
