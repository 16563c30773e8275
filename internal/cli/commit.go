package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gitdraft/gitdraft/internal/analyze"
	"github.com/gitdraft/gitdraft/internal/config"
	"github.com/gitdraft/gitdraft/internal/gitctx"
	"github.com/gitdraft/gitdraft/internal/output"
	"github.com/gitdraft/gitdraft/internal/prompt"
	"github.com/gitdraft/gitdraft/internal/redact"
)

// Shared flags for the commit and pr commands.
var (
	flagRange    string
	flagUnstaged bool
	flagMaxChars string
	flagOut      string
	flagNoRedact bool
)

func addPromptFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagRange, "range", "", "Explicit ref range (two- or three-dot)")
	cmd.Flags().BoolVar(&flagUnstaged, "unstaged", false, "Use working tree changes instead of the index")
	cmd.Flags().StringVar(&flagMaxChars, "max-chars", "", "Diff character budget (min 2000, default 30000)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (\"-\" for stdout)")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}

// maxCharsLimit resolves the effective diff budget. A malformed --max-chars
// value falls back to the built-in default silently rather than failing the
// run; the floor clamp happens in prompt.Truncate either way.
func maxCharsLimit(cfg config.Config) int {
	if flagMaxChars == "" {
		return cfg.MaxChars
	}
	n, err := strconv.Atoi(flagMaxChars)
	if err != nil {
		log.Debug().Str("value", flagMaxChars).Msg("unparseable --max-chars, using default")
		return prompt.DefaultMaxChars
	}
	return n
}

// safeDiff scrubs and truncates the raw patch text.
func safeDiff(patch string, cfg config.Config) string {
	if cfg.Redact && !flagNoRedact {
		patch = redact.Scrub(patch)
	} else {
		log.Warn().Msg("secret redaction is disabled")
	}
	return prompt.Truncate(patch, maxCharsLimit(cfg))
}

// reportWritten prints the post-write status lines. Suppressed when the
// prompt itself went to stdout.
func reportWritten(kind, path, sourceLabel string, a *analyze.Analysis) {
	if path == "-" {
		return
	}
	color.New(color.FgGreen).Fprintf(os.Stdout, "Wrote %s prompt → %s\n", kind, path)
	fmt.Fprintf(os.Stdout, "Source: %s | Files: %d | +%s/-%s\n",
		sourceLabel, len(a.Files),
		humanize.Comma(int64(a.Added)), humanize.Comma(int64(a.Deleted)))
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Write a commit-message prompt from staged, unstaged, or ranged changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := gitctx.EnsureRepo(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}

		res, err := gitctx.Collect(gitctx.Selection{
			Range:    flagRange,
			Unstaged: flagUnstaged,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitCommandError
			return nil
		}

		analysis := analyze.Summarize(res.Numstat, res.Patch)
		text := prompt.BuildCommit(gitctx.RepoName(), res.SourceLabel, analysis, safeDiff(res.Patch, cfg))

		outPath := flagOut
		if outPath == "" {
			outPath = cfg.CommitOut
		}
		written, err := output.WritePrompt(text, outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitCommandError
			return nil
		}

		reportWritten("commit", written, res.SourceLabel, analysis)
		return nil
	},
}

func init() {
	addPromptFlags(commitCmd)
}
