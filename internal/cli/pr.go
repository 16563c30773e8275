package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gitdraft/gitdraft/internal/analyze"
	"github.com/gitdraft/gitdraft/internal/config"
	"github.com/gitdraft/gitdraft/internal/gitctx"
	"github.com/gitdraft/gitdraft/internal/output"
	"github.com/gitdraft/gitdraft/internal/prompt"
)

var flagAgainst string

var prCmd = &cobra.Command{
	Use:   "pr",
	Short: "Write a pull-request prompt from staged, unstaged, ranged, or branch-delta changes",
	Long: "Analyzes changes and writes a pull-request prompt. With no --range or --against,\n" +
		"staged changes are used; if those are empty too, the comparison falls back to a\n" +
		"three-dot diff against the repository's detected default base branch.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := gitctx.EnsureRepo(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		cfg, err := config.Load(map[string]string{"base": flagAgainst})
		if err != nil {
			return err
		}

		sel := gitctx.Selection{
			Range:       flagRange,
			Base:        cfg.Base,
			Unstaged:    flagUnstaged,
			FindRenames: true,
		}
		res, err := gitctx.Collect(sel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitCommandError
			return nil
		}

		// An empty result is not an error: without an explicit range or base
		// it triggers the default-base fallback comparison.
		if res.Empty() && sel.Range == "" && sel.Base == "" {
			base := gitctx.DetectDefaultBase()
			res, err = gitctx.Collect(gitctx.Selection{Base: base, FindRenames: true})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitCommandError
				return nil
			}
			if !res.Empty() {
				log.Info().Str("source", res.SourceLabel).Msg("no working tree changes; using branch delta")
			}
		}

		analysis := analyze.Summarize(res.Numstat, res.Patch)
		text := prompt.BuildPR(gitctx.RepoName(), res.SourceLabel, analysis, safeDiff(res.Patch, cfg))

		outPath := flagOut
		if outPath == "" {
			outPath = cfg.PROut
		}
		written, err := output.WritePrompt(text, outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitCommandError
			return nil
		}

		reportWritten("PR", written, res.SourceLabel, analysis)
		return nil
	},
}

func init() {
	addPromptFlags(prCmd)
	prCmd.Flags().StringVar(&flagAgainst, "against", "", "Base ref for a three-dot comparison")
}
