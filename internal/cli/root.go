package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.1"

// Exit codes. Environment problems (not a repo, bad usage) and failed git
// invocations are kept distinct so wrappers can tell them apart.
const (
	ExitSuccess      = 0
	ExitCommandError = 1
	ExitUsageError   = 2
)

var rootCmd = &cobra.Command{
	Use:   "gitdraft",
	Short: "Generate assistant-ready commit and PR prompts from git changes",
	Long: "Gitdraft analyzes pending or historical git changes and writes a redacted,\n" +
		"analysis-annotated prompt file for drafting commit messages or pull-request\n" +
		"descriptions with a text-generation assistant.",
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(prCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print gitdraft version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "gitdraft version %s\n", version)
	},
}
