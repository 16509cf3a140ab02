package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/memtree/internal/config"
	"github.com/vvka-141/memtree/internal/render"
)

var rootCmd = &cobra.Command{
	Use:   "memtree",
	Short: "In-memory hierarchical namespace",
	Long: `memtree models a filesystem in memory: directories own their children,
files own a copy of their bytes, and every operation is addressed by a
path whose segments are joined with a single separator (a backslash
unless configured otherwise).

Configuration is read from memtree.yaml in the --config directory, then
from a .env file next to it and the MEMTREE_* environment variables, then
from flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Path descends through a file
  12 - Path not found
  13 - Size does not fit the supplied content
  14 - Operation script failed`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// globalFlags holds the persistent flag values shared by all commands.
type globalFlags struct {
	verbose   bool
	configDir string
	separator string
	color     string
}

var globals globalFlags

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// reportError prints err to w, styled when --color and w allow it.
func reportError(w io.Writer, err error) {
	mode := globals.color
	if mode == "" {
		mode = config.ColorAuto
	}
	f, _ := w.(*os.File)
	fmt.Fprintln(w, render.New(render.UseColor(mode, f)).Error("Error: "+err.Error()))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globals.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&globals.configDir, "config", ".", "Directory containing memtree.yaml and .env")
	rootCmd.PersistentFlags().StringVar(&globals.separator, "separator", "", "Path separator (overrides configuration)")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "", "Color mode: auto, always or never (overrides configuration)")

	_ = rootCmd.RegisterFlagCompletionFunc("color", completeColorModes)
}

// completeColorModes provides shell completion for --color.
func completeColorModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
}

// RequireScriptPath validates that exactly one script argument is provided.
func RequireScriptPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <script.yaml>

Usage: %s

Example:
  %s ops.yaml --manifest`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
