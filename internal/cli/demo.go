package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/memtree/internal/scenario"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the reference scenario and print the final tree",
	Long: `Builds a tree from the reference scenario (root files, a nested
directory, an overwrite, a deep create and two deletions) and prints the
resulting listing followed by the total size.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(globals)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), globals.verbose)
	fs := newFileSystem(cfg, logger)
	if err := scenario.Seed(fs); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "[Final FileSystem Structure]:")
	if err := newRenderer(cfg, out).List(out, fs); err != nil {
		return err
	}
	fmt.Fprintf(out, "Total size: %d bytes\n", fs.TotalSize())
	return nil
}
