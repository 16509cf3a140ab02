package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/memtree/internal/manifest"
	"github.com/vvka-141/memtree/internal/script"
)

type applyFlagValues struct {
	list     bool
	manifest bool
}

var applyFlags applyFlagValues

var applyCmd = &cobra.Command{
	Use:   "apply <script.yaml>",
	Short: "Apply an operation script to an empty tree",
	Long: `Reads a YAML operation script and applies its steps, in order, to an
empty tree. Output of list and size steps is written to stdout.

Script format:

  steps:
    - op: add
      path: dir1\file1.txt
      content: data123
    - op: delete
      path: dir1
    - op: list
    - op: size

The first failing step stops the run.`,
	Args: RequireScriptPath,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().BoolVar(&applyFlags.list, "list", false, "Print the final listing after the last step")
	applyCmd.Flags().BoolVar(&applyFlags.manifest, "manifest", false, "Print a YAML manifest of the final tree")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(globals)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), globals.verbose)

	s, err := script.Load(args[0])
	if err != nil {
		return err
	}
	logger.Verbose("Applying %d steps from %s", len(s.Steps), args[0])

	out := cmd.OutOrStdout()
	r := newRenderer(cfg, out)
	fs := newFileSystem(cfg, logger)

	if err := s.Run(fs, out, r.List); err != nil {
		return err
	}

	if applyFlags.list {
		if err := r.List(out, fs); err != nil {
			return err
		}
	}
	if applyFlags.manifest {
		return manifest.Encode(out, manifest.Build(fs))
	}
	return nil
}
