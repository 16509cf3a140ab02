package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/vvka-141/memtree/internal/config"
	"github.com/vvka-141/memtree/internal/logging"
	"github.com/vvka-141/memtree/internal/render"
	"github.com/vvka-141/memtree/pkg/memtree"
)

// resolveConfig merges memtree.yaml, .env, MEMTREE_* variables and flags,
// in increasing order of precedence.
func resolveConfig(flags globalFlags) (*config.Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load(filepath.Join(flags.configDir, ".env"))

	cfg, err := config.Load(flags.configDir)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		cfg = config.Default()
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if flags.separator != "" {
		cfg.Separator = flags.separator
	}
	if flags.color != "" {
		cfg.Color = flags.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newFileSystem builds an empty FileSystem for cfg that traces to logger.
func newFileSystem(cfg *config.Config, logger memtree.Logger) *memtree.FileSystem {
	opts := append(cfg.Options(), memtree.WithLogger(logger))
	return memtree.New(opts...)
}

// newRenderer styles output only when cfg and the destination allow it.
func newRenderer(cfg *config.Config, out io.Writer) *render.Renderer {
	f, _ := out.(*os.File)
	return render.New(render.UseColor(cfg.Color, f))
}

func newLogger(w io.Writer, verbose bool) memtree.Logger {
	return logging.NewWriterLogger(w, verbose)
}
