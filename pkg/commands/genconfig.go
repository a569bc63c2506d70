package commands

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/projmarks/pkg/config"
	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/types"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Write saves the file instead of only returning it.
	Write bool

	// Path is where to write; required with Write.
	Path string

	// Force overwrites an existing file.
	Force bool

	// Commented comments out every setting.
	Commented bool
}

// GenConfigResult is the generated file and where it went, if anywhere.
type GenConfigResult struct {
	Content string
	Written string
}

// GenConfig renders cfg as a config file and optionally writes it.
func GenConfig(fs types.FS, cfg *config.Config, opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	generate := config.Generate
	if opts.Commented {
		generate = config.GenerateCommented
	}
	data, err := generate(cfg)
	if err != nil {
		return nil, err
	}

	result := &GenConfigResult{Content: string(data)}
	if !opts.Write {
		return result, nil
	}

	if opts.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no config path to write to")
	}
	if _, err := fs.Stat(opts.Path); err == nil && !opts.Force {
		return nil, errors.Newf(errors.ErrConflict, "%s already exists, use --force to overwrite", opts.Path)
	} else if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot check %s", opts.Path)
	}

	if err := fs.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot create %s", filepath.Dir(opts.Path))
	}
	if err := fs.WriteFile(opts.Path, data, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot write %s", opts.Path)
	}

	logger.Info().Str("path", opts.Path).Msg("config written")
	result.Written = opts.Path
	return result, nil
}
