package projmarks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/projmarks/internal/version"
	"github.com/arthur-debert/projmarks/pkg/commands"
	"github.com/arthur-debert/projmarks/pkg/config"
	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/filesystem"
	"github.com/arthur-debert/projmarks/pkg/logging"
	"github.com/arthur-debert/projmarks/pkg/marks"
	"github.com/arthur-debert/projmarks/pkg/paths"
	"github.com/arthur-debert/projmarks/pkg/ui"
	"github.com/arthur-debert/projmarks/pkg/ui/confirmations"
)

// session carries the global flags and the lazily built App of one
// invocation.
type session struct {
	verbosity  int
	configFile string
	storeFile  string
	project    string
	format     string
	yes        bool

	app    *commands.App
	dialog *confirmations.ConsoleDialog
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	s := &session{}

	rootCmd := &cobra.Command{
		Use:     "projmarks",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(s.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&s.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&s.storeFile, "store", "", MsgFlagStore)
	flags.StringVar(&s.project, "project", "", MsgFlagProject)
	flags.BoolVarP(&s.yes, "yes", "y", false, MsgFlagYes)
	flags.StringVar(&s.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newAddCmd(s))
	rootCmd.AddCommand(newAddDirCmd(s))
	rootCmd.AddCommand(newRemoveCmd(s))
	rootCmd.AddCommand(newOpenCmd(s))
	rootCmd.AddCommand(newListCmd(s))
	rootCmd.AddCommand(newEditCmd(s))
	rootCmd.AddCommand(newApplyCmd(s))
	rootCmd.AddCommand(newKeysCmd(s))
	rootCmd.AddCommand(newSnippetCmd(s))
	rootCmd.AddCommand(newGenConfigCmd(s))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig builds the effective configuration from the global flags.
// With optional set, a --config file that does not exist yet is skipped.
func (s *session) loadConfig(optional bool) (*config.Config, error) {
	opts := config.LoadOptions{File: s.configFile}
	if optional && s.configFile != "" {
		if _, err := os.Stat(paths.ExpandHome(s.configFile)); os.IsNotExist(err) {
			opts.File = ""
		}
	}
	if s.storeFile != "" {
		opts.Overrides = map[string]interface{}{"storage_file": s.storeFile}
	}
	cfg, err := config.Load(opts)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// App returns the application, building it on first use.
func (s *session) App() (*commands.App, error) {
	if s.app != nil {
		return s.app, nil
	}
	cfg, err := s.loadConfig(false)
	if err != nil {
		return nil, err
	}
	s.app = commands.NewApp(cfg, filesystem.NewOS())
	return s.app, nil
}

func (s *session) Dialog(cmd *cobra.Command) *confirmations.ConsoleDialog {
	if s.dialog == nil {
		s.dialog = confirmations.NewConsoleDialog(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	return s.dialog
}

// Confirmer approves overwrites: always with --yes, otherwise by asking.
func (s *session) Confirmer(cmd *cobra.Command) marks.Confirmer {
	if s.yes {
		return confirmations.AutoConfirm(true)
	}
	return s.Dialog(cmd)
}

func (s *session) Renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(s.format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}
	return ui.NewRenderer(format, w)
}

// Render writes a result to the command's output.
func (s *session) Render(cmd *cobra.Command, result interface{}) error {
	r, err := s.Renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

// Key takes the mark key from the first argument or asks for it.
func (s *session) Key(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	key, err := s.Dialog(cmd).Ask(MsgPromptKey)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", errors.New(errors.ErrInvalidInput, MsgErrNoKey)
	}
	return key, nil
}

// Retry reports a rejected listing and asks whether to edit it again.
func (s *session) Retry(cmd *cobra.Command) func(error) bool {
	return func(err error) bool {
		if r, rerr := s.Renderer(cmd.ErrOrStderr()); rerr == nil {
			_ = r.RenderError(err)
		}
		answer, aerr := s.Dialog(cmd).Ask(MsgPromptRetry)
		if aerr != nil {
			return false
		}
		answer = strings.ToLower(answer)
		return answer == "" || answer == "y" || answer == "yes"
	}
}

// keysCompletion provides shell completion for mark keys
func keysCompletion(s *session) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		app, err := s.App()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		root, err := app.Store.ProjectRoot(s.project)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var keys []string
		for _, key := range app.Store.Project(root).Keys() {
			if strings.HasPrefix(key, toComplete) {
				keys = append(keys, key)
			}
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	}
}
