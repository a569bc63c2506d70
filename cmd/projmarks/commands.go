package projmarks

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/projmarks/internal/version"
	"github.com/arthur-debert/projmarks/pkg/commands"
	"github.com/arthur-debert/projmarks/pkg/filesystem"
	"github.com/arthur-debert/projmarks/pkg/keybind"
	"github.com/arthur-debert/projmarks/pkg/paths"
	"github.com/arthur-debert/projmarks/pkg/style"
)

func newAddCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "add [key] [path]",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.MaximumNArgs(2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, s, args, false)
		},
	}
}

func newAddDirCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "add-dir [key] [dir]",
		Short:   MsgAddDirShort,
		Long:    MsgAddDirLong,
		Args:    cobra.MaximumNArgs(2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, s, args, true)
		},
	}
}

func runAdd(cmd *cobra.Command, s *session, args []string, dir bool) error {
	app, err := s.App()
	if err != nil {
		return err
	}
	key, err := s.Key(cmd, args)
	if err != nil {
		return err
	}
	path := ""
	if len(args) > 1 {
		path = args[1]
	}

	log.Info().Str("key", key).Str("path", path).Bool("dir", dir).Msg("Adding mark")

	result, err := commands.Add(app, commands.AddOptions{
		Key:     key,
		Path:    path,
		Dir:     dir,
		Confirm: s.Confirmer(cmd),
	})
	if result != nil {
		if rerr := s.Render(cmd, result); rerr != nil {
			return rerr
		}
	}
	return err
}

func newRemoveCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:               "rm [key]",
		Aliases:           []string{"remove"},
		Short:             MsgRemoveShort,
		Args:              cobra.MaximumNArgs(1),
		GroupID:           "core",
		ValidArgsFunction: keysCompletion(s),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := s.App()
			if err != nil {
				return err
			}
			key, err := s.Key(cmd, args)
			if err != nil {
				return err
			}

			result, err := commands.Remove(app, commands.RemoveOptions{Key: key, Hint: s.project})
			if result != nil {
				if rerr := s.Render(cmd, result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}
}

func newOpenCmd(s *session) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:               "open <key>",
		Short:             MsgOpenShort,
		Long:              MsgOpenLong,
		Args:              cobra.ExactArgs(1),
		GroupID:           "core",
		ValidArgsFunction: keysCompletion(s),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := s.App()
			if err != nil {
				return err
			}

			target, err := commands.Open(app, commands.OpenOptions{Key: args[0], Hint: s.project})
			if err != nil {
				return err
			}

			if printOnly || target.IsDir {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), target.Path)
				return err
			}

			open := commands.ExecOpener(commands.EditorCommand(app.Config.ListOpener),
				cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			return open(target.Path)
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, MsgFlagPrint)

	return cmd
}

func newListCmd(s *session) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := s.App()
			if err != nil {
				return err
			}

			if all {
				return s.Render(cmd, commands.ListAll(app))
			}

			listing, err := commands.List(app, commands.ListOptions{Hint: s.project})
			if err != nil {
				return err
			}
			return s.Render(cmd, listing)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)

	return cmd
}

func newEditCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "edit",
		Short:   MsgEditShort,
		Long:    MsgEditLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := s.App()
			if err != nil {
				return err
			}

			editor := commands.EditorCommand(app.Config.ListOpener)
			log.Debug().Strs("editor", editor).Msg("Editing marks")

			result, err := commands.Edit(app, commands.EditOptions{
				Hint: s.project,
				// The editor owns the terminal, so it gets the real streams.
				Open:  commands.ExecOpener(editor, os.Stdin, os.Stdout, os.Stderr),
				Retry: s.Retry(cmd),
			})
			if result != nil {
				if rerr := s.Render(cmd, result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}
}

func newApplyCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "apply [file|-]",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := s.App()
			if err != nil {
				return err
			}

			source := "-"
			if len(args) > 0 {
				source = args[0]
			}

			var data []byte
			if source == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
				source = "standard input"
			} else {
				data, err = app.FS.ReadFile(paths.ExpandHome(source))
			}
			if err != nil {
				return fmt.Errorf(MsgErrReadInput, source, err)
			}

			result, err := commands.Apply(app, commands.ApplyOptions{Hint: s.project, Text: string(data)})
			if result != nil {
				if rerr := s.Render(cmd, result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}
}

func newKeysCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "keys",
		Short:   MsgKeysShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := s.App()
			if err != nil {
				return err
			}
			return s.Render(cmd, commands.Keys(app))
		},
	}
}

func newSnippetCmd(s *session) *cobra.Command {
	var program string

	cmd := &cobra.Command{
		Use:       "snippet [bash|zsh|fish]",
		Short:     MsgSnippetShort,
		Long:      MsgSnippetLong,
		Example:   MsgSnippetExample,
		ValidArgs: []string{keybind.ShellBash, keybind.ShellZsh, keybind.ShellFish},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		GroupID:   "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := s.App()
			if err != nil {
				return err
			}

			shell := keybind.ShellBash
			if len(args) > 0 {
				shell = args[0]
			}

			script, err := commands.Snippet(app, commands.SnippetOptions{Shell: shell, Program: program})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), script)
			return err
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Command the aliases call (default: projmarks)")

	return cmd
}

func newGenConfigCmd(s *session) *cobra.Command {
	var opts commands.GenConfigOptions

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.loadConfig(true)
			if err != nil {
				return err
			}

			opts.Path = paths.ExpandHome(s.configFile)
			if opts.Path == "" {
				opts.Path = paths.New().ConfigFile()
			}

			result, err := commands.GenConfig(filesystem.NewOS(), cfg, opts)
			if err != nil {
				return err
			}
			if result.Written == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), result.Content)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), style.Render(fmt.Sprintf(MsgConfigWritten, result.Written)))
			return err
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVar(&opts.Commented, "commented", false, MsgFlagCommented)

	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return WriteCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// WriteCompletion writes the completion script of root for shell.
func WriteCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unknown shell %q, supported shells: bash, zsh, fish, powershell", shell)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}
