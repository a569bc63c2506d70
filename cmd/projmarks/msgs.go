package projmarks

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Per-project marks for files and directories"
	MsgAddShort        = "Mark a file"
	MsgAddDirShort     = "Mark a directory"
	MsgRemoveShort     = "Remove a mark from the current project"
	MsgOpenShort       = "Open the target of a mark"
	MsgOpenLong        = "Resolve a mark in the current project. Directories are printed, files are opened with the editor unless --print is given."
	MsgListShort       = "List marks"
	MsgListLong        = "List the marks of the current project, or of every project with --all."
	MsgEditShort       = "Edit the current project's marks in an editor"
	MsgApplyShort      = "Replace the current project's marks from a listing"
	MsgKeysShort       = "List the keys in use across all projects"
	MsgSnippetShort    = "Output shell integration snippet"
	MsgGenConfigShort  = "Print or write the configuration file"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Prompts
	MsgPromptKey   = "Mark key: "
	MsgPromptRetry = "Edit again? [Y/n]: "

	// Status messages
	MsgVersionFormat = "projmarks %s (commit %s, built %s)\n"
	MsgConfigWritten = "Wrote [path]%s[/path]"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrReadInput  = "failed to read %s: %w"
	MsgErrNoKey      = "a mark key is required"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default: $PROJMARKS_CONFIG or the XDG config dir)"
	MsgFlagStore     = "Marks file, overrides storage_file"
	MsgFlagProject   = "Path inside the project to act on (default: working directory)"
	MsgFlagYes       = "Approve overwrites without asking"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagPrint     = "Only print the target path"
	MsgFlagAll       = "List the marks of every project"
	MsgFlagWrite     = "Write the file instead of printing it"
	MsgFlagForce     = "Overwrite an existing config file"
	MsgFlagCommented = "Comment out every setting"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/add-dir-long.txt
	msgAddDirLongRaw string
	MsgAddDirLong    = strings.TrimSpace(msgAddDirLongRaw)

	//go:embed msgs/edit-long.txt
	msgEditLongRaw string
	MsgEditLong    = strings.TrimSpace(msgEditLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/snippet-long.txt
	msgSnippetLongRaw string
	MsgSnippetLong    = strings.TrimSpace(msgSnippetLongRaw)

	//go:embed msgs/snippet-example.txt
	msgSnippetExampleRaw string
	MsgSnippetExample    = strings.TrimRight(msgSnippetExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
