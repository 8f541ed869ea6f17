package pp

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A local store for prompts and snippets"
	MsgSaveShort       = "Save a file or folder into storage"
	MsgListShort       = "List stored entries with a preview"
	MsgRmShort         = "Remove a stored entry"
	MsgStoreShort      = "Open the storage directory"
	MsgCompletionShort = "Generate shell completion script"

	// Results
	MsgSavedEntry      = "Saved entry as %s"
	MsgRemovedEntry    = "Removed entry %s"
	MsgImportedFiles   = "Imported %d file(s) from '%s'"
	MsgImportedSkill   = "Imported skill '%s' as %s"
	MsgSkillDesc       = "  %s"
	MsgMerged          = "Merged %d file(s), resolved %d conflict(s)"
	MsgMergeReviewNote = "Note: Conflicts were auto-resolved with prepend. Review manually if needed."
	MsgCopied          = "Copied %s to the clipboard"

	// Errors
	MsgErrSourceNotFound = "source file/folder not found: %s"
	MsgErrClipboardRead  = "failed to read the clipboard"
	MsgErrClipboardWrite = "failed to copy to the clipboard"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRename      = "Auto-rename with _2 suffix if collision"
	MsgFlagOverwrite   = "Overwrite existing file without prompting"
	MsgFlagNewName     = "Use this specific name for the entry"
	MsgFlagClipboard   = "Save the clipboard text as the entry named by the argument"
	MsgFlagCopy        = "Copy the entry to the clipboard instead of printing it"
	MsgFlagRender      = "Render markdown entries for the terminal"
	MsgFlagPrintConfig = "Print the effective configuration as TOML and exit"
	MsgFlagFormat      = "Output format: auto, term, text or json"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/save-long.txt
	msgSaveLongRaw string
	MsgSaveLong    = strings.TrimSpace(msgSaveLongRaw)

	//go:embed msgs/save-example.txt
	msgSaveExampleRaw string
	MsgSaveExample    = strings.TrimRight(msgSaveExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
