package server

// BuiltinCommands lists Ex commands offered in command completion.
var BuiltinCommands = []BuiltinCommand{
	{Name: "echo", Description: "Echo expressions", Availability: AvailBoth},
	{Name: "echomsg", Description: "Echo as a message, saved in history", Availability: AvailBoth},
	{Name: "echoerr", Description: "Echo as an error message", Availability: AvailBoth},
	{Name: "echohl", Description: "Set highlighting for echo commands", Availability: AvailBoth},
	{Name: "execute", Description: "Execute the result of an expression", Availability: AvailBoth},
	{Name: "let", Description: "Assign a value to a variable", Availability: AvailBoth},
	{Name: "const", Description: "Declare a locked variable", Availability: AvailBoth},
	{Name: "unlet", Description: "Delete a variable", Availability: AvailBoth},
	{Name: "lockvar", Description: "Lock a variable against changes", Availability: AvailBoth},
	{Name: "unlockvar", Description: "Unlock a variable", Availability: AvailBoth},
	{Name: "function", Description: "Define a function", Availability: AvailBoth},
	{Name: "endfunction", Description: "End of a function definition", Availability: AvailBoth},
	{Name: "delfunction", Description: "Delete a function", Availability: AvailBoth},
	{Name: "return", Description: "Return from a function", Availability: AvailBoth},
	{Name: "call", Description: "Call a function, ignoring the result", Availability: AvailBoth},
	{Name: "if", Description: "Start a conditional block", Availability: AvailBoth},
	{Name: "elseif", Description: "Alternative condition", Availability: AvailBoth},
	{Name: "else", Description: "Alternative block", Availability: AvailBoth},
	{Name: "endif", Description: "End of a conditional block", Availability: AvailBoth},
	{Name: "for", Description: "Start a loop over a List", Availability: AvailBoth},
	{Name: "endfor", Description: "End of a for loop", Availability: AvailBoth},
	{Name: "while", Description: "Start a conditional loop", Availability: AvailBoth},
	{Name: "endwhile", Description: "End of a while loop", Availability: AvailBoth},
	{Name: "break", Description: "Break out of the innermost loop", Availability: AvailBoth},
	{Name: "continue", Description: "Continue with the next loop iteration", Availability: AvailBoth},
	{Name: "try", Description: "Start a block with exception handling", Availability: AvailBoth},
	{Name: "catch", Description: "Catch an exception", Availability: AvailBoth},
	{Name: "finally", Description: "Cleanup block, always executed", Availability: AvailBoth},
	{Name: "endtry", Description: "End of a try block", Availability: AvailBoth},
	{Name: "throw", Description: "Throw an exception", Availability: AvailBoth},
	{Name: "set", Description: "Set an option", Availability: AvailBoth},
	{Name: "setlocal", Description: "Set an option local to the buffer or window", Availability: AvailBoth},
	{Name: "setglobal", Description: "Set the global value of an option", Availability: AvailBoth},
	{Name: "autocmd", Description: "Define an autocommand", Availability: AvailBoth},
	{Name: "augroup", Description: "Group autocommands", Availability: AvailBoth},
	{Name: "doautocmd", Description: "Apply autocommands to the current buffer", Availability: AvailBoth},
	{Name: "command", Description: "Define a user command", Availability: AvailBoth},
	{Name: "delcommand", Description: "Delete a user command", Availability: AvailBoth},
	{Name: "normal", Description: "Execute Normal mode commands", Availability: AvailBoth},
	{Name: "map", Description: "Define a mapping for several modes", Availability: AvailBoth},
	{Name: "nmap", Description: "Define a Normal mode mapping", Availability: AvailBoth},
	{Name: "vmap", Description: "Define a Visual mode mapping", Availability: AvailBoth},
	{Name: "xmap", Description: "Define a Visual mode (only) mapping", Availability: AvailBoth},
	{Name: "smap", Description: "Define a Select mode mapping", Availability: AvailBoth},
	{Name: "imap", Description: "Define an Insert mode mapping", Availability: AvailBoth},
	{Name: "cmap", Description: "Define a Command-line mode mapping", Availability: AvailBoth},
	{Name: "omap", Description: "Define an Operator-pending mode mapping", Availability: AvailBoth},
	{Name: "tmap", Description: "Define a Terminal mode mapping", Availability: AvailBoth},
	{Name: "noremap", Description: "Define a non-recursive mapping", Availability: AvailBoth},
	{Name: "nnoremap", Description: "Define a non-recursive Normal mode mapping", Availability: AvailBoth},
	{Name: "vnoremap", Description: "Define a non-recursive Visual mode mapping", Availability: AvailBoth},
	{Name: "xnoremap", Description: "Define a non-recursive Visual mode (only) mapping", Availability: AvailBoth},
	{Name: "snoremap", Description: "Define a non-recursive Select mode mapping", Availability: AvailBoth},
	{Name: "inoremap", Description: "Define a non-recursive Insert mode mapping", Availability: AvailBoth},
	{Name: "cnoremap", Description: "Define a non-recursive Command-line mode mapping", Availability: AvailBoth},
	{Name: "onoremap", Description: "Define a non-recursive Operator-pending mapping", Availability: AvailBoth},
	{Name: "tnoremap", Description: "Define a non-recursive Terminal mode mapping", Availability: AvailBoth},
	{Name: "unmap", Description: "Remove a mapping", Availability: AvailBoth},
	{Name: "mapclear", Description: "Remove all mappings", Availability: AvailBoth},
	{Name: "abbreviate", Description: "Define an abbreviation", Availability: AvailBoth},
	{Name: "highlight", Description: "Define highlighting", Availability: AvailBoth},
	{Name: "syntax", Description: "Syntax highlighting commands", Availability: AvailBoth},
	{Name: "colorscheme", Description: "Load a color scheme", Availability: AvailBoth},
	{Name: "filetype", Description: "Switch filetype detection on or off", Availability: AvailBoth},
	{Name: "source", Description: "Read Ex commands from a file", Availability: AvailBoth},
	{Name: "runtime", Description: "Source files found in 'runtimepath'", Availability: AvailBoth},
	{Name: "finish", Description: "Stop sourcing a script", Availability: AvailBoth},
	{Name: "edit", Description: "Edit a file", Availability: AvailBoth},
	{Name: "write", Description: "Write the buffer to a file", Availability: AvailBoth},
	{Name: "quit", Description: "Close the current window", Availability: AvailBoth},
	{Name: "buffer", Description: "Go to a buffer", Availability: AvailBoth},
	{Name: "bnext", Description: "Go to the next buffer", Availability: AvailBoth},
	{Name: "bprevious", Description: "Go to the previous buffer", Availability: AvailBoth},
	{Name: "bdelete", Description: "Delete a buffer", Availability: AvailBoth},
	{Name: "split", Description: "Split the current window", Availability: AvailBoth},
	{Name: "vsplit", Description: "Split the current window vertically", Availability: AvailBoth},
	{Name: "tabnew", Description: "Open a new tab page", Availability: AvailBoth},
	{Name: "tabnext", Description: "Go to the next tab page", Availability: AvailBoth},
	{Name: "tabprevious", Description: "Go to the previous tab page", Availability: AvailBoth},
	{Name: "cnext", Description: "Go to the next quickfix entry", Availability: AvailBoth},
	{Name: "cprevious", Description: "Go to the previous quickfix entry", Availability: AvailBoth},
	{Name: "copen", Description: "Open the quickfix window", Availability: AvailBoth},
	{Name: "cclose", Description: "Close the quickfix window", Availability: AvailBoth},
	{Name: "lnext", Description: "Go to the next location list entry", Availability: AvailBoth},
	{Name: "lopen", Description: "Open the location list window", Availability: AvailBoth},
	{Name: "grep", Description: "Run a grep command and jump to the first match", Availability: AvailBoth},
	{Name: "vimgrep", Description: "Search files with Vim's regexp", Availability: AvailBoth},
	{Name: "make", Description: "Run the make command and parse errors", Availability: AvailBoth},
	{Name: "silent", Description: "Run a command silently", Availability: AvailBoth},
	{Name: "verbose", Description: "Run a command with increased verbosity", Availability: AvailBoth},
	{Name: "redir", Description: "Redirect message output", Availability: AvailBoth},
	{Name: "sleep", Description: "Do nothing for a while", Availability: AvailBoth},
	{Name: "helptags", Description: "Generate help tags files", Availability: AvailBoth},
	{Name: "packadd", Description: "Add a plugin from 'packpath'", Availability: AvailBoth},
	{Name: "scriptnames", Description: "List all sourced scripts", Availability: AvailBoth},
	{Name: "lua", Description: "Execute a Lua chunk", Availability: AvailNeovimOnly},
	{Name: "luafile", Description: "Execute a Lua file", Availability: AvailNeovimOnly},
	{Name: "checkhealth", Description: "Run health checks", Availability: AvailNeovimOnly},
	{Name: "terminal", Description: "Open a terminal buffer", Availability: AvailBoth},
	{Name: "vim9script", Description: "Mark a script as Vim9 script", Availability: AvailVimOnly},
	{Name: "def", Description: "Define a compiled Vim9 function", Availability: AvailVimOnly},
	{Name: "enddef", Description: "End of a Vim9 function definition", Availability: AvailVimOnly},
}

// AutocmdEvents lists autocommand event names.
var AutocmdEvents = []AutocmdEvent{
	{Name: "BufNewFile", Description: "Starting to edit a non-existent file", Availability: AvailBoth},
	{Name: "BufReadPre", Description: "Before reading a buffer's file", Availability: AvailBoth},
	{Name: "BufRead", Description: "After reading a buffer's file", Availability: AvailBoth},
	{Name: "BufReadPost", Description: "After reading a buffer's file", Availability: AvailBoth},
	{Name: "BufWrite", Description: "Before writing the whole buffer", Availability: AvailBoth},
	{Name: "BufWritePre", Description: "Before writing the whole buffer", Availability: AvailBoth},
	{Name: "BufWritePost", Description: "After writing the whole buffer", Availability: AvailBoth},
	{Name: "BufEnter", Description: "After entering a buffer", Availability: AvailBoth},
	{Name: "BufLeave", Description: "Before leaving to another buffer", Availability: AvailBoth},
	{Name: "BufWinEnter", Description: "After a buffer is displayed in a window", Availability: AvailBoth},
	{Name: "BufWinLeave", Description: "Before a buffer is removed from a window", Availability: AvailBoth},
	{Name: "BufDelete", Description: "Before deleting a buffer from the buffer list", Availability: AvailBoth},
	{Name: "BufUnload", Description: "Before unloading a buffer", Availability: AvailBoth},
	{Name: "BufWipeout", Description: "Before completely deleting a buffer", Availability: AvailBoth},
	{Name: "BufAdd", Description: "After adding a buffer to the buffer list", Availability: AvailBoth},
	{Name: "BufHidden", Description: "After a buffer becomes hidden", Availability: AvailBoth},
	{Name: "BufModifiedSet", Description: "After the 'modified' value of a buffer changed", Availability: AvailBoth},
	{Name: "FileType", Description: "When the 'filetype' option has been set", Availability: AvailBoth},
	{Name: "Syntax", Description: "When the 'syntax' option has been set", Availability: AvailBoth},
	{Name: "FileReadPre", Description: "Before reading a file with :read", Availability: AvailBoth},
	{Name: "FileReadPost", Description: "After reading a file with :read", Availability: AvailBoth},
	{Name: "FileWritePre", Description: "Before writing part of a buffer", Availability: AvailBoth},
	{Name: "FileWritePost", Description: "After writing part of a buffer", Availability: AvailBoth},
	{Name: "FileAppendPre", Description: "Before appending to a file", Availability: AvailBoth},
	{Name: "FileAppendPost", Description: "After appending to a file", Availability: AvailBoth},
	{Name: "FileChangedShell", Description: "A file was changed outside of Vim", Availability: AvailBoth},
	{Name: "FileChangedRO", Description: "Before making the first change to a read-only file", Availability: AvailBoth},
	{Name: "VimEnter", Description: "After doing all the startup stuff", Availability: AvailBoth},
	{Name: "VimLeave", Description: "Before exiting Vim", Availability: AvailBoth},
	{Name: "VimLeavePre", Description: "Before exiting Vim, before writing viminfo", Availability: AvailBoth},
	{Name: "VimResized", Description: "After the Vim window size changed", Availability: AvailBoth},
	{Name: "VimResume", Description: "After Vim is resumed", Availability: AvailBoth},
	{Name: "VimSuspend", Description: "Before Vim is suspended", Availability: AvailBoth},
	{Name: "WinEnter", Description: "After entering another window", Availability: AvailBoth},
	{Name: "WinLeave", Description: "Before leaving a window", Availability: AvailBoth},
	{Name: "WinNew", Description: "After creating a new window", Availability: AvailBoth},
	{Name: "WinClosed", Description: "After closing a window", Availability: AvailBoth},
	{Name: "WinScrolled", Description: "After scrolling or resizing a window", Availability: AvailBoth},
	{Name: "WinResized", Description: "After resizing windows", Availability: AvailBoth},
	{Name: "TabEnter", Description: "After entering a tab page", Availability: AvailBoth},
	{Name: "TabLeave", Description: "Before leaving a tab page", Availability: AvailBoth},
	{Name: "TabNew", Description: "After creating a new tab page", Availability: AvailBoth},
	{Name: "TabClosed", Description: "After closing a tab page", Availability: AvailBoth},
	{Name: "CmdlineEnter", Description: "After entering the command line", Availability: AvailBoth},
	{Name: "CmdlineLeave", Description: "Before leaving the command line", Availability: AvailBoth},
	{Name: "CmdlineChanged", Description: "After the command line text changed", Availability: AvailBoth},
	{Name: "CmdwinEnter", Description: "After entering the command-line window", Availability: AvailBoth},
	{Name: "CmdwinLeave", Description: "Before leaving the command-line window", Availability: AvailBoth},
	{Name: "CursorHold", Description: "The user doesn't press a key for a while", Availability: AvailBoth},
	{Name: "CursorHoldI", Description: "Like CursorHold, in Insert mode", Availability: AvailBoth},
	{Name: "CursorMoved", Description: "The cursor was moved in Normal mode", Availability: AvailBoth},
	{Name: "CursorMovedI", Description: "The cursor was moved in Insert mode", Availability: AvailBoth},
	{Name: "InsertEnter", Description: "Starting Insert mode", Availability: AvailBoth},
	{Name: "InsertLeave", Description: "Leaving Insert mode", Availability: AvailBoth},
	{Name: "InsertLeavePre", Description: "Just before leaving Insert mode", Availability: AvailBoth},
	{Name: "InsertChange", Description: "Typing <Insert> while in Insert or Replace mode", Availability: AvailBoth},
	{Name: "InsertCharPre", Description: "Before inserting a character", Availability: AvailBoth},
	{Name: "TextChanged", Description: "After a change was made in Normal mode", Availability: AvailBoth},
	{Name: "TextChangedI", Description: "After a change was made in Insert mode", Availability: AvailBoth},
	{Name: "TextChangedP", Description: "After a change in Insert mode with popup visible", Availability: AvailBoth},
	{Name: "TextYankPost", Description: "After yanking or deleting text", Availability: AvailBoth},
	{Name: "ColorScheme", Description: "After loading a color scheme", Availability: AvailBoth},
	{Name: "ColorSchemePre", Description: "Before loading a color scheme", Availability: AvailBoth},
	{Name: "FocusGained", Description: "Vim got input focus", Availability: AvailBoth},
	{Name: "FocusLost", Description: "Vim lost input focus", Availability: AvailBoth},
	{Name: "QuitPre", Description: "Before :quit", Availability: AvailBoth},
	{Name: "ExitPre", Description: "Before exiting", Availability: AvailBoth},
	{Name: "QuickFixCmdPre", Description: "Before a quickfix command is run", Availability: AvailBoth},
	{Name: "QuickFixCmdPost", Description: "After a quickfix command is run", Availability: AvailBoth},
	{Name: "SessionLoadPost", Description: "After loading a session file", Availability: AvailBoth},
	{Name: "ShellCmdPost", Description: "After executing a shell command", Availability: AvailBoth},
	{Name: "SourcePre", Description: "Before sourcing a Vim script", Availability: AvailBoth},
	{Name: "SourcePost", Description: "After sourcing a Vim script", Availability: AvailBoth},
	{Name: "StdinReadPre", Description: "Before reading from stdin", Availability: AvailBoth},
	{Name: "StdinReadPost", Description: "After reading from stdin", Availability: AvailBoth},
	{Name: "SwapExists", Description: "A swapfile exists", Availability: AvailBoth},
	{Name: "TermOpen", Description: "After opening a terminal buffer", Availability: AvailNeovimOnly},
	{Name: "TermClose", Description: "After a terminal job ends", Availability: AvailBoth},
	{Name: "TermEnter", Description: "After entering Terminal mode", Availability: AvailNeovimOnly},
	{Name: "TermLeave", Description: "After leaving Terminal mode", Availability: AvailNeovimOnly},
	{Name: "TerminalOpen", Description: "After a terminal window was opened", Availability: AvailVimOnly},
	{Name: "TerminalWinOpen", Description: "After a terminal window was opened", Availability: AvailVimOnly},
	{Name: "User", Description: "Used for user-defined autocommands", Availability: AvailBoth},
	{Name: "UIEnter", Description: "After a UI connects", Availability: AvailNeovimOnly},
	{Name: "UILeave", Description: "After a UI disconnects", Availability: AvailNeovimOnly},
	{Name: "DiagnosticChanged", Description: "After diagnostics have changed", Availability: AvailNeovimOnly},
	{Name: "LspAttach", Description: "After an LSP client attaches to a buffer", Availability: AvailNeovimOnly},
	{Name: "LspDetach", Description: "After an LSP client detaches from a buffer", Availability: AvailNeovimOnly},
	{Name: "RecordingEnter", Description: "When a macro recording starts", Availability: AvailNeovimOnly},
	{Name: "RecordingLeave", Description: "When a macro recording stops", Availability: AvailNeovimOnly},
	{Name: "SafeState", Description: "Nothing pending, going to wait for input", Availability: AvailVimOnly},
	{Name: "ModeChanged", Description: "After the mode changed", Availability: AvailBoth},
	{Name: "OptionSet", Description: "After setting an option", Availability: AvailBoth},
	{Name: "DirChanged", Description: "After the working directory changed", Availability: AvailBoth},
	{Name: "DirChangedPre", Description: "Before the working directory changes", Availability: AvailBoth},
}

// BuiltinOptions lists settable options with their short forms.
var BuiltinOptions = []BuiltinOption{
	{Name: "number", Short: "nu", Description: "Print the line number in front of each line", Availability: AvailBoth},
	{Name: "relativenumber", Short: "rnu", Description: "Show relative line numbers", Availability: AvailBoth},
	{Name: "expandtab", Short: "et", Description: "Use spaces when <Tab> is inserted", Availability: AvailBoth},
	{Name: "tabstop", Short: "ts", Description: "Number of spaces a <Tab> counts for", Availability: AvailBoth},
	{Name: "shiftwidth", Short: "sw", Description: "Number of spaces for each step of (auto)indent", Availability: AvailBoth},
	{Name: "softtabstop", Short: "sts", Description: "Number of spaces a <Tab> counts for while editing", Availability: AvailBoth},
	{Name: "autoindent", Short: "ai", Description: "Take indent for new line from previous line", Availability: AvailBoth},
	{Name: "smartindent", Short: "si", Description: "Smart autoindenting for C programs", Availability: AvailBoth},
	{Name: "wrap", Short: "", Description: "Long lines wrap and continue on the next line", Availability: AvailBoth},
	{Name: "linebreak", Short: "lbr", Description: "Wrap long lines at a blank", Availability: AvailBoth},
	{Name: "ignorecase", Short: "ic", Description: "Ignore case in search patterns", Availability: AvailBoth},
	{Name: "smartcase", Short: "scs", Description: "Override 'ignorecase' when pattern has upper case", Availability: AvailBoth},
	{Name: "hlsearch", Short: "hls", Description: "Highlight matches with the last search pattern", Availability: AvailBoth},
	{Name: "incsearch", Short: "is", Description: "Show match for partly typed search pattern", Availability: AvailBoth},
	{Name: "wrapscan", Short: "ws", Description: "Searches wrap around the end of the file", Availability: AvailBoth},
	{Name: "cursorline", Short: "cul", Description: "Highlight the screen line of the cursor", Availability: AvailBoth},
	{Name: "cursorcolumn", Short: "cuc", Description: "Highlight the screen column of the cursor", Availability: AvailBoth},
	{Name: "colorcolumn", Short: "cc", Description: "Columns to highlight", Availability: AvailBoth},
	{Name: "signcolumn", Short: "scl", Description: "When and how to display the sign column", Availability: AvailBoth},
	{Name: "list", Short: "", Description: "Show <Tab> and <EOL>", Availability: AvailBoth},
	{Name: "listchars", Short: "lcs", Description: "Characters for displaying in list mode", Availability: AvailBoth},
	{Name: "fillchars", Short: "fcs", Description: "Characters to use for displaying special items", Availability: AvailBoth},
	{Name: "laststatus", Short: "ls", Description: "When to use a status line for the last window", Availability: AvailBoth},
	{Name: "statusline", Short: "stl", Description: "Custom format for the status line", Availability: AvailBoth},
	{Name: "showcmd", Short: "sc", Description: "Show (partial) command in status line", Availability: AvailBoth},
	{Name: "showmode", Short: "smd", Description: "Message on status line to show current mode", Availability: AvailBoth},
	{Name: "ruler", Short: "ru", Description: "Show cursor line and column in the status line", Availability: AvailBoth},
	{Name: "wildmenu", Short: "wmnu", Description: "Use menu for command line completion", Availability: AvailBoth},
	{Name: "wildmode", Short: "wim", Description: "Mode for 'wildchar' command-line expansion", Availability: AvailBoth},
	{Name: "completeopt", Short: "cot", Description: "Options for Insert mode completion", Availability: AvailBoth},
	{Name: "backup", Short: "bk", Description: "Keep backup file after overwriting a file", Availability: AvailBoth},
	{Name: "writebackup", Short: "wb", Description: "Make a backup before overwriting a file", Availability: AvailBoth},
	{Name: "swapfile", Short: "swf", Description: "Whether to use a swapfile for a buffer", Availability: AvailBoth},
	{Name: "undofile", Short: "udf", Description: "Save undo information in a file", Availability: AvailBoth},
	{Name: "undodir", Short: "udir", Description: "Where to store undo files", Availability: AvailBoth},
	{Name: "hidden", Short: "hid", Description: "Don't unload buffer when it is abandoned", Availability: AvailBoth},
	{Name: "autoread", Short: "ar", Description: "Automatically read file when changed outside of Vim", Availability: AvailBoth},
	{Name: "autowrite", Short: "aw", Description: "Automatically write file if changed", Availability: AvailBoth},
	{Name: "encoding", Short: "enc", Description: "Encoding used internally", Availability: AvailBoth},
	{Name: "fileencoding", Short: "fenc", Description: "File encoding for multi-byte text", Availability: AvailBoth},
	{Name: "fileformat", Short: "ff", Description: "End-of-line format: dos, unix or mac", Availability: AvailBoth},
	{Name: "filetype", Short: "ft", Description: "Type of file, used for autocommands", Availability: AvailBoth},
	{Name: "syntax", Short: "syn", Description: "Syntax to be loaded for current buffer", Availability: AvailBoth},
	{Name: "foldmethod", Short: "fdm", Description: "Folding type", Availability: AvailBoth},
	{Name: "foldlevel", Short: "fdl", Description: "Close folds with a level higher than this", Availability: AvailBoth},
	{Name: "foldenable", Short: "fen", Description: "Set to display all folds open", Availability: AvailBoth},
	{Name: "scrolloff", Short: "so", Description: "Minimum number of lines above and below the cursor", Availability: AvailBoth},
	{Name: "sidescrolloff", Short: "siso", Description: "Minimum number of columns left and right of cursor", Availability: AvailBoth},
	{Name: "clipboard", Short: "cb", Description: "Use the clipboard as the unnamed register", Availability: AvailBoth},
	{Name: "mouse", Short: "", Description: "Enable the use of mouse clicks", Availability: AvailBoth},
	{Name: "termguicolors", Short: "tgc", Description: "Use GUI colors for the terminal", Availability: AvailBoth},
	{Name: "background", Short: "bg", Description: "\"dark\" or \"light\", used for highlight colors", Availability: AvailBoth},
	{Name: "updatetime", Short: "ut", Description: "Milliseconds to wait before writing swap and firing CursorHold", Availability: AvailBoth},
	{Name: "timeoutlen", Short: "tm", Description: "Time out time in milliseconds", Availability: AvailBoth},
	{Name: "ttimeoutlen", Short: "ttm", Description: "Time out time for key codes in milliseconds", Availability: AvailBoth},
	{Name: "history", Short: "hi", Description: "Number of command-lines that are remembered", Availability: AvailBoth},
	{Name: "runtimepath", Short: "rtp", Description: "List of directories used for runtime files", Availability: AvailBoth},
	{Name: "packpath", Short: "pp", Description: "List of directories used for :packadd", Availability: AvailBoth},
	{Name: "path", Short: "pa", Description: "List of directories searched with gf and friends", Availability: AvailBoth},
	{Name: "spell", Short: "", Description: "Enable spell checking", Availability: AvailBoth},
	{Name: "spelllang", Short: "spl", Description: "Languages to do spell checking for", Availability: AvailBoth},
	{Name: "conceallevel", Short: "cole", Description: "Whether concealable text is shown or hidden", Availability: AvailBoth},
	{Name: "modifiable", Short: "ma", Description: "Changes to the text are not possible when off", Availability: AvailBoth},
	{Name: "readonly", Short: "ro", Description: "Disallow writing the buffer", Availability: AvailBoth},
	{Name: "buftype", Short: "bt", Description: "Special type of buffer", Availability: AvailBoth},
	{Name: "bufhidden", Short: "bh", Description: "What happens when a buffer is no longer displayed", Availability: AvailBoth},
	{Name: "buflisted", Short: "bl", Description: "Whether the buffer shows up in the buffer list", Availability: AvailBoth},
	{Name: "compatible", Short: "cp", Description: "Behave Vi-compatible as much as possible", Availability: AvailVimOnly},
	{Name: "lazyredraw", Short: "lz", Description: "Don't redraw while executing macros", Availability: AvailBoth},
	{Name: "magic", Short: "", Description: "Special characters in search patterns", Availability: AvailBoth},
	{Name: "grepprg", Short: "gp", Description: "Program used for :grep", Availability: AvailBoth},
	{Name: "errorformat", Short: "efm", Description: "Description of the lines in the error file", Availability: AvailBoth},
	{Name: "shell", Short: "sh", Description: "Name of shell to use for external commands", Availability: AvailBoth},
	{Name: "virtualedit", Short: "ve", Description: "When to use virtual editing", Availability: AvailBoth},
	{Name: "whichwrap", Short: "ww", Description: "Allow specified keys to cross line boundaries", Availability: AvailBoth},
	{Name: "backspace", Short: "bs", Description: "How backspace works at start of line", Availability: AvailBoth},
	{Name: "iskeyword", Short: "isk", Description: "Characters included in keywords", Availability: AvailBoth},
	{Name: "winbar", Short: "wbr", Description: "Custom format for the window bar", Availability: AvailNeovimOnly},
	{Name: "pumblend", Short: "pb", Description: "Transparency for the popup menu", Availability: AvailNeovimOnly},
	{Name: "winblend", Short: "winbl", Description: "Transparency for floating windows", Availability: AvailNeovimOnly},
	{Name: "inccommand", Short: "icm", Description: "Live preview of substitution", Availability: AvailNeovimOnly},
	{Name: "laststatus3", Short: "", Description: "Global statusline", Availability: AvailNeovimOnly},
	{Name: "cryptmethod", Short: "cm", Description: "Encryption method for file writing", Availability: AvailVimOnly},
	{Name: "ttymouse", Short: "ttym", Description: "Type of mouse codes generated", Availability: AvailVimOnly},
}

// BuiltinVariables lists predefined variables.
var BuiltinVariables = []BuiltinVariable{
	{Name: "v:true", Description: "A Number with value one, used as Boolean true", Availability: AvailBoth},
	{Name: "v:false", Description: "A Number with value zero, used as Boolean false", Availability: AvailBoth},
	{Name: "v:null", Description: "Special value meaning no value", Availability: AvailBoth},
	{Name: "v:count", Description: "The count given for the last Normal mode command", Availability: AvailBoth},
	{Name: "v:count1", Description: "Like v:count, but defaults to one", Availability: AvailBoth},
	{Name: "v:errmsg", Description: "Last given error message", Availability: AvailBoth},
	{Name: "v:exception", Description: "The value of the exception most recently caught", Availability: AvailBoth},
	{Name: "v:throwpoint", Description: "Where the exception was thrown", Availability: AvailBoth},
	{Name: "v:shell_error", Description: "Result of the last shell command", Availability: AvailBoth},
	{Name: "v:version", Description: "Version number of Vim", Availability: AvailBoth},
	{Name: "v:progname", Description: "The name with which Vim was invoked", Availability: AvailBoth},
	{Name: "v:progpath", Description: "The full path of the Vim executable", Availability: AvailBoth},
	{Name: "v:servername", Description: "The name of the Vim server", Availability: AvailBoth},
	{Name: "v:val", Description: "Current item in map() and filter() expressions", Availability: AvailBoth},
	{Name: "v:key", Description: "Current key in map() and filter() over a Dict", Availability: AvailBoth},
	{Name: "v:fname", Description: "The file name set by 'includeexpr'", Availability: AvailBoth},
	{Name: "v:register", Description: "The register in effect for the current command", Availability: AvailBoth},
	{Name: "v:event", Description: "Data about the current event", Availability: AvailBoth},
	{Name: "v:vim_did_enter", Description: "Zero until most of startup is done", Availability: AvailBoth},
	{Name: "v:lua", Description: "Prefix for calling Lua functions", Availability: AvailNeovimOnly},
	{Name: "v:t_number", Description: "Value of Number type", Availability: AvailBoth},
	{Name: "v:t_string", Description: "Value of String type", Availability: AvailBoth},
	{Name: "v:t_list", Description: "Value of List type", Availability: AvailBoth},
	{Name: "v:t_dict", Description: "Value of Dictionary type", Availability: AvailBoth},
	{Name: "v:t_func", Description: "Value of Funcref type", Availability: AvailBoth},
	{Name: "v:t_bool", Description: "Value of Boolean type", Availability: AvailBoth},
	{Name: "v:t_float", Description: "Value of Float type", Availability: AvailBoth},
}

// HasFeatures lists feature names accepted by has().
var HasFeatures = []HasFeature{
	{Name: "nvim", Description: "Running Neovim", Availability: AvailNeovimOnly},
	{Name: "vim9script", Description: "Vim9 script support", Availability: AvailVimOnly},
	{Name: "gui_running", Description: "The GUI is running", Availability: AvailBoth},
	{Name: "unix", Description: "Unix version of Vim", Availability: AvailBoth},
	{Name: "win32", Description: "Win32 version of Vim", Availability: AvailBoth},
	{Name: "mac", Description: "Macintosh version of Vim", Availability: AvailBoth},
	{Name: "linux", Description: "Linux version of Vim", Availability: AvailBoth},
	{Name: "bsd", Description: "BSD version of Vim", Availability: AvailBoth},
	{Name: "wsl", Description: "Running under Windows Subsystem for Linux", Availability: AvailBoth},
	{Name: "python3", Description: "Python 3 interface available", Availability: AvailBoth},
	{Name: "ruby", Description: "Ruby interface available", Availability: AvailBoth},
	{Name: "lua", Description: "Lua interface available", Availability: AvailBoth},
	{Name: "perl", Description: "Perl interface available", Availability: AvailBoth},
	{Name: "clipboard", Description: "Clipboard support", Availability: AvailBoth},
	{Name: "terminal", Description: "Terminal window support", Availability: AvailBoth},
	{Name: "timers", Description: "Timer support", Availability: AvailBoth},
	{Name: "job", Description: "Job control support", Availability: AvailVimOnly},
	{Name: "channel", Description: "Channel support", Availability: AvailVimOnly},
	{Name: "popupwin", Description: "Popup window support", Availability: AvailVimOnly},
	{Name: "textprop", Description: "Text property support", Availability: AvailVimOnly},
	{Name: "sound", Description: "Sound playing support", Availability: AvailBoth},
	{Name: "syntax", Description: "Syntax highlighting support", Availability: AvailBoth},
	{Name: "folding", Description: "Folding support", Availability: AvailBoth},
	{Name: "signs", Description: "Sign placing support", Availability: AvailBoth},
	{Name: "spell", Description: "Spell checking support", Availability: AvailBoth},
	{Name: "persistent_undo", Description: "Persistent undo support", Availability: AvailBoth},
	{Name: "multi_byte", Description: "Multi-byte character support", Availability: AvailBoth},
	{Name: "conceal", Description: "Conceal support", Availability: AvailBoth},
	{Name: "quickfix", Description: "Quickfix support", Availability: AvailBoth},
	{Name: "autocmd", Description: "Autocommand support", Availability: AvailBoth},
	{Name: "menu", Description: "Menu support", Availability: AvailBoth},
	{Name: "mouse", Description: "Mouse support", Availability: AvailBoth},
	{Name: "balloon_eval", Description: "Balloon evaluation support", Availability: AvailVimOnly},
	{Name: "gui_gtk", Description: "GTK GUI version", Availability: AvailVimOnly},
	{Name: "patch-8.2.0", Description: "Patch level check", Availability: AvailVimOnly},
}

// MapOptions lists the special <...> arguments of map commands.
var MapOptions = []MapOption{
	{Name: "<buffer>", Description: "Mapping is local to the current buffer"},
	{Name: "<nowait>", Description: "Do not wait for other, longer mappings"},
	{Name: "<silent>", Description: "Do not echo the command on the command line"},
	{Name: "<script>", Description: "Only remap characters using script-local mappings"},
	{Name: "<expr>", Description: "The RHS is an expression computing the mapping"},
	{Name: "<unique>", Description: "Fail if a mapping already exists"},
	{Name: "<special>", Description: "Allow special keys even with 'cpoptions' <"},
	{Name: "<Plug>", Description: "Prefix for plugin-defined mappings"},
	{Name: "<SID>", Description: "Script ID prefix for script-local functions"},
	{Name: "<Leader>", Description: "Value of g:mapleader"},
	{Name: "<LocalLeader>", Description: "Value of g:maplocalleader"},
	{Name: "<Cmd>", Description: "Execute a command without changing modes"},
}
