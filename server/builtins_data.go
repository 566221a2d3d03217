package server

// Static builtin tables consulted by completion, signature help, arity
// checking and the undefined-function lint. Reference: :help function-list,
// :help autocmd-events, :help option-list.

// BuiltinFunctions lists Vim's builtin functions with their :help signatures.
var BuiltinFunctions = []BuiltinFunction{
	{Name: "strlen", Signature: "strlen({string})", Description: "Return the number of bytes in {string}", Availability: AvailBoth},
	{Name: "strchars", Signature: "strchars({string} [, {skipcc}])", Description: "Return the number of characters in {string}", Availability: AvailBoth},
	{Name: "strwidth", Signature: "strwidth({string})", Description: "Return the display width of {string}", Availability: AvailBoth},
	{Name: "strdisplaywidth", Signature: "strdisplaywidth({string} [, {col}])", Description: "Return the display width of {string} starting at {col}", Availability: AvailBoth},
	{Name: "substitute", Signature: "substitute({string}, {pat}, {sub}, {flags})", Description: "Replace {pat} with {sub} in {string}", Availability: AvailBoth},
	{Name: "submatch", Signature: "submatch({nr} [, {list}])", Description: "Return a specific match in substitute", Availability: AvailBoth},
	{Name: "strpart", Signature: "strpart({string}, {start} [, {len} [, {chars}]])", Description: "Return part of a string", Availability: AvailBoth},
	{Name: "stridx", Signature: "stridx({haystack}, {needle} [, {start}])", Description: "Return index of {needle} in {haystack}", Availability: AvailBoth},
	{Name: "strridx", Signature: "strridx({haystack}, {needle} [, {start}])", Description: "Return last index of {needle} in {haystack}", Availability: AvailBoth},
	{Name: "split", Signature: "split({string} [, {pattern} [, {keepempty}]])", Description: "Split {string} into a List", Availability: AvailBoth},
	{Name: "join", Signature: "join({list} [, {sep}])", Description: "Join {list} items into a string", Availability: AvailBoth},
	{Name: "trim", Signature: "trim({string} [, {mask} [, {dir}]])", Description: "Remove characters from {string}", Availability: AvailBoth},
	{Name: "tolower", Signature: "tolower({string})", Description: "Convert {string} to lowercase", Availability: AvailBoth},
	{Name: "toupper", Signature: "toupper({string})", Description: "Convert {string} to uppercase", Availability: AvailBoth},
	{Name: "tr", Signature: "tr({string}, {fromstr}, {tostr})", Description: "Translate characters in {string}", Availability: AvailBoth},
	{Name: "printf", Signature: "printf({fmt}, {expr1}...)", Description: "Format a string like sprintf()", Availability: AvailBoth},
	{Name: "escape", Signature: "escape({string}, {chars})", Description: "Escape {chars} in {string} with backslash", Availability: AvailBoth},
	{Name: "shellescape", Signature: "shellescape({string} [, {special}])", Description: "Escape {string} for use as shell argument", Availability: AvailBoth},
	{Name: "fnameescape", Signature: "fnameescape({string})", Description: "Escape {string} for use as file name", Availability: AvailBoth},
	{Name: "match", Signature: "match({string}, {pattern} [, {start} [, {count}]])", Description: "Return index of {pattern} match in {string}", Availability: AvailBoth},
	{Name: "matchend", Signature: "matchend({string}, {pattern} [, {start} [, {count}]])", Description: "Return end index of {pattern} match", Availability: AvailBoth},
	{Name: "matchstr", Signature: "matchstr({string}, {pattern} [, {start} [, {count}]])", Description: "Return matched string", Availability: AvailBoth},
	{Name: "matchlist", Signature: "matchlist({string}, {pattern} [, {start} [, {count}]])", Description: "Return match and submatches as List", Availability: AvailBoth},
	{Name: "len", Signature: "len({expr})", Description: "Return the length of {expr}", Availability: AvailBoth},
	{Name: "empty", Signature: "empty({expr})", Description: "Return TRUE if {expr} is empty", Availability: AvailBoth},
	{Name: "get", Signature: "get({list}, {idx} [, {default}])", Description: "Get item {idx} from {list}", Availability: AvailBoth},
	{Name: "add", Signature: "add({list}, {expr})", Description: "Append {expr} to {list}", Availability: AvailBoth},
	{Name: "insert", Signature: "insert({list}, {item} [, {idx}])", Description: "Insert {item} into {list}", Availability: AvailBoth},
	{Name: "remove", Signature: "remove({list}, {idx} [, {end}])", Description: "Remove items from {list}", Availability: AvailBoth},
	{Name: "copy", Signature: "copy({expr})", Description: "Make a shallow copy of {expr}", Availability: AvailBoth},
	{Name: "deepcopy", Signature: "deepcopy({expr} [, {noref}])", Description: "Make a deep copy of {expr}", Availability: AvailBoth},
	{Name: "extend", Signature: "extend({list1}, {list2} [, {idx}])", Description: "Append {list2} to {list1}", Availability: AvailBoth},
	{Name: "filter", Signature: "filter({expr}, {func})", Description: "Filter items in {expr} using {func}", Availability: AvailBoth},
	{Name: "map", Signature: "map({expr}, {func})", Description: "Transform items in {expr} using {func}", Availability: AvailBoth},
	{Name: "sort", Signature: "sort({list} [, {func} [, {dict}]])", Description: "Sort {list} in-place", Availability: AvailBoth},
	{Name: "reverse", Signature: "reverse({list})", Description: "Reverse {list} in-place", Availability: AvailBoth},
	{Name: "uniq", Signature: "uniq({list} [, {func} [, {dict}]])", Description: "Remove duplicate adjacent items", Availability: AvailBoth},
	{Name: "index", Signature: "index({list}, {expr} [, {start} [, {ic}]])", Description: "Return index of {expr} in {list}", Availability: AvailBoth},
	{Name: "count", Signature: "count({list}, {expr} [, {ic} [, {max}]])", Description: "Count occurrences of {expr} in {list}", Availability: AvailBoth},
	{Name: "range", Signature: "range({expr} [, {max} [, {stride}]])", Description: "Return a List of numbers", Availability: AvailBoth},
	{Name: "repeat", Signature: "repeat({expr}, {count})", Description: "Repeat {expr} {count} times", Availability: AvailBoth},
	{Name: "flatten", Signature: "flatten({list} [, {maxdepth}])", Description: "Flatten nested lists", Availability: AvailBoth},
	{Name: "keys", Signature: "keys({dict})", Description: "Return List of keys in {dict}", Availability: AvailBoth},
	{Name: "values", Signature: "values({dict})", Description: "Return List of values in {dict}", Availability: AvailBoth},
	{Name: "items", Signature: "items({dict})", Description: "Return List of [key, value] pairs", Availability: AvailBoth},
	{Name: "has_key", Signature: "has_key({dict}, {key})", Description: "Return TRUE if {dict} has {key}", Availability: AvailBoth},
	{Name: "type", Signature: "type({expr})", Description: "Return the type of {expr}", Availability: AvailBoth},
	{Name: "typename", Signature: "typename({expr})", Description: "Return the type name of {expr}", Availability: AvailBoth},
	{Name: "bufnr", Signature: "bufnr([{expr} [, {create}]])", Description: "Return buffer number", Availability: AvailBoth},
	{Name: "bufname", Signature: "bufname([{expr}])", Description: "Return buffer name", Availability: AvailBoth},
	{Name: "bufexists", Signature: "bufexists({expr})", Description: "Return TRUE if buffer exists", Availability: AvailBoth},
	{Name: "buflisted", Signature: "buflisted({expr})", Description: "Return TRUE if buffer is listed", Availability: AvailBoth},
	{Name: "bufloaded", Signature: "bufloaded({expr})", Description: "Return TRUE if buffer is loaded", Availability: AvailBoth},
	{Name: "getbufline", Signature: "getbufline({buf}, {lnum} [, {end}])", Description: "Return lines from buffer", Availability: AvailBoth},
	{Name: "setbufline", Signature: "setbufline({buf}, {lnum}, {text})", Description: "Set lines in buffer", Availability: AvailBoth},
	{Name: "appendbufline", Signature: "appendbufline({buf}, {lnum}, {text})", Description: "Append lines to buffer", Availability: AvailBoth},
	{Name: "deletebufline", Signature: "deletebufline({buf}, {first} [, {last}])", Description: "Delete lines from buffer", Availability: AvailBoth},
	{Name: "winnr", Signature: "winnr([{arg}])", Description: "Return window number", Availability: AvailBoth},
	{Name: "winbufnr", Signature: "winbufnr({nr})", Description: "Return buffer number of window {nr}", Availability: AvailBoth},
	{Name: "tabpagenr", Signature: "tabpagenr([{arg}])", Description: "Return tab page number", Availability: AvailBoth},
	{Name: "tabpagebuflist", Signature: "tabpagebuflist([{arg}])", Description: "Return List of buffer numbers in tab", Availability: AvailBoth},
	{Name: "line", Signature: "line({expr} [, {winid}])", Description: "Return line number of {expr}", Availability: AvailBoth},
	{Name: "col", Signature: "col({expr} [, {winid}])", Description: "Return column number of {expr}", Availability: AvailBoth},
	{Name: "virtcol", Signature: "virtcol({expr} [, {list} [, {winid}]])", Description: "Return screen column of {expr}", Availability: AvailBoth},
	{Name: "getpos", Signature: "getpos({expr})", Description: "Return position of {expr}", Availability: AvailBoth},
	{Name: "setpos", Signature: "setpos({expr}, {list})", Description: "Set position of {expr}", Availability: AvailBoth},
	{Name: "cursor", Signature: "cursor({lnum}, {col} [, {off}])", Description: "Move cursor to position", Availability: AvailBoth},
	{Name: "getcurpos", Signature: "getcurpos([{winnr}])", Description: "Return cursor position", Availability: AvailBoth},
	{Name: "getline", Signature: "getline({lnum} [, {end}])", Description: "Return line(s) from current buffer", Availability: AvailBoth},
	{Name: "setline", Signature: "setline({lnum}, {text})", Description: "Set line {lnum} to {text}", Availability: AvailBoth},
	{Name: "append", Signature: "append({lnum}, {text})", Description: "Append {text} after line {lnum}", Availability: AvailBoth},
	{Name: "search", Signature: "search({pattern} [, {flags} [, {stopline} [, {timeout} [, {skip}]]]])", Description: "Search for {pattern}, return line number of match", Availability: AvailBoth},
	{Name: "searchpos", Signature: "searchpos({pattern} [, {flags} [, {stopline} [, {timeout} [, {skip}]]]])", Description: "Search for {pattern}, return [lnum, col] of match", Availability: AvailBoth},
	{Name: "searchpair", Signature: "searchpair({start}, {middle}, {end} [, {flags} [, {skip} [, {stopline} [, {timeout}]]]])", Description: "Search for matching pair of start/end patterns", Availability: AvailBoth},
	{Name: "searchpairpos", Signature: "searchpairpos({start}, {middle}, {end} [, {flags} [, {skip} [, {stopline} [, {timeout}]]]])", Description: "Search for matching pair, return [lnum, col]", Availability: AvailBoth},
	{Name: "expand", Signature: "expand({string} [, {nosuf} [, {list}]])", Description: "Expand wildcards and special keywords", Availability: AvailBoth},
	{Name: "glob", Signature: "glob({expr} [, {nosuf} [, {list} [, {alllinks}]]])", Description: "Expand file wildcards", Availability: AvailBoth},
	{Name: "globpath", Signature: "globpath({path}, {expr} [, {nosuf} [, {list} [, {alllinks}]]])", Description: "Expand file wildcards in {path}", Availability: AvailBoth},
	{Name: "filereadable", Signature: "filereadable({file})", Description: "Return TRUE if {file} is readable", Availability: AvailBoth},
	{Name: "filewritable", Signature: "filewritable({file})", Description: "Return TRUE if {file} is writable", Availability: AvailBoth},
	{Name: "isdirectory", Signature: "isdirectory({directory})", Description: "Return TRUE if {directory} is a directory", Availability: AvailBoth},
	{Name: "fnamemodify", Signature: "fnamemodify({fname}, {mods})", Description: "Modify file name according to {mods}", Availability: AvailBoth},
	{Name: "readfile", Signature: "readfile({fname} [, {type} [, {max}]])", Description: "Read file into a List", Availability: AvailBoth},
	{Name: "writefile", Signature: "writefile({list}, {fname} [, {flags}])", Description: "Write List to file", Availability: AvailBoth},
	{Name: "delete", Signature: "delete({fname} [, {flags}])", Description: "Delete file or directory", Availability: AvailBoth},
	{Name: "rename", Signature: "rename({from}, {to})", Description: "Rename file", Availability: AvailBoth},
	{Name: "mkdir", Signature: "mkdir({name} [, {path} [, {prot}]])", Description: "Create directory", Availability: AvailBoth},
	{Name: "getcwd", Signature: "getcwd([{winnr} [, {tabnr}]])", Description: "Return current working directory", Availability: AvailBoth},
	{Name: "chdir", Signature: "chdir({dir})", Description: "Change current directory", Availability: AvailBoth},
	{Name: "system", Signature: "system({cmd} [, {input}])", Description: "Execute shell command and return output", Availability: AvailBoth},
	{Name: "systemlist", Signature: "systemlist({cmd} [, {input} [, {keepempty}]])", Description: "Execute shell command and return List", Availability: AvailBoth},
	{Name: "executable", Signature: "executable({expr})", Description: "Return TRUE if {expr} is executable", Availability: AvailBoth},
	{Name: "exepath", Signature: "exepath({expr})", Description: "Return full path to executable", Availability: AvailBoth},
	{Name: "environ", Signature: "environ()", Description: "Return Dict of environment variables", Availability: AvailBoth},
	{Name: "getenv", Signature: "getenv({name})", Description: "Return environment variable value", Availability: AvailBoth},
	{Name: "setenv", Signature: "setenv({name}, {val})", Description: "Set environment variable", Availability: AvailBoth},
	{Name: "exists", Signature: "exists({expr})", Description: "Return TRUE if {expr} exists", Availability: AvailBoth},
	{Name: "has", Signature: "has({feature} [, {check}])", Description: "Return TRUE if feature is supported", Availability: AvailBoth},
	{Name: "eval", Signature: "eval({string})", Description: "Evaluate {string} as expression", Availability: AvailBoth},
	{Name: "execute", Signature: "execute({command} [, {silent}])", Description: "Execute Ex command and return output", Availability: AvailBoth},
	{Name: "input", Signature: "input({prompt} [, {text} [, {completion}]])", Description: "Get input from user", Availability: AvailBoth},
	{Name: "confirm", Signature: "confirm({msg} [, {choices} [, {default} [, {type}]]])", Description: "Show confirmation dialog", Availability: AvailBoth},
	{Name: "feedkeys", Signature: "feedkeys({string} [, {mode}])", Description: "Add keys to input buffer", Availability: AvailBoth},
	{Name: "mode", Signature: "mode([{expr}])", Description: "Return current mode", Availability: AvailBoth},
	{Name: "visualmode", Signature: "visualmode([{expr}])", Description: "Return last visual mode", Availability: AvailBoth},
	{Name: "echo", Signature: "echo {expr1} ..", Description: "Echo expressions", Availability: AvailBoth},
	{Name: "echomsg", Signature: "echomsg {expr1} ..", Description: "Echo as message", Availability: AvailBoth},
	{Name: "echoerr", Signature: "echoerr {expr1} ..", Description: "Echo as error message", Availability: AvailBoth},
	{Name: "call", Signature: "call({func}, {arglist} [, {dict}])", Description: "Call {func} with arguments from {arglist}", Availability: AvailBoth},
	{Name: "function", Signature: "function({name} [, {arglist}] [, {dict}])", Description: "Return Funcref to function {name}", Availability: AvailBoth},
	{Name: "funcref", Signature: "funcref({name} [, {arglist}] [, {dict}])", Description: "Return Funcref like function()", Availability: AvailBoth},
	{Name: "json_encode", Signature: "json_encode({expr})", Description: "Encode {expr} as JSON", Availability: AvailBoth},
	{Name: "json_decode", Signature: "json_decode({string})", Description: "Decode JSON {string}", Availability: AvailBoth},
	{Name: "timer_start", Signature: "timer_start({time}, {callback} [, {options}])", Description: "Create a timer", Availability: AvailBoth},
	{Name: "timer_stop", Signature: "timer_stop({timer})", Description: "Stop a timer", Availability: AvailBoth},
	{Name: "timer_stopall", Signature: "timer_stopall()", Description: "Stop all timers", Availability: AvailBoth},
	{Name: "abs", Signature: "abs({expr})", Description: "Return the absolute value of {expr}", Availability: AvailBoth},
	{Name: "ceil", Signature: "ceil({expr})", Description: "Round {expr} up to the nearest integer", Availability: AvailBoth},
	{Name: "floor", Signature: "floor({expr})", Description: "Round {expr} down to the nearest integer", Availability: AvailBoth},
	{Name: "round", Signature: "round({expr})", Description: "Round {expr} to the nearest integer", Availability: AvailBoth},
	{Name: "trunc", Signature: "trunc({expr})", Description: "Truncate the decimal part of {expr}", Availability: AvailBoth},
	{Name: "float2nr", Signature: "float2nr({expr})", Description: "Convert Float {expr} to a Number", Availability: AvailBoth},
	{Name: "str2nr", Signature: "str2nr({string} [, {base} [, {quoted}]])", Description: "Convert {string} to a Number", Availability: AvailBoth},
	{Name: "str2float", Signature: "str2float({string} [, {quoted}])", Description: "Convert {string} to a Float", Availability: AvailBoth},
	{Name: "str2list", Signature: "str2list({string} [, {utf8}])", Description: "Convert {string} to a List of character numbers", Availability: AvailBoth},
	{Name: "nr2char", Signature: "nr2char({expr} [, {utf8}])", Description: "Return the character for character code {expr}", Availability: AvailBoth},
	{Name: "char2nr", Signature: "char2nr({string} [, {utf8}])", Description: "Return the character code of the first char in {string}", Availability: AvailBoth},
	{Name: "fmod", Signature: "fmod({expr1}, {expr2})", Description: "Return the remainder of {expr1} / {expr2}", Availability: AvailBoth},
	{Name: "pow", Signature: "pow({x}, {y})", Description: "Return {x} to the power of {y}", Availability: AvailBoth},
	{Name: "sqrt", Signature: "sqrt({expr})", Description: "Return the square root of {expr}", Availability: AvailBoth},
	{Name: "exp", Signature: "exp({expr})", Description: "Return the exponential of {expr}", Availability: AvailBoth},
	{Name: "log", Signature: "log({expr})", Description: "Return the natural logarithm of {expr}", Availability: AvailBoth},
	{Name: "log10", Signature: "log10({expr})", Description: "Return the base-10 logarithm of {expr}", Availability: AvailBoth},
	{Name: "sin", Signature: "sin({expr})", Description: "Return the sine of {expr}", Availability: AvailBoth},
	{Name: "cos", Signature: "cos({expr})", Description: "Return the cosine of {expr}", Availability: AvailBoth},
	{Name: "tan", Signature: "tan({expr})", Description: "Return the tangent of {expr}", Availability: AvailBoth},
	{Name: "min", Signature: "min({expr})", Description: "Return the minimum value of items in {expr}", Availability: AvailBoth},
	{Name: "max", Signature: "max({expr})", Description: "Return the maximum value of items in {expr}", Availability: AvailBoth},
	{Name: "rand", Signature: "rand([{expr}])", Description: "Return a pseudo-random number", Availability: AvailBoth},
	{Name: "srand", Signature: "srand([{expr}])", Description: "Initialize a seed for rand()", Availability: AvailBoth},
	{Name: "and", Signature: "and({expr}, {expr})", Description: "Bitwise AND", Availability: AvailBoth},
	{Name: "or", Signature: "or({expr}, {expr})", Description: "Bitwise OR", Availability: AvailBoth},
	{Name: "xor", Signature: "xor({expr}, {expr})", Description: "Bitwise XOR", Availability: AvailBoth},
	{Name: "invert", Signature: "invert({expr})", Description: "Bitwise invert", Availability: AvailBoth},
	{Name: "getreg", Signature: "getreg([{regname} [, 1 [, {list}]]])", Description: "Return the contents of a register", Availability: AvailBoth},
	{Name: "setreg", Signature: "setreg({regname}, {value} [, {options}])", Description: "Set the contents of a register", Availability: AvailBoth},
	{Name: "getregtype", Signature: "getregtype([{regname}])", Description: "Return the type of a register", Availability: AvailBoth},
	{Name: "histadd", Signature: "histadd({history}, {item})", Description: "Add an item to a history", Availability: AvailBoth},
	{Name: "histget", Signature: "histget({history} [, {index}])", Description: "Get a history entry", Availability: AvailBoth},
	{Name: "histdel", Signature: "histdel({history} [, {item}])", Description: "Delete history entries", Availability: AvailBoth},
	{Name: "hostname", Signature: "hostname()", Description: "Return the name of the machine", Availability: AvailBoth},
	{Name: "localtime", Signature: "localtime()", Description: "Return the current time in seconds", Availability: AvailBoth},
	{Name: "strftime", Signature: "strftime({format} [, {time}])", Description: "Format a time into a string", Availability: AvailBoth},
	{Name: "strptime", Signature: "strptime({format}, {timestring})", Description: "Convert a time string to unix time", Availability: AvailBoth},
	{Name: "reltime", Signature: "reltime([{start} [, {end}]])", Description: "Return a time value", Availability: AvailBoth},
	{Name: "reltimestr", Signature: "reltimestr({time})", Description: "Convert a time value to a string", Availability: AvailBoth},
	{Name: "reltimefloat", Signature: "reltimefloat({time})", Description: "Convert a time value to a Float", Availability: AvailBoth},
	{Name: "getqflist", Signature: "getqflist([{what}])", Description: "Return the quickfix list", Availability: AvailBoth},
	{Name: "setqflist", Signature: "setqflist({list} [, {action} [, {what}]])", Description: "Modify the quickfix list", Availability: AvailBoth},
	{Name: "getloclist", Signature: "getloclist({nr} [, {what}])", Description: "Return the location list of a window", Availability: AvailBoth},
	{Name: "setloclist", Signature: "setloclist({nr}, {list} [, {action} [, {what}]])", Description: "Modify the location list of a window", Availability: AvailBoth},
	{Name: "getcompletion", Signature: "getcompletion({pat}, {type} [, {filtered}])", Description: "Return command-line completion matches", Availability: AvailBoth},
	{Name: "complete", Signature: "complete({startcol}, {matches})", Description: "Set Insert mode completion matches", Availability: AvailBoth},
	{Name: "complete_add", Signature: "complete_add({expr})", Description: "Add a completion match", Availability: AvailBoth},
	{Name: "complete_check", Signature: "complete_check()", Description: "Check for key typed during completion", Availability: AvailBoth},
	{Name: "pumvisible", Signature: "pumvisible()", Description: "Return TRUE if the popup menu is visible", Availability: AvailBoth},
	{Name: "wildmenumode", Signature: "wildmenumode()", Description: "Return TRUE if the wildmenu is active", Availability: AvailBoth},
	{Name: "winheight", Signature: "winheight({nr})", Description: "Return the height of window {nr}", Availability: AvailBoth},
	{Name: "winwidth", Signature: "winwidth({nr})", Description: "Return the width of window {nr}", Availability: AvailBoth},
	{Name: "winlayout", Signature: "winlayout([{tabnr}])", Description: "Return the layout of windows in a tab page", Availability: AvailBoth},
	{Name: "win_getid", Signature: "win_getid([{win} [, {tab}]])", Description: "Return the window ID of a window", Availability: AvailBoth},
	{Name: "win_gotoid", Signature: "win_gotoid({expr})", Description: "Go to the window with the given ID", Availability: AvailBoth},
	{Name: "win_id2win", Signature: "win_id2win({expr})", Description: "Return the window number of a window ID", Availability: AvailBoth},
	{Name: "getwininfo", Signature: "getwininfo([{winid}])", Description: "Return information about windows", Availability: AvailBoth},
	{Name: "getbufinfo", Signature: "getbufinfo([{buf}])", Description: "Return information about buffers", Availability: AvailBoth},
	{Name: "gettabinfo", Signature: "gettabinfo([{tabnr}])", Description: "Return information about tab pages", Availability: AvailBoth},
	{Name: "getbufvar", Signature: "getbufvar({buf}, {varname} [, {def}])", Description: "Return a buffer-local variable", Availability: AvailBoth},
	{Name: "setbufvar", Signature: "setbufvar({buf}, {varname}, {val})", Description: "Set a buffer-local variable", Availability: AvailBoth},
	{Name: "getwinvar", Signature: "getwinvar({nr}, {varname} [, {def}])", Description: "Return a window-local variable", Availability: AvailBoth},
	{Name: "setwinvar", Signature: "setwinvar({nr}, {varname}, {val})", Description: "Set a window-local variable", Availability: AvailBoth},
	{Name: "gettabvar", Signature: "gettabvar({nr}, {varname} [, {def}])", Description: "Return a tab-local variable", Availability: AvailBoth},
	{Name: "settabvar", Signature: "settabvar({nr}, {varname}, {val})", Description: "Set a tab-local variable", Availability: AvailBoth},
	{Name: "sign_define", Signature: "sign_define({name} [, {dict}])", Description: "Define or update a sign", Availability: AvailBoth},
	{Name: "sign_place", Signature: "sign_place({id}, {group}, {name}, {buf} [, {dict}])", Description: "Place a sign", Availability: AvailBoth},
	{Name: "sign_unplace", Signature: "sign_unplace({group} [, {dict}])", Description: "Remove a placed sign", Availability: AvailBoth},
	{Name: "matchadd", Signature: "matchadd({group}, {pattern} [, {priority} [, {id} [, {dict}]]])", Description: "Define a pattern to highlight", Availability: AvailBoth},
	{Name: "matchdelete", Signature: "matchdelete({id} [, {win}])", Description: "Delete a match", Availability: AvailBoth},
	{Name: "clearmatches", Signature: "clearmatches([{win}])", Description: "Clear all matches", Availability: AvailBoth},
	{Name: "getmatches", Signature: "getmatches([{win}])", Description: "Return all matches", Availability: AvailBoth},
	{Name: "setmatches", Signature: "setmatches({list} [, {win}])", Description: "Restore a list of matches", Availability: AvailBoth},
	{Name: "undotree", Signature: "undotree([{buf}])", Description: "Return the state of the undo tree", Availability: AvailBoth},
	{Name: "undofile", Signature: "undofile({name})", Description: "Return the name of the undo file", Availability: AvailBoth},
	{Name: "changenr", Signature: "changenr()", Description: "Return the number of the most recent change", Availability: AvailBoth},
	{Name: "did_filetype", Signature: "did_filetype()", Description: "Return TRUE if a FileType autocommand was used", Availability: AvailBoth},
	{Name: "maparg", Signature: "maparg({name} [, {mode} [, {abbr} [, {dict}]]])", Description: "Return the rhs of a mapping", Availability: AvailBoth},
	{Name: "mapcheck", Signature: "mapcheck({name} [, {mode} [, {abbr}]])", Description: "Check for mappings matching {name}", Availability: AvailBoth},
	{Name: "mapset", Signature: "mapset({mode}, {abbr}, {dict})", Description: "Restore a mapping", Availability: AvailBoth},
	{Name: "taglist", Signature: "taglist({expr} [, {filename}])", Description: "Return a list of matching tags", Availability: AvailBoth},
	{Name: "tagfiles", Signature: "tagfiles()", Description: "Return a list of tags files", Availability: AvailBoth},
	{Name: "synID", Signature: "synID({lnum}, {col}, {trans})", Description: "Return the syntax ID at a position", Availability: AvailBoth},
	{Name: "synIDattr", Signature: "synIDattr({synID}, {what} [, {mode}])", Description: "Return an attribute of a syntax ID", Availability: AvailBoth},
	{Name: "synIDtrans", Signature: "synIDtrans({synID})", Description: "Return the translated syntax ID", Availability: AvailBoth},
	{Name: "synstack", Signature: "synstack({lnum}, {col})", Description: "Return the stack of syntax IDs at a position", Availability: AvailBoth},
	{Name: "foldclosed", Signature: "foldclosed({lnum})", Description: "Return the first line of a closed fold", Availability: AvailBoth},
	{Name: "foldclosedend", Signature: "foldclosedend({lnum})", Description: "Return the last line of a closed fold", Availability: AvailBoth},
	{Name: "foldlevel", Signature: "foldlevel({lnum})", Description: "Return the fold level at {lnum}", Availability: AvailBoth},
	{Name: "foldtext", Signature: "foldtext()", Description: "Return the line displayed for a closed fold", Availability: AvailBoth},
	{Name: "indent", Signature: "indent({lnum})", Description: "Return the indent of line {lnum}", Availability: AvailBoth},
	{Name: "cindent", Signature: "cindent({lnum})", Description: "Return the C indent of line {lnum}", Availability: AvailBoth},
	{Name: "lispindent", Signature: "lispindent({lnum})", Description: "Return the Lisp indent of line {lnum}", Availability: AvailBoth},
	{Name: "nextnonblank", Signature: "nextnonblank({lnum})", Description: "Return the line number of the next non-blank line", Availability: AvailBoth},
	{Name: "prevnonblank", Signature: "prevnonblank({lnum})", Description: "Return the line number of the previous non-blank line", Availability: AvailBoth},
	{Name: "wordcount", Signature: "wordcount()", Description: "Return byte/word/char counts of the buffer", Availability: AvailBoth},
	{Name: "byte2line", Signature: "byte2line({byte})", Description: "Return the line number at byte count {byte}", Availability: AvailBoth},
	{Name: "line2byte", Signature: "line2byte({lnum})", Description: "Return the byte count of line {lnum}", Availability: AvailBoth},
	{Name: "screenrow", Signature: "screenrow()", Description: "Return the current screen row of the cursor", Availability: AvailBoth},
	{Name: "screencol", Signature: "screencol()", Description: "Return the current screen column of the cursor", Availability: AvailBoth},
	{Name: "screenpos", Signature: "screenpos({winid}, {lnum}, {col})", Description: "Return the screen position of a text character", Availability: AvailBoth},
	{Name: "nvim_get_current_buf", Signature: "nvim_get_current_buf()", Description: "Return the current buffer handle", Availability: AvailNeovimOnly},
	{Name: "nvim_buf_set_lines", Signature: "nvim_buf_set_lines({buffer}, {start}, {end}, {strict_indexing}, {replacement})", Description: "Set lines in a buffer", Availability: AvailNeovimOnly},
	{Name: "nvim_create_autocmd", Signature: "nvim_create_autocmd({event}, {opts})", Description: "Create an autocommand", Availability: AvailNeovimOnly},
	{Name: "nvim_set_keymap", Signature: "nvim_set_keymap({mode}, {lhs}, {rhs}, {opts})", Description: "Set a global mapping", Availability: AvailNeovimOnly},
	{Name: "stdpath", Signature: "stdpath({what})", Description: "Return standard path location", Availability: AvailNeovimOnly},
	{Name: "jobstart", Signature: "jobstart({cmd} [, {opts}])", Description: "Start a job", Availability: AvailNeovimOnly},
	{Name: "jobstop", Signature: "jobstop({id})", Description: "Stop a job", Availability: AvailNeovimOnly},
	{Name: "chansend", Signature: "chansend({id}, {data})", Description: "Send data to a channel", Availability: AvailNeovimOnly},
	{Name: "luaeval", Signature: "luaeval({expr} [, {expr}])", Description: "Evaluate a Lua expression", Availability: AvailNeovimOnly},
	{Name: "job_start", Signature: "job_start({command} [, {options}])", Description: "Start a job", Availability: AvailVimOnly},
	{Name: "job_stop", Signature: "job_stop({job} [, {how}])", Description: "Stop a job", Availability: AvailVimOnly},
	{Name: "ch_sendraw", Signature: "ch_sendraw({handle}, {expr} [, {options}])", Description: "Send raw data to a channel", Availability: AvailVimOnly},
	{Name: "popup_create", Signature: "popup_create({what}, {options})", Description: "Create a popup window", Availability: AvailVimOnly},
	{Name: "popup_close", Signature: "popup_close({id} [, {result}])", Description: "Close a popup window", Availability: AvailVimOnly},
	{Name: "prop_add", Signature: "prop_add({lnum}, {col}, {props})", Description: "Add a text property", Availability: AvailVimOnly},
	{Name: "term_start", Signature: "term_start({cmd} [, {options}])", Description: "Open a terminal window", Availability: AvailVimOnly},
}
