package diagram

import "strings"

// rightBorder maps every rune that may open a diagram line to the rune that
// closes it.
var rightBorder = map[rune]rune{
	'┌': '┐',
	'├': '┤',
	'└': '┘',
	'│': '│',
	'+': '+',
	'|': '|',
}

const (
	// ruleChars are the fill runes of a horizontal rule.
	ruleChars = "─-═"
	// ruleLeftChars open lines that are extended with fill runes.
	ruleLeftChars = "┌├└+"
	// junctionChars mark interior branch points in a horizontal rule.
	junctionChars = "┬┴┼╦╩╬╤╧╪┰┸"

	defaultFill = '─'
)

func isLeftBorder(r rune) bool {
	_, ok := rightBorder[r]
	return ok
}

func isRuleLeft(r rune) bool { return strings.ContainsRune(ruleLeftChars, r) }

func isContentLeft(r rune) bool { return r == '│' || r == '|' }

func isJunction(r rune) bool { return strings.ContainsRune(junctionChars, r) }

// fillRune returns the first horizontal-rule rune in r, or the default fill.
func fillRune(r []rune) rune {
	for _, c := range r {
		if strings.ContainsRune(ruleChars, c) {
			return c
		}
	}
	return defaultFill
}

// diagramTags are fence tags that may hold a diagram. The empty tag is an
// untagged fence.
var diagramTags = []string{"text", "ascii", "diagram", "txt", ""}

// codeTags are fence tags that always mean source code or data.
var codeTags = []string{
	"python", "py", "javascript", "js", "typescript", "ts", "rust", "go",
	"java", "c", "cpp", "c++", "csharp", "cs", "ruby", "rb", "php", "perl",
	"swift", "kotlin", "scala", "haskell", "hs", "lua", "r", "sql", "bash",
	"sh", "zsh", "fish", "powershell", "ps1", "html", "css", "scss", "sass",
	"less", "xml", "json", "yaml", "yml", "toml", "ini", "conf", "cfg",
	"dockerfile", "docker", "makefile", "make", "cmake", "elixir", "ex",
	"erlang", "erl", "clojure", "clj", "ocaml", "ml", "fsharp", "fs",
	"dart", "zig", "nim", "v", "vlang", "groovy", "matlab", "julia", "jl",
	"objc", "objective-c", "assembly", "asm", "nasm", "wasm", "graphql",
	"gql", "protobuf", "proto", "thrift", "csv", "diff", "patch",
}
