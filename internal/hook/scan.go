package hook

import (
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/mdseltools/mdselmcp/internal/config"
)

// readerCommands are commands whose file arguments amount to reading the
// file into the agent's context.
var readerCommands = map[string]bool{
	"cat":  true,
	"head": true,
	"tail": true,
	"less": true,
	"more": true,
	"bat":  true,
}

// ScanCommand parses a Bash command and returns the Markdown file paths
// passed as arguments to reader commands, in order of appearance. Only
// plain literal words are considered; anything quoted, expanded, or
// otherwise dynamic is ignored. Unparseable commands yield nothing so the
// hook stays fail-open.
func ScanCommand(cmd string, cfg *config.Config) []string {
	if strings.TrimSpace(cmd) == "" {
		return nil
	}

	parser := syntax.NewParser()
	prog, err := parser.Parse(strings.NewReader(cmd), "")
	if err != nil {
		return nil
	}

	var files []string
	seen := make(map[string]bool)

	syntax.Walk(prog, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}

		name := call.Args[0].Lit()
		if name == "" || !readerCommands[filepath.Base(name)] {
			return true
		}

		for _, word := range call.Args[1:] {
			arg := word.Lit()
			if arg == "" || strings.HasPrefix(arg, "-") {
				continue
			}
			if cfg.MatchesExtension(arg) && !seen[arg] {
				seen[arg] = true
				files = append(files, arg)
			}
		}
		return true
	})

	return files
}
