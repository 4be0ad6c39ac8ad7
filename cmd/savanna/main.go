package main

import (
	"os"
	"strings"

	"savanna-cli/internal/cli"
)

// cartVerbs may be used without the "cart" prefix: `savanna confirm`.
var cartVerbs = map[string]bool{
	"show":        true,
	"add-food":    true,
	"add-safari":  true,
	"book-safari": true,
	"confirm":     true,
	"clear":       true,
}

// rewriteCartShortcutArgs inserts "cart" before a bare cart verb.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first, so the first positional
// token is located rather than assuming argv[1].
func rewriteCartShortcutArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":       true,
		"--workspace": true,
		"--backend":   true,
		"--format":    true,
	}

	insert := func(i int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "cart")
		return append(out, argv[i:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// "--" would make cobra treat "cart" as a root argument.
			if i+1 < len(argv) && cartVerbs[argv[i+1]] {
				out := insert(i + 1)
				return append(out[:i], out[i+1:]...)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if cartVerbs[a] {
			return insert(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteCartShortcutArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
