package main

import (
	"os"
	"strings"

	"inkwell-cli/internal/cli"

	// Load .env before config reads the environment.
	_ "github.com/joho/godotenv/autoload"
)

// lookupCommands maps an id prefix to the subcommand chain that shows it.
var lookupCommands = map[string][]string{
	"n-": {"notes", "show"},
	"t-": {"tasks", "show"},
}

func lookupFor(s string) ([]string, bool) {
	s = strings.TrimSpace(s)
	for prefix, cmd := range lookupCommands {
		// Permissive on the suffix; ids are server-generated but users paste
		// variants.
		if strings.HasPrefix(s, prefix) && len(s) > len(prefix) {
			return cmd, true
		}
	}
	return nil, false
}

func rewriteDirectLookupArgs(argv []string) []string {
	// Convenience: `inkwell n-123` works like `inkwell notes show n-123`
	// (and `inkwell t-123` like `inkwell tasks show t-123`).
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite
	// argv before parsing.
	//
	// Users may pass persistent flags first (e.g. `inkwell --api ... n-123`),
	// so we must find the first positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	// Minimal persistent-flag awareness. Unrecognized flags are skipped
	// without consuming a value, so we never eat the id by accident.
	valueFlags := map[string]bool{
		"--api":    true,
		"--format": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Stop flag parsing; next token (if any) is the first positional.
			if i+1 < len(argv) {
				if cmd, ok := lookupFor(argv[i+1]); ok {
					out := make([]string, 0, len(argv)+2)
					out = append(out, argv[:i+1]...)
					out = append(out, cmd...)
					out = append(out, argv[i+1:]...)
					return out
				}
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			// --flag=value form
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		if cmd, ok := lookupFor(a); ok {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, cmd...)
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
