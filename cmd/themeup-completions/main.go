// Command themeup-completions writes every shell completion script into a
// directory for release packaging.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/themeup/cmd/themeup"
)

var scripts = map[string]string{
	"bash":       "themeup.bash",
	"zsh":        "_themeup",
	"fish":       "themeup.fish",
	"powershell": "themeup.ps1",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}
	if err := generate(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating completions: %v\n", err)
		os.Exit(1)
	}
}

func generate(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	root := themeup.NewRootCmd()
	for shell, name := range scripts {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		genErr := themeup.GenCompletion(root, shell, f)
		if err := f.Close(); err != nil && genErr == nil {
			genErr = err
		}
		if genErr != nil {
			return fmt.Errorf("%s: %w", shell, genErr)
		}
	}
	return nil
}
