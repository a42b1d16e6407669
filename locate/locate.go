// Package locate enumerates candidate session files across provider
// directories. Codex keeps JSONL rollouts under <dir>/sessions/, nested by
// date; Claude Code keeps per-project JSONL files anywhere under its projects
// directory.
package locate

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File is one candidate session file tagged with its provider.
type File struct {
	Provider string
	Path     string
}

// Root is a directory to walk for one provider's session files.
type Root struct {
	Provider string
	Dir      string
}

// Codex returns the root for Codex CLI rollouts stored under <dir>/sessions/.
func Codex(dir string) Root {
	return Root{Provider: "codex", Dir: filepath.Join(dir, "sessions")}
}

// Claude returns the root for Claude Code session files under the projects
// directory.
func Claude(dir string) Root {
	return Root{Provider: "claude", Dir: dir}
}

// Walk calls fn for every .jsonl file under the given roots, in filesystem
// order. Roots that do not exist or are not directories are skipped; either
// provider may legitimately be absent on a machine. Unreadable subtrees are
// skipped as well. A non-nil error from fn aborts the walk and is returned.
func Walk(roots []Root, fn func(File) error) error {
	for _, root := range roots {
		if root.Dir == "" {
			continue
		}
		info, err := os.Stat(root.Dir)
		if err != nil || !info.IsDir() {
			continue
		}

		err = filepath.WalkDir(root.Dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".jsonl") {
				return nil
			}
			return fn(File{Provider: root.Provider, Path: path})
		})
		if err != nil {
			return err
		}
	}
	return nil
}
