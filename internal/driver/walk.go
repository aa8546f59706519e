package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/sirupsen/logrus"
)

// DiscoverOptions controls which files a directory target yields.
type DiscoverOptions struct {
	// Ignore holds doublestar globs from the config and --ignore.
	Ignore []string
	// Unrestricted disables .gitignore files and the .git skip.
	Unrestricted bool
	Log          logrus.FieldLogger
}

// matchGlob matches a config glob against the path relative to the target,
// its base name and any suffix of the path.
func matchGlob(pattern, rel string) bool {
	if ok, _ := doublestar.Match(pattern, rel); ok {
		return true
	}
	if ok, _ := doublestar.Match(pattern, path.Base(rel)); ok {
		return true
	}
	ok, _ := doublestar.Match("**/"+pattern, rel)
	return ok
}

// gitRules collects .gitignore patterns from the repository root down to
// the directory being walked. Paths are split relative to base.
type gitRules struct {
	base     string
	patterns []gitignore.Pattern
}

// newGitRules finds the enclosing repository of dir and loads the
// .gitignore files of every directory between its root and dir.
func newGitRules(dir string) (*gitRules, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	g := &gitRules{base: abs}
	root, ok := repoRoot(abs)
	if !ok {
		return g, nil
	}
	g.base = root
	for _, anc := range ancestorsBetween(root, abs) {
		if err := g.load(anc); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// repoRoot walks upward looking for a .git entry.
func repoRoot(dir string) (string, bool) {
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ancestorsBetween returns root and its descendants leading to dir,
// dir excluded.
func ancestorsBetween(root, dir string) []string {
	var out []string
	for d := dir; d != root; {
		parent := filepath.Dir(d)
		if parent == d {
			return nil
		}
		out = append(out, parent)
		d = parent
	}
	slices.Reverse(out)
	return out
}

func (g *gitRules) split(abs string) []string {
	rel, err := filepath.Rel(g.base, abs)
	if err != nil || rel == "." {
		return nil
	}
	return strings.Split(filepath.ToSlash(rel), "/")
}

// load reads dir/.gitignore, if any. Patterns are scoped to dir.
func (g *gitRules) load(dir string) error {
	f, err := os.Open(filepath.Join(dir, ".gitignore"))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	domain := g.split(dir)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if !strings.HasSuffix(line, `\ `) {
			line = strings.TrimRight(line, " \t")
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		g.patterns = append(g.patterns, gitignore.ParsePattern(line, domain))
	}
	return sc.Err()
}

func (g *gitRules) ignored(abs string, isDir bool) bool {
	if len(g.patterns) == 0 {
		return false
	}
	return gitignore.NewMatcher(g.patterns).Match(g.split(abs), isDir)
}

// Discover lists the files to lint under target, sorted lexically. A file
// target is returned as is, whatever its extension.
func Discover(target string, opts DiscoverOptions) ([]string, error) {
	log := opts.Log
	if log == nil {
		log = discardLogger()
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{target}, nil
	}

	globs := make([]string, 0, len(opts.Ignore))
	for _, g := range opts.Ignore {
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("bad ignore pattern %q", g)
		}
		globs = append(globs, strings.TrimSuffix(g, "/"))
	}
	var git *gitRules
	if !opts.Unrestricted {
		if git, err = newGitRules(target); err != nil {
			return nil, err
		}
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(target, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(target, p)
		if err != nil {
			return err
		}
		abs := filepath.Join(absTarget, rel)
		if p == target {
			if git != nil {
				return git.load(abs)
			}
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() && d.Name() == ".git" && !opts.Unrestricted {
			return filepath.SkipDir
		}
		skip := slices.ContainsFunc(globs, func(g string) bool { return matchGlob(g, rel) })
		if !skip && git != nil {
			skip = git.ignored(abs, d.IsDir())
		}
		if skip {
			log.WithField("path", rel).Debug("ignored")
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if git != nil {
				return git.load(abs)
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".nix") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}
