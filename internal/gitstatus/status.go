package gitstatus

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/go-errors/errors"
)

// CommandFunc builds the exec.Cmd a Runner will run; it is swappable so
// tests can stub out the actual `git` invocation, mirroring the
// teacher's OSCommand.SetCommand testing hook.
type CommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

func defaultCommand(ctx context.Context, name string, arg ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, arg...)
}

// Runner invokes `git status --porcelain` for a directory and caches
// the parsed RepoStatus per repository root, since a directory listing
// typically asks about many sibling entries under the same repo.
type Runner struct {
	command CommandFunc

	mu    sync.Mutex
	cache map[string]*RepoStatus
}

// NewRunner returns a Runner backed by the real git executable.
func NewRunner() *Runner {
	return &Runner{command: defaultCommand, cache: map[string]*RepoStatus{}}
}

// SetCommand overrides the command function used by the Runner, for
// testing only.
func (r *Runner) SetCommand(cmd CommandFunc) {
	r.command = cmd
}

// FindRoot walks dir and its ancestors looking for a ".git" directory,
// returning the first ancestor (or dir itself) that contains one
// (original_source/git.cpp's IsUnderRepo).
func FindRoot(dir string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		info, err := os.Stat(filepath.Join(dir, ".git"))
		if err == nil && info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Status returns the parsed Git status for the repository containing
// dir, running `git status` only once per repo root and caching the
// result for subsequent calls. It returns a non-repo RepoStatus (Repo
// == false) rather than an error when dir isn't inside a repository.
func (r *Runner) Status(ctx context.Context, dir string, needIgnored bool) (*RepoStatus, error) {
	root, ok := FindRoot(dir)
	if !ok {
		return &RepoStatus{}, nil
	}

	r.mu.Lock()
	if cached, ok := r.cache[root]; ok {
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	args := []string{"-C", root, "status", "--porcelain", "--no-ahead-behind", "-unormal", "--branch"}
	if needIgnored {
		args = append(args, "--ignored")
	}

	cmd := r.command(ctx, "git", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, errors.Errorf("git status in %q: %s", root, err.Error())
	}

	status, err := ParsePorcelain(&out, root)
	if err != nil {
		return nil, errors.Errorf("parsing git status in %q: %s", root, err.Error())
	}

	r.mu.Lock()
	r.cache[root] = status
	r.mu.Unlock()
	return status, nil
}

// Invalidate drops a cached RepoStatus for root, forcing the next
// Status call for that root to re-run git.
func (r *Runner) Invalidate(root string) {
	r.mu.Lock()
	delete(r.cache, root)
	r.mu.Unlock()
}
