package gitstatus

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
)

// RepoStatus is one repository's parsed `git status --porcelain
// --branch` output.
type RepoStatus struct {
	Repo   bool
	Main   bool // branch is "main" or "master"
	Clean  bool
	Branch string
	Root   string
	Files  map[string]FileStatus // keyed by full, OS-joined path
}

// Lookup reports the FileStatus recorded for an absolute path, if any.
func (s *RepoStatus) Lookup(path string) (FileStatus, bool) {
	if s == nil || s.Files == nil {
		return FileStatus{}, false
	}
	fs, ok := s.Files[path]
	return fs, ok
}

// ParsePorcelain reads `git status --porcelain --no-ahead-behind
// --branch` output and builds a RepoStatus rooted at root.
//
// Grounded on original_source/git.cpp's GitStatus line-by-line parser:
// a "## " branch header (optionally "HEAD (no branch)", a bare "No
// commits yet on ..." placeholder, or a "branch...upstream" ahead/behind
// suffix to trim), then one two-character status code per tracked file,
// a rename arrow to skip past, and an optional quoted filename.
func ParsePorcelain(r io.Reader, root string) (*RepoStatus, error) {
	status := &RepoStatus{Root: root, Files: map[string]FileStatus{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) >= 3 && line[0] == '#' && line[1] == '#' && line[2] == ' ' {
			if status.Branch == "" {
				status.Branch = parseBranchHeader(line[3:])
			}
			continue
		}
		if len(line) >= 3 && line[0] != 0 && line[1] != 0 && line[2] == ' ' {
			name, fs, ok := parseStatusLine(line)
			if !ok {
				continue
			}
			full := joinRepoPath(root, name)
			status.Files[full] = fs
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	status.Repo = true
	status.Clean = len(status.Files) == 0
	status.Main = status.Branch == "main" || status.Branch == "master"

	// An implicit ignore entry for the .git directory itself, added
	// after Clean is computed so an otherwise-empty working tree still
	// reports clean.
	status.Files[joinRepoPath(root, ".git")] = FileStatus{Staged: StateNone, Working: StateIgnored}

	return status, nil
}

func parseBranchHeader(rest string) string {
	if strings.EqualFold(rest, "HEAD (no branch)") {
		return "HEAD"
	}
	if strings.HasPrefix(rest, "No commits yet on ") {
		return ""
	}
	if i := strings.Index(rest, "..."); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

func parseStatusLine(line string) (name string, fs FileStatus, ok bool) {
	fs.Staged = charToState(line[0])
	fs.Working = charToState(line[1])

	switch fs.Working {
	case StateNew:
		if fs.Staged == StateNew {
			fs.Staged = StateNone
		}
	case StateIgnored:
		if fs.Staged == StateIgnored {
			fs.Staged = StateNone
		}
	}

	parse := line[3:]
	if fs.Staged == StateRenamed {
		if i := strings.Index(parse, " -> "); i >= 0 {
			parse = parse[i+4:]
		}
	}

	if strings.HasPrefix(parse, `"`) {
		parse = parse[1:]
		end := strings.IndexByte(parse, '"')
		if end < 0 {
			return "", FileStatus{}, false
		}
		return parse[:end], fs, true
	}

	if sp := strings.IndexByte(parse, ' '); sp >= 0 {
		parse = parse[:sp]
	}
	return parse, fs, true
}

// joinRepoPath joins root and a porcelain-relative name using the
// platform separator, then strips any trailing separators.
func joinRepoPath(root, name string) string {
	full := filepath.Join(root, filepath.FromSlash(name))
	return strings.TrimRight(full, string(filepath.Separator))
}
