// Package git reads commit messages from a repository using go-git v6.
package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"
)

//go:generate mockgen -source=repository.go -destination=source_mock.go -package=git

var (
	// ErrNotRepository is returned when the directory is not inside a git repository.
	ErrNotRepository = errors.New("not a git repository")

	// ErrRevisionNotFound is returned when a revision cannot be resolved.
	ErrRevisionNotFound = errors.New("revision not found")

	// ErrEmptyInput is returned when there is no commit message to lint.
	ErrEmptyInput = errors.New("empty commit message")
)

const (
	// DefaultEditFile is the message file git writes during commit, relative to the git dir.
	DefaultEditFile = "COMMIT_EDITMSG"

	gitDirName = ".git"
)

// gitEnvVarsToUnset lists variables inherited from a parent git process
// (commit-msg hook) that would redirect go-git to the parent's index.
var gitEnvVarsToUnset = []string{
	"GIT_INDEX_FILE",
}

func init() {
	for _, envVar := range gitEnvVarsToUnset {
		_ = os.Unsetenv(envVar)
	}
}

// Source provides commit messages to lint.
type Source interface {
	// Range returns messages of commits reachable from to but not from from,
	// newest first. An empty to means HEAD; an empty from walks the whole history.
	Range(ctx context.Context, from, to string) ([]string, error)

	// Last returns the message of the HEAD commit.
	Last(ctx context.Context) (string, error)

	// EditMessage returns the content of the commit message file at path.
	// An empty path means COMMIT_EDITMSG in the git directory.
	EditMessage(path string) (string, error)
}

// SDKSource implements Source using go-git SDK
type SDKSource struct {
	repo   *git.Repository
	gitDir string
}

// OpenSource opens the repository containing path.
//
// go-git resolves the commondir file itself, so linked worktrees resolve
// refs from the main repository.
func OpenSource(path string) (*SDKSource, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotRepository
		}

		return nil, errors.Wrap(err, "failed to open repository")
	}

	gitDir, err := findGitDir(path)
	if err != nil {
		return nil, err
	}

	return &SDKSource{repo: repo, gitDir: gitDir}, nil
}

// GitDir returns the directory holding COMMIT_EDITMSG.
func (s *SDKSource) GitDir() string {
	return s.gitDir
}

// Range returns commit messages between two revisions.
func (s *SDKSource) Range(ctx context.Context, from, to string) ([]string, error) {
	if to == "" {
		to = plumbing.HEAD.String()
	}

	toHash, err := s.resolve(to)
	if err != nil {
		return nil, err
	}

	excluded := make(map[plumbing.Hash]struct{})

	if from != "" {
		fromHash, err := s.resolve(from)
		if err != nil {
			return nil, err
		}

		if err := s.walk(ctx, fromHash, func(c *object.Commit) error {
			excluded[c.Hash] = struct{}{}

			return nil
		}); err != nil {
			return nil, err
		}
	}

	var messages []string

	err = s.walk(ctx, toHash, func(c *object.Commit) error {
		if _, ok := excluded[c.Hash]; ok {
			return nil
		}

		messages = append(messages, c.Message)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// Last returns the HEAD commit message.
func (s *SDKSource) Last(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "reading last commit")
	}

	hash, err := s.resolve(plumbing.HEAD.String())
	if err != nil {
		return "", err
	}

	commit, err := s.repo.CommitObject(hash)
	if err != nil {
		return "", errors.Wrapf(err, "reading commit %s", hash)
	}

	return commit.Message, nil
}

// EditMessage reads the commit message file.
func (s *SDKSource) EditMessage(path string) (string, error) {
	if path == "" {
		path = filepath.Join(s.gitDir, DefaultEditFile)
	}

	return ReadMessageFile(path)
}

func (s *SDKSource) resolve(rev string) (plumbing.Hash, error) {
	hash, err := s.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, errors.Wrapf(ErrRevisionNotFound, "%q: %v", rev, err)
	}

	return *hash, nil
}

func (s *SDKSource) walk(ctx context.Context, from plumbing.Hash, fn func(*object.Commit) error) error {
	iter, err := s.repo.Log(&git.LogOptions{From: from})
	if err != nil {
		return errors.Wrap(err, "failed to read log")
	}
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		return fn(c)
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return errors.Wrap(err, "walking history")
	}

	return nil
}

// ReadMessageFile reads a commit message from disk. A file holding only
// whitespace yields ErrEmptyInput.
func ReadMessageFile(path string) (string, error) {
	//nolint:gosec // path comes from the command line or the git directory
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}

	if strings.TrimSpace(string(data)) == "" {
		return "", errors.Wrapf(ErrEmptyInput, "%s", path)
	}

	return string(data), nil
}

// findGitDir walks up from path to the directory holding the git metadata.
// A .git file (linked worktree) is followed through its gitdir pointer.
func findGitDir(path string) (string, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, "resolving path")
	}

	for {
		candidate := filepath.Join(dir, gitDirName)

		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return candidate, nil
			}

			return readGitFile(candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotRepository
		}

		dir = parent
	}
}

func readGitFile(path string) (string, error) {
	//nolint:gosec // path is a .git file found by directory walk
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}

	target, ok := strings.CutPrefix(strings.TrimSpace(string(data)), "gitdir:")
	if !ok {
		return "", errors.Wrapf(ErrNotRepository, "malformed %s", path)
	}

	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}

	return target, nil
}
