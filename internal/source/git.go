// Package source materializes the content root the page discovery walks.
// The plain directory source is a pass-through; the git source opens or
// clones a repository and points discovery at its worktree.
package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/navbuilder/internal/logfields"
)

// GitSource reads the page set from a git repository worktree.
type GitSource struct {
	// URL is the repository to clone, or a local path to an existing clone.
	URL string

	// Branch overrides the remote default branch when cloning.
	Branch string

	// Path is the content subdirectory inside the repository.
	Path string

	// workDir is the clone destination for remote URLs.
	workDir string
}

// NewGitSource creates a git source that clones into workDir when URL is
// remote.
func NewGitSource(url, branch, path, workDir string) *GitSource {
	return &GitSource{URL: url, Branch: branch, Path: path, workDir: workDir}
}

// ContentRoot ensures the repository is available locally and returns the
// directory discovery should walk. A local URL pointing at an existing
// clone is opened in place; anything else is cloned fresh into the work
// directory.
func (s *GitSource) ContentRoot() (string, error) {
	root, err := s.repoRoot()
	if err != nil {
		return "", err
	}
	if s.Path != "" {
		root = filepath.Join(root, filepath.FromSlash(s.Path))
	}
	if _, err := os.Stat(root); err != nil {
		return "", fmt.Errorf("content path %s in repository: %w", s.Path, err)
	}
	return root, nil
}

func (s *GitSource) repoRoot() (string, error) {
	if info, err := os.Stat(s.URL); err == nil && info.IsDir() {
		if _, err := git.PlainOpen(s.URL); err == nil {
			slog.Debug("Using existing repository clone", logfields.Path(s.URL))
			return s.URL, nil
		}
	}
	return s.clone()
}

func (s *GitSource) clone() (string, error) {
	repoPath := filepath.Join(s.workDir, "content-repo")
	if err := os.RemoveAll(repoPath); err != nil {
		return "", fmt.Errorf("failed to remove existing directory: %w", err)
	}

	cloneOptions := &git.CloneOptions{URL: s.URL, Depth: 1}
	if s.Branch != "" {
		cloneOptions.ReferenceName = plumbing.NewBranchReferenceName(s.Branch)
		cloneOptions.SingleBranch = true
	}

	repository, err := git.PlainClone(repoPath, false, cloneOptions)
	if err != nil {
		return "", fmt.Errorf("clone %s: %w", s.URL, err)
	}
	if ref, herr := repository.Head(); herr == nil {
		slog.Info("Cloned content repository",
			slog.String("url", s.URL),
			slog.String("commit", ref.Hash().String()[:8]),
			logfields.Path(repoPath))
	}
	return repoPath, nil
}
