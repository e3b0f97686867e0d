// Package gitutil turns a freshly generated project into a git repository.
package gitutil

import (
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"git.home.luguber.info/inful/scaffolder/internal/errors"
)

// InitRepository initializes a repository at dir, stages the generated tree
// and creates an initial commit.
func InitRepository(dir string) error {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return errors.Wrap(err, errors.CategoryGeneration, "failed to init git repository in "+dir)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return errors.Wrap(err, errors.CategoryGeneration, "failed to open worktree in "+dir)
	}
	if _, err := wt.Add("."); err != nil {
		return errors.Wrap(err, errors.CategoryGeneration, "failed to stage generated files in "+dir)
	}
	_, err = wt.Commit("Initial scaffold", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "scaffolder",
			Email: "scaffolder@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return errors.Wrap(err, errors.CategoryGeneration, "failed to commit generated files in "+dir)
	}
	return nil
}
