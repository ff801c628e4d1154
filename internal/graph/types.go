package graph

import (
	"errors"
	"time"

	"github.com/danielpatrickdp/stance-vcs/internal/stance"
)

// #region version
// Version is an immutable node in the commit graph. Created only by Commit
// (or Restore during import); after creation the only permitted mutation is
// appending tags.
type Version struct {
	ID        string
	Snapshot  stance.Snapshot
	ParentID  string // empty for a root commit
	Branch    string
	Message   string
	Author    string
	CreatedAt time.Time
	Tags      []string
}

// #endregion version

// #region branch
// Branch is a named mutable pointer to the newest Version in a history line.
type Branch struct {
	Name        string
	Head        string // empty until the first commit
	CreatedAt   time.Time
	Description string
	Protected   bool
}

// #endregion branch

// #region errors
// Sentinel errors for not-found and structural failures. Conflicts are never
// errors; they come back as result data.
var (
	ErrVersionNotFound = errors.New("version not found")
	ErrBranchNotFound  = errors.New("branch not found")
	ErrBranchExists    = errors.New("branch already exists")
	ErrNoSourceVersion = errors.New("no source version resolvable")
	ErrProtectedBranch = errors.New("branch is protected")
)

// #endregion errors

// MainBranch is created at store initialization and is always protected.
const MainBranch = "main"
