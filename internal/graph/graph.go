// Package graph holds the append-only commit graph: an immutable version
// table plus mutable branch head pointers.
package graph

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/stance-vcs/internal/stance"
)

// #region store
// Store is the in-process commit graph. The version table is append-only;
// branch heads are the only mutable state. A single RWMutex serializes
// writers — branch counts are small enough that per-branch locks buy nothing.
type Store struct {
	mu          sync.RWMutex
	versions    map[string]*Version
	order       []string // version ids in commit order
	branches    map[string]*Branch
	branchOrder []string
	current     string
}

// NewStore returns a store with a single protected main branch and no commits.
func NewStore() *Store {
	s := &Store{
		versions: make(map[string]*Version),
		branches: make(map[string]*Branch),
		current:  MainBranch,
	}
	s.branches[MainBranch] = &Branch{
		Name:      MainBranch,
		CreatedAt: time.Now().UTC(),
		Protected: true,
	}
	s.branchOrder = []string{MainBranch}
	return s
}

// #endregion store

// #region commit
// Commit deep-copies snap into a fresh version whose parent is the current
// branch head, then advances that head. It never fails for well-formed input;
// schema-bounds validation is the caller's concern (see the gate package).
func (s *Store) Commit(snap stance.Snapshot, message, author string, tags ...string) Version {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(s.branches[s.current], snap, message, author, tags)
}

// CommitTo commits onto a named branch without switching the current branch.
// Used by merge, which targets a branch that may not be checked out.
func (s *Store) CommitTo(branch string, snap stance.Snapshot, message, author string, tags ...string) (Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	br, ok := s.branches[branch]
	if !ok {
		return Version{}, fmt.Errorf("commit to %q: %w", branch, ErrBranchNotFound)
	}
	return s.commitLocked(br, snap, message, author, tags), nil
}

func (s *Store) commitLocked(br *Branch, snap stance.Snapshot, message, author string, tags []string) Version {
	v := &Version{
		ID:        uuid.New().String(),
		Snapshot:  snap.Clone(),
		ParentID:  br.Head,
		Branch:    br.Name,
		Message:   message,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	for _, t := range tags {
		addTag(v, t)
	}

	s.versions[v.ID] = v
	s.order = append(s.order, v.ID)
	br.Head = v.ID

	return copyVersion(v)
}

// #endregion commit

// #region create-branch
// CreateBranch points a new branch at fromID, or at the current head when
// fromID is empty. It does not switch the current branch.
func (s *Store) CreateBranch(name, fromID, description string) (Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.branches[name]; exists {
		return Branch{}, fmt.Errorf("create branch %q: %w", name, ErrBranchExists)
	}

	source := fromID
	if source == "" {
		source = s.branches[s.current].Head
	}
	if source == "" {
		return Branch{}, fmt.Errorf("create branch %q: %w", name, ErrNoSourceVersion)
	}
	if _, ok := s.versions[source]; !ok {
		return Branch{}, fmt.Errorf("create branch %q from %s: %w", name, source, ErrVersionNotFound)
	}

	br := &Branch{
		Name:        name,
		Head:        source,
		CreatedAt:   time.Now().UTC(),
		Description: description,
	}
	s.branches[name] = br
	s.branchOrder = append(s.branchOrder, name)
	return *br, nil
}

// #endregion create-branch

// #region checkout
// Checkout switches the current branch. No branch head moves.
func (s *Store) Checkout(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.branches[name]; !ok {
		return fmt.Errorf("checkout %q: %w", name, ErrBranchNotFound)
	}
	s.current = name
	return nil
}

// #endregion checkout

// #region history
// History walks parent links from the named branch's head (current branch if
// name is empty), newest first. A missing parent reference stops the walk
// rather than erroring.
func (s *Store) History(name string) ([]Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if name == "" {
		name = s.current
	}
	br, ok := s.branches[name]
	if !ok {
		return nil, fmt.Errorf("history %q: %w", name, ErrBranchNotFound)
	}

	var out []Version
	for id := br.Head; id != ""; {
		v, ok := s.versions[id]
		if !ok {
			break // defensive stop
		}
		out = append(out, copyVersion(v))
		id = v.ParentID
	}
	return out, nil
}

// #endregion history

// #region tags
// Tag adds tag to the version's tag set. Adding an existing tag is a no-op.
func (s *Store) Tag(id, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.versions[id]
	if !ok {
		return fmt.Errorf("tag %s: %w", id, ErrVersionNotFound)
	}
	addTag(v, tag)
	return nil
}

// FindByTag scans the version table in commit order for versions carrying tag.
// A linear scan is fine at this scale; an index would be an optimization, not
// a contract.
func (s *Store) FindByTag(tag string) []Version {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Version
	for _, id := range s.order {
		v := s.versions[id]
		for _, t := range v.Tags {
			if t == tag {
				out = append(out, copyVersion(v))
				break
			}
		}
	}
	return out
}

// #endregion tags

// #region accessors
// Version returns a copy of the version with the given id.
func (s *Store) Version(id string) (Version, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.versions[id]
	if !ok {
		return Version{}, false
	}
	return copyVersion(v), true
}

// Head returns the current branch's head version, if one exists.
func (s *Store) Head() (Version, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	br := s.branches[s.current]
	if br.Head == "" {
		return Version{}, false
	}
	v, ok := s.versions[br.Head]
	if !ok {
		return Version{}, false
	}
	return copyVersion(v), true
}

// Branch returns a copy of the named branch record.
func (s *Store) Branch(name string) (Branch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	br, ok := s.branches[name]
	if !ok {
		return Branch{}, false
	}
	return *br, true
}

// CurrentBranch returns the name of the checked-out branch.
func (s *Store) CurrentBranch() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Branches lists all branches in creation order.
func (s *Store) Branches() []Branch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Branch, 0, len(s.branchOrder))
	for _, name := range s.branchOrder {
		out = append(out, *s.branches[name])
	}
	return out
}

// Versions lists every version in commit order, oldest first.
func (s *Store) Versions() []Version {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Version, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyVersion(s.versions[id]))
	}
	return out
}

// #endregion accessors

// #region branch-admin
// DeleteBranch removes an unprotected, non-current branch pointer. Versions
// reachable only from it stay in the table; history is append-only.
func (s *Store) DeleteBranch(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	br, ok := s.branches[name]
	if !ok {
		return fmt.Errorf("delete branch %q: %w", name, ErrBranchNotFound)
	}
	if br.Protected {
		return fmt.Errorf("delete branch %q: %w", name, ErrProtectedBranch)
	}
	if name == s.current {
		return fmt.Errorf("delete branch %q: branch is checked out", name)
	}
	delete(s.branches, name)
	for i, n := range s.branchOrder {
		if n == name {
			s.branchOrder = append(s.branchOrder[:i], s.branchOrder[i+1:]...)
			break
		}
	}
	return nil
}

// ResetBranch force-moves an unprotected branch's head to an existing version.
// Protected heads advance only through commit, merge, and rollback.
func (s *Store) ResetBranch(name, headID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	br, ok := s.branches[name]
	if !ok {
		return fmt.Errorf("reset branch %q: %w", name, ErrBranchNotFound)
	}
	if br.Protected {
		return fmt.Errorf("reset branch %q: %w", name, ErrProtectedBranch)
	}
	if _, ok := s.versions[headID]; !ok {
		return fmt.Errorf("reset branch %q to %s: %w", name, headID, ErrVersionNotFound)
	}
	br.Head = headID
	return nil
}

// #endregion branch-admin

// #region helpers
func addTag(v *Version, tag string) {
	for _, t := range v.Tags {
		if t == tag {
			return
		}
	}
	v.Tags = append(v.Tags, tag)
}

func copyVersion(v *Version) Version {
	out := *v
	out.Snapshot = v.Snapshot.Clone()
	out.Tags = append([]string(nil), v.Tags...)
	return out
}

// #endregion helpers
