package graph

import "fmt"

// #region restore
// Restore rebuilds a store from exported tables, validating the graph
// invariants so a partial or corrupted import is rejected whole. versions
// must be in commit order.
func Restore(versions []Version, branches []Branch, current string) (*Store, error) {
	s := &Store{
		versions: make(map[string]*Version, len(versions)),
		branches: make(map[string]*Branch, len(branches)),
	}

	for _, v := range versions {
		if v.ID == "" {
			return nil, fmt.Errorf("restore: version with empty id")
		}
		if _, dup := s.versions[v.ID]; dup {
			return nil, fmt.Errorf("restore: duplicate version id %s", v.ID)
		}
		vc := copyVersion(&v)
		s.versions[v.ID] = &vc
		s.order = append(s.order, v.ID)
	}
	// Parent links must resolve within the imported table.
	for _, v := range versions {
		if v.ParentID == "" {
			continue
		}
		if _, ok := s.versions[v.ParentID]; !ok {
			return nil, fmt.Errorf("restore: version %s has dangling parent %s", v.ID, v.ParentID)
		}
	}

	for _, br := range branches {
		if br.Name == "" {
			return nil, fmt.Errorf("restore: branch with empty name")
		}
		if _, dup := s.branches[br.Name]; dup {
			return nil, fmt.Errorf("restore: duplicate branch %q", br.Name)
		}
		if br.Head != "" {
			if _, ok := s.versions[br.Head]; !ok {
				return nil, fmt.Errorf("restore: branch %q head %s not in version table", br.Name, br.Head)
			}
		}
		bc := br
		s.branches[br.Name] = &bc
		s.branchOrder = append(s.branchOrder, br.Name)
	}

	main, ok := s.branches[MainBranch]
	if !ok {
		return nil, fmt.Errorf("restore: missing %s branch", MainBranch)
	}
	main.Protected = true

	if current == "" {
		current = MainBranch
	}
	if _, ok := s.branches[current]; !ok {
		return nil, fmt.Errorf("restore: current branch %q not in branch table", current)
	}
	s.current = current

	return s, nil
}

// #endregion restore
