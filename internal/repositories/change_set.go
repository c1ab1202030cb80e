package repositories

import "sync"

// ChangeKind tells Commit what to do with a staged entity.
type ChangeKind int

const (
	Added ChangeKind = iota + 1
	Modified
	Deleted
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change is one staged mutation. Entity is always a pointer to a model.
type Change struct {
	Kind   ChangeKind
	Entity any
}

// ChangeSet is the ordered list of mutations waiting for a commit.
// Nothing in it reaches the store until the owning unit of work commits.
type ChangeSet struct {
	mu      sync.Mutex
	changes []Change
}

// NewChangeSet creates an empty change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{}
}

// Stage appends a change, keeping insertion order.
func (c *ChangeSet) Stage(kind ChangeKind, entity any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.changes = append(c.changes, Change{Kind: kind, Entity: entity})
}

// Pending returns a copy of the staged changes in order.
func (c *ChangeSet) Pending() []Change {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Change, len(c.changes))
	copy(out, c.changes)
	return out
}

func (c *ChangeSet) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.changes)
}

// Clear drops every staged change.
func (c *ChangeSet) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.changes = nil
}
