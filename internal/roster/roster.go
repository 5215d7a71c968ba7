// roster/roster.go
//
// Set reconciliation for event-scoped has-many-through associations
// (event-referee assignments, event-coach registrations). The engine diffs a
// caller-supplied desired membership set against the currently active rows
// and applies the minimal soft-delete/insert/update writes through a Store.
//
// The three phases run as independent writes in order: soft-deletes, inserts,
// updates. A failure mid-sync aborts and returns the partial result; callers
// that need atomicity run the whole call inside a storage transaction.
package roster

import (
	"sort"

	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
)

// Association is one active stored row as seen by the engine.
type Association struct {
	ID      uint
	ChildID uint
	Role    string
}

// Store is the persistence collaborator. FindActive must return only rows
// whose soft-delete timestamp is unset.
type Store interface {
	FindActive(parentID uint) ([]Association, error)
	Insert(parentID, childID uint, role string) error
	SoftDelete(id uint) error
	UpdateRole(id uint, role string) error
}

// Entry is one desired membership: a child id plus its attributes.
type Entry struct {
	ChildID uint   `json:"child_id"`
	Role    string `json:"role"`
}

// Result reports which child ids each phase touched, ascending.
type Result struct {
	Added   []uint `json:"added"`
	Removed []uint `json:"removed"`
	Updated []uint `json:"updated"`
}

// Writes returns the total number of writes the sync issued.
func (r Result) Writes() int {
	return len(r.Added) + len(r.Removed) + len(r.Updated)
}

// Sync reconciles the active associations of parentID to exactly match
// desired. Idempotent: a second call with the same desired set issues zero
// writes. Re-adding a previously removed child always inserts a fresh row;
// soft-deleted rows are never resurrected. Duplicate child ids in desired
// keep the last entry. Duplicate active rows for the same child (possible
// only if the storage layer's uniqueness constraint is missing) are repaired
// by soft-deleting the extras.
func Sync(store Store, parentID uint, desired []Entry) (Result, error) {
	if parentID == 0 {
		return Result{}, apperrors.Validation("parent id is required")
	}

	current, err := store.FindActive(parentID)
	if err != nil {
		return Result{}, err
	}

	want := make(map[uint]Entry, len(desired))
	for _, e := range desired {
		if e.ChildID == 0 {
			return Result{}, apperrors.Validation("child id is required")
		}
		want[e.ChildID] = e
	}

	have := make(map[uint]Association, len(current))
	var extras []Association
	for _, a := range current {
		if _, dup := have[a.ChildID]; dup {
			extras = append(extras, a)
			continue
		}
		have[a.ChildID] = a
	}

	var toRemove []Association
	var toUpdate []Association
	for _, a := range have {
		e, keep := want[a.ChildID]
		switch {
		case !keep:
			toRemove = append(toRemove, a)
		case e.Role != a.Role:
			a.Role = e.Role
			toUpdate = append(toUpdate, a)
		}
	}
	toRemove = append(toRemove, extras...)

	var toAdd []Entry
	for id, e := range want {
		if _, exists := have[id]; !exists {
			toAdd = append(toAdd, e)
		}
	}

	sort.Slice(toRemove, func(i, j int) bool { return toRemove[i].ChildID < toRemove[j].ChildID })
	sort.Slice(toAdd, func(i, j int) bool { return toAdd[i].ChildID < toAdd[j].ChildID })
	sort.Slice(toUpdate, func(i, j int) bool { return toUpdate[i].ChildID < toUpdate[j].ChildID })

	var res Result
	for _, a := range toRemove {
		if err := store.SoftDelete(a.ID); err != nil {
			return res, err
		}
		res.Removed = append(res.Removed, a.ChildID)
	}
	for _, e := range toAdd {
		if err := store.Insert(parentID, e.ChildID, e.Role); err != nil {
			return res, err
		}
		res.Added = append(res.Added, e.ChildID)
	}
	for _, a := range toUpdate {
		if err := store.UpdateRole(a.ID, a.Role); err != nil {
			return res, err
		}
		res.Updated = append(res.Updated, a.ChildID)
	}
	return res, nil
}
