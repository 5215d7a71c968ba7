package roster

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
)

// fakeStore is an in-memory Store that records every write so tests can
// assert exact write counts and row identity.
type fakeStore struct {
	nextID uint
	rows   map[uint]*fakeRow
	writes int

	failSoftDelete bool
	failInsert     bool
}

type fakeRow struct {
	id        uint
	parentID  uint
	childID   uint
	role      string
	deletedAt *time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, rows: map[uint]*fakeRow{}}
}

func (s *fakeStore) FindActive(parentID uint) ([]Association, error) {
	var out []Association
	// Deterministic order by row id.
	for id := uint(1); id < s.nextID; id++ {
		r, ok := s.rows[id]
		if !ok || r.parentID != parentID || r.deletedAt != nil {
			continue
		}
		out = append(out, Association{ID: r.id, ChildID: r.childID, Role: r.role})
	}
	return out, nil
}

func (s *fakeStore) Insert(parentID, childID uint, role string) error {
	if s.failInsert {
		return apperrors.Persistence("insert association", errors.New("connection reset"))
	}
	s.writes++
	r := &fakeRow{id: s.nextID, parentID: parentID, childID: childID, role: role}
	s.rows[r.id] = r
	s.nextID++
	return nil
}

func (s *fakeStore) SoftDelete(id uint) error {
	if s.failSoftDelete {
		return apperrors.Persistence("soft delete association", errors.New("connection reset"))
	}
	s.writes++
	now := time.Now()
	s.rows[id].deletedAt = &now
	return nil
}

func (s *fakeStore) UpdateRole(id uint, role string) error {
	s.writes++
	s.rows[id].role = role
	return nil
}

func (s *fakeStore) activeChildren(parentID uint) []uint {
	var out []uint
	for id := uint(1); id < s.nextID; id++ {
		r, ok := s.rows[id]
		if ok && r.parentID == parentID && r.deletedAt == nil {
			out = append(out, r.childID)
		}
	}
	return out
}

func entries(ids ...uint) []Entry {
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, Entry{ChildID: id})
	}
	return out
}

func TestSyncFromEmpty(t *testing.T) {
	store := newFakeStore()
	res, err := Sync(store, 7, entries(3, 1, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Added, []uint{1, 2, 3}) {
		t.Errorf("added = %v, want [1 2 3]", res.Added)
	}
	if len(res.Removed) != 0 || len(res.Updated) != 0 {
		t.Errorf("unexpected removals/updates: %+v", res)
	}
	if got := store.activeChildren(7); !reflect.DeepEqual(got, []uint{1, 2, 3}) {
		t.Errorf("active children = %v, want [1 2 3]", got)
	}
}

func TestSyncIdempotent(t *testing.T) {
	store := newFakeStore()
	desired := []Entry{{ChildID: 1, Role: "head_coach"}, {ChildID: 2, Role: "assistant_coach"}}
	if _, err := Sync(store, 7, desired); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	writesAfterFirst := store.writes

	res, err := Sync(store, 7, desired)
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if store.writes != writesAfterFirst {
		t.Errorf("second sync issued %d extra writes, want 0", store.writes-writesAfterFirst)
	}
	if res.Writes() != 0 {
		t.Errorf("second sync result = %+v, want empty", res)
	}
	if got := store.activeChildren(7); !reflect.DeepEqual(got, []uint{1, 2}) {
		t.Errorf("active children = %v, want [1 2]", got)
	}
}

func TestSyncRoundTrip(t *testing.T) {
	store := newFakeStore()
	if _, err := Sync(store, 7, entries(1, 2, 3)); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	row2 := store.rows[2] // child 2's original row

	res, err := Sync(store, 7, entries(2, 4))
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if !reflect.DeepEqual(res.Added, []uint{4}) || !reflect.DeepEqual(res.Removed, []uint{1, 3}) {
		t.Errorf("result = %+v, want added [4] removed [1 3]", res)
	}
	if got := store.activeChildren(7); !reflect.DeepEqual(got, []uint{2, 4}) {
		t.Errorf("active children = %v, want [2 4]", got)
	}
	// Removed rows are soft-deleted, not erased.
	for _, id := range []uint{1, 3} {
		r := store.rows[id]
		if r == nil || r.deletedAt == nil {
			t.Errorf("row %d should exist with deletedAt set", id)
		}
	}
	// The surviving child keeps its original row identity.
	if row2.deletedAt != nil {
		t.Error("row for child 2 should not have been recreated")
	}
}

func TestSyncReAddCreatesNewRow(t *testing.T) {
	store := newFakeStore()
	if _, err := Sync(store, 7, entries(1)); err != nil {
		t.Fatal(err)
	}
	originalID := uint(1)
	if _, err := Sync(store, 7, entries()); err != nil {
		t.Fatal(err)
	}
	if _, err := Sync(store, 7, entries(1)); err != nil {
		t.Fatal(err)
	}
	active := store.activeChildren(7)
	if !reflect.DeepEqual(active, []uint{1}) {
		t.Fatalf("active children = %v, want [1]", active)
	}
	if store.rows[originalID].deletedAt == nil {
		t.Error("original row should remain soft-deleted after re-add")
	}
	if store.nextID != 3 {
		t.Errorf("expected a fresh row for the re-add, nextID = %d", store.nextID)
	}
}

func TestSyncRoleUpdateInPlace(t *testing.T) {
	store := newFakeStore()
	if _, err := Sync(store, 7, []Entry{{ChildID: 1, Role: "assistant_coach"}}); err != nil {
		t.Fatal(err)
	}
	res, err := Sync(store, 7, []Entry{{ChildID: 1, Role: "head_coach"}})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Updated, []uint{1}) || len(res.Added) != 0 || len(res.Removed) != 0 {
		t.Errorf("result = %+v, want updated [1] only", res)
	}
	row := store.rows[1]
	if row.role != "head_coach" || row.deletedAt != nil {
		t.Errorf("row should be updated in place, got role=%q deleted=%v", row.role, row.deletedAt != nil)
	}
}

func TestSyncEmptyDesiredRemovesAll(t *testing.T) {
	store := newFakeStore()
	if _, err := Sync(store, 7, entries(1, 2, 3)); err != nil {
		t.Fatal(err)
	}
	res, err := Sync(store, 7, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Removed, []uint{1, 2, 3}) {
		t.Errorf("removed = %v, want [1 2 3]", res.Removed)
	}
	if got := store.activeChildren(7); len(got) != 0 {
		t.Errorf("active children = %v, want none", got)
	}
	for id := uint(1); id <= 3; id++ {
		if store.rows[id].deletedAt == nil {
			t.Errorf("row %d should be soft-deleted", id)
		}
	}
}

func TestSyncRepairsDuplicateActiveRows(t *testing.T) {
	store := newFakeStore()
	// Simulate a missing storage uniqueness constraint: two active rows for
	// the same child.
	if err := store.Insert(7, 1, ""); err != nil {
		t.Fatal(err)
	}
	if err := store.Insert(7, 1, ""); err != nil {
		t.Fatal(err)
	}
	res, err := Sync(store, 7, entries(1))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Removed, []uint{1}) || len(res.Added) != 0 {
		t.Errorf("result = %+v, want the duplicate removed and nothing added", res)
	}
	if got := store.activeChildren(7); !reflect.DeepEqual(got, []uint{1}) {
		t.Errorf("active children = %v, want exactly one row for child 1", got)
	}
}

func TestSyncPartialFailureAbortsMidPhase(t *testing.T) {
	store := newFakeStore()
	if _, err := Sync(store, 7, entries(1, 2)); err != nil {
		t.Fatal(err)
	}
	store.failInsert = true
	res, err := Sync(store, 7, entries(1, 3))
	if !apperrors.IsPersistence(err) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	// Removal phase ran before the failing insert: child 2 is already gone.
	if !reflect.DeepEqual(res.Removed, []uint{2}) || len(res.Added) != 0 {
		t.Errorf("partial result = %+v, want removed [2] only", res)
	}
	if got := store.activeChildren(7); !reflect.DeepEqual(got, []uint{1}) {
		t.Errorf("active children = %v, want [1] (mixed state after partial failure)", got)
	}
}

func TestSyncValidation(t *testing.T) {
	store := newFakeStore()
	if _, err := Sync(store, 0, entries(1)); !apperrors.IsValidation(err) {
		t.Errorf("zero parent id: got %v, want validation error", err)
	}
	if _, err := Sync(store, 7, entries(0)); !apperrors.IsValidation(err) {
		t.Errorf("zero child id: got %v, want validation error", err)
	}
	if store.writes != 0 {
		t.Errorf("validation failures must not write, got %d writes", store.writes)
	}
}
