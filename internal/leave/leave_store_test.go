package leave_test

import (
	"testing"

	"github.com/PhoorinS/leave-system-dfd/internal/leave"

	"github.com/stretchr/testify/assert"
)

func TestStore_ReplaceAndSnapshot(t *testing.T) {
	store := leave.NewStore()
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Snapshot())

	first := []leave.Record{
		{ID: "1", Name: "สมชาย ใจดี", Status: leave.StatusPending},
		{ID: "2", Name: "สมหญิง รักเรียน", Status: leave.StatusApproved},
	}
	store.Replace(first)
	assert.Equal(t, 2, store.Len())

	// Last fetch wins wholesale, no merging.
	store.Replace([]leave.Record{{ID: "3", Status: leave.StatusPending}})
	snap := store.Snapshot()
	assert.Len(t, snap, 1)
	assert.Equal(t, "3", snap[0].ID)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := leave.NewStore()
	store.Replace([]leave.Record{{ID: "1", Name: "before"}})

	snap := store.Snapshot()
	snap[0].Name = "after"

	assert.Equal(t, "before", store.Snapshot()[0].Name)
}

func TestStore_ReplaceNilResetsToEmpty(t *testing.T) {
	store := leave.NewStore()
	store.Replace([]leave.Record{{ID: "1"}})

	store.Replace(nil)

	assert.Equal(t, 0, store.Len())
	assert.NotNil(t, store.Snapshot())
}
