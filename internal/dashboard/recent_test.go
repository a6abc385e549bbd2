package dashboard_test

import (
	"fmt"
	"testing"

	"github.com/PhoorinS/leave-system-dfd/internal/dashboard"
	"github.com/PhoorinS/leave-system-dfd/internal/leave"

	"github.com/stretchr/testify/assert"
)

func TestBuildRecent_ReverseOrderCappedAtFive(t *testing.T) {
	records := make([]leave.Record, 7)
	for i := range records {
		records[i] = leave.Record{
			ID:     fmt.Sprintf("%d", i+1),
			Name:   fmt.Sprintf("คนที่ %d", i+1),
			Type:   leave.TypeSick,
			Start:  "2026-01-10",
			Status: leave.StatusPending,
		}
	}

	list := dashboard.BuildRecent(records)

	assert.False(t, list.Empty)
	assert.Len(t, list.Items, 5)
	// Newest first, by cache position rather than by date field.
	assert.Equal(t, "คนที่ 7", list.Items[0].Name)
	assert.Equal(t, "คนที่ 3", list.Items[4].Name)
}

func TestBuildRecent_FewerThanFive(t *testing.T) {
	records := []leave.Record{
		{Name: "สมชาย ใจดี", Type: leave.TypePersonal, Start: "2026-01-05", Status: leave.StatusApproved},
		{Name: "สมหญิง รักเรียน", Type: leave.TypeSick, Start: "2026-01-06", Status: leave.StatusRejected},
	}

	list := dashboard.BuildRecent(records)

	assert.Len(t, list.Items, 2)
	assert.Equal(t, "สมหญิง รักเรียน", list.Items[0].Name)
	assert.Equal(t, "ไม่อนุมัติ", list.Items[0].StatusLabel)
	assert.Equal(t, "status-rejected", list.Items[0].BadgeClass)
	assert.Equal(t, "อนุมัติแล้ว", list.Items[1].StatusLabel)
	assert.Equal(t, "status-approved", list.Items[1].BadgeClass)
}

func TestBuildRecent_PendingBadge(t *testing.T) {
	list := dashboard.BuildRecent([]leave.Record{
		{Name: "สมศรี มีสุข", Status: leave.StatusPending},
	})

	assert.Equal(t, "รออนุมัติ", list.Items[0].StatusLabel)
	assert.Equal(t, "status-pending", list.Items[0].BadgeClass)
}

func TestBuildRecent_EmptyState(t *testing.T) {
	list := dashboard.BuildRecent(nil)

	assert.True(t, list.Empty)
	assert.Equal(t, "ยังไม่มีรายการ", list.Placeholder)
	assert.Empty(t, list.Items)
}
