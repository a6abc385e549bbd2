package dashboard_test

import (
	"testing"
	"time"

	"github.com/PhoorinS/leave-system-dfd/internal/dashboard"
	"github.com/PhoorinS/leave-system-dfd/internal/leave"

	"github.com/stretchr/testify/assert"
)

// January 2026 starts on a Thursday and has 31 days.
var january2026 = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

func chipNames(cell dashboard.DayCell) []string {
	names := make([]string, 0, len(cell.Events))
	for _, e := range cell.Events {
		names = append(names, e.Name)
	}
	return names
}

func dayCell(t *testing.T, cal dashboard.Calendar, day int) dashboard.DayCell {
	t.Helper()
	for _, cell := range cal.Cells {
		if cell.Day == day {
			return cell
		}
	}
	t.Fatalf("day %d not found in calendar", day)
	return dashboard.DayCell{}
}

func TestBuildCalendar_Layout(t *testing.T) {
	cal := dashboard.BuildCalendar(nil, january2026)

	assert.Equal(t, "มกราคม 2569", cal.MonthLabel)
	assert.Len(t, cal.Cells, 4+31)

	for i := 0; i < 4; i++ {
		assert.True(t, cal.Cells[i].Disabled)
		assert.Zero(t, cal.Cells[i].Day)
	}
	assert.Equal(t, 1, cal.Cells[4].Day)
	assert.Equal(t, 31, cal.Cells[len(cal.Cells)-1].Day)

	today := dayCell(t, cal, 15)
	assert.True(t, today.Today)
	assert.False(t, dayCell(t, cal, 16).Today)
}

func TestBuildCalendar_DateMembership(t *testing.T) {
	records := []leave.Record{
		{Name: "สมชาย ใจดี", Start: "2026-01-10", End: "2026-01-12", Status: leave.StatusApproved},
	}

	cal := dashboard.BuildCalendar(records, january2026)

	assert.Empty(t, dayCell(t, cal, 9).Events)
	for d := 10; d <= 12; d++ {
		cell := dayCell(t, cal, d)
		assert.Equal(t, []string{"สมชาย ใจดี"}, chipNames(cell))
		assert.Equal(t, "event-approved", cell.Events[0].Class)
	}
	assert.Empty(t, dayCell(t, cal, 13).Events)
}

func TestBuildCalendar_TimestampSuffixesTolerated(t *testing.T) {
	records := []leave.Record{
		{Name: "สมหญิง รักเรียน", Start: "2026-01-20T00:00:00.000Z", End: "2026-01-21T23:59:59.000Z", Status: leave.StatusPending},
	}

	cal := dashboard.BuildCalendar(records, january2026)

	cell := dayCell(t, cal, 20)
	assert.Len(t, cell.Events, 1)
	assert.Equal(t, "event-pending", cell.Events[0].Class)
	assert.Len(t, dayCell(t, cal, 21).Events, 1)
	assert.Empty(t, dayCell(t, cal, 22).Events)
}

func TestBuildCalendar_RejectedNeverMarksADay(t *testing.T) {
	records := []leave.Record{
		{Name: "สมปอง คงมั่น", Start: "2026-01-01", End: "2026-01-31", Status: leave.StatusRejected},
	}

	cal := dashboard.BuildCalendar(records, january2026)

	for _, cell := range cal.Cells {
		assert.Empty(t, cell.Events)
	}
}

func TestBuildCalendar_MissingDatesSkipped(t *testing.T) {
	records := []leave.Record{
		{Name: "ไม่มีวันที่", Start: "", End: "", Status: leave.StatusApproved},
		{Name: "ไม่มีวันสิ้นสุด", Start: "2026-01-05", End: "", Status: leave.StatusApproved},
	}

	cal := dashboard.BuildCalendar(records, january2026)

	for _, cell := range cal.Cells {
		assert.Empty(t, cell.Events)
	}
}

func TestBuildCalendar_SpanningRecordsMarkEveryCoveredDay(t *testing.T) {
	// A range opening before the month marks days from the 1st onward.
	records := []leave.Record{
		{Name: "ข้ามเดือน", Start: "2025-12-28", End: "2026-01-02", Status: leave.StatusPending},
	}

	cal := dashboard.BuildCalendar(records, january2026)

	assert.Len(t, dayCell(t, cal, 1).Events, 1)
	assert.Len(t, dayCell(t, cal, 2).Events, 1)
	assert.Empty(t, dayCell(t, cal, 3).Events)
}

func TestMonthLabel_BuddhistEra(t *testing.T) {
	assert.Equal(t, "ธันวาคม 2568", dashboard.MonthLabel(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "กันยายน 2569", dashboard.MonthLabel(time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)))
}
