// Package dashboard builds the calendar, recent-requests and monthly-stats
// view models. Builders are pure functions of (records, now) so they can be
// tested without a server; the HTTP layer is just the binding adapter.
package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/PhoorinS/leave-system-dfd/internal/leave"
)

var thaiMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// MonthLabel renders "<Thai month> <Buddhist Era year>" for the given time.
func MonthLabel(now time.Time) string {
	return thaiMonths[int(now.Month())-1] + " " + strconv.Itoa(now.Year()+543)
}

type EventChip struct {
	Name   string       `json:"name"`
	Status leave.Status `json:"status"`
	Class  string       `json:"class"`
}

type DayCell struct {
	Day      int         `json:"day"` // 0 on the leading filler cells
	Date     string      `json:"date,omitempty"`
	Disabled bool        `json:"disabled,omitempty"`
	Today    bool        `json:"today,omitempty"`
	Events   []EventChip `json:"events,omitempty"`
}

type Calendar struct {
	MonthLabel string    `json:"monthLabel"`
	Cells      []DayCell `json:"cells"`
}

// BuildCalendar lays out the current month: one disabled cell per weekday
// before the 1st (Sunday-based), then one cell per day. A record marks a
// day when its [start, end] date prefixes enclose it and it has not been
// rejected. The comparison is plain string order, which matches
// chronological order because the format is fixed-width and zero-padded.
func BuildCalendar(records []leave.Record, now time.Time) Calendar {
	year, month := now.Year(), now.Month()

	firstWeekday := int(time.Date(year, month, 1, 0, 0, 0, 0, now.Location()).Weekday())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, now.Location()).Day()

	cells := make([]DayCell, 0, firstWeekday+daysInMonth)
	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, DayCell{Disabled: true})
	}

	for d := 1; d <= daysInMonth; d++ {
		dateStr := fmt.Sprintf("%04d-%02d-%02d", year, int(month), d)
		cell := DayCell{
			Day:   d,
			Date:  dateStr,
			Today: d == now.Day(),
		}

		for _, r := range records {
			if r.Start == "" || r.End == "" || r.Status == leave.StatusRejected {
				continue
			}
			if dateStr >= leave.DatePrefix(r.Start) && dateStr <= leave.DatePrefix(r.End) {
				class := "event-pending"
				if r.Status == leave.StatusApproved {
					class = "event-approved"
				}
				cell.Events = append(cell.Events, EventChip{
					Name:   r.Name,
					Status: r.Status,
					Class:  class,
				})
			}
		}

		cells = append(cells, cell)
	}

	return Calendar{
		MonthLabel: MonthLabel(now),
		Cells:      cells,
	}
}
