package dashboard

import (
	"fmt"
	"time"

	"github.com/PhoorinS/leave-system-dfd/internal/leave"
)

// StatsPlaceholder is shown when no leave starts in the current month.
const StatsPlaceholder = "ยังไม่มีข้อมูลการลาในเดือนนี้"

// startLayouts are the shapes a record's start field can arrive in: the
// plain date the form sends, the datetime-local value of hourly leave, and
// the ISO timestamps the sheet hands back.
var startLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

type TypeCount struct {
	Type    leave.Type `json:"type"`
	Label   string     `json:"label"`
	Count   int        `json:"count"`
	Display string     `json:"display"` // e.g. "3 ครั้ง"
}

type MonthlyStats struct {
	Empty       bool        `json:"empty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Counts      []TypeCount `json:"counts"`
}

// BuildMonthlyStats counts this month's requests per leave type. Month
// membership here parses the start field as a real date, unlike the
// calendar's string-prefix compare; both views have always worked that
// way and stay that way. Unparseable starts and unknown types are
// dropped from the counts.
func BuildMonthlyStats(records []leave.Record, now time.Time) MonthlyStats {
	counts := map[leave.Type]int{}
	matched := 0

	for _, r := range records {
		if r.Start == "" {
			continue
		}
		t, ok := parseStart(r.Start)
		if !ok {
			continue
		}
		if t.Month() != now.Month() || t.Year() != now.Year() {
			continue
		}
		matched++
		if r.Type.Known() {
			counts[r.Type]++
		}
	}

	if matched == 0 {
		return MonthlyStats{Empty: true, Placeholder: StatsPlaceholder, Counts: []TypeCount{}}
	}

	out := make([]TypeCount, 0, len(leave.KnownTypes))
	for _, t := range leave.KnownTypes {
		out = append(out, TypeCount{
			Type:    t,
			Label:   t.Label(),
			Count:   counts[t],
			Display: fmt.Sprintf("%d ครั้ง", counts[t]),
		})
	}
	return MonthlyStats{Counts: out}
}

func parseStart(s string) (time.Time, bool) {
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
