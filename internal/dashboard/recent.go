package dashboard

import (
	"github.com/PhoorinS/leave-system-dfd/internal/leave"
)

const (
	// RecentLimit caps the recent-requests list.
	RecentLimit = 5

	// RecentPlaceholder is shown when the cache holds no records at all.
	RecentPlaceholder = "ยังไม่มีรายการ"
)

type RecentItem struct {
	Name        string     `json:"name"`
	Type        leave.Type `json:"type"`
	Start       string     `json:"start"`
	StatusLabel string     `json:"statusLabel"`
	BadgeClass  string     `json:"badgeClass"`
}

type RecentList struct {
	Empty       bool         `json:"empty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Items       []RecentItem `json:"items"`
}

// BuildRecent lists the newest requests in reverse cache order (insertion
// order, not the date fields), capped at RecentLimit.
func BuildRecent(records []leave.Record) RecentList {
	if len(records) == 0 {
		return RecentList{Empty: true, Placeholder: RecentPlaceholder, Items: []RecentItem{}}
	}

	items := make([]RecentItem, 0, RecentLimit)
	for i := len(records) - 1; i >= 0 && len(items) < RecentLimit; i-- {
		r := records[i]
		items = append(items, RecentItem{
			Name:        r.Name,
			Type:        r.Type,
			Start:       r.Start,
			StatusLabel: r.Status.Label(),
			BadgeClass:  r.Status.BadgeClass(),
		})
	}

	return RecentList{Items: items}
}
