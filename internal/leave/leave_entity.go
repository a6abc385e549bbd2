package leave

// Type categorizes a leave request. TypeOther means leave within teaching
// hours and carries date-time strings instead of plain dates.
type Type string

const (
	TypeSick     Type = "sick"
	TypePersonal Type = "personal"
	TypeWork     Type = "work"
	TypeOther    Type = "other"
)

// KnownTypes is the fixed set counted by the monthly stats view, in
// display order.
var KnownTypes = []Type{TypeSick, TypePersonal, TypeWork, TypeOther}

func (t Type) Known() bool {
	switch t {
	case TypeSick, TypePersonal, TypeWork, TypeOther:
		return true
	}
	return false
}

// Status is the admin-review lifecycle state of a request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Record is one employee's leave request as stored in the sheet. Dates are
// kept as raw strings; the backend may append a timestamp suffix to them,
// so calendar comparisons only ever look at the first 10 characters.
type Record struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Type       Type   `json:"type"`
	Reason     string `json:"reason"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Contact    string `json:"contact"`
	Status     Status `json:"status"`
}

// DatePrefix returns the YYYY-MM-DD portion of a date string, tolerating
// ISO timestamps coming back from the sheet.
func DatePrefix(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
