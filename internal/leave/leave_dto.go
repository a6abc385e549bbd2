package leave

type CreateLeaveRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=sick personal work other"`
	Reason     string `json:"reason" binding:"required"`
	Contact    string `json:"contact"`

	// Date pair for the regular leave types.
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// Date-time pair, used instead of the above when type == other.
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
}

type CreateLeaveResponse struct {
	Record  Record `json:"record"`
	Message string `json:"message"`
}

type PendingRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Type     Type   `json:"type"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Reason   string `json:"reason"`
}

type PendingListResponse struct {
	Empty       bool         `json:"empty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Items       []PendingRow `json:"items"`
}

type UpdateStatusResponse struct {
	Message string              `json:"message"`
	Pending PendingListResponse `json:"pending"`
}
