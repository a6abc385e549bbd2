package leave

// Fixed Thai display vocabulary. These strings are part of the product
// surface and must not be localized or reworded.

// Label returns the Thai badge text for a review status.
func (s Status) Label() string {
	switch s {
	case StatusApproved:
		return "อนุมัติแล้ว"
	case StatusRejected:
		return "ไม่อนุมัติ"
	default:
		return "รออนุมัติ"
	}
}

// BadgeClass returns the CSS class clients attach to the status badge.
func (s Status) BadgeClass() string {
	switch s {
	case StatusApproved:
		return "status-approved"
	case StatusRejected:
		return "status-rejected"
	default:
		return "status-pending"
	}
}

// Label returns the Thai name of a leave type. Unknown types come back
// empty; callers decide whether to drop or show them raw.
func (t Type) Label() string {
	switch t {
	case TypeSick:
		return "ลาป่วย"
	case TypePersonal:
		return "ลากิจ"
	case TypeWork:
		return "ลาปฏิบัติราชการ"
	case TypeOther:
		return "ลาระหว่างชั่วโมงการศึกษา"
	}
	return ""
}
