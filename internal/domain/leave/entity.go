package leave

import "time"

type Record struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	// TotalDays is the inclusive day count between StartDate and EndDate,
	// computed server-side on every write.
	TotalDays int
	Status    Status
	Reason    string
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Type string

const (
	TypeAnnual Type = "annual"
	TypeSick   Type = "sick"
	TypeUnpaid Type = "unpaid"
	TypeOther  Type = "other"
)

type Status string

const (
	StatusRequested Status = "requested"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func ValidType(t Type) bool {
	switch t {
	case TypeAnnual, TypeSick, TypeUnpaid, TypeOther:
		return true
	}
	return false
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusRequested, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// InclusiveDays counts calendar days between start and end, both ends
// included. A single-day leave yields 1.
func InclusiveDays(start, end time.Time) int {
	s := start.Truncate(24 * time.Hour)
	e := end.Truncate(24 * time.Hour)
	return int(e.Sub(s).Hours()/24) + 1
}
