package flights

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusDeparted  Status = "departed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusDeparted:
		return true
	}
	return false
}

// CanBeBooked reports whether new reservations may target a flight in
// this status.
func (s Status) CanBeBooked() bool {
	return s == StatusScheduled
}
