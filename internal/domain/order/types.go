package order

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCanceled   Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}
