package enum

type BookingStatus string

const (
	BookingStatusRequested BookingStatus = "requested"
)
