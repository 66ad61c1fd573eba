package domain

import "time"

// Booking represents a calendar entry with a start and an optional end time.
// Timestamps are unix milliseconds, matching the schema's integer columns.
type Booking struct {
	ID          int64  `json:"id"`
	StartDate   int64  `json:"startdate"`
	EndDate     *int64 `json:"enddate,omitempty"`
	Description string `json:"des"`
}

// IsOpen reports whether the booking has not been finished yet.
func (b *Booking) IsOpen() bool {
	return b != nil && b.EndDate == nil
}

// Finish closes the booking at the given reference time.
func (b *Booking) Finish(reference time.Time) {
	if b == nil {
		return
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	end := reference.UnixMilli()
	b.EndDate = &end
}
