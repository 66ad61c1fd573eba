package domain

// MaxNameLen mirrors the VARCHAR(30) limit shared by the tag, task and
// importance name columns.
const MaxNameLen = 30

// Tag is a named label usable to annotate bookings and tasks. Names are
// unique across the vocabulary.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
