package domain

// Importance is a named priority level. Val provides a total order among
// levels; both name and val are unique.
type Importance struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Val  int32  `json:"val"`
}

// Outranks reports whether i is more important than other.
func (i *Importance) Outranks(other *Importance) bool {
	if i == nil || other == nil {
		return false
	}
	return i.Val > other.Val
}
