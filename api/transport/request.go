package transport

// Field names follow the column names of the schema (startdate, des, iid)
// so payloads round-trip with stored rows.

type BookingCreateRequest struct {
	StartDate   int64  `json:"startdate"`
	EndDate     *int64 `json:"enddate"`
	Description string `json:"des"`
}

type BookingPatchRequest struct {
	StartDate   *int64  `json:"startdate"`
	EndDate     *int64  `json:"enddate"`
	Description *string `json:"des"`
}

type TaskCreateRequest struct {
	Name         string `json:"name"`
	Description  string `json:"des"`
	Done         bool   `json:"done"`
	ImportanceID int64  `json:"iid"`
}

type TaskPatchRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"des"`
	Done         *bool   `json:"done"`
	ImportanceID *int64  `json:"iid"`
}

type DoneRequest struct {
	Done *bool `json:"done"`
}

type AddTimeRequest struct {
	DeltaMillis int64 `json:"delta_ms"`
}

type TagRequest struct {
	Name string `json:"name"`
}

type AssignTagRequest struct {
	TagID int64 `json:"tag_id"`
}

type ImportanceCreateRequest struct {
	Name string `json:"name"`
	Val  int32  `json:"val"`
}

type ImportancePatchRequest struct {
	Name *string `json:"name"`
	Val  *int32  `json:"val"`
}
