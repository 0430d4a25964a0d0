// Package browse holds the request DTOs for the read-only browse API.
package browse

// ListMeetingsRequest filters the meeting collection. Dates are inclusive
// bounds in YYYY-MM-DD form; tags is a comma-separated list matched
// case-insensitively against meeting topics.
type ListMeetingsRequest struct {
	Workgroup string `query:"workgroup"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Tags      string `query:"tags"`
}

// ListDecisionsRequest filters the aggregated decision collection.
type ListDecisionsRequest struct {
	Workgroup string `query:"workgroup"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// ListActionItemsRequest filters the aggregated action item collection.
// Status is matched against the canonical values.
type ListActionItemsRequest struct {
	Workgroup string `query:"workgroup"`
	Assignee  string `query:"assignee"`
	Status    string `query:"status"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// WorkgroupMeetingsRequest lists one workgroup's meetings.
type WorkgroupMeetingsRequest struct {
	Sort string `query:"sort" validate:"omitempty,oneof=newest oldest"`
}

// GraphRequest narrows a relationship graph before building it.
type GraphRequest struct {
	Workgroup string `query:"workgroup"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// ExportRequest selects the export format on top of the usual filters.
type ExportRequest struct {
	Format    string `query:"format" validate:"omitempty,oneof=text csv json"`
	Workgroup string `query:"workgroup"`
	Assignee  string `query:"assignee"`
	Status    string `query:"status"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}
