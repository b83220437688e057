package models

// RangeRequest carries the user-selected date range for a view refresh.
// An explicit start date takes precedence over the period preset; end is
// optional and defaults to today.
type RangeRequest struct {
	Period string `query:"period" default:"1y" validate:"omitempty,oneof=1m 3m 6m 1y 2y max"`
	Start  string `query:"start" validate:"omitempty,datetime=2006-01-02"`
	End    string `query:"end" validate:"omitempty,datetime=2006-01-02"`
}
