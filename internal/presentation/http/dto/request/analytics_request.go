package request

import (
	"time"

	"github.com/salesight/salesight-api/pkg/apperror"
)

// dateLayouts are the accepted request date formats, tried in order
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate parses a request date string against the accepted layouts
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.ErrInvalidDate
}

// DateRangeRequest is the body of the analytics queries that require a range
type DateRangeRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Range validates and parses the request into an inclusive [start, end]
// range. Missing or malformed dates and an inverted range come back as
// 400-class errors; validation happens before any store access.
func (r *DateRangeRequest) Range() (time.Time, time.Time, error) {
	if r.StartDate == "" || r.EndDate == "" {
		return time.Time{}, time.Time{}, apperror.ErrMissingDateRange
	}

	start, err := ParseDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, apperror.ErrInvertedRange
	}
	return start, end, nil
}

// OptionalRange parses a range where both bounds may be absent (meaning all
// time). Supplying only one bound is a client error.
func (r *DateRangeRequest) OptionalRange() (*time.Time, *time.Time, error) {
	if r.StartDate == "" && r.EndDate == "" {
		return nil, nil, nil
	}
	start, end, err := r.Range()
	if err != nil {
		return nil, nil, err
	}
	return &start, &end, nil
}
