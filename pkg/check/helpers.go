package check

import (
	"fmt"
)

// Unknown builds an UNKNOWN result describing err.
func Unknown(err error) Result {
	return Result{
		Status:  StatusUnknown,
		Details: []string{fmt.Sprintf("ERROR: %v", err)},
	}
}

// AddDetail appends a detail part to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail part to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}

// AddPerfdata appends a rendered performance data entry to the result.
func (r *Result) AddPerfdata(entry fmt.Stringer) *Result {
	r.Perfdata = append(r.Perfdata, entry.String())
	return r
}
