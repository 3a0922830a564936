package model

type Verdict string

const (
	VerdictAvailable   Verdict = "available"   // a shift ending at the closing hour is free
	VerdictUnavailable Verdict = "unavailable" // shifts were inspected, none ends at the closing hour
	VerdictNoData      Verdict = "no_data"     // no shift in the response had a usable end time
)
