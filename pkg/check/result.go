package check

// Status is a plugin status level as understood by Nagios-compatible
// supervisors. Its numeric value is the process exit code.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

var statusLabels = map[Status]string{
	StatusOK:       "OK",
	StatusWarning:  "WARNING",
	StatusCritical: "CRITICAL",
	StatusUnknown:  "UNKNOWN",
}

// String returns the status label, e.g. "WARNING".
func (s Status) String() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return statusLabels[StatusUnknown]
}

// ExitCode returns the process exit code for the status.
func (s Status) ExitCode() int {
	if _, ok := statusLabels[s]; !ok {
		return int(StatusUnknown)
	}
	return int(s)
}

// Worst returns the most severe of the given levels. UNKNOWN is not part
// of the ordering used for threshold levels, so callers only pass OK,
// WARNING and CRITICAL.
func Worst(levels ...Status) Status {
	worst := StatusOK
	for _, l := range levels {
		if l > worst {
			worst = l
		}
	}
	return worst
}

// Result holds the outcome of a single plugin run.
type Result struct {
	Status   Status   // exit level
	Details  []string // human-readable summary parts, joined with ", "
	Perfdata []string // rendered performance data entries
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
