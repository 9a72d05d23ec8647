package domain

// Check captures the outcome of a single named rule.
type Check struct {
	Name   string
	Passed bool
}

// Report aggregates checks in declaration order.
type Report struct {
	Checks []Check
}

// Failed returns the failing checks, preserving order.
func (r Report) Failed() []Check {
	var failed []Check
	for _, check := range r.Checks {
		if !check.Passed {
			failed = append(failed, check)
		}
	}
	return failed
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return len(r.Failed()) == 0
}
