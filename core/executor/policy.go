package executor

import (
	"errors"
	"fmt"
)

// Policy decides how overwrite candidates are confirmed.
type Policy int

const (
	// PolicyInteractive asks once per overwrite candidate.
	PolicyInteractive Policy = iota
	// PolicyForceYes overwrites without asking.
	PolicyForceYes
	// PolicyForceNo skips every overwrite without asking.
	PolicyForceNo
)

// ErrConflictingPolicy is returned when both --yes and --no are requested.
var ErrConflictingPolicy = errors.New("--yes and --no are mutually exclusive")

// PolicyFromFlags maps the CLI flags to a policy.
func PolicyFromFlags(yes, no bool) (Policy, error) {
	switch {
	case yes && no:
		return PolicyInteractive, ErrConflictingPolicy
	case yes:
		return PolicyForceYes, nil
	case no:
		return PolicyForceNo, nil
	default:
		return PolicyInteractive, nil
	}
}

func (p Policy) String() string {
	switch p {
	case PolicyInteractive:
		return "interactive"
	case PolicyForceYes:
		return "force-yes"
	case PolicyForceNo:
		return "force-no"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}
