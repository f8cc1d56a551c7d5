package rider

import (
	"fmt"

	"pharmadelivery/internal/pkg/errs"
)

// Status represents a rider's approval state: pending after
// self-registration, active after administrative approval, inactive once
// taken out of the pool.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota
	// StatusPending means the rider registered and awaits approval.
	StatusPending
	// StatusActive means the rider may claim and be assigned orders.
	StatusActive
	// StatusInactive means the rider was removed from the pool.
	StatusInactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusActive:   "active",
		StatusInactive: "inactive",
	}
}

// StatusFromString converts a persisted enum string back to a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("riderStatus",
		fmt.Errorf("%q is not a valid rider status", s))
}

// Validate checks if the Status value is a member of the closed enum.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("riderStatus",
			fmt.Errorf("%d is not a valid rider status", s))
	}
	return nil
}

// String returns the persisted enum string for the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Approve transitions pending -> active.
func (s Status) Approve() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewStateConflictError("approve rider", s.String())
	}
	return StatusActive, nil
}

// Deactivate transitions active -> inactive.
func (s Status) Deactivate() (Status, error) {
	if s != StatusActive {
		return 0, errs.NewStateConflictError("deactivate rider", s.String())
	}
	return StatusInactive, nil
}
