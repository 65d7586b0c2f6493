package valueobject

import "fmt"

// Decision is an immutable value object representing the outcome of an
// integration evaluation.
type Decision struct {
	value string
}

var (
	DecisionAllow = Decision{value: "ALLOW"}
	DecisionBlock = Decision{value: "BLOCK"}
)

// DecisionFromScore determines the decision for a risk score against the
// configured blocking threshold.
func DecisionFromScore(score, threshold int) Decision {
	if score >= threshold {
		return DecisionBlock
	}
	return DecisionAllow
}

// DecisionFromString reconstructs a Decision from its string representation.
func DecisionFromString(s string) (Decision, error) {
	switch s {
	case "ALLOW":
		return DecisionAllow, nil
	case "BLOCK":
		return DecisionBlock, nil
	default:
		return Decision{}, fmt.Errorf("invalid decision: %s", s)
	}
}

// String returns the string representation.
func (d Decision) String() string {
	return d.value
}

// IsBlocked returns true if the decision is BLOCK.
func (d Decision) IsBlocked() bool {
	return d.value == "BLOCK"
}

// IsZero returns true if the decision has not been set.
func (d Decision) IsZero() bool {
	return d.value == ""
}

// Equal checks equality with another Decision.
func (d Decision) Equal(other Decision) bool {
	return d.value == other.value
}
