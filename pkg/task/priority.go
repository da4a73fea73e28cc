package task

import "strconv"

// Priority orders tasks for dispatch. Valid values lie in [-128, 127]; higher runs first.
type Priority int

const (
	PriorityLowest   Priority = -128
	PriorityVeryLow  Priority = -100
	PriorityLow      Priority = -50
	PriorityNormal   Priority = 0
	PriorityHigh     Priority = 50
	PriorityVeryHigh Priority = 100
	PriorityHighest  Priority = 127

	PriorityDefault = PriorityNormal
)

// IsValidPriority reports whether p lies in [PriorityLowest, PriorityHighest].
func IsValidPriority(p int) bool {
	return p >= int(PriorityLowest) && p <= int(PriorityHighest)
}

// NormalizePriority clamps p into the valid range. Values already in range are
// returned unchanged.
func NormalizePriority(p int) Priority {
	if p < int(PriorityLowest) {
		return PriorityLowest
	}
	if p > int(PriorityHighest) {
		return PriorityHighest
	}
	return Priority(p)
}

// Valid checks if the priority is within valid range
func (p Priority) Valid() bool {
	return IsValidPriority(int(p))
}

func (p Priority) String() string {
	switch p {
	case PriorityLowest:
		return "lowest"
	case PriorityVeryLow:
		return "very_low"
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityVeryHigh:
		return "very_high"
	case PriorityHighest:
		return "highest"
	}
	return strconv.Itoa(int(p))
}
