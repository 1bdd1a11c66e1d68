package multicast

// Priority determines subscriber invocation order.
// Higher values are invoked first.
type Priority int8

const (
	// PriorityLowest is for subscribers that must observe the final state (audit, metrics).
	PriorityLowest Priority = iota - 2
	// PriorityLow runs after the regular subscribers.
	PriorityLow
	// PriorityNormal is the default priority.
	PriorityNormal
	// PriorityHigh runs before the regular subscribers.
	PriorityHigh
	// PriorityHighest is for subscribers that must run before anything else (core state updates).
	PriorityHighest
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch p {
	case PriorityLowest:
		return "lowest"
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityHighest:
		return "highest"
	default:
		return "custom"
	}
}

// IsValid reports whether p is one of the declared priority levels.
// Values outside the range are still ordered numerically by the registry.
func (p Priority) IsValid() bool {
	return p >= PriorityLowest && p <= PriorityHighest
}
