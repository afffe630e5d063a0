package types

// Institution is one entry in the external institution directory,
// immutable for the duration of a run. Queues is the set of chat queue
// identifiers belonging to the institution; it may be empty for
// institutions registered without active queues.
type Institution struct {
	ShortName string `json:"short_name"`
	FullName  string `json:"full_name"`
	// OperatorSuffix is the trailing token on staff account names
	// (e.g. "jdoe-uot"), used to attribute operators to their home
	// institution in cross-staffing breakdowns.
	OperatorSuffix string   `json:"operator_suffix,omitempty"`
	Queues         []string `json:"queues"`
}

// HasQueue reports whether the queue identifier belongs to this
// institution.
func (i Institution) HasQueue(queue string) bool {
	for _, q := range i.Queues {
		if q == queue {
			return true
		}
	}
	return false
}
