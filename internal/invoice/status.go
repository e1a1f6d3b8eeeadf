package invoice

// transitions is the invoice lifecycle. Cancelled and archived are terminal.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusIssued, StatusCancelled},
	StatusIssued:    {StatusPaid, StatusOverdue, StatusCancelled},
	StatusPaid:      {StatusArchived},
	StatusOverdue:   {StatusPaid, StatusCancelled},
	StatusCancelled: {},
	StatusArchived:  {},
}

// CanTransition reports whether the status change is legal.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}
