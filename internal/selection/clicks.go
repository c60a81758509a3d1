package selection

// Click is one rendered control and how many times it has been clicked.
// Controls that were never clicked report a zero count.
type Click struct {
	ID    int
	Count int
}

// ResolveClick finds which control fired when a whole list of controls
// reports at once: the highest count wins and ties go to the control
// registered first. It returns false when no control reports a click.
//
// Handlers that already know their own id should call the Machine
// directly; this exists for list-style inputs that only carry counters.
func ResolveClick(clicks []Click) (int, bool) {
	best := -1
	for i, c := range clicks {
		if c.Count <= 0 {
			continue
		}
		if best < 0 || c.Count > clicks[best].Count {
			best = i
		}
	}

	if best < 0 {
		return 0, false
	}
	return clicks[best].ID, true
}
