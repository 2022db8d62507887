package engine

// step is one rung of the merit order: a capacity probe and an allocator.
// The dispatch branches are ordered lists of steps folded over the remaining
// surplus or deficit, so the priority is data, not control flow.
type step struct {
	name  string
	limit func() float64
	apply func(gw float64)
}

// allocate walks the steps in order, giving each the lesser of the remaining
// amount and its probed capacity, and returns what no step could take.
func allocate(total float64, steps []step) float64 {
	remaining := total
	for _, s := range steps {
		if remaining <= 0 {
			break
		}
		limit := s.limit()
		if limit <= 0 {
			continue
		}
		take := remaining
		if take > limit {
			take = limit
		}
		s.apply(take)
		remaining -= take
	}
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
