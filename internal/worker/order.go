package worker

// Reorderer releases results in Index order, starting from index 0.
// Results that arrive early are held until every lower index has been
// released. It is not safe for concurrent use.
type Reorderer struct {
	next    int
	pending map[int]ProcessResult
}

// NewReorderer creates a Reorderer expecting index 0 first.
func NewReorderer() *Reorderer {
	return &Reorderer{pending: make(map[int]ProcessResult)}
}

// Push adds result and returns the results that are now ready, in order.
func (r *Reorderer) Push(result ProcessResult) []ProcessResult {
	r.pending[result.Index] = result

	var ready []ProcessResult
	for {
		res, ok := r.pending[r.next]
		if !ok {
			return ready
		}
		delete(r.pending, r.next)
		ready = append(ready, res)
		r.next++
	}
}

// Pending returns the number of results held back.
func (r *Reorderer) Pending() int {
	return len(r.pending)
}
