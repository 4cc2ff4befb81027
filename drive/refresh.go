package drive

// Refresh is a single-slot "redraw requested" flag. Requests made before the
// next Drain collapse into one.
type Refresh struct {
	pending bool
}

func (r *Refresh) Request() {
	r.pending = true
}

func (r *Refresh) Pending() bool {
	return r.pending
}

// Drain clears the flag and reports whether a refresh was pending.
func (r *Refresh) Drain() bool {
	pending := r.pending
	r.pending = false
	return pending
}
