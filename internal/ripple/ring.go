package ripple

// ring is a fixed-capacity circular buffer of events ordered by insertion.
// Pushing onto a full ring overwrites the oldest entry.
type ring struct {
	buf [Capacity]Event
	w   int // write position
	len int // current fill level
}

func (r *ring) push(e Event) {
	r.buf[r.w] = e
	r.w = (r.w + 1) % Capacity
	if r.len < Capacity {
		r.len++
	}
}

// at returns the i-th most recent event; at(0) is the newest.
func (r *ring) at(i int) Event {
	return r.buf[(r.w-1-i+2*Capacity)%Capacity]
}

// oldest returns the least recent live event.
func (r *ring) oldest() Event {
	return r.at(r.len - 1)
}

// dropOldest forgets the least recent event.
func (r *ring) dropOldest() {
	if r.len > 0 {
		r.len--
	}
}

func (r *ring) clear() {
	r.w = 0
	r.len = 0
}
