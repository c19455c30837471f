package scratchpad

// SizeInUse returns the number of arena bytes below the tail, tombstoned
// slots and length bytes included.
func (p *Pad) SizeInUse() int {
	if p.arena == nil {
		return 0
	}
	return p.arena.tail
}

// Capacity returns the arena capacity in bytes.
func (p *Pad) Capacity() int {
	if p.arena == nil {
		return 0
	}
	return len(p.arena.buf)
}

// Available returns the free arena bytes after the tail.
func (p *Pad) Available() int {
	return p.Capacity() - p.SizeInUse()
}

// Utilization returns the ratio of arena bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the pad has no capacity.
func (p *Pad) Utilization() float64 {
	capacity := p.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(p.SizeInUse()) / float64(capacity)
}

// OverflowBlocks returns the number of live overflow blocks.
func (p *Pad) OverflowBlocks() int {
	if p.arena == nil {
		return 0
	}
	return p.overflow.count
}

// OverflowBytes returns the payload bytes held by live overflow blocks.
func (p *Pad) OverflowBytes() int {
	if p.arena == nil {
		return 0
	}
	return p.overflow.bytes
}

// Metrics returns a snapshot of pad statistics. Unlike the other accessors it
// walks every arena slot.
func (p *Pad) Metrics() PadMetrics {
	m := PadMetrics{
		SizeInUse:      p.SizeInUse(),
		Capacity:       p.Capacity(),
		Utilization:    p.Utilization(),
		OverflowBlocks: p.OverflowBlocks(),
		OverflowBytes:  p.OverflowBytes(),
	}
	if p.arena == nil {
		return m
	}
	p.arena.walk(func(off, run int) {
		m.Slots++
		if run > 0 && p.arena.buf[off] == 0 {
			m.DeadSlots++
			m.DeadBytes += run + 1
		}
	})
	return m
}

// PadMetrics contains statistical information about a pad.
type PadMetrics struct {
	SizeInUse      int     // Arena bytes below the tail
	Capacity       int     // Arena capacity in bytes
	Utilization    float64 // Ratio of used to total capacity (0.0-1.0)
	Slots          int     // Arena slots, live or not
	DeadSlots      int     // Slots whose first byte is NUL: tombstoned or empty
	DeadBytes      int     // Arena bytes held by DeadSlots, length bytes included
	OverflowBlocks int     // Live overflow blocks
	OverflowBytes  int     // Payload bytes in overflow blocks
}
