package scratchpad

// Alloc returns an uninitialized buffer of exactly size bytes. The caller
// owns all of them, terminator included. Sizes up to MaxSlotSize come from
// the arena while it has room; anything else goes to an overflow block.
func (p *Pad) Alloc(size int) Str {
	p.panicIfReleased()
	if size < 0 {
		violationf("Alloc: negative size %d", size)
	}
	if off, ok := p.arena.bump(size); ok {
		if p.trace {
			p.log.Debug("scratchpad alloc", "size", size, "path", "arena")
		}
		return p.arenaStr(off, size)
	}
	if p.trace {
		p.log.Debug("scratchpad alloc", "size", size, "path", "overflow")
	}
	return p.overflowStr(p.overflow.insert(size))
}

// Copy duplicates s. As with a C string, a NUL byte in s ends it.
// The copy lands in the arena, as the last slot, when it fits.
func (p *Pad) Copy(s string) Str {
	return copyFrom(p, s)
}

// CopyBytes is Copy for a byte slice.
func (p *Pad) CopyBytes(b []byte) Str {
	return copyFrom(p, b)
}

func copyFrom[S ~string | ~[]byte](p *Pad, s S) Str {
	p.panicIfReleased()

	// Guess that there is room and copy straight into the free tail, which
	// saves measuring s first.
	dst := p.arena.scratch()
	n := 0
	for n < len(s) && n < len(dst) && s[n] != 0 {
		dst[n] = s[n]
		n++
	}
	if (n == len(s) || s[n] == 0) && p.arena.fits(n+1) {
		off := p.arena.commit(n)
		if p.trace {
			p.log.Debug("scratchpad copy", "len", n, "path", "arena")
		}
		return p.arenaStr(off, n+1)
	}

	// No room: the length is what was scanned plus what is left.
	total := n
	for total < len(s) && s[total] != 0 {
		total++
	}
	b := p.overflow.insert(total + 1)
	for i := 0; i < total; i++ {
		b.data[i] = s[i]
	}
	b.data[total] = 0
	if p.trace {
		p.log.Debug("scratchpad copy", "len", total, "path", "overflow")
	}
	return p.overflowStr(b)
}

// Grow enlarges s to newSize bytes, which must not be less than Size(s).
// The content is preserved; the result may live somewhere else, in which
// case s is no longer valid.
//
// The last arena slot grows in place when it can and otherwise moves to an
// overflow block. An interior slot is copied to a fresh slot at the tail, or
// to an overflow block, and the original is tombstoned.
func (p *Pad) Grow(s Str, newSize int) Str {
	p.check(s, "Grow")
	size := p.size(s)
	if newSize < size {
		violationf("Grow: new size %d is less than current size %d", newSize, size)
	}

	if s.origin == OriginOverflow {
		if p.trace {
			p.log.Debug("scratchpad grow", "from", size, "to", newSize, "path", "overflow")
		}
		p.overflow.grow(s.blk, newSize)
		return s
	}

	run := p.arena.buf[s.off : s.off+size]
	if p.arena.isLast(s.off) {
		if p.arena.growLast(newSize) {
			if p.trace {
				p.log.Debug("scratchpad grow", "from", size, "to", newSize, "path", "arena")
			}
			return p.arenaStr(s.off, newSize)
		}
		if p.trace {
			p.log.Debug("scratchpad grow", "from", size, "to", newSize, "path", "promote")
		}
		b := p.overflow.insert(newSize)
		copy(b.data, run)
		p.arena.popLast()
		return p.overflowStr(b)
	}

	if off, ok := p.arena.bump(newSize); ok {
		if p.trace {
			p.log.Debug("scratchpad grow", "from", size, "to", newSize, "path", "interior")
		}
		copy(p.arena.buf[off:], run)
		p.arena.tombstone(s.off)
		return p.arenaStr(off, newSize)
	}
	if p.trace {
		p.log.Debug("scratchpad grow", "from", size, "to", newSize, "path", "interior-promote")
	}
	b := p.overflow.insert(newSize)
	copy(b.data, run)
	p.arena.tombstone(s.off)
	return p.overflowStr(b)
}

// Free releases s. Freeing the last arena slot gives its space back at once
// and freeing an overflow block returns it to the allocator. Any other arena
// slot is only tombstoned; its space is reclaimed by Reset. Freeing a slot
// whose first byte is already NUL is a no-op.
func (p *Pad) Free(s Str) {
	p.check(s, "Free")
	switch {
	case s.origin == OriginOverflow:
		if p.trace {
			p.log.Debug("scratchpad free", "size", len(s.blk.data), "path", "overflow")
		}
		p.overflow.remove(s.blk)
	case p.arena.isLast(s.off):
		if p.trace {
			p.log.Debug("scratchpad free", "size", s.size, "path", "last")
		}
		p.arena.popLast()
	case s.size == 0 || p.arena.buf[s.off] == 0:
		// already tombstoned
	default:
		if p.trace {
			p.log.Debug("scratchpad free", "size", s.size, "path", "interior")
		}
		p.arena.tombstone(s.off)
	}
}

// Join appends the content of b to a and returns the result. Both a and b
// are consumed.
//
// When a and b are arena slots, b is the last slot and a sits directly in
// front of it, the two slots are merged in place and the result is the new
// last slot. This is the shape produced by building a string left to right.
// Otherwise a is grown to fit, b's content is appended and b is freed.
func (p *Pad) Join(a, b Str) Str {
	p.check(a, "Join")
	p.check(b, "Join")
	if a == b {
		violationf("Join: string joined with itself")
	}
	aLen, bLen := p.Len(a), p.Len(b)

	if a.origin == OriginArena && b.origin == OriginArena &&
		p.arena.adjacent(a.off, a.size, b.off) && aLen+bLen+1 <= MaxSlotSize {
		if p.trace {
			p.log.Debug("scratchpad join", "len", aLen+bLen, "path", "merge")
		}
		run := p.arena.merge(a.off, aLen, b.off, bLen)
		return p.arenaStr(a.off, run)
	}

	if p.trace {
		p.log.Debug("scratchpad join", "len", aLen+bLen, "path", "grow")
	}
	size := aLen + bLen + 1
	if cur := p.size(a); cur > size {
		size = cur
	}
	res := p.Grow(a, size)
	dst := p.Bytes(res)
	copy(dst[aLen:], p.Bytes(b)[:bLen])
	dst[aLen+bLen] = 0
	p.Free(b)
	return res
}
