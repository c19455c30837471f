package scratchpad

// DefaultCapacity is the default arena capacity for new pads (64 KiB).
const DefaultCapacity = 1 << 16

// MaxSlotSize is the largest run (content plus terminator) an arena slot can
// hold. The run is recorded in a single length byte after the slot.
const MaxSlotSize = 255

// arena is the bump region of a pad. Slots are laid out back to back:
//
//	string1 <0> <len1> string2 <0> <len2>
//	                   ^                  ^
//	                   last               tail
//
// where len is the run of the slot (content plus terminator). The length byte
// of the slot before last sits at last-1, which makes popping the last slot
// O(1) without a scan.
type arena struct {
	buf  []byte
	last int // start of the most recent slot
	tail int // next free byte
}

func newArena(capacity int) *arena {
	return &arena{buf: make([]byte, capacity)}
}

// empty reports whether there is no last slot.
func (a *arena) empty() bool {
	return a.last == a.tail
}

func (a *arena) isLast(off int) bool {
	return !a.empty() && off == a.last
}

// fits reports whether a slot of the given run can be carved at tail.
func (a *arena) fits(run int) bool {
	return run <= MaxSlotSize && a.tail+run+1 <= len(a.buf)
}

// bump carves a new slot of run bytes at tail and makes it last.
func (a *arena) bump(run int) (int, bool) {
	if !a.fits(run) {
		return 0, false
	}
	off := a.tail
	a.last = off
	a.tail = off + run + 1
	a.buf[a.tail-1] = byte(run)
	return off, true
}

// popLast releases the last slot and makes the slot before it last.
func (a *arena) popLast() {
	a.tail = a.last
	if a.last == 0 {
		return
	}
	a.last -= int(a.buf[a.last-1]) + 1
}

// tombstone marks an interior slot dead. Its space comes back on reset only.
func (a *arena) tombstone(off int) {
	a.buf[off] = 0
}

// growLast extends the last slot in place to run bytes.
func (a *arena) growLast(run int) bool {
	if run > MaxSlotSize || a.last+run+1 > len(a.buf) {
		return false
	}
	a.tail = a.last + run + 1
	a.buf[a.tail-1] = byte(run)
	return true
}

// scratch returns the free tail region a string of unknown length may be
// written into before commit. It leaves room for the terminator and the
// length byte.
func (a *arena) scratch() []byte {
	n := len(a.buf) - a.tail - 2
	if n > MaxSlotSize-1 {
		n = MaxSlotSize - 1
	}
	if n < 0 {
		n = 0
	}
	return a.buf[a.tail : a.tail+n]
}

// commit turns n bytes written into scratch into a terminated last slot.
func (a *arena) commit(n int) int {
	off := a.tail
	a.buf[off+n] = 0
	a.last = off
	a.tail = off + n + 2
	a.buf[a.tail-1] = byte(n + 1)
	return off
}

// adjacent reports whether the slot at b is last and directly follows the
// slot of run aRun at a, with no other slot between them.
func (a *arena) adjacent(aOff, aRun, bOff int) bool {
	return a.isLast(bOff) && aOff+aRun+1 == bOff
}

// merge folds the last slot at bOff into the slot at aOff. aLen and bLen are
// content lengths. The merged slot becomes last; the caller checks that its
// run fits in a length byte.
func (a *arena) merge(aOff, aLen, bOff, bLen int) int {
	copy(a.buf[aOff+aLen:], a.buf[bOff:bOff+bLen])
	run := aLen + bLen + 1
	a.buf[aOff+run-1] = 0
	a.last = aOff
	a.tail = aOff + run + 1
	a.buf[a.tail-1] = byte(run)
	return run
}

// walk calls fn for every slot from last back to the start of the buffer.
func (a *arena) walk(fn func(off, run int)) {
	for end := a.tail; end > 0; {
		run := int(a.buf[end-1])
		off := end - 1 - run
		fn(off, run)
		end = off
	}
}

// reset discards every slot, tombstoned or not.
func (a *arena) reset() {
	a.last = 0
	a.tail = 0
}
