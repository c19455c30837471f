package scratchpad

import (
	"bytes"
	"context"
	"log/slog"
)

// Origin tells which tier of a pad owns a string.
type Origin uint8

const (
	OriginNone Origin = iota
	OriginArena
	OriginOverflow
)

func (o Origin) String() string {
	switch o {
	case OriginArena:
		return "arena"
	case OriginOverflow:
		return "overflow"
	default:
		return "none"
	}
}

// Str is a handle to a string allocated from a Pad. The zero Str is not a
// valid handle. A Str is consumed by Free, Grow and Join; only the returned
// handle may be used afterwards.
type Str struct {
	origin Origin
	off    int // arena slot start
	size   int // arena slot run
	blk    *block
	epoch  uint32
}

// Origin reports which tier holds s.
func (s Str) Origin() Origin { return s.origin }

// IsZero reports whether s is the zero handle.
func (s Str) IsZero() bool { return s.origin == OriginNone }

// Pad is a scratch allocator for short-lived strings. Strings are carved from
// a fixed arena when they fit and spill to heap-backed overflow blocks when
// they do not. Not goroutine-safe.
type Pad struct {
	arena    *arena
	overflow *overflow
	reporter Reporter
	log      *slog.Logger
	trace    bool
	epoch    uint32
}

// Option configures a Pad.
type Option func(*Pad)

// WithAllocator sets the allocator used for overflow blocks.
func WithAllocator(alloc Allocator) Option {
	return func(p *Pad) { p.overflow.alloc = alloc }
}

// WithReporter sets the receiver of escape sequence diagnostics.
func WithReporter(r Reporter) Option {
	return func(p *Pad) { p.reporter = r }
}

// WithLogger sets the logger used for debug tracing. Unless WithReporter is
// also given, diagnostics are logged to it as warnings.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pad) { p.log = l }
}

// New creates a Pad whose arena holds capacity bytes.
// If capacity <= 0, DefaultCapacity is used.
func New(capacity int, opts ...Option) *Pad {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	p := &Pad{
		arena:    newArena(capacity),
		overflow: newOverflow(&HeapAllocator{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = slog.New(slog.DiscardHandler)
	}
	if p.reporter == nil {
		p.reporter = logReporter{p.log}
	}
	p.trace = p.log.Enabled(context.Background(), slog.LevelDebug)
	return p
}

// Reset frees every overflow block and rewinds the arena, tombstones
// included. Every Str handed out before the call becomes invalid.
func (p *Pad) Reset() {
	p.panicIfReleased()
	if p.trace {
		p.log.Debug("scratchpad reset", "arena", p.arena.tail, "overflow", p.overflow.count)
	}
	p.overflow.releaseAll()
	p.arena.reset()
	p.epoch++
}

// Release drops the arena and all overflow blocks and makes the pad
// unusable. Any subsequent operations will panic.
func (p *Pad) Release() {
	if p.arena == nil {
		return
	}
	p.overflow.releaseAll()
	p.arena = nil
	p.epoch++
}

// Bytes returns the whole writable run of s: for an arena slot its size
// bytes, for an overflow block its payload. Appending to the result never
// writes into the pad.
func (p *Pad) Bytes(s Str) []byte {
	p.check(s, "Bytes")
	if s.origin == OriginOverflow {
		return s.blk.data[:len(s.blk.data):len(s.blk.data)]
	}
	return p.arena.buf[s.off : s.off+s.size : s.off+s.size]
}

// String returns the content of s up to its terminator.
func (p *Pad) String(s Str) string {
	return string(p.content(s))
}

// Len returns the content length of s, excluding the terminator.
func (p *Pad) Len(s Str) int {
	return len(p.content(s))
}

// Size returns the number of bytes reserved for s, terminator included.
func (p *Pad) Size(s Str) int {
	p.check(s, "Size")
	return p.size(s)
}

// IsLast reports whether s is the most recent arena slot, the only one that
// can be freed or grown in place.
func (p *Pad) IsLast(s Str) bool {
	p.check(s, "IsLast")
	return s.origin == OriginArena && p.arena.isLast(s.off)
}

func (p *Pad) content(s Str) []byte {
	b := p.Bytes(s)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

func (p *Pad) size(s Str) int {
	if s.origin == OriginOverflow {
		return len(s.blk.data)
	}
	return s.size
}

func (p *Pad) arenaStr(off, size int) Str {
	return Str{origin: OriginArena, off: off, size: size, epoch: p.epoch}
}

func (p *Pad) overflowStr(b *block) Str {
	return Str{origin: OriginOverflow, blk: b, epoch: p.epoch}
}

// check validates s before op touches it.
func (p *Pad) check(s Str, op string) {
	p.panicIfReleased()
	switch s.origin {
	case OriginArena:
		if s.epoch != p.epoch {
			violationf("%s: stale handle from before Reset", op)
		}
		end := s.off + s.size
		if end >= p.arena.tail || p.arena.buf[end] != byte(s.size) {
			violationf("%s: arena slot at %d (size %d) is no longer allocated", op, s.off, s.size)
		}
	case OriginOverflow:
		if s.epoch != p.epoch {
			violationf("%s: stale handle from before Reset", op)
		}
		if !s.blk.live {
			violationf("%s: overflow block already freed", op)
		}
	default:
		violationf("%s: zero handle", op)
	}
}

// panicIfReleased panics if the pad has been released.
func (p *Pad) panicIfReleased() {
	if p.arena == nil {
		panic("scratchpad: use after Release()")
	}
}
