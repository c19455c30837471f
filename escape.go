package scratchpad

import (
	"fmt"
	"log/slog"
)

// Reporter receives non-fatal diagnostics, one call per unknown escape.
type Reporter interface {
	Warn(msg string)
}

// ReporterFunc adapts a function to a Reporter.
type ReporterFunc func(msg string)

// Warn calls f(msg).
func (f ReporterFunc) Warn(msg string) { f(msg) }

type logReporter struct {
	log *slog.Logger
}

func (r logReporter) Warn(msg string) {
	r.log.Warn(msg)
}

type litState uint8

const (
	litByte litState = iota
	litClose
	litEnd
)

// unescape decodes the next byte of a quoted literal starting at src[*i].
func (p *Pad) unescape(src []byte, i *int) (byte, litState) {
	if *i >= len(src) {
		return 0, litEnd
	}
	c := src[*i]
	switch c {
	case '"':
		*i++
		return 0, litClose
	case '\\':
		if *i+1 >= len(src) {
			*i = len(src)
			return 0, litEnd
		}
		e := src[*i+1]
		*i += 2
		switch e {
		case 'n':
			return '\n', litByte
		case 't':
			return '\t', litByte
		case 'r':
			return '\r', litByte
		case 'b':
			return '\b', litByte
		case '"', '\\':
			return e, litByte
		default:
			p.reporter.Warn(fmt.Sprintf("unknown escape sequence \\%c", e))
			return e, litByte
		}
	default:
		*i++
		return c, litByte
	}
}

// CopyQuotedEscaped decodes a double-quoted literal. src starts just past the
// opening quote. Backslash escapes \n \t \r \b \" and \\ are decoded; any
// other escaped byte is kept as is and reported as a warning. It returns the
// decoded string and the number of bytes of src consumed, closing quote
// included. If src ends before the closing quote, nothing is allocated and
// ErrUnterminated is returned.
func (p *Pad) CopyQuotedEscaped(src []byte) (Str, int, error) {
	p.panicIfReleased()
	dst := p.arena.scratch()
	i, n := 0, 0
	for {
		c, st := p.unescape(src, &i)
		switch st {
		case litClose:
			if !p.arena.fits(n + 1) {
				// Not even room for an empty slot.
				b := p.overflow.insert(n + 1)
				b.data[copy(b.data, dst[:n])] = 0
				return p.overflowStr(b), i, nil
			}
			off := p.arena.commit(n)
			if p.trace {
				p.log.Debug("scratchpad copy literal", "len", n, "path", "arena")
			}
			return p.arenaStr(off, n+1), i, nil
		case litEnd:
			return Str{}, i, ErrUnterminated
		}
		if n == len(dst) {
			return p.quotedOverflow(src, i, dst, c)
		}
		dst[n] = c
		n++
	}
}

// quotedOverflow finishes a literal that outgrew the arena. prefix holds what
// was decoded so far and pending the byte decoded but not yet stored.
func (p *Pad) quotedOverflow(src []byte, i int, prefix []byte, pending byte) (Str, int, error) {
	raw, ok := rawLiteralLen(src[i:])
	if !ok {
		return Str{}, len(src), ErrUnterminated
	}
	// Decoding never produces more bytes than it reads, so the raw length
	// (closing quote included) leaves room for the terminator.
	b := p.overflow.insert(len(prefix) + 1 + raw)
	w := copy(b.data, prefix)
	b.data[w] = pending
	w++
	for {
		c, st := p.unescape(src, &i)
		switch st {
		case litClose:
			b.data[w] = 0
			if p.trace {
				p.log.Debug("scratchpad copy literal", "len", w, "path", "overflow")
			}
			return p.overflowStr(b), i, nil
		case litEnd:
			p.overflow.remove(b)
			return Str{}, i, ErrUnterminated
		}
		b.data[w] = c
		w++
	}
}

// rawLiteralLen returns the raw length of the rest of a literal up to and
// including its closing quote, skipping escaped bytes.
func rawLiteralLen(src []byte) (int, bool) {
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '"':
			return i + 1, true
		}
	}
	return 0, false
}
