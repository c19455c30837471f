package scratchpad

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the arena layout to w: one character per byte up to the tail,
// with NUL shown as '0' and other non-printable bytes as '*', followed by
// marker lines under the last slot ('l') and the tail ('t') and a summary of
// the overflow blocks.
func (p *Pad) Dump(w io.Writer) error {
	p.panicIfReleased()
	a := p.arena
	var sb strings.Builder
	for _, c := range a.buf[:a.tail] {
		switch {
		case c == 0:
			sb.WriteByte('0')
		case c < 32 || c > 126:
			sb.WriteByte('*')
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", a.last))
	sb.WriteString("l\n")
	sb.WriteString(strings.Repeat(" ", a.tail))
	sb.WriteString("t\n")
	fmt.Fprintf(&sb, "overflow: %d blocks, %d bytes\n", p.overflow.count, p.overflow.bytes)
	_, err := io.WriteString(w, sb.String())
	return err
}
