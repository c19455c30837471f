package lexer

import (
	"github.com/pavanmanishd/scratchpad"
)

// Stats summarizes a Scan.
type Stats struct {
	Tokens  int
	Idents  int
	Numbers int
	Strings int
	Joins   int
	Peak    scratchpad.PadMetrics // taken when the arena was fullest
}

// Scan lexes the whole buffer. The strings of a statement live until its
// ';' and are then freed newest first. The leading identifier of each
// statement is kept, like a declared name, until FreeNames.
func (l *Lexer) Scan() (Stats, error) {
	var st Stats
	var stmt []scratchpad.Str
	release := func() {
		for i := len(stmt) - 1; i >= 0; i-- {
			l.pad.Free(stmt[i])
		}
		stmt = stmt[:0]
	}
	first := true

	for {
		tok, err := l.Next()
		if err != nil {
			release()
			return st, err
		}
		if tok.Kind == EOF {
			break
		}
		st.Tokens++

		switch tok.Kind {
		case Ident:
			st.Idents++
		case Number:
			st.Numbers++
		case String:
			st.Strings++
		}

		switch {
		case tok.Kind == Punct && tok.Punct == ';':
			l.peak(&st)
			release()
			first = true
			continue
		case tok.Kind == Ident && first:
			l.names = append(l.names, tok.Text)
		case tok.Kind != Punct:
			stmt = append(stmt, tok.Text)
		}
		first = false
	}
	l.peak(&st)
	release()
	st.Joins = l.joins
	return st, nil
}

func (l *Lexer) peak(st *Stats) {
	if used := l.pad.SizeInUse() + l.pad.OverflowBytes(); used > st.Peak.SizeInUse+st.Peak.OverflowBytes {
		st.Peak = l.pad.Metrics()
	}
}

// Names returns the kept statement names as strings.
func (l *Lexer) Names() []string {
	out := make([]string, len(l.names))
	for i, s := range l.names {
		out[i] = l.pad.String(s)
	}
	return out
}

// FreeNames frees the kept names in declaration order, so all but the most
// recent one are tombstoned.
func (l *Lexer) FreeNames() {
	for _, s := range l.names {
		l.pad.Free(s)
	}
	l.names = nil
}
