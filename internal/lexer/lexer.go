// Package lexer is a small C-like tokenizer that keeps every identifier,
// number and string literal it produces on a scratchpad.Pad. It drives the
// pad the way a compiler front end does: literals are decoded in place,
// adjacent literals are joined, and strings die at the end of a statement.
package lexer

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/scratchpad"
)

// Kind is the kind of a token.
type Kind uint8

const (
	EOF Kind = iota
	Ident
	Number
	String
	Punct
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	case String:
		return "String"
	case Punct:
		return "Punct"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is one lexeme. Text is set for identifiers, numbers and strings and
// is owned by whoever holds the token.
type Token struct {
	Kind  Kind
	Text  scratchpad.Str
	Punct byte
	Line  int
}

// Diagnostic is a warning raised while lexing.
type Diagnostic struct {
	File string
	Line int
	Msg  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Msg)
}

// Diagnostics collects warnings at the lexer's current position. Pass it to
// scratchpad.WithReporter so escape warnings carry a line number.
type Diagnostics struct {
	File string
	Line int
	List []Diagnostic
}

// Warn implements scratchpad.Reporter.
func (d *Diagnostics) Warn(msg string) {
	d.List = append(d.List, Diagnostic{File: d.File, Line: d.Line, Msg: msg})
}

// Reset starts collecting for a new file.
func (d *Diagnostics) Reset(file string) {
	d.File = file
	d.Line = 1
	d.List = d.List[:0]
}

// Lexer tokenizes one source buffer.
type Lexer struct {
	pad  *scratchpad.Pad
	diag *Diagnostics
	src  []byte
	pos  int
	line int

	joins int
	names []scratchpad.Str
}

// New returns a lexer over src. diag may be nil; it should be the pad's
// reporter for warnings to carry positions.
func New(pad *scratchpad.Pad, diag *Diagnostics, src []byte) *Lexer {
	if diag == nil {
		diag = &Diagnostics{}
	}
	return &Lexer{pad: pad, diag: diag, src: src, line: 1}
}

// Next returns the next token. Adjacent string literals come back as one
// String token.
func (l *Lexer) Next() (Token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Line: l.line}, nil
	}

	start, c := l.pos, l.src[l.pos]
	switch {
	case isLetter(c):
		for l.pos < len(l.src) && (isLetter(l.src[l.pos]) || isDigit(l.src[l.pos])) {
			l.pos++
		}
		return Token{Kind: Ident, Text: l.pad.CopyBytes(l.src[start:l.pos]), Line: l.line}, nil
	case isDigit(c):
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
		return Token{Kind: Number, Text: l.pad.CopyBytes(l.src[start:l.pos]), Line: l.line}, nil
	case c == '"':
		return l.lexString()
	}
	l.pos++
	return Token{Kind: Punct, Punct: c, Line: l.line}, nil
}

// lexString reads a literal and every literal directly following it.
func (l *Lexer) lexString() (Token, error) {
	line := l.line
	s, err := l.literal()
	if err != nil {
		return Token{}, err
	}
	for {
		l.skipSpace()
		if l.pos >= len(l.src) || l.src[l.pos] != '"' {
			break
		}
		next, err := l.literal()
		if err != nil {
			l.pad.Free(s)
			return Token{}, err
		}
		s = l.pad.Join(s, next)
		l.joins++
	}
	return Token{Kind: String, Text: s, Line: line}, nil
}

// literal decodes the literal whose opening quote is at pos.
func (l *Lexer) literal() (scratchpad.Str, error) {
	l.diag.Line = l.line
	start := l.pos
	s, n, err := l.pad.CopyQuotedEscaped(l.src[l.pos+1:])
	if err != nil {
		return s, errors.Wrapf(err, "%s:%d", l.diag.File, l.line)
	}
	l.pos += 1 + n
	l.line += bytes.Count(l.src[start:l.pos], []byte{'\n'})
	return s, nil
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
