package lexer

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/scratchpad"
)

const source = `x = "hello" " " "world";
y = "tab\there" + 42; // comment
z = "bad\q";
`

func newLexer(t *testing.T, capacity int, src string) (*Lexer, *scratchpad.Pad, *Diagnostics) {
	t.Helper()
	diag := &Diagnostics{}
	diag.Reset("test.c")
	pad := scratchpad.New(capacity, scratchpad.WithReporter(diag))
	t.Cleanup(pad.Release)
	return New(pad, diag, []byte(src)), pad, diag
}

func TestNext(t *testing.T) {
	lx, pad, diag := newLexer(t, 1024, source)

	type tok struct {
		kind Kind
		text string
		line int
	}
	want := []tok{
		{Ident, "x", 1}, {Punct, "=", 1}, {String, "hello world", 1}, {Punct, ";", 1},
		{Ident, "y", 2}, {Punct, "=", 2}, {String, "tab\there", 2}, {Punct, "+", 2}, {Number, "42", 2}, {Punct, ";", 2},
		{Ident, "z", 3}, {Punct, "=", 3}, {String, "badq", 3}, {Punct, ";", 3},
		{EOF, "", 4},
	}

	for i, w := range want {
		got, err := lx.Next()
		require.NoError(t, err)
		require.Equal(t, w.kind, got.Kind, "token %d", i)
		assert.Equal(t, w.line, got.Line, "token %d", i)
		switch got.Kind {
		case Punct:
			assert.Equal(t, w.text, string(got.Punct), "token %d", i)
		case EOF:
		default:
			assert.Equal(t, w.text, pad.String(got.Text), "token %d", i)
		}
	}

	require.Len(t, diag.List, 1)
	assert.Equal(t, `test.c:3: unknown escape sequence \q`, diag.List[0].String())
	assert.Equal(t, 2, lx.joins)
}

func TestJoinedLiteralIsOneSlot(t *testing.T) {
	lx, pad, _ := newLexer(t, 1024, `"a" "b"  "c"`)

	tok, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, "abc", pad.String(tok.Text))
	assert.True(t, pad.IsLast(tok.Text))
	assert.Equal(t, 1, pad.Metrics().Slots)
}

func TestScan(t *testing.T) {
	lx, pad, diag := newLexer(t, 1024, source)

	st, err := lx.Scan()
	require.NoError(t, err)
	assert.Equal(t, 14, st.Tokens)
	assert.Equal(t, 3, st.Idents)
	assert.Equal(t, 1, st.Numbers)
	assert.Equal(t, 3, st.Strings)
	assert.Equal(t, 2, st.Joins)
	assert.Len(t, diag.List, 1)
	assert.Greater(t, st.Peak.SizeInUse, 0)

	// Only the statement names are left.
	assert.Equal(t, []string{"x", "y", "z"}, lx.Names())
	assert.Equal(t, 9, pad.SizeInUse())

	lx.FreeNames()
	m := pad.Metrics()
	assert.Equal(t, 6, m.SizeInUse, "last name popped")
	assert.Equal(t, 2, m.DeadSlots, "earlier names tombstoned")
}

func TestScanLongLiteral(t *testing.T) {
	long := strings.Repeat("w", 400)
	lx, pad, _ := newLexer(t, 64, `s = "`+long+`" "!";`)

	st, err := lx.Scan()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Joins)
	assert.Equal(t, 1, st.Peak.OverflowBlocks)
	assert.Equal(t, 0, pad.OverflowBlocks())
}

func TestScanUnterminated(t *testing.T) {
	lx, pad, _ := newLexer(t, 1024, "a = b;\nc = \"open")

	_, err := lx.Scan()
	require.Error(t, err)
	assert.True(t, errors.Is(err, scratchpad.ErrUnterminated))
	assert.Contains(t, err.Error(), "test.c:2")
	assert.Equal(t, []string{"a", "c"}, lx.Names())

	lx.FreeNames()
	pad.Reset()
	assert.Equal(t, 0, pad.SizeInUse())
}

func TestScanUnterminatedJoin(t *testing.T) {
	lx, pad, _ := newLexer(t, 1024, `"done" "open`)

	_, err := lx.Next()
	assert.True(t, errors.Is(err, scratchpad.ErrUnterminated))
	assert.Equal(t, 0, pad.SizeInUse(), "first literal freed")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Ident", Ident.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
