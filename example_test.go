package scratchpad_test

import (
	"fmt"
	"os"

	"github.com/pavanmanishd/scratchpad"
)

// Example demonstrates basic pad usage
func Example() {
	// Create a pad with the default arena capacity
	pad := scratchpad.New(0)
	defer pad.Release() // Always clean up

	// "hello, " "world": the second literal directly follows the first,
	// so joining them merges the two slots in place.
	a := pad.Copy("hello, ")
	b := pad.Copy("world")
	s := pad.Join(a, b)
	fmt.Println(pad.String(s), pad.IsLast(s), s.Origin())

	// Decode a quoted literal; src starts just past the opening quote.
	lit, n, err := pad.CopyQuotedEscaped([]byte(`tab\there" + rest`))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q consumed %d\n", pad.String(lit), n)

	fmt.Printf("Memory in use: %d bytes\n", pad.SizeInUse())

	// Free in LIFO order gives the space straight back
	pad.Free(lit)
	pad.Free(s)
	fmt.Printf("After free, memory in use: %d bytes\n", pad.SizeInUse())

	// Output:
	// hello, world true arena
	// "tab\there" consumed 10
	// Memory in use: 24 bytes
	// After free, memory in use: 0 bytes
}

// ExamplePad_Dump shows the arena layout after an interior free
func ExamplePad_Dump() {
	pad := scratchpad.New(32)
	defer pad.Release()

	hi := pad.Copy("hi")
	pad.Copy("yo")
	pad.Free(hi) // not the last slot: tombstoned

	if err := pad.Dump(os.Stdout); err != nil {
		panic(err)
	}

	// Output:
	// 0i0*yo0*
	//     l
	//         t
	// overflow: 0 blocks, 0 bytes
}

// ExamplePad_Grow shows a string outgrowing its arena slot
func ExamplePad_Grow() {
	pad := scratchpad.New(0)
	defer pad.Release()

	s := pad.Copy("grow me")
	s = pad.Grow(s, 64) // last slot: grows in place
	fmt.Println(pad.String(s), s.Origin(), pad.Size(s))

	s = pad.Grow(s, 1024) // past the slot limit: moves to overflow
	fmt.Println(pad.String(s), s.Origin(), pad.Size(s), pad.SizeInUse())

	// Output:
	// grow me arena 64
	// grow me overflow 1024 0
}

// ExampleReporterFunc collects escape diagnostics
func ExampleReporterFunc() {
	var warnings []string
	pad := scratchpad.New(0, scratchpad.WithReporter(scratchpad.ReporterFunc(func(msg string) {
		warnings = append(warnings, msg)
	})))
	defer pad.Release()

	s, _, _ := pad.CopyQuotedEscaped([]byte(`a\qb"`))
	fmt.Println(pad.String(s), warnings)

	// Output:
	// aqb [unknown escape sequence \q]
}
