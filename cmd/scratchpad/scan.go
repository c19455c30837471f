package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/scratchpad"
	"github.com/pavanmanishd/scratchpad/internal/lexer"
)

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file>...",
		Short: "Lex files and print pad usage per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.scan(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
}

// scan lexes every file on one pad, resetting it in between, and renders a
// row per file. A file that fails is reported and skipped.
func (a *app) scan(out, errOut io.Writer, files []string) error {
	diag := &lexer.Diagnostics{}
	pad := a.newPad(diag)
	defer pad.Release()

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"File", "Tokens", "Strings", "Joins", "Warnings", "Peak Arena", "Dead Slots", "Overflow"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	failed := 0
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "read %s", file)
		}
		pad.Reset()
		diag.Reset(file)

		st, err := scanFile(pad, diag, src)
		for _, d := range diag.List {
			fmt.Fprintln(errOut, d)
		}
		if err != nil {
			a.log.Error("scan failed", "file", file, "err", err)
			failed++
			continue
		}
		m := pad.Metrics()
		a.log.Info("scanned", "file", file, "tokens", st.Tokens, "peak", st.Peak.SizeInUse, "overflow", st.Peak.OverflowBlocks)

		table.Append([]string{
			file,
			strconv.Itoa(st.Tokens),
			strconv.Itoa(st.Strings),
			strconv.Itoa(st.Joins),
			strconv.Itoa(len(diag.List)),
			fmt.Sprintf("%d/%d", st.Peak.SizeInUse, st.Peak.Capacity),
			strconv.Itoa(m.DeadSlots),
			strconv.Itoa(st.Peak.OverflowBlocks),
		})
	}
	table.Render()

	if failed > 0 {
		return errors.Newf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// scanFile runs one lexer pass and frees the kept names. A pad panic, such
// as an overflow allocation failing, comes back as an error.
func scanFile(pad *scratchpad.Pad, diag *lexer.Diagnostics, src []byte) (st lexer.Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.Wrap(e, "pad failure")
			} else {
				err = errors.Newf("pad failure: %v", r)
			}
		}
	}()

	lx := lexer.New(pad, diag, src)
	st, err = lx.Scan()
	if err != nil {
		return st, err
	}
	lx.FreeNames()
	return st, nil
}
