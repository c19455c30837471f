package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/scratchpad/internal/lexer"
)

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Lex a file and print the arena layout with its names still live",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "read %s", args[0])
			}
			diag := &lexer.Diagnostics{}
			diag.Reset(args[0])
			pad := a.newPad(diag)
			defer pad.Release()

			if _, err := lexer.New(pad, diag, src).Scan(); err != nil {
				return err
			}
			return pad.Dump(cmd.OutOrStdout())
		},
	}
}
