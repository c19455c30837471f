// Command scratchpad runs the lexer over source files on a scratch pad and
// reports how the pad was used.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/scratchpad"
	"github.com/pavanmanishd/scratchpad/internal/config"
	"github.com/pavanmanishd/scratchpad/internal/lexer"
	"github.com/pavanmanishd/scratchpad/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds what the subcommands share once flags are parsed.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "scratchpad",
		Short:         "Lex source files on a scratch string pad",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(cfg.Logger(), cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.Int("capacity", scratchpad.DefaultCapacity, "arena capacity in bytes")
	pf.Int("overflow-limit", 0, "cap on overflow bytes outstanding, 0 for none")
	pf.String("log-level", "WARN", "log level: DEBUG, INFO, WARN or ERROR")
	pf.String("log-format", "text", "log format: text or json")

	root.AddCommand(newScanCmd(a), newDumpCmd(a))
	return root
}

// newPad builds a pad from the loaded configuration. Escape warnings go to
// diag.
func (a *app) newPad(diag *lexer.Diagnostics) *scratchpad.Pad {
	return scratchpad.New(a.cfg.Capacity,
		scratchpad.WithAllocator(&scratchpad.HeapAllocator{Limit: a.cfg.OverflowLimit}),
		scratchpad.WithLogger(a.log),
		scratchpad.WithReporter(diag),
	)
}
