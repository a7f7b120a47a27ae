package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/opencode-ai/atlas/internal/layout"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutSelectCmd)
	layoutCmd.AddCommand(layoutWatchCmd)
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect responsive navigation selection",
}

var layoutSelectCmd = &cobra.Command{
	Use:   "select <columns>",
	Short: "Show which navigation a terminal width selects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		columns, err := strconv.Atoi(args[0])
		if err != nil || columns < 0 {
			return fmt.Errorf("columns must be a non-negative integer, got %q", args[0])
		}
		return writeLayoutSelection(cmd.OutOrStdout(), configuredSelector(), columns)
	},
}

var layoutWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the navigation composition as the terminal is resized",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return &PreflightError{
				Message:  "layout watch requires a terminal on stdout",
				NextStep: "atlas layout select <columns>",
			}
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		widths := terminalWidths(ctx, fd)
		return watchLayout(ctx, cmd.OutOrStdout(), configuredSelector(), widths)
	},
}

type layoutSelection struct {
	Columns           int    `json:"columns"`
	LogicalWidth      int    `json:"logical_width"`
	Breakpoint        int    `json:"breakpoint"`
	MinDesktopColumns int    `json:"min_desktop_columns"`
	Composition       string `json:"composition"`
}

func configuredSelector() *layout.Selector {
	if cfg := GetConfig(); cfg != nil {
		return layout.NewSelector(cfg.UI.Breakpoint, cfg.UI.CellWidth)
	}
	return layout.NewSelector(0, 0)
}

func selectionFor(selector *layout.Selector, columns int) layoutSelection {
	logical := selector.LogicalWidth(columns)
	return layoutSelection{
		Columns:           columns,
		LogicalWidth:      logical,
		Breakpoint:        selector.Breakpoint(),
		MinDesktopColumns: selector.MinDesktopColumns(),
		Composition:       selector.Compose(logical).String(),
	}
}

func writeLayoutSelection(out io.Writer, selector *layout.Selector, columns int) error {
	selection := selectionFor(selector, columns)
	if IsJSONOutput() {
		return WriteOutput(out, selection)
	}
	fmt.Fprintf(out, "%d columns (%d units, breakpoint %d): %s\n",
		selection.Columns, selection.LogicalWidth, selection.Breakpoint, selection.Composition)
	return nil
}

// watchLayout prints one line per composition change until widths closes or
// ctx is done. widths carries terminal columns.
func watchLayout(ctx context.Context, out io.Writer, selector *layout.Selector, widths <-chan int) error {
	compose := func(columns int) layout.Composition {
		return selector.Compose(selector.LogicalWidth(columns))
	}

	for composition := range layout.Watch(ctx, widths, compose) {
		if IsJSONOutput() {
			if err := WriteOutput(out, map[string]string{"composition": composition.String()}); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, composition)
	}
	return nil
}
