package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"termload/internal/ascii"
	"termload/internal/color"
	"termload/internal/spinner"
	"termload/internal/table"
)

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List spinner styles, ASCII patterns and colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			prefs := a.store.Load()

			styles := table.New(
				table.Column{Header: "Style"},
				table.Column{Header: "Frames", Align: table.AlignRight},
				table.Column{Header: "Sample", MaxWidth: 30},
			)
			for _, name := range spinner.Styles() {
				frames := spinner.Frames(name)
				styles.AddRow(name, strconv.Itoa(len(frames)), strings.Join(frames, " "))
			}
			styleOpts := table.DefaultPrintOptions()
			styleOpts.HighlightColumn = 2
			styleOpts.HighlightCode = color.Lookup(prefs.Spinner.Color, color.Default)
			if err := styles.Print(out, styleOpts); err != nil {
				return err
			}

			patterns := table.New(
				table.Column{Header: "Pattern"},
				table.Column{Header: "Frames", Align: table.AlignRight},
				table.Column{Header: "Height", Align: table.AlignRight},
			)
			for _, name := range ascii.Patterns() {
				l := ascii.New(ascii.Config{Pattern: name})
				patterns.AddRow(name, strconv.Itoa(l.FrameCount()), strconv.Itoa(l.FrameHeight()))
			}
			if err := patterns.Print(out, table.DefaultPrintOptions()); err != nil {
				return err
			}

			colors := table.New(
				table.Column{Header: "Color"},
				table.Column{Header: "ANSI", Align: table.AlignRight},
			)
			for _, name := range color.Names() {
				code, _ := color.Code(name)
				colors.AddRow(name, strings.TrimSuffix(strings.TrimPrefix(code, "\033["), "m"))
			}
			return colors.Print(out, table.DefaultPrintOptions())
		},
	}
}
