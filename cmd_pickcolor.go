package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"termload/internal/color"
	"termload/internal/picker"
)

var errNotInteractive = errors.New("the color picker needs an interactive terminal")

func pickColorCmd(a *app) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "pick-color",
		Short: "Choose a spinner color interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.interactive() {
				return errNotInteractive
			}

			prefs := a.store.Load()
			choice, err := runPicker(a, prefs.Spinner.Color)
			if err != nil {
				return err
			}
			a.log.Debug("Color picked", "color", choice)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Selected color: %s%s%s\n", color.Lookup(choice, color.Default), choice, color.Reset)

			if save {
				prefs.Spinner.Color = choice
				if err := a.store.Save(prefs); err != nil {
					return fmt.Errorf("failed to save spinner color: %w", err)
				}
				fmt.Fprintf(out, "Saved as the spinner color in %s\n", a.store.Path())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "store the choice as the spinner color")

	return cmd
}

// runPicker owns the screen for the duration of one picker session.
func runPicker(a *app, initial string) (string, error) {
	screen, err := a.newScreen()
	if err != nil {
		return "", fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return "", fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	return picker.Run(screen, initial)
}
