// Package ui renders coloured console output.
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// DarkTheme switches to colours that read better on dark terminals.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

// Banner prints a section heading for a stage of the pipeline.
func Banner(w io.Writer, title string) {
	fmt.Fprintln(w, pterm.DefaultSection.Sprint(title))
}

// PrintTable renders data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
