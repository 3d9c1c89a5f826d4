package cmd

import "github.com/pterm/pterm"

// printSeparator prints a green separator line between interactive results.
func printSeparator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}
