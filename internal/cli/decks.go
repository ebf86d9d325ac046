package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// decksCommand lists the decks embedded in the binary.
func (c *CLI) decksCommand() *cobra.Command {
	var names bool

	cmd := &cobra.Command{
		Use:   "decks",
		Short: "List the built-in decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := builtinEntries()
			if names {
				for _, e := range entries {
					fmt.Fprintln(stdout, e.Name)
				}
				return nil
			}
			fmt.Fprintln(stdout, deckTable(entries, -1))
			fmt.Fprintln(stdout, StyleDim.Render("Build one with: ")+StyleValue.Render("stackdeck build <deck>"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&names, "names", false, "print only deck names")
	return cmd
}

// completeDecks offers built-in deck names plus deck files for the first
// argument.
func completeDecks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, e := range builtinEntries() {
		out = append(out, e.Name+"\t"+e.Title)
	}
	return out, cobra.ShellCompDirectiveDefault
}
