package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/pagewire/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new <dir>",
	Short: "Create a new project with the sample site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Creating new pagewire project: %s\n\n", args[0])
		created, err := scaffold.New(args[0])
		for _, p := range created {
			fmt.Fprintf(w, "  created %s\n", p)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Done! Next steps:")
		fmt.Fprintf(w, "\n  cd %s\n  pagewire serve\n\n", args[0])
		fmt.Fprintln(w, "Edit site/data.json to change navigation, hero, sponsors and footer.")
		return nil
	},
}
