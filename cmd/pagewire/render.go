package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/pagewire"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render <page>",
	Short: "Render one page to stdout or a file",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := pagewire.New(siteCfg)
		if err := app.Setup(); err != nil {
			return err
		}
		defer app.Close()

		var w io.Writer = cmd.OutOrStdout()
		if renderOut != "" {
			f, err := os.Create(renderOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		out, err := app.RenderPage(cmd.Context(), args[0], w)
		if err != nil {
			return err
		}
		if out.ConfigErr != nil {
			cmd.PrintErrf("warning: page rendered from static markup: %v\n", out.ConfigErr)
		}
		if out.FeedErr != nil {
			cmd.PrintErrf("warning: news feed unavailable: %v\n", out.FeedErr)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "write the page to this file")
}
