package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/32bitkid/legend"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List recognised assets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		assets, err := legend.NewRoot(cfg.Assets.Root).Scan()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tBYTES")
		for _, a := range assets {
			fmt.Fprintf(w, "%s\t%s\t%d\n", a.Name, a.Type, a.Size)
		}
		return w.Flush()
	},
}
