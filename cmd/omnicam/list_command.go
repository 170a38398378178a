package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var onlyUsable bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connected cameras",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cameras := ctx.queryCameras(onlyUsable)
			out := cmd.OutOrStdout()
			if len(cameras) == 0 {
				fmt.Fprintln(out, "No cameras found")
				return nil
			}

			rows := make([][]string, 0, len(cameras))
			for i, info := range cameras {
				rows = append(rows, []string{
					strconv.Itoa(i),
					info.Name,
					info.Description,
					info.Misc,
					yesNo(info.CanOpen()),
				})
			}
			return writeTable(out,
				[]string{"#", "Name", "Description", "Misc", "Usable"},
				rows,
				[]columnAlignment{alignRight},
			)
		},
	}

	cmd.Flags().BoolVar(&onlyUsable, "usable", false, "Only list cameras that can be opened")
	return cmd
}
