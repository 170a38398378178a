package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFormatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the formats of a camera, marking the one it opens with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cam, err := ctx.openCamera()
			if err != nil {
				return err
			}
			defer cam.Close()

			fs, err := cam.Formats()
			if err != nil {
				return fmt.Errorf("list formats: %w", err)
			}
			selected, err := cam.Resolve()
			if err != nil {
				return fmt.Errorf("resolve format: %w", err)
			}

			rows := make([][]string, 0, len(fs))
			for i, f := range fs {
				mark := ""
				if f == selected {
					mark = "*"
				}
				rows = append(rows, []string{
					strconv.Itoa(i),
					f.FrameFormat.Tag(),
					strconv.FormatUint(uint64(f.Width), 10),
					strconv.FormatUint(uint64(f.Height), 10),
					strconv.FormatUint(uint64(f.FrameRate), 10),
					strconv.FormatFloat(f.AspectRatio(), 'f', 3, 64),
					mark,
				})
			}
			return writeTable(cmd.OutOrStdout(),
				[]string{"#", "Encoding", "Width", "Height", "FPS", "Aspect", "Selected"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight},
			)
		},
	}
}
