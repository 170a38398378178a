package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/pion/omnicamera/pkg/control"
	"github.com/spf13/cobra"
)

func newControlsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "controls",
		Short: "List the controls of a camera",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cam, err := ctx.openCamera()
			if err != nil {
				return err
			}
			defer cam.Close()

			controls, err := cam.Controls()
			if err != nil {
				return fmt.Errorf("list controls: %w", err)
			}
			names := make([]string, 0, len(controls))
			for name := range controls {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, controlRow(controls[name]))
			}
			return writeTable(cmd.OutOrStdout(),
				[]string{"Control", "Range", "Value", "Fraction"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
			)
		},
	}
}

func controlRow(c *control.Control) []string {
	row := []string{c.Name(), "", "", ""}
	r, err := c.Range()
	if err != nil {
		row[1] = err.Error()
		return row
	}
	row[1] = r.String()

	value, err := c.Value()
	if err != nil {
		row[2] = err.Error()
		return row
	}
	row[2] = strconv.Itoa(value)

	if fraction, err := c.Fraction(); err == nil {
		row[3] = strconv.FormatFloat(fraction, 'f', 2, 64)
	}
	return row
}

func newSetCommand(ctx *commandContext) *cobra.Command {
	var asFraction bool
	var reset bool

	cmd := &cobra.Command{
		Use:   "set CONTROL [VALUE]",
		Short: "Set a control to a value, a fraction of its range, or its default",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if reset == (len(args) == 2) {
				return errors.New("give either a value or --reset")
			}

			cam, err := ctx.openCamera()
			if err != nil {
				return err
			}
			defer cam.Close()

			controls, err := cam.Controls()
			if err != nil {
				return fmt.Errorf("list controls: %w", err)
			}
			c, ok := controls[args[0]]
			if !ok {
				return fmt.Errorf("camera has no control %q", args[0])
			}

			switch {
			case reset:
				err = c.Reset()
			case asFraction:
				var f float64
				if f, err = strconv.ParseFloat(args[1], 64); err != nil {
					return fmt.Errorf("parse fraction: %w", err)
				}
				err = c.SetFraction(f)
			default:
				var v int
				if v, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("parse value: %w", err)
				}
				err = c.SetValue(v)
			}
			if err != nil {
				return fmt.Errorf("set %s: %w", c.Name(), err)
			}

			value, err := c.Value()
			if err != nil {
				return fmt.Errorf("read %s: %w", c.Name(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", c.Name(), value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asFraction, "fraction", false, "Treat VALUE as a fraction of the control range, from 0 to 1")
	cmd.Flags().BoolVar(&reset, "reset", false, "Reset the control to its default value")
	return cmd
}
