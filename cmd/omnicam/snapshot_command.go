package main

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pion/omnicamera"
	"github.com/pion/omnicamera/internal/config"
	"github.com/spf13/cobra"
)

const pollInterval = 10 * time.Millisecond

func newSnapshotCommand(ctx *commandContext) *cobra.Command {
	var output string
	var width, height int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture a single frame to an image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.config
			if !cmd.Flags().Changed("output") {
				output = cfg.Snapshot.Path
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.Snapshot.Width
			}
			if !cmd.Flags().Changed("height") {
				height = cfg.Snapshot.Height
			}
			if !cmd.Flags().Changed("timeout") {
				timeout = cfg.SnapshotTimeout()
			}

			target, err := config.ExpandPath(output)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}

			cam, err := ctx.openCamera()
			if err != nil {
				return err
			}
			defer cam.Close()

			if err := cam.Open(nil); err != nil {
				return fmt.Errorf("open camera: %w", err)
			}

			waitCtx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			img, err := waitForImage(waitCtx, cam)
			if err != nil {
				return err
			}

			var snapshot image.Image = img
			if width > 0 || height > 0 {
				snapshot = imaging.Resize(img, width, height, imaging.Lanczos)
			}
			if err := imaging.Save(snapshot, target); err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}

			b := snapshot.Bounds()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\nSaved %dx%d snapshot to %s\n", cam.Describe(), b.Dx(), b.Dy(), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Image file to write, its extension picks the encoding")
	cmd.Flags().IntVar(&width, "width", 0, "Resize to this width, 0 keeps the aspect ratio")
	cmd.Flags().IntVar(&height, "height", 0, "Resize to this height, 0 keeps the aspect ratio")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "How long to wait for a frame")
	return cmd
}

// waitForImage polls cam until it delivers a frame or ctx is done.
func waitForImage(ctx context.Context, cam *omnicamera.Camera) (*image.RGBA, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		img, err := cam.PollImage()
		if err != nil {
			return nil, fmt.Errorf("poll frame: %w", err)
		}
		if img != nil {
			return img, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("no frame received: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}
