package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	_ "github.com/pion/omnicamera/pkg/driver/camera"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
