package main

import (
	"context"
	"fmt"
	"math"

	"github.com/infracollect/emitter/internal/engine"
	"github.com/infracollect/emitter/internal/shape"
	"github.com/urfave/cli/v3"
)

func (a *app) rectangleCommand() *cli.Command {
	return &cli.Command{
		Name:  "rectangle",
		Usage: "Print the area of a rectangle",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 30, Usage: "Rectangle width in pixels"},
			&cli.IntFlag{Name: "height", Value: 50, Usage: "Rectangle height in pixels"},
		},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, command *cli.Command) error {
			width, err := side("width", command.Int("width"))
			if err != nil {
				return err
			}
			height, err := side("height", command.Int("height"))
			if err != nil {
				return err
			}

			rect := shape.Rectangle{Width: width, Height: height}
			fmt.Fprintf(command.Root().Writer, "The area of the rectangle is %d square pixels.\n", rect.Area())
			return nil
		},
	}
}

func side(name string, v int) (uint32, error) {
	if v < 0 || int64(v) > math.MaxUint32 {
		return 0, &engine.UsageError{Err: fmt.Errorf("%s must be between 0 and %d, got %d", name, uint32(math.MaxUint32), v)}
	}
	return uint32(v), nil
}
