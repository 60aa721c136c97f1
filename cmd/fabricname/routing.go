package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sarchlab/fabricnaming/fabric"
)

func newRoutingCmd(a *app) *cobra.Command {
	var tracks int

	routingCmd := &cobra.Command{
		Use:   "routing X Y",
		Short: "Print the names of the routing blocks of a tile.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}

			s := a.synth

			printName(cmd, "switch block", s.SwitchBlockModuleName(p))

			for _, t := range []fabric.ChanType{fabric.ChanX, fabric.ChanY} {
				printName(cmd, "connection block "+t.Prefix(),
					s.ConnectionBlockModuleName(t, p))
				printName(cmd, "channel "+t.Prefix(),
					s.RoutingChannelModuleName(t, p))

				for track := 0; track < tracks; track++ {
					for _, dir := range []fabric.PortDirection{
						fabric.In,
						fabric.Out,
					} {
						printName(cmd,
							fmt.Sprintf("%s track %d %s", t.Prefix(), track, dir),
							s.RoutingTrackPortName(t, p, track, dir))
					}

					printName(cmd,
						fmt.Sprintf("%s track %d mid", t.Prefix(), track),
						s.RoutingTrackMidOutputPortName(t, p, track))
				}
			}

			return nil
		},
	}

	routingCmd.Flags().IntVar(&tracks, "tracks", 0,
		"number of tracks per channel to print")

	return routingCmd
}

func parsePoint(x, y string) (fabric.Point, error) {
	px, err := strconv.Atoi(x)
	if err != nil {
		return fabric.Point{}, fmt.Errorf("x: %w", err)
	}

	py, err := strconv.Atoi(y)
	if err != nil {
		return fabric.Point{}, fmt.Errorf("y: %w", err)
	}

	if px < 0 || py < 0 {
		return fabric.Point{}, fmt.Errorf("location (%d,%d) is negative", px, py)
	}

	return fabric.P(px, py), nil
}
