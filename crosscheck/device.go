package crosscheck

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/fabricnaming/fabric"
	"github.com/sarchlab/fabricnaming/naming"
)

// Device describes the regular grid of tiles whose routing and grid names
// RegisterDevice enumerates.
type Device struct {
	// Size is the number of tiles in each direction, I/O ring included.
	Size fabric.Point

	// ChannelWidth is the number of tracks in every routing channel.
	ChannelWidth int

	// PinsPerSide is the number of pins on each side of a grid.
	PinsPerSide int
}

func (d Device) mustBeValid() {
	if d.Size.X < 3 || d.Size.Y < 3 {
		log.Panicf("device %s must be at least 3x3 to have a core", d.Size)
	}

	if d.ChannelWidth <= 0 {
		log.Panicf("channel width must be positive, got %d", d.ChannelWidth)
	}

	if d.PinsPerSide < 0 {
		log.Panicf("pins per side must not be negative, got %d",
			d.PinsPerSide)
	}
}

// RegisterDevice synthesizes the name of every routing block, routing track,
// grid module and grid pin of a device and registers them for a backend. It
// returns the number of registrations.
func RegisterDevice(
	l *Ledger,
	backend string,
	s *naming.Synthesizer,
	d Device,
) int {
	d.mustBeValid()

	count := 0
	register := func(entity, name string) {
		l.Register(backend, entity, name)
		count++
	}

	register("top", naming.FPGATopModuleName())

	for _, v := range []int{0, 1} {
		register(fmt.Sprintf("const%d", v), naming.ConstValueModuleName(v))
	}

	for x := 0; x < d.Size.X; x++ {
		for y := 0; y < d.Size.Y; y++ {
			p := fabric.P(x, y)

			registerRouting(register, s, d, p)
			registerGrid(register, s, d, p)
		}
	}

	log.WithFields(log.Fields{
		"backend": backend,
		"device":  d.Size.String(),
		"names":   count,
	}).Debug("registered device names")

	return count
}

func registerRouting(
	register func(entity, name string),
	s *naming.Synthesizer,
	d Device,
	p fabric.Point,
) {
	register("sb"+p.String(), s.SwitchBlockModuleName(p))

	for _, t := range []fabric.ChanType{fabric.ChanX, fabric.ChanY} {
		register("cb "+t.String()+p.String(),
			s.ConnectionBlockModuleName(t, p))
		register("chan "+t.String()+p.String(),
			s.RoutingChannelModuleName(t, p))

		for track := 0; track < d.ChannelWidth; track++ {
			for _, dir := range []fabric.PortDirection{fabric.In, fabric.Out} {
				register(
					fmt.Sprintf("track %s%s/%d/%s", t, p, track, dir),
					s.RoutingTrackPortName(t, p, track, dir))
			}

			register(fmt.Sprintf("track %s%s/%d/mid", t, p, track),
				s.RoutingTrackMidOutputPortName(t, p, track))
		}
	}
}

func registerGrid(
	register func(entity, name string),
	s *naming.Synthesizer,
	d Device,
	p fabric.Point,
) {
	side, onBorder := fabric.FindGridBorderSide(d.Size, p)

	blockName := "clb"
	if onBorder {
		blockName = "io"
	}

	// Grids of the same type share one module.
	register("grid module "+blockName+"/"+gridSideKey(side, onBorder),
		s.GridBlockModuleName("grid_", blockName, onBorder, side))

	for _, pinSide := range fabric.Sides() {
		for pin := 0; pin < d.PinsPerSide; pin++ {
			register(fmt.Sprintf("grid pin %s/%s/%d", p, pinSide, pin),
				s.GridPortName(p, 0, pinSide, pin, true))
		}
	}
}

func gridSideKey(side fabric.Side, onBorder bool) string {
	if !onBorder {
		return "core"
	}

	return side.String()
}
