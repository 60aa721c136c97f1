package naming

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/fabricnaming/fabric"
)

func coordinate(p fabric.Point, sep string) string {
	p.MustBeValid()
	return strconv.Itoa(p.X) + sep + strconv.Itoa(p.Y)
}

// RoutingBlockNetlistName returns the netlist name of a routing channel,
// connection block or switch block at a location.
func (s *Synthesizer) RoutingBlockNetlistName(
	prefix string,
	p fabric.Point,
	postfix string,
) string {
	return s.bound(prefix + coordinate(p, "_") + postfix)
}

// RoutingBlockNetlistNameByID returns the netlist name of a routing block
// identified by a unique index rather than a location.
func (s *Synthesizer) RoutingBlockNetlistNameByID(
	prefix string,
	blockID int,
	postfix string,
) string {
	indexMustNotBeNegative("routing block id", blockID)
	return s.bound(prefix + strconv.Itoa(blockID) + postfix)
}

func connectionBlockPrefix(t fabric.ChanType) string {
	switch t {
	case fabric.ChanX:
		return "cbx_"
	case fabric.ChanY:
		return "cby_"
	default:
		log.Panicf("invalid connection block type %s", t)
	}

	panic("unreachable")
}

// ConnectionBlockNetlistName returns the netlist name of a connection block
// at a location.
func (s *Synthesizer) ConnectionBlockNetlistName(
	t fabric.ChanType,
	p fabric.Point,
	postfix string,
) string {
	return s.RoutingBlockNetlistName(connectionBlockPrefix(t), p, postfix)
}

// RoutingChannelModuleName returns the module name of the routing channel
// at a location.
func (s *Synthesizer) RoutingChannelModuleName(
	t fabric.ChanType,
	p fabric.Point,
) string {
	return s.bound(t.Prefix() + coordinate(p, "_") + "_")
}

// RoutingChannelModuleNameByID returns the module name of a unique routing
// channel identified by an index.
func (s *Synthesizer) RoutingChannelModuleNameByID(
	t fabric.ChanType,
	blockID int,
) string {
	indexMustNotBeNegative("routing channel id", blockID)
	return s.bound(t.Prefix() + "_" + strconv.Itoa(blockID) + "_")
}

// RoutingTrackPortName returns the name of the port of a routing track of
// the channel at a location.
func (s *Synthesizer) RoutingTrackPortName(
	t fabric.ChanType,
	p fabric.Point,
	trackID int,
	direction fabric.PortDirection,
) string {
	indexMustNotBeNegative("track id", trackID)

	name := t.Prefix() + "_" + coordinate(p, "__") + "__"

	switch direction {
	case fabric.Out:
		name += "out_"
	case fabric.In:
		name += "in_"
	default:
		log.Panicf("invalid direction %s of track %d in %s%s",
			direction, trackID, t.Prefix(), p)
	}

	return s.bound(name + strconv.Itoa(trackID) + "_")
}

// RoutingTrackMidOutputPortName returns the name of the middle output of a
// routing track, the tap that feeds connection blocks.
func (s *Synthesizer) RoutingTrackMidOutputPortName(
	t fabric.ChanType,
	p fabric.Point,
	trackID int,
) string {
	indexMustNotBeNegative("track id", trackID)

	return s.bound(t.Prefix() + "_" + coordinate(p, "__") + "__midout_" +
		strconv.Itoa(trackID) + "_")
}

// SwitchBlockModuleName returns the module name of the switch block at a
// location.
func (s *Synthesizer) SwitchBlockModuleName(p fabric.Point) string {
	return s.bound("sb_" + coordinate(p, "__") + "_")
}

// ConnectionBlockModuleName returns the module name of the connection block
// at a location.
func (s *Synthesizer) ConnectionBlockModuleName(
	t fabric.ChanType,
	p fabric.Point,
) string {
	return s.bound(connectionBlockPrefix(t) + coordinate(p, "__") + "_")
}
