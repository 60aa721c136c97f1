package fabric

// FindGridBorderSide returns the side of the device a grid location sits
// on. The second return value is false for locations in the core.
//
// Corners resolve in the order top, right, bottom, left.
func FindGridBorderSide(deviceSize, p Point) (Side, bool) {
	switch {
	case p.Y == deviceSize.Y-1:
		return Top, true
	case p.X == deviceSize.X-1:
		return Right, true
	case p.Y == 0:
		return Bottom, true
	case p.X == 0:
		return Left, true
	}

	return Top, false
}

// IsCoreGridOnBorderSide tells if a core grid location is adjacent to the
// I/O ring on the given side.
func IsCoreGridOnBorderSide(deviceSize, p Point, side Side) bool {
	side.MustBeValid()

	switch side {
	case Top:
		return p.Y == deviceSize.Y-2
	case Right:
		return p.X == deviceSize.X-2
	case Bottom:
		return p.Y == 1
	default:
		return p.X == 1
	}
}
