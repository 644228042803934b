package component

// JerryCan is a pickup dropped where the player died.
type JerryCan struct{}

// UIJerryCan is an on-screen marker pointing from the player toward a can.
// Markers hold no link to their can; they are rebuilt from positions every tick.
type UIJerryCan struct{}

// Target is the goal marker the player flies into for points.
type Target struct {
	Radius float64
}

// Star is one collected point, kept as a marker for the HUD.
type Star struct {
	Index int
}
