package boulder

// Snapshot contains the complete game state for determinism tests.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick      uint64
	SimTicker int
	Paused    bool

	Level    int
	Score    int
	Diamonds int
	Time     int
	Hero     string
	Mode     int // 0=Real, 1=Ghost
	Phase    string
	Sound    string // last sound played

	// Board glyph dump, one line per row
	Board string
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		SimTicker: g.simTicker,
		Paused:    g.paused,

		Level:    g.sim.Level,
		Score:    g.sim.Score,
		Diamonds: g.sim.Diamonds,
		Time:     g.sim.Time,
		Hero:     g.sim.Hero.String(),
		Mode:     int(g.sim.Mode),
		Phase:    g.sim.Phase().String(),
		Sound:    g.lastSound.String(),

		Board: g.sim.Board.String(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.SimTicker) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Diamonds)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Time)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)      //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	for _, s := range []string{snap.Hero, snap.Phase, snap.Sound, snap.Board} {
		for i := 0; i < len(s); i++ {
			h = h*31 + uint64(s[i])
		}
	}
	return h
}
