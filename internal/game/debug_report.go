package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// DebugReport summarizes the current run: score, mode, the player's state and
// one line per pursuer with its strategy band. The format is meant to be
// pasted into bug reports.
func (w *World) DebugReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- CyberPursuit debug report ---\n")
	fmt.Fprintf(&b, "seed=%d tick=%d mode=%s score=%d\n", w.seed, w.Tick, w.Mode, w.Score)
	fmt.Fprintf(&b, "player pos=(%.0f,%.0f) hp=%d/%d boost=%.0f alive=%v\n\n",
		w.Player.X, w.Player.Y, w.Player.Health, w.Player.MaxHealth,
		w.Player.BoostEnergy, w.Player.Alive)

	for _, e := range w.Enemies {
		if !e.Alive {
			fmt.Fprintf(&b, "%s: down\n", e.Label)
			continue
		}
		d := e.DistanceTo(&w.Player.Agent)
		fmt.Fprintf(&b, "%s: pos=(%.0f,%.0f) hp=%d/%d dist=%.0f band=%s last=%s\n",
			e.Label, e.X, e.Y, e.Health, e.MaxHealth, d, e.band(d), e.LastAction)
	}

	fmt.Fprintf(&b, "\nobstacles=%d pickups=%d projectiles=%d\n",
		len(w.Obstacles), len(w.Pickups), len(w.Projectiles))

	if entries := w.SimLog.Entries(); len(entries) > 0 {
		fmt.Fprintf(&b, "\nlast events:\n")
		from := len(entries) - 10
		if from < 0 {
			from = 0
		}
		for _, e := range entries[from:] {
			b.WriteString("  ")
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// copyDebugReport puts the report on the system clipboard. Failures are
// ignored; some headless environments have no clipboard at all.
func (g *Game) copyDebugReport() {
	if err := clipboard.WriteAll(g.world.DebugReport()); err == nil {
		g.reportCopiedAt = g.world.Tick
	}
}
