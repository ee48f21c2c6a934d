package game

import (
	"fmt"

	"github.com/Garsondee/Cyber-Pursuit/internal/pursuit"
)

// Enemy is one pursuer. Each enemy owns its own decision engine so target
// histories and evolved routes never bleed between pursuers.
type Enemy struct {
	Agent

	Label      string
	engine     *pursuit.Engine
	LastAction pursuit.Action
}

func newEnemy(idx int, x, y float64, mapW, mapH int, seed int64) *Enemy {
	return &Enemy{
		Agent:      newAgent(x, y, enemyRadius, enemySpeed, enemyMaxHealth),
		Label:      fmt.Sprintf("E%d", idx),
		engine:     pursuit.NewEngine(mapW, mapH, seed),
		LastAction: pursuit.ActionHold,
	}
}

func (e *Enemy) snapshot() pursuit.AgentSnapshot {
	return pursuit.AgentSnapshot{X: e.X, Y: e.Y, Radius: e.Radius}
}

// decide asks the engine for this tick's movement action.
func (e *Enemy) decide(target pursuit.AgentSnapshot, obstacles []pursuit.Obstacle, mode pursuit.Mode) pursuit.Action {
	e.LastAction = e.engine.ComputeAction(e.snapshot(), target, obstacles, mode)
	return e.LastAction
}

// band names the strategy band the enemy currently operates in, for HUD and
// report output.
func (e *Enemy) band(dist float64) string {
	switch {
	case dist > pursuit.FarThreshold:
		return "far/genetic"
	case dist > pursuit.MidThreshold:
		return "mid/predictive"
	default:
		return "close/field"
	}
}
