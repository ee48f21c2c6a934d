package pursuit

import "math"

// Action is one of the nine discrete movement commands an engine can
// return: the eight compass directions plus hold.
type Action int

const (
	ActionUp Action = iota
	ActionUpRight
	ActionRight
	ActionDownRight
	ActionDown
	ActionDownLeft
	ActionLeft
	ActionUpLeft
	ActionHold
)

// actionDeltas maps each action to its unit movement vector in screen
// coordinates (y grows downward). Index order matches the Action constants.
var actionDeltas = [9][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	{0, 0},
}

var actionNames = [9]string{
	"up", "up-right", "right", "down-right",
	"down", "down-left", "left", "up-left",
	"hold",
}

// Delta returns the unit movement vector for the action.
func (a Action) Delta() (dx, dy int) {
	if a < ActionUp || a > ActionHold {
		return 0, 0
	}
	return actionDeltas[a][0], actionDeltas[a][1]
}

func (a Action) String() string {
	if a < ActionUp || a > ActionHold {
		return "invalid"
	}
	return actionNames[a]
}

// actionFromDelta returns the action whose movement vector is (dx, dy).
// Vectors outside {-1, 0, 1} map to hold.
func actionFromDelta(dx, dy int) Action {
	for i, d := range actionDeltas {
		if d[0] == dx && d[1] == dy {
			return Action(i)
		}
	}
	return ActionHold
}

// quantizeForce converts a continuous steering force into a discrete action.
// Forces below the dead-zone magnitude become hold; otherwise each normalized
// component must exceed 0.5 to contribute a movement axis.
func quantizeForce(fx, fy float64) Action {
	mag := math.Hypot(fx, fy)
	if mag < forceDeadZone {
		return ActionHold
	}
	nx := fx / mag
	ny := fy / mag

	dx, dy := 0, 0
	if nx > axisThreshold {
		dx = 1
	} else if nx < -axisThreshold {
		dx = -1
	}
	if ny > axisThreshold {
		dy = 1
	} else if ny < -axisThreshold {
		dy = -1
	}
	return actionFromDelta(dx, dy)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
