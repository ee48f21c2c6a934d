package game

const (
	pickupHeal      = 15
	pickupRadius    = 8.0
	pickupLifeTicks = 300 // 5s before an uncollected pickup fades

	// New pickups appear at a random interval in this tick range.
	pickupIntervalMin = 420 // 7s
	pickupIntervalMax = 720 // 12s
)

// Pickup is a health pack the player can collect before it expires.
type Pickup struct {
	X, Y      float64
	Radius    float64
	SpawnTick int
	Active    bool
}

func (pk *Pickup) expired(tick int) bool {
	return tick-pk.SpawnTick >= pickupLifeTicks
}

func (pk *Pickup) touches(a *Agent) bool {
	dx := pk.X - a.X
	dy := pk.Y - a.Y
	r := pk.Radius + a.Radius
	return dx*dx+dy*dy < r*r
}
