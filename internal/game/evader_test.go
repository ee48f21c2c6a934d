package game

import "testing"

func TestScriptedEvaderFleesNearestEnemy(t *testing.T) {
	w := NewWorld(WithSeed(15))
	p := w.Player
	p.X, p.Y = 400, 100
	for _, e := range w.Enemies[1:] {
		e.Alive = false
	}
	// Clear the random extras so only the pursuer steers the evader.
	w.Obstacles = w.Obstacles[:1]
	w.snapObstacles()
	// Enemy charging in from the right.
	w.Enemies[0].X, w.Enemies[0].Y = p.X+60, p.Y

	in := ScriptedEvader(w)
	if in.DX != -1 {
		t.Fatalf("DX = %d, want -1 (fleeing left)", in.DX)
	}
	if !in.Boost {
		t.Fatal("evader should boost with a pursuer this close")
	}
	if !in.Fire || in.FireX != w.Enemies[0].X {
		t.Fatalf("evader should return fire at the pursuer, got %+v", in)
	}
}

func TestScriptedEvaderAxesQuantized(t *testing.T) {
	w := NewWorld(WithSeed(16))
	for i := 0; i < 50; i++ {
		in := ScriptedEvader(w)
		if in.DX < -1 || in.DX > 1 || in.DY < -1 || in.DY > 1 {
			t.Fatalf("tick %d: input axes out of range: %+v", i, in)
		}
		w.Step(in)
		if w.Over {
			break
		}
	}
}

func TestScriptedEvaderIdleWhenDead(t *testing.T) {
	w := NewWorld(WithSeed(17))
	w.Player.Alive = false
	if in := ScriptedEvader(w); in != (PlayerInput{}) {
		t.Fatalf("dead player produced input %+v", in)
	}
}

func TestScriptedEvaderLandsHits(t *testing.T) {
	w := NewWorld(WithSeed(18))
	for i := 0; i < 2000 && !w.Over; i++ {
		w.Step(ScriptedEvader(w))
		if w.Score > 0 {
			return
		}
	}
	t.Fatalf("evader never scored a hit in %d ticks\n%s", w.Tick, w.SimLog.Format())
}
