package pursuit

import "testing"

func TestMotionHistoryEviction(t *testing.T) {
	h := NewMotionHistory(10)
	for i := 0; i < 15; i++ {
		h.Record(Position{X: float64(i), Y: float64(i * 2)})
	}
	if h.Len() != 10 {
		t.Fatalf("len = %d, want 10", h.Len())
	}
	if got := h.At(0); got.X != 5 {
		t.Fatalf("oldest sample X = %v, want 5", got.X)
	}
	last, ok := h.Last()
	if !ok || last.X != 14 || last.Y != 28 {
		t.Fatalf("last = %+v ok=%v, want (14,28)", last, ok)
	}
}

func TestMotionHistoryOrder(t *testing.T) {
	h := NewMotionHistory(4)
	for i := 0; i < 6; i++ {
		h.Record(Position{X: float64(i)})
	}
	for i := 0; i < h.Len(); i++ {
		if want := float64(i + 2); h.At(i).X != want {
			t.Fatalf("At(%d).X = %v, want %v", i, h.At(i).X, want)
		}
	}
}

func TestMotionHistoryReset(t *testing.T) {
	h := NewMotionHistory(10)
	h.Record(Position{X: 1})
	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("len after reset = %d, want 0", h.Len())
	}
	if _, ok := h.Last(); ok {
		t.Fatal("Last returned a sample after reset")
	}
}

func TestPredictTargetFallbacks(t *testing.T) {
	e := NewEngine(600, 400, 1)
	if got := e.predictTarget(); got != (Position{}) {
		t.Fatalf("empty history predicted %+v, want origin", got)
	}

	e.history.Record(Position{X: 100, Y: 50})
	e.history.Record(Position{X: 110, Y: 55})
	if got := e.predictTarget(); got != (Position{X: 110, Y: 55}) {
		t.Fatalf("two samples predicted %+v, want last position", got)
	}
}

func TestPredictTargetLinearMotion(t *testing.T) {
	e := NewEngine(600, 400, 1)
	// Constant velocity (4, -2) per sample.
	for i := 0; i < 5; i++ {
		e.history.Record(Position{X: 100 + float64(i*4), Y: 200 - float64(i*2)})
	}
	got := e.predictTarget()
	want := Position{X: 116 + 12, Y: 192 - 6}
	if got != want {
		t.Fatalf("predicted %+v, want %+v", got, want)
	}
}

func TestPredictTargetClampsToBounds(t *testing.T) {
	e := NewEngine(600, 400, 1)
	for i := 0; i < 5; i++ {
		e.history.Record(Position{X: 560 + float64(i*10), Y: 10 - float64(i*5)})
	}
	got := e.predictTarget()
	if got.X != 600 {
		t.Fatalf("X = %v, want clamped to 600", got.X)
	}
	if got.Y != 0 {
		t.Fatalf("Y = %v, want clamped to 0", got.Y)
	}
}
