package gesture

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy float64
		want   Direction
	}{
		{name: "left swipe", dx: -80, dy: 5, want: Next},
		{name: "right swipe", dx: 80, dy: -5, want: Previous},
		{name: "exactly at threshold", dx: -50, dy: 0, want: None},
		{name: "too short", dx: 30, dy: 0, want: None},
		{name: "diagonal", dx: -120, dy: 40, want: None},
		{name: "vertical limit is exclusive", dx: 120, dy: 20, want: None},
		{name: "tap", dx: 0, dy: 0, want: None},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.dx, tc.dy); got != tc.want {
				t.Fatalf("Classify(%v, %v) = %s, want %s", tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

func TestTrackerScalesCells(t *testing.T) {
	tracker := NewTracker(8, 16)
	if _, _, ok := tracker.Release(3, 3); ok {
		t.Fatal("release without press should be ignored")
	}
	tracker.Press(40, 10)
	if !tracker.Active() {
		t.Fatal("tracker should be active after press")
	}
	dx, dy, ok := tracker.Release(30, 11)
	if !ok {
		t.Fatal("release after press should report a gesture")
	}
	if dx != -80 || dy != 16 {
		t.Fatalf("unexpected displacement dx=%v dy=%v", dx, dy)
	}
	if Classify(dx, dy) != Next {
		t.Fatalf("ten columns left with one row of drift should be a next swipe")
	}
	if tracker.Active() {
		t.Fatal("release should end the gesture")
	}
}

func TestTrackerCancel(t *testing.T) {
	tracker := NewTracker(0, 0)
	tracker.Press(0, 0)
	tracker.Cancel()
	if _, _, ok := tracker.Release(20, 0); ok {
		t.Fatal("cancelled gesture should not report displacement")
	}
	tracker.Press(0, 0)
	if dx, dy, ok := tracker.Release(2, 1); !ok || dx != 16 || dy != 16 {
		t.Fatalf("default scale should be 8x16 units per cell, got dx=%v dy=%v", dx, dy)
	}
}
