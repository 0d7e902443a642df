package shared

import "testing"

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{599, 2},
		{600, 3},
		{1099, 3},
		{1100, 4},
		{100000, 201},
	}

	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.level {
			t.Errorf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.level)
		}
	}
}

func TestLevelForXPMonotone(t *testing.T) {
	prev := LevelForXP(0)
	for xp := 1; xp <= 5000; xp++ {
		cur := LevelForXP(xp)
		if cur < prev {
			t.Fatalf("level decreased at xp=%d: %d -> %d", xp, prev, cur)
		}
		prev = cur
	}
}

func TestLevelProgressBounds(t *testing.T) {
	for xp := 0; xp <= 5000; xp += 7 {
		p := LevelProgress(xp)
		if p < 0 || p > 100 {
			t.Fatalf("LevelProgress(%d) = %v, out of [0,100]", xp, p)
		}
	}
}

func TestLevelProgressValues(t *testing.T) {
	if got := LevelProgress(0); got != 0 {
		t.Errorf("LevelProgress(0) = %v, want 0", got)
	}
	if got := LevelProgress(50); got != 50 {
		t.Errorf("LevelProgress(50) = %v, want 50", got)
	}
	// Level 2 spans 100..600; 350 sits halfway.
	if got := LevelProgress(350); got != 50 {
		t.Errorf("LevelProgress(350) = %v, want 50", got)
	}
}

func TestXPFloorForLevel(t *testing.T) {
	if got := XPFloorForLevel(1); got != 0 {
		t.Errorf("XPFloorForLevel(1) = %d, want 0", got)
	}
	if got := XPFloorForLevel(2); got != 100 {
		t.Errorf("XPFloorForLevel(2) = %d, want 100", got)
	}
	if got := XPFloorForLevel(4); got != 1100 {
		t.Errorf("XPFloorForLevel(4) = %d, want 1100", got)
	}
}
