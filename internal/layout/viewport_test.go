package layout

import "testing"

func TestFitToContainerCentersVenue(t *testing.T) {
	// 940x640 leaves 900x600 after the margin, exactly half the venue.
	vp := FitToContainer(940, 640)
	if !almostEqual(vp.Scale, 0.5) {
		t.Fatalf("scale = %v, want 0.5", vp.Scale)
	}
	if !almostEqual(vp.Offset.X, 40) || !almostEqual(vp.Offset.Y, 40) {
		t.Errorf("offset = (%v, %v), want (40, 40)", vp.Offset.X, vp.Offset.Y)
	}
}

func TestFitToContainerNeverMagnifies(t *testing.T) {
	vp := FitToContainer(4000, 3000)
	if !almostEqual(vp.Scale, 1) {
		t.Fatalf("scale = %v, want 1 (capped)", vp.Scale)
	}
	if !almostEqual(vp.Offset.X, 1100) || !almostEqual(vp.Offset.Y, 900) {
		t.Errorf("offset = (%v, %v), want (1100, 900)", vp.Offset.X, vp.Offset.Y)
	}
}

func TestFitToContainerUsesTighterAxis(t *testing.T) {
	// Width is the constraining dimension here.
	vp := FitToContainer(490, 640)
	if !almostEqual(vp.Scale, 0.25) {
		t.Fatalf("scale = %v, want 0.25", vp.Scale)
	}
	if !almostEqual(vp.Offset.X, 80) || !almostEqual(vp.Offset.Y, 680) {
		t.Errorf("offset = (%v, %v), want (80, 680)", vp.Offset.X, vp.Offset.Y)
	}
}

func TestZoomClamps(t *testing.T) {
	cases := []struct {
		scale, delta, want float64
	}{
		{1, 0.2, 1.2},
		{1, -0.2, 0.8},
		{0.4, -0.5, MinScale},
		{2.9, 0.5, MaxScale},
		{MinScale, -0.1, MinScale},
		{MaxScale, 0.1, MaxScale},
	}
	for _, tc := range cases {
		if got := Zoom(tc.scale, tc.delta); !almostEqual(got, tc.want) {
			t.Errorf("Zoom(%v, %v) = %v, want %v", tc.scale, tc.delta, got, tc.want)
		}
	}
}

func TestPanCompensatesForScale(t *testing.T) {
	got := Pan(Point{X: 10, Y: 20}, 30, -15, 0.5)
	if !almostEqual(got.X, 70) || !almostEqual(got.Y, -10) {
		t.Errorf("Pan = (%v, %v), want (70, -10)", got.X, got.Y)
	}

	// At scale 1 the drag delta passes through unchanged.
	got = Pan(Point{}, 5, 7, 1)
	if !almostEqual(got.X, 5) || !almostEqual(got.Y, 7) {
		t.Errorf("Pan at scale 1 = (%v, %v), want (5, 7)", got.X, got.Y)
	}
}
