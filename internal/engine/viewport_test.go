package engine

import "testing"

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name               string
		displayW, displayH int
		canvasW, canvasH   int
		want               Viewport
	}{
		{
			name:     "exact multiple fills display",
			displayW: 1280, displayH: 720,
			canvasW: 320, canvasH: 180,
			want: Viewport{Scale: 4, OffsetX: 0, OffsetY: 0, DrawW: 1280, DrawH: 720},
		},
		{
			name:     "letterboxed on both axes",
			displayW: 800, displayH: 600,
			canvasW: 320, canvasH: 180,
			want: Viewport{Scale: 2, OffsetX: 80, OffsetY: 120, DrawW: 640, DrawH: 360},
		},
		{
			name:     "height limits the scale",
			displayW: 1920, displayH: 400,
			canvasW: 320, canvasH: 180,
			want: Viewport{Scale: 2, OffsetX: 640, OffsetY: 20, DrawW: 640, DrawH: 360},
		},
		{
			name:     "display smaller than canvas clamps to 1x",
			displayW: 200, displayH: 100,
			canvasW: 320, canvasH: 180,
			want: Viewport{Scale: 1, OffsetX: -60, OffsetY: -40, DrawW: 320, DrawH: 180},
		},
		{
			name:     "odd negative margin floors the offset",
			displayW: 319, displayH: 179,
			canvasW: 320, canvasH: 180,
			want: Viewport{Scale: 1, OffsetX: -1, OffsetY: -1, DrawW: 320, DrawH: 180},
		},
		{
			name:     "odd positive margin floors the offset",
			displayW: 641, displayH: 361,
			canvasW: 320, canvasH: 180,
			want: Viewport{Scale: 2, OffsetX: 0, OffsetY: 0, DrawW: 640, DrawH: 360},
		},
		{
			name:     "1:1 display",
			displayW: 320, displayH: 180,
			canvasW: 320, canvasH: 180,
			want: Viewport{Scale: 1, OffsetX: 0, OffsetY: 0, DrawW: 320, DrawH: 180},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FitViewport(tc.displayW, tc.displayH, tc.canvasW, tc.canvasH)
			if got != tc.want {
				t.Errorf("FitViewport(%d, %d, %d, %d) = %+v, expected %+v",
					tc.displayW, tc.displayH, tc.canvasW, tc.canvasH, got, tc.want)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{10, 2, 5},
		{-10, 2, -5},
		{-1, 2, -1},
		{-3, 2, -2},
		{1, 2, 0},
		{3, 2, 1},
	}
	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.want)
		}
	}
}
