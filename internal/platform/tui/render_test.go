package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/retropix/internal/canvas"
	"github.com/vovakirdan/retropix/internal/engine"
)

func testFrame(t *testing.T, w, h, displayW, displayH int) engine.Frame {
	t.Helper()
	fb, err := canvas.New(w, h)
	if err != nil {
		t.Fatalf("canvas.New failed: %v", err)
	}
	return engine.Frame{
		Canvas:   fb,
		Viewport: engine.FitViewport(displayW, displayH, w, h),
	}
}

func TestRenderFrameDimensions(t *testing.T) {
	frame := testFrame(t, 4, 4, 4, 4)

	out := RenderFrame(frame, 4, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	for i, line := range lines {
		if got := strings.Count(line, "▀"); got != 4 {
			t.Errorf("line %d has %d half-blocks, expected 4", i, got)
		}
	}
}

func TestRenderFrameEmptyInputs(t *testing.T) {
	frame := testFrame(t, 4, 4, 4, 4)

	if out := RenderFrame(engine.Frame{}, 4, 2); out != "" {
		t.Errorf("nil canvas rendered %q, expected empty", out)
	}
	if out := RenderFrame(frame, 0, 2); out != "" {
		t.Errorf("zero cols rendered %q, expected empty", out)
	}
	if out := RenderFrame(frame, 4, 0); out != "" {
		t.Errorf("zero rows rendered %q, expected empty", out)
	}
}

func TestSamplePixelMapsThroughViewport(t *testing.T) {
	frame := testFrame(t, 4, 4, 8, 8) // scale 2, no letterbox
	frame.Canvas.Put(1, 1, canvas.RGB(200, 0, 0))

	tests := []struct {
		name   string
		dx, dy int
		want   canvas.Color
	}{
		{"origin", 0, 0, canvas.RGB(0, 0, 0)},
		{"scaled pixel top-left", 2, 2, canvas.RGB(200, 0, 0)},
		{"scaled pixel bottom-right", 3, 3, canvas.RGB(200, 0, 0)},
		{"past scaled pixel", 4, 4, canvas.RGB(0, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := samplePixel(frame, tc.dx, tc.dy); got != tc.want {
				t.Errorf("samplePixel(%d, %d) = %+v, expected %+v", tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

func TestSamplePixelLetterbox(t *testing.T) {
	frame := testFrame(t, 4, 4, 10, 8) // scale 2, 1px margin left and right

	if got := samplePixel(frame, 0, 0); got != letterbox {
		t.Errorf("left margin = %+v, expected letterbox", got)
	}
	if got := samplePixel(frame, 9, 0); got != letterbox {
		t.Errorf("right margin = %+v, expected letterbox", got)
	}
	if got := samplePixel(frame, 1, 0); got == letterbox {
		t.Error("canvas area sampled as letterbox")
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		c    canvas.Color
		want string
	}{
		{canvas.RGB(0, 0, 0), "#000000"},
		{canvas.RGB(255, 255, 255), "#ffffff"},
		{canvas.RGB(18, 52, 86), "#123456"},
	}
	for _, tc := range tests {
		if got := hexColor(tc.c); got != tc.want {
			t.Errorf("hexColor(%+v) = %q, expected %q", tc.c, got, tc.want)
		}
	}
}
