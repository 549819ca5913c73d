package bpx

import "testing"

func TestBlendModes(t *testing.T) {
	dst := Color{100, 150, 200, 255}
	src := Color{50, 100, 250, 255}

	cases := []struct {
		name string
		mode BlendMode
		want Color
	}{
		{name: "replace", mode: BlendReplace, want: src},
		{name: "add", mode: BlendAdd, want: Color{150, 250, 255, 255}},
		{name: "sub", mode: BlendSub, want: Color{50, 50, 0, 255}},
		{name: "mul", mode: BlendMul, want: Color{19, 58, 196, 255}},
		{name: "screen", mode: BlendScreen, want: Color{131, 192, 254, 255}},
		{name: "darken", mode: BlendDarken, want: Color{50, 100, 200, 255}},
		{name: "lighten", mode: BlendLighten, want: Color{100, 150, 250, 255}},
		{name: "difference", mode: BlendDifference, want: Color{50, 50, 50, 255}},
		{name: "exclusion", mode: BlendExclusion, want: Color{111, 133, 58, 255}},
		{name: "dodge", mode: BlendDodge, want: Color{124, 246, 255, 255}},
		{name: "burn", mode: BlendBurn, want: Color{0, 0, 199, 255}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Blend(dst, src, tc.mode); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestBlendAlpha(t *testing.T) {
	dst := Color{100, 150, 200, 255}

	// An opaque source fully replaces the destination channels.
	if got := Blend(dst, Color{10, 20, 30, 255}, BlendAlpha); got != (Color{10, 20, 30, 255}) {
		t.Fatalf("opaque source: got %v", got)
	}

	// A fully transparent source leaves an opaque destination untouched.
	if got := Blend(dst, Color{255, 255, 255, 0}, BlendAlpha); got != dst {
		t.Fatalf("transparent source: got %v", got)
	}

	// Two transparent colors compose to the zero color.
	if got := Blend(Color{10, 20, 30, 0}, Color{40, 50, 60, 0}, BlendAlpha); got != (Color{}) {
		t.Fatalf("transparent pair: got %v", got)
	}

	// A translucent source lands between the two inputs.
	got := Blend(dst, Color{255, 0, 0, 128}, BlendAlpha)
	if got.A != 255 {
		t.Fatalf("alpha over opaque destination must stay opaque, got %v", got)
	}
	if got.R <= dst.R || got.G >= dst.G || got.B >= dst.B {
		t.Fatalf("translucent red over %v: got %v", dst, got)
	}
}

func TestBlendDodgeBurnEdges(t *testing.T) {
	if got := Blend(Color{1, 1, 1, 255}, White, BlendDodge); got != (Color{255, 255, 255, 255}) {
		t.Fatalf("dodge by white: got %v", got)
	}
	if got := Blend(Color{200, 200, 200, 255}, Color{0, 0, 0, 255}, BlendBurn); got != (Color{0, 0, 0, 255}) {
		t.Fatalf("burn by black: got %v", got)
	}
}

func TestBlendUnknownMode(t *testing.T) {
	dst := Color{1, 2, 3, 4}
	if got := Blend(dst, White, BlendMode(99)); got != dst {
		t.Fatalf("unknown mode must return destination, got %v", got)
	}
}
