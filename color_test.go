package bpx

import "testing"

func TestColorUint32RoundTrip(t *testing.T) {
	c := FromUint32(0x11223344)
	want := Color{R: 0x44, G: 0x33, B: 0x22, A: 0x11}
	if c != want {
		t.Fatalf("unpack mismatch: got %v want %v", c, want)
	}
	if got := c.Uint32(); got != 0x11223344 {
		t.Fatalf("pack mismatch: got %#x want 0x11223344", got)
	}
}

func TestColorConstructors(t *testing.T) {
	if got := RGB(1, 2, 3); got != (Color{1, 2, 3, 255}) {
		t.Fatalf("RGB: got %v", got)
	}
	if got := RGBA(1, 2, 3, 4); got != (Color{1, 2, 3, 4}) {
		t.Fatalf("RGBA: got %v", got)
	}
	if got := FromFloats(1, 0, 0.5, 1); got.R != 255 || got.B != 127 || got.A != 255 {
		t.Fatalf("FromFloats: got %v", got)
	}
	if got := FromFloats(-1, 2, 0, 1); got.R != 0 || got.G != 255 {
		t.Fatalf("FromFloats clamp: got %v", got)
	}
	if got := FromGray(0.5, 1); got.R != got.G || got.G != got.B || got.R != 127 {
		t.Fatalf("FromGray: got %v", got)
	}
}

func TestColorArithmetic(t *testing.T) {
	a := Color{250, 10, 0, 255}
	b := Color{10, 10, 0, 10}

	if got := a.Add(b); got != (Color{255, 20, 0, 255}) {
		t.Fatalf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Color{0, 0, 0, 0}) {
		t.Fatalf("Sub: got %v", got)
	}
	if got := (Color{255, 128, 0, 255}).Mul(White); got != (Color{255, 128, 0, 255}) {
		t.Fatalf("Mul identity: got %v", got)
	}
	if got := (Color{100, 200, 50, 255}).Scale(2); got != (Color{200, 255, 100, 255}) {
		t.Fatalf("Scale: got %v", got)
	}
	if got := (Color{100, 200, 50, 255}).Div(2); got != (Color{50, 100, 25, 127}) {
		t.Fatalf("Div: got %v", got)
	}
}

func TestColorHSVPrimaries(t *testing.T) {
	cases := []struct {
		name string
		hue  float64
		want Color
	}{
		{name: "red", hue: 0, want: Red},
		{name: "green", hue: 120, want: Green},
		{name: "blue", hue: 240, want: Blue},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := FromHSV(tc.hue, 1, 1, 1); got != tc.want {
				t.Fatalf("FromHSV(%v): got %v want %v", tc.hue, got, tc.want)
			}
			h, s, v := tc.want.ToHSV()
			if h != tc.hue || s != 1 || v != 1 {
				t.Fatalf("ToHSV(%v): got %v %v %v", tc.want, h, s, v)
			}
		})
	}
}

func TestColorHSVGray(t *testing.T) {
	h, s, v := Gray.ToHSV()
	if h != 0 || s != 0 {
		t.Fatalf("gray hue/saturation: got %v %v", h, s)
	}
	if v == 0 {
		t.Fatal("gray value must be non-zero")
	}
	if got := FromHSV(0, 0, 0, 1); got != (Color{0, 0, 0, 255}) {
		t.Fatalf("zero value: got %v", got)
	}
}

func TestColorHSVRoundTrip(t *testing.T) {
	colors := []Color{
		{64, 128, 192, 255},
		{200, 30, 30, 255},
		{10, 250, 110, 255},
		SkyBlue,
		Orange,
	}
	for _, c := range colors {
		h, s, v := c.ToHSV()
		got := FromHSV(h, s, v, 1)
		if absInt(int(got.R)-int(c.R)) > 1 ||
			absInt(int(got.G)-int(c.G)) > 1 ||
			absInt(int(got.B)-int(c.B)) > 1 {
			t.Fatalf("round trip %v: got %v via %v %v %v", c, got, h, s, v)
		}
	}
}
