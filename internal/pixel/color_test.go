package pixel

import (
	"image/color"
	"testing"
)

var _ color.Color = Color(0)

func TestPackRoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 127, 128, 254, 255} {
		c := RGBA(v, 255-v, v/2, 255-v/3)
		if c.R() != v || c.G() != 255-v || c.B() != v/2 || c.A() != 255-v/3 {
			t.Errorf("RGBA(%d,...) unpacked to %d %d %d %d", v, c.R(), c.G(), c.B(), c.A())
		}
	}
}

func TestByteLayout(t *testing.T) {
	buf := make([]byte, 4)
	RGBA(1, 2, 3, 4).PutBytes(buf)
	want := []byte{1, 2, 3, 4}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("PutBytes = %v, want %v", buf, want)
		}
	}
	if got := FromBytes(buf); got != RGBA(1, 2, 3, 4) {
		t.Errorf("FromBytes = %v", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := RGBA(10, 200, 0, 255)
	b := RGBA(250, 0, 255, 0)
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(t=1) = %v, want %v", got, b)
	}
	if got := Lerp(a, b, -3); got != a {
		t.Errorf("Lerp(t<0) = %v, want %v", got, a)
	}
}

func TestLerpRounds(t *testing.T) {
	got := Lerp(RGBA(0, 0, 0, 0), RGBA(255, 1, 3, 255), 0.5)
	want := RGBA(128, 1, 2, 128)
	if got != want {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Red},
		{"00ff00", Green},
		{"#fff", White},
		{"#11223344", RGBA(0x11, 0x22, 0x33, 0x44)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if _, err := ParseHex("#zzzzzz"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestColorInterface(t *testing.T) {
	r, g, b, a := RGBA(255, 0, 0, 255).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %d %d %d %d", r, g, b, a)
	}
	if got := FromColor(color.NRGBA{R: 9, G: 8, B: 7, A: 6}); got != RGBA(9, 8, 7, 6) {
		t.Errorf("FromColor = %v", got)
	}
}

func TestHSV(t *testing.T) {
	if got := HSV(0, 1, 1); got != Red {
		t.Errorf("HSV(0,1,1) = %v, want red", got)
	}
	if got := HSV(480, 1, 1); got != Green {
		t.Errorf("HSV(480,1,1) = %v, want green", got)
	}
}
