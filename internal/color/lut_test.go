package color

import (
	"math"
	"testing"
)

func TestSRGBToLinearFastAgreesWithExact(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		s := float32(i) / 1000
		fast := SRGBToLinearFast(s)
		exact := SRGBToLinear(s)
		if math.Abs(float64(fast-exact)) > 1e-3 {
			t.Fatalf("SRGBToLinearFast(%v) = %v, exact %v", s, fast, exact)
		}
	}
}

func TestSRGBToLinearFastClamps(t *testing.T) {
	if got := SRGBToLinearFast(-0.5); got != 0 {
		t.Errorf("SRGBToLinearFast(-0.5) = %v, want 0", got)
	}
	if got := SRGBToLinearFast(1.5); got != 1 {
		t.Errorf("SRGBToLinearFast(1.5) = %v, want 1", got)
	}
	if got := SRGBToLinearFast(1); got != 1 {
		t.Errorf("SRGBToLinearFast(1) = %v, want 1", got)
	}
}

func BenchmarkSRGBToLinear(b *testing.B) {
	b.Run("exact", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; b.Loop(); i++ {
			_ = SRGBToLinear(float32(i&1023) / 1023)
		}
	})
	b.Run("lut", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; b.Loop(); i++ {
			_ = SRGBToLinearFast(float32(i&1023) / 1023)
		}
	})
}
