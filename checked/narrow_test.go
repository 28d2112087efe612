package checked_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ferrovax/guard/checked"
)

func TestNarrowPreservesValue(t *testing.T) {
	if v, err := checked.Narrow[int32](int64(42)); err != nil || v != 42 {
		t.Fatalf("expected 42, got %d, %v", v, err)
	}
	if v, err := checked.Narrow[int8](uint8(127)); err != nil || v != 127 {
		t.Fatalf("expected 127, got %d, %v", v, err)
	}
	if v, err := checked.Narrow[uint8](int16(255)); err != nil || v != 255 {
		t.Fatalf("expected 255, got %d, %v", v, err)
	}
	if v, err := checked.Narrow[int64](int64(math.MinInt64)); err != nil || v != math.MinInt64 {
		t.Fatalf("expected MinInt64, got %d, %v", v, err)
	}
}

func TestNarrowRoundTripFailure(t *testing.T) {
	if _, err := checked.Narrow[uint8](uint32(300)); !errors.Is(err, checked.ErrNarrowing) {
		t.Fatalf("expected ErrNarrowing, got %v", err)
	}
	if _, err := checked.Narrow[int16](int32(1 << 20)); !errors.Is(err, checked.ErrNarrowing) {
		t.Fatalf("expected ErrNarrowing, got %v", err)
	}
}

// Sign flips are caught by the sign check alone: these values round-trip
// numerically and would slip through a bare round-trip comparison.
func TestNarrowSignFlip(t *testing.T) {
	// uint8(200) -> int8(-56) -> uint8(200): round trip passes.
	if _, err := checked.Narrow[int8](uint8(200)); !errors.Is(err, checked.ErrNarrowing) {
		t.Fatalf("expected ErrNarrowing for uint8(200) -> int8, got %v", err)
	}

	// int8(-1) -> uint8(255) -> int8(-1): round trip passes.
	if _, err := checked.Narrow[uint8](int8(-1)); !errors.Is(err, checked.ErrNarrowing) {
		t.Fatalf("expected ErrNarrowing for int8(-1) -> uint8, got %v", err)
	}

	// Same-width case: uint32(MaxUint32-41) -> int32(-42) round-trips.
	if _, err := checked.Narrow[int32](uint32(math.MaxUint32 - 41)); !errors.Is(err, checked.ErrNarrowing) {
		t.Fatalf("expected ErrNarrowing for large uint32 -> int32, got %v", err)
	}
}

func TestNarrowFloat(t *testing.T) {
	if v, err := checked.Narrow[float32](float64(0.5)); err != nil || v != 0.5 {
		t.Fatalf("expected 0.5, got %v, %v", v, err)
	}
	if _, err := checked.Narrow[float32](float64(0.1)); !errors.Is(err, checked.ErrNarrowing) {
		t.Fatalf("expected ErrNarrowing for precision loss, got %v", err)
	}
	if _, err := checked.Narrow[float32](math.NaN()); !errors.Is(err, checked.ErrNarrowing) {
		t.Fatalf("expected ErrNarrowing for NaN, got %v", err)
	}
}

func TestNarrowFloatToInt(t *testing.T) {
	if v, err := checked.Narrow[int](float64(3)); err != nil || v != 3 {
		t.Fatalf("expected 3, got %d, %v", v, err)
	}
	if _, err := checked.Narrow[int](float64(2.5)); !errors.Is(err, checked.ErrNarrowing) {
		t.Fatalf("expected ErrNarrowing for fractional value, got %v", err)
	}
}

func TestTruncNeverFails(t *testing.T) {
	if got := checked.Trunc[uint8](uint32(300)); got != 44 {
		t.Fatalf("expected 44, got %d", got)
	}
	if got := checked.Trunc[int8](uint8(200)); got != -56 {
		t.Fatalf("expected -56, got %d", got)
	}
	if got := checked.Trunc[int32](int64(42)); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestMustNarrow(t *testing.T) {
	if got := checked.MustNarrow[uint8](int16(255)); got != 255 {
		t.Fatalf("expected 255, got %d", got)
	}

	p := capturePanic(func() { checked.MustNarrow[uint8](uint32(300)) })
	err, ok := p.(error)
	if !ok || !errors.Is(err, checked.ErrNarrowing) {
		t.Fatalf("expected panic with ErrNarrowing, got %v", p)
	}
}

func BenchmarkNarrow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := checked.Narrow[int32](int64(i & 0xffff)); err != nil {
			b.Fatal(err)
		}
	}
}
