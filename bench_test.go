package guard_test

import (
	"testing"

	"github.com/ferrovax/guard"
)

// BenchmarkFinallyRun measures the cost of arming and running a guard,
// compared to a bare deferred call.
func BenchmarkFinallyRun(b *testing.B) {
	b.ReportAllocs()
	n := 0
	for i := 0; i < b.N; i++ {
		g := guard.Finally(func() { n++ })
		g.Run()
	}
	if n != b.N {
		b.Fatalf("expected %d runs, got %d", b.N, n)
	}
}

// BenchmarkDismissedRun measures the disarmed fast path.
func BenchmarkDismissedRun(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := guard.Finally(func() {})
		g.Dismiss()
		g.Run()
	}
}

// BenchmarkRawDefer is the baseline: plain defer of a closure.
func BenchmarkRawDefer(b *testing.B) {
	b.ReportAllocs()
	n := 0
	for i := 0; i < b.N; i++ {
		func() {
			defer func() { n++ }()
		}()
	}
	if n != b.N {
		b.Fatalf("expected %d runs, got %d", b.N, n)
	}
}
