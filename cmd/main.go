package main

import (
	"errors"
	"fmt"

	"github.com/ferrovax/guard"
	"github.com/ferrovax/guard/checked"
)

// copyInto stores raw as an int8 count, undoing the insertion if the
// value does not fit.
func copyInto(dst map[string]int8, key string, raw int64) (err error) {
	defer guard.OnFailure(func() {
		delete(dst, key)
		fmt.Println("  rolled back", key)
	}, guard.WithError(&err)).Run()

	dst[key] = 0

	v, err := checked.Narrow[int8](raw)
	if err != nil {
		return fmt.Errorf("value for %s: %w", key, err)
	}

	dst[key] = v
	return nil
}

func main() {
	release := guard.Finally(func() { fmt.Println("done") })
	defer release.Run()

	counts := map[string]int8{}

	if err := copyInto(counts, "ok", 42); err != nil {
		fmt.Println("  error:", err)
	}
	if err := copyInto(counts, "bad", 300); err != nil && errors.Is(err, checked.ErrNarrowing) {
		fmt.Println("  error:", err)
	}

	fmt.Println("counts:", counts)
}
