package derrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	var err error
	Wrap(&err, "nothing")
	if err != nil {
		t.Fatalf("Wrap(nil) = %v, want nil", err)
	}

	err = fmt.Errorf("line 3: %w", Malformed)
	Wrap(&err, "documenting %s", "Add")
	if !errors.Is(err, Malformed) {
		t.Errorf("errors.Is(%v, Malformed) = false, want true", err)
	}
	if got, want := err.Error(), "documenting Add: line 3: malformed docstring"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExitCode(t *testing.T) {
	for _, test := range []struct {
		err  error
		want int
	}{
		{nil, 0},
		{fmt.Errorf("need 2 arguments: %w", Usage), 2},
		{Malformed, 1},
		{errors.New("disk full"), 1},
	} {
		if got := ExitCode(test.err); got != test.want {
			t.Errorf("ExitCode(%v) = %d, want %d", test.err, got, test.want)
		}
	}
}
