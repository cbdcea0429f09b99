package rand

import (
	"errors"
	"io"
	"math"
	"testing"
)

// countingReader wraps a reader and counts bytes served.
type countingReader struct {
	inner io.Reader
	count int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.inner.Read(p)
	c.count += n
	return n, err
}

// failingReader always fails.
type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func withReader(t *testing.T, r io.Reader) {
	t.Helper()
	old := Reader
	Reader = r
	t.Cleanup(func() { Reader = old })
}

func TestAcquireRelease(t *testing.T) {
	src, err := Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	if _, err := src.FillBytes(8); err != nil {
		t.Fatalf("FillBytes on live handle failed: %v", err)
	}

	src.Release()
	if _, err := src.FillBytes(8); !errors.Is(err, ErrReleased) {
		t.Errorf("expected ErrReleased after Release, got %v", err)
	}
	if _, err := src.UniformUint32(10); !errors.Is(err, ErrReleased) {
		t.Errorf("expected ErrReleased after Release, got %v", err)
	}

	// Release is idempotent
	src.Release()
}

func TestAcquireUnavailable(t *testing.T) {
	withReader(t, failingReader{})

	if _, err := Acquire(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestFillBytes(t *testing.T) {
	src, err := Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer src.Release()

	bytes, err := src.FillBytes(32)
	if err != nil {
		t.Fatalf("FillBytes failed: %v", err)
	}
	if len(bytes) != 32 {
		t.Errorf("expected 32 bytes, got %d", len(bytes))
	}

	for _, n := range []int{0, -1} {
		if _, err := src.FillBytes(n); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("FillBytes(%d): expected ErrInvalidLength, got %v", n, err)
		}
	}
}

func TestFillBytesDrawFailure(t *testing.T) {
	src := &Source{r: failingReader{}}

	if _, err := src.FillBytes(16); !errors.Is(err, ErrDrawFailed) {
		t.Errorf("expected ErrDrawFailed, got %v", err)
	}
}

func TestUniformUint32Bounds(t *testing.T) {
	src, err := Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer src.Release()

	for _, bound := range []uint32{2, 3, 7, 10, 52, 62, 84, 1024} {
		for i := 0; i < 200; i++ {
			v, err := src.UniformUint32(bound)
			if err != nil {
				t.Fatalf("UniformUint32(%d) failed: %v", bound, err)
			}
			if v >= bound {
				t.Fatalf("UniformUint32(%d) returned out-of-range value %d", bound, v)
			}
		}
	}
}

func TestUniformUint32ZeroBound(t *testing.T) {
	src, err := Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer src.Release()

	if _, err := src.UniformUint32(0); !errors.Is(err, ErrZeroBound) {
		t.Errorf("expected ErrZeroBound, got %v", err)
	}
}

func TestUniformUint32BoundOneConsumesNoEntropy(t *testing.T) {
	counter := &countingReader{inner: failingReader{}}
	src := &Source{r: counter}

	v, err := src.UniformUint32(1)
	if err != nil {
		t.Fatalf("UniformUint32(1) failed: %v", err)
	}
	if v != 0 {
		t.Errorf("UniformUint32(1) = %d, want 0", v)
	}
	if counter.count != 0 {
		t.Errorf("UniformUint32(1) consumed %d bytes of entropy", counter.count)
	}
}

func TestUniformUint32DrawFailure(t *testing.T) {
	src := &Source{r: failingReader{}}

	if _, err := src.UniformUint32(60); !errors.Is(err, ErrDrawFailed) {
		t.Errorf("expected ErrDrawFailed, got %v", err)
	}
}

func TestRejectionThreshold(t *testing.T) {
	for _, bound := range []uint32{1, 2, 3, 7, 52, 60, 62, 84, 1024, math.MaxUint32} {
		threshold := RejectionThreshold(bound)
		if threshold%bound != 0 {
			t.Errorf("threshold %d is not a multiple of bound %d", threshold, bound)
		}
		if uint64(threshold)+uint64(bound) <= math.MaxUint32 {
			t.Errorf("threshold %d rejects more than one partial band for bound %d", threshold, bound)
		}
	}

	// Worked example from the range-60 case: MaxUint32 % 60 == 15, so the
	// top 16 values of the draw space must be rejected.
	if got := RejectionThreshold(60); got != math.MaxUint32-15 {
		t.Errorf("RejectionThreshold(60) = %d, want %d", got, uint32(math.MaxUint32-15))
	}
}
