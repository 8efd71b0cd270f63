package interleave

import (
	"reflect"
	"testing"
)

func TestInterleaveDeinterleaveRoundTrip(t *testing.T) {
	for _, l := range []int{1, 16, 255, 4096} {
		buf := make([]byte, l)
		for i := range buf {
			buf[i] = byte(i)
		}
		want := make([]byte, l)
		copy(want, buf)

		Interleave(buf)
		if err := Deinterleave(buf); err != nil {
			t.Fatalf("length %d: Deinterleave: %v", l, err)
		}
		if !reflect.DeepEqual(buf, want) {
			t.Fatalf("length %d: round trip = %v, want %v", l, buf, want)
		}
	}
}

func TestInterleaveLength5(t *testing.T) {
	buf := []byte{0, 1, 2, 3, 4}
	want := []byte{0, 1, 2, 3, 4}

	Interleave(buf)
	if err := Deinterleave(buf); err != nil {
		t.Fatalf("Deinterleave: %v", err)
	}
	if !reflect.DeepEqual(buf, want) {
		t.Fatalf("round trip = %v, want %v", buf, want)
	}
}

func TestInterleaveIsPermutation(t *testing.T) {
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(i)
	}
	Interleave(buf)

	seen := make(map[byte]bool)
	for _, v := range buf {
		if seen[v] {
			t.Fatalf("value %d appears more than once after Interleave", v)
		}
		seen[v] = true
	}
	if len(seen) != len(buf) {
		t.Fatalf("Interleave dropped values: saw %d distinct of %d", len(seen), len(buf))
	}
}

func TestShortBuffersAreNoop(t *testing.T) {
	for _, l := range []int{0, 1} {
		buf := make([]byte, l)
		if l == 1 {
			buf[0] = 42
		}
		before := append([]byte{}, buf...)
		Interleave(buf)
		if !reflect.DeepEqual(buf, before) {
			t.Fatalf("length %d: Interleave mutated buffer: %v != %v", l, buf, before)
		}
		if err := Deinterleave(buf); err != nil {
			t.Fatalf("length %d: Deinterleave: %v", l, err)
		}
	}
}
