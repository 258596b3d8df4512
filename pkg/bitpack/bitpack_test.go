package bitpack

import (
	"bytes"
	"errors"
	"testing"
)

func TestFromBytesMSBFirst(t *testing.T) {
	bs := FromBytes([]byte("A")) // 0x41

	if bs.Len() != 8 {
		t.Fatalf("Len: got %d, want 8", bs.Len())
	}
	if got, want := bs.String(), "01000001"; got != want {
		t.Errorf("String: got %s, want %s", got, want)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "single byte", data: []byte{0x41}},
		{name: "ascii text", data: []byte("seed-token-123")},
		{name: "all boundaries", data: []byte{0x00, 0x01, 0x7F}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromBytes(tc.data).Bytes()
			if err != nil {
				t.Fatalf("Bytes failed: %v", err)
			}
			if !bytes.Equal(got, tc.data) {
				t.Errorf("round trip mismatch: got %v, want %v", got, tc.data)
			}
		})
	}
}

func TestBytesErrors(t *testing.T) {
	t.Run("length not a multiple of 8", func(t *testing.T) {
		padded, _ := FromBytes([]byte("A")).PadToMultiple(3) // 9 bits
		if _, err := padded.Bytes(); !errors.Is(err, ErrInvalidBitLength) {
			t.Errorf("got %v, want ErrInvalidBitLength", err)
		}
	})

	t.Run("non-ascii byte", func(t *testing.T) {
		if _, err := FromBytes([]byte{0x80}).Bytes(); !errors.Is(err, ErrNonASCIIByte) {
			t.Errorf("got %v, want ErrNonASCIIByte", err)
		}
	})
}

func TestPadToMultiple(t *testing.T) {
	testCases := []struct {
		name    string
		bits    int
		n       int
		wantPad int
	}{
		{name: "already aligned", bits: 8, n: 2, wantPad: 0},
		{name: "one short", bits: 8, n: 3, wantPad: 1},
		{name: "mostly padding", bits: 8, n: 7, wantPad: 6},
		{name: "empty input", bits: 0, n: 5, wantPad: 0},
		{name: "wide chunk", bits: 16, n: 12, wantPad: 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bs := FromBytes(make([]byte, tc.bits/8))
			padded, pad := bs.PadToMultiple(tc.n)
			if pad != tc.wantPad {
				t.Errorf("padding count: got %d, want %d", pad, tc.wantPad)
			}
			if pad < 0 || pad >= tc.n {
				t.Errorf("padding count %d outside [0, %d)", pad, tc.n)
			}
			if padded.Len()%tc.n != 0 {
				t.Errorf("padded length %d is not a multiple of %d", padded.Len(), tc.n)
			}
			for i := bs.Len(); i < padded.Len(); i++ {
				if padded.Bit(i) != 0 {
					t.Errorf("padding bit %d is not zero", i)
				}
			}
		})
	}
}

func TestSplitAndUint(t *testing.T) {
	// 0x41 = 01000001, split into 2-bit chunks: 01 00 00 01.
	chunks := FromBytes([]byte{0x41}).Split(2)
	if len(chunks) != 4 {
		t.Fatalf("chunk count: got %d, want 4", len(chunks))
	}
	want := []uint64{1, 0, 0, 1}
	for i, chunk := range chunks {
		if chunk.Len() != 2 {
			t.Errorf("chunk %d length: got %d, want 2", i, chunk.Len())
		}
		if chunk.Uint() != want[i] {
			t.Errorf("chunk %d value: got %d, want %d", i, chunk.Uint(), want[i])
		}
	}
}

func TestFromUint(t *testing.T) {
	t.Run("inverse of Uint", func(t *testing.T) {
		for _, n := range []int{1, 2, 7, 8, 12, 16} {
			for _, v := range []uint64{0, 1, 1<<uint(n) - 1} {
				bs, err := FromUint(v, n)
				if err != nil {
					t.Fatalf("FromUint(%d, %d) failed: %v", v, n, err)
				}
				if bs.Len() != n {
					t.Errorf("FromUint(%d, %d) length: got %d, want %d", v, n, bs.Len(), n)
				}
				if bs.Uint() != v {
					t.Errorf("FromUint(%d, %d).Uint(): got %d", v, n, bs.Uint())
				}
			}
		}
	})

	t.Run("value too large", func(t *testing.T) {
		if _, err := FromUint(4, 2); !errors.Is(err, ErrIndexOutOfChunkRange) {
			t.Errorf("got %v, want ErrIndexOutOfChunkRange", err)
		}
	})
}

func TestConcat(t *testing.T) {
	a, _ := FromUint(1, 2)
	b, _ := FromUint(0, 2)
	c, _ := FromUint(1, 3)

	joined := Concat(a, b, c)
	if got, want := joined.String(), "0100001"; got != want {
		t.Errorf("Concat: got %s, want %s", got, want)
	}
}

func TestTrimTrailing(t *testing.T) {
	padded, pad := FromBytes([]byte("hi")).PadToMultiple(5)

	trimmed, err := padded.TrimTrailing(pad)
	if err != nil {
		t.Fatalf("TrimTrailing failed: %v", err)
	}
	data, err := trimmed.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if string(data) != "hi" {
		t.Errorf("got %q, want %q", data, "hi")
	}

	if _, err := padded.TrimTrailing(padded.Len() + 1); !errors.Is(err, ErrPaddingExceedsLength) {
		t.Errorf("got %v, want ErrPaddingExceedsLength", err)
	}
}
