package window

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/yourusername/window-backdrop/pkg/backdrop"
	"pgregory.net/rapid"
)

func TestParseHandle(t *testing.T) {
	tests := []struct {
		in      string
		want    backdrop.HWND
		wantErr bool
	}{
		{in: "1234", want: 1234},
		{in: "0x1A2b", want: 0x1a2b},
		{in: " 0X10 ", want: 0x10},
		{in: "0", wantErr: true},
		{in: "0x0", wantErr: true},
		{in: "", wantErr: true},
		{in: "hwnd", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "0xZZ", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseHandle(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHandle(%q) = %#x, want error", tt.in, uintptr(got))
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHandle(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHandle(%q) = %#x, want %#x", tt.in, uintptr(got), uintptr(tt.want))
		}
	}
}

// maxHandle is the largest value a handle can hold on this platform.
const maxHandle = uint64(^uintptr(0))

func TestParseHandleRejectsOverflow(t *testing.T) {
	// One past the largest pointer-sized value, in both notations.
	var tooBig []string
	if strconv.IntSize == 32 {
		tooBig = []string{"4294967296", "0x100000000"}
	} else {
		tooBig = []string{"18446744073709551616", "0x10000000000000000"}
	}

	for _, s := range tooBig {
		if got, err := ParseHandle(s); err == nil {
			t.Errorf("ParseHandle(%q) = %#x, want range error", s, uintptr(got))
		}
	}

	largest := strconv.FormatUint(maxHandle, 10)
	got, err := ParseHandle(largest)
	if err != nil {
		t.Fatalf("ParseHandle(%q) failed: %v", largest, err)
	}
	if uint64(got) != maxHandle {
		t.Errorf("ParseHandle(%q) = %#x", largest, uintptr(got))
	}
}

func TestParseHandleErrorQuotesInput(t *testing.T) {
	_, err := ParseHandle("0xZZ")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"0xZZ"`) {
		t.Errorf("error %q does not quote the original input", err)
	}
}

func TestParseHandleRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.Uint64Range(1, min(1<<48, maxHandle)).Draw(rt, "handle")
		for _, s := range []string{fmt.Sprintf("%d", n), fmt.Sprintf("%#x", n)} {
			got, err := ParseHandle(s)
			if err != nil {
				rt.Fatalf("ParseHandle(%q) failed: %v", s, err)
			}
			if uint64(got) != n {
				rt.Fatalf("ParseHandle(%q) = %d, want %d", s, got, n)
			}
		}
	})
}
