package llmprovider

import (
	"strings"
	"testing"
)

func TestWithNotice(t *testing.T) {
	if got := withNotice("", true); !HasMarker(got) || !strings.HasPrefix(got, "\n\n[") {
		t.Errorf("expected notice, got %q", got)
	}
	if got := withNotice("partial answer", true); got != "partial answer" {
		t.Errorf("non-empty content must be kept as is, got %q", got)
	}
	if got := withNotice("", false); got != "" {
		t.Errorf("no notice without a length stop, got %q", got)
	}
}

func TestStripTruncation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full notice", "Salmon is great." + Notice, "Salmon is great."},
		{"notice only", Notice, ""},
		{"bare marker", "Part one " + Marker, "Part one"},
		{"clean text", "  Nothing to strip  ", "Nothing to strip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripTruncation(tt.in)
			if got != tt.want {
				t.Errorf("StripTruncation() = %q, want %q", got, tt.want)
			}
			if HasMarker(got) {
				t.Errorf("marker survived in %q", got)
			}
		})
	}
}
