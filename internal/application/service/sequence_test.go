package service

import "testing"

func TestNextSequentialNumber(t *testing.T) {
	cases := []struct {
		last   string
		prefix string
		want   string
	}{
		{"", "T", "T1"},
		{"T1", "T", "T2"},
		{"T9", "T", "T10"},
		{"T42", "T", "T43"},
		{"", "R", "R1"},
		{"R7", "R", "R8"},
		{"Tabc", "T", "T1"},
		{"T", "T", "T1"},
	}

	for _, c := range cases {
		if got := nextSequentialNumber(c.last, c.prefix); got != c.want {
			t.Errorf("nextSequentialNumber(%q, %q) = %q, want %q", c.last, c.prefix, got, c.want)
		}
	}
}
