package emd

import "testing"

func TestNumIMFs(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{8, 3},
		{1024, 10},
	}
	for _, c := range cases {
		if got := NumIMFs(c.n); got != c.want {
			t.Errorf("NumIMFs(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
