package calc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		name string
		a, b int
		want int
	}{
		{"positive", 1, 2, 3},
		{"negative cancels", -1, 1, 0},
		{"both negative", -2, -3, -5},
		{"zero identity left", 0, 42, 42},
		{"zero identity right", 42, 0, 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Add(tc.a, tc.b))
		})
	}
}

func TestAdd_Commutative(t *testing.T) {
	pairs := [][2]int{{1, 2}, {-7, 5}, {0, 0}, {1000000, -999999}}
	for _, p := range pairs {
		require.Equal(t, Add(p[0], p[1]), Add(p[1], p[0]))
	}
}

func TestAdd_Associative(t *testing.T) {
	a, b, c := 3, -8, 21
	require.Equal(t, Add(Add(a, b), c), Add(a, Add(b, c)))
}
