package core

import (
	"math"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileVolumeExpr(t *testing.T) {
	tests := []struct {
		src  string
		h    float64
		want float64
	}{
		{src: "2*h", h: 3, want: 6},
		{src: "3.14*h*h", h: 2, want: 12.56},
		{src: "1 + 2 * 3", h: 0, want: 7},
		{src: "(1 + 2) * 3", h: 0, want: 9},
		{src: "h/4", h: 2, want: 0.5},
		{src: "h^2", h: 3, want: 9},
		{src: "h**2", h: 3, want: 9},
		{src: "2^3^2", h: 0, want: 512},
		{src: "-h^2", h: 3, want: -9},
		{src: "-(h-1)", h: 3, want: -2},
		{src: "pi*h", h: 1, want: math.Pi},
		{src: "math.pi*pow(h,2)", h: 2, want: 4 * math.Pi},
		{src: "min(h, 5) + max(h, 5)", h: 7, want: 12},
		{src: "sqrt(h)+abs(-1)", h: 9, want: 4},
		{src: "1.0/3.0*PI*h*(4.0*4.0+4.0*2.0+2.0*2.0)", h: 3, want: 28 * math.Pi},
		{src: "1/2*h", h: 4, want: 2},
		{src: "min(h, 5)*2", h: 7, want: 10},
		{src: "pow(2, 3)", h: 0, want: 8},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			compiled, err := compileVolumeExpr(tt.src)
			require.NoError(t, err)
			got, err := compiled.eval(tt.h)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCompileVolumeExprErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"2*",
		"(h",
		"h)",
		"foo*h",
		"sqrt(1, 2)",
		"unknown(h)",
		"h @ 2",
		"h > 2",
		"   ",
	} {
		t.Run(src, func(t *testing.T) {
			_, err := compileVolumeExpr(src)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}
