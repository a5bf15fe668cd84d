package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DensityGridSize is the fixed grid resolution for density curves.
const DensityGridSize = 1000

// KDE computes a Gaussian kernel density estimate over a gridSize-point grid
// spanning the sample's observed min/max. Bandwidth follows Scott's rule,
// h = sd * n^(-1/5).
//
// A sample with fewer than 2 values or zero variance has no usable density
// estimate and returns an error rather than a degenerate curve.
func KDE(values []float64, gridSize int) (xs, ys []float64, err error) {
	n := len(values)
	if n < 2 {
		return nil, nil, fmt.Errorf("kde: need at least 2 values, got %d", n)
	}
	sd := StdDev(values)
	if sd == 0 {
		return nil, nil, fmt.Errorf("kde: sample has zero variance")
	}

	h := sd * math.Pow(float64(n), -0.2)
	kernel := distuv.Normal{Mu: 0, Sigma: h}

	min, max := Range(values)
	step := (max - min) / float64(gridSize-1)

	xs = make([]float64, gridSize)
	ys = make([]float64, gridSize)
	for i := range xs {
		x := min + step*float64(i)
		xs[i] = x

		var density float64
		for _, v := range values {
			density += kernel.Prob(x - v)
		}
		ys[i] = density / float64(n)
	}

	return xs, ys, nil
}
