package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
)

// MannWhitneyU performs the two-sided Mann-Whitney U test on two independent
// samples. U is the statistic of the first sample (x).
//
// Tie policy: tied observations receive midranks and the variance of U is
// tie-corrected, sigma^2 = n1*n2/12 * ((n+1) - sum(t^3-t)/(n*(n-1))). The
// p-value is the continuity-corrected normal approximation. The effect size
// uses the uncorrected z = (U - n1*n2/2)/sqrt(n1*n2*(n1+n2+1)/12) and
// r = z/sqrt(n1+n2), so it matches the conventional report formula even for
// tied data.
//
// Either sample being empty is an error, never a NaN result.
func MannWhitneyU(x, y []float64) (*models.MannWhitneyResult, error) {
	n1 := len(x)
	n2 := len(y)
	if n1 == 0 || n2 == 0 {
		return nil, fmt.Errorf("mann-whitney: empty sample (n1=%d, n2=%d)", n1, n2)
	}

	type observation struct {
		value float64
		first bool // belongs to sample x
	}
	all := make([]observation, 0, n1+n2)
	for _, v := range x {
		all = append(all, observation{value: v, first: true})
	}
	for _, v := range y {
		all = append(all, observation{value: v})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].value < all[j].value })

	// Midranks, accumulating the tie correction term sum(t^3 - t).
	n := n1 + n2
	var rankSumX, tieTerm float64
	for i := 0; i < n; {
		j := i
		for j < n && all[j].value == all[i].value {
			j++
		}
		ties := float64(j - i)
		midrank := (float64(i+1) + float64(j)) / 2
		for k := i; k < j; k++ {
			if all[k].first {
				rankSumX += midrank
			}
		}
		if ties > 1 {
			tieTerm += ties*ties*ties - ties
		}
		i = j
	}

	fn1 := float64(n1)
	fn2 := float64(n2)
	fn := float64(n)

	u := rankSumX - fn1*(fn1+1)/2
	mu := fn1 * fn2 / 2

	sigma2 := fn1 * fn2 / 12 * ((fn + 1) - tieTerm/(fn*(fn-1)))

	var z, p float64
	if sigma2 <= 0 {
		// Every observation tied: no evidence of difference.
		z = 0
		p = 1
	} else {
		// Continuity correction shrinks the deviation toward zero.
		d := u - mu
		switch {
		case d > 0.5:
			d -= 0.5
		case d < -0.5:
			d += 0.5
		default:
			d = 0
		}
		z = d / math.Sqrt(sigma2)

		normal := distuv.Normal{Mu: 0, Sigma: 1}
		p = 2 * normal.Survival(math.Abs(z))
		if p > 1 {
			p = 1
		}
	}

	zEffect := (u - mu) / math.Sqrt(fn1*fn2*(fn+1)/12)
	r := zEffect / math.Sqrt(fn)

	return &models.MannWhitneyResult{
		U:          u,
		PValue:     p,
		Z:          z,
		EffectSize: r,
		N1:         n1,
		N2:         n2,
	}, nil
}
