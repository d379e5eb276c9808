package bench

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SizeList returns points sizes spaced geometrically from minN to maxN,
// rounded, de-duplicated and ascending. Invalid bounds yield nil.
func SizeList(minN, maxN, points int) []int {
	if minN < 1 || maxN < minN || points < 1 {
		return nil
	}
	ratio := math.Pow(float64(maxN)/float64(minN), 1/float64(max(1, points-1)))
	xs := make([]int, 0, points)
	v := float64(minN)
	for i := 0; i < points; i++ {
		xs = append(xs, int(math.Round(v)))
		v *= ratio
	}
	slices.Sort(xs)

	return slices.Compact(xs)
}

// Median returns the middle value, or the mean of the two middle values
// for an even count. An empty slice yields 0. xs is not modified.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	a := slices.Clone(xs)
	slices.Sort(a)
	m := len(a) / 2
	if len(a)%2 == 1 {
		return a[m]
	}

	return (a[m-1] + a[m]) / 2
}

// Summarize computes median, mean, sample standard deviation and the 95%
// Student-t half-width of xs.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	s := Summary{Median: Median(xs)}
	if len(xs) == 1 {
		s.Mean = xs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(len(xs) - 1)}
	s.CI95 = t.Quantile(0.975) * s.StdDev / math.Sqrt(float64(len(xs)))

	return s
}

// Fit is a least-squares line through (log n, log y).
type Fit struct {
	// Exponent is the slope: y ≈ c·n^Exponent.
	Exponent float64 `json:"exponent" yaml:"exponent"`
	// Coefficient is c.
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
	// R2 is the coefficient of determination in log space.
	R2 float64 `json:"r2" yaml:"r2"`
}

// FitPower fits y ≈ c·n^k over the points with n > 0 and y > 0.
func FitPower(ns []int, ys []float64) (Fit, error) {
	lx := make([]float64, 0, len(ns))
	ly := make([]float64, 0, len(ns))
	for i := range ns {
		if i >= len(ys) || ns[i] <= 0 || ys[i] <= 0 {
			continue
		}
		lx = append(lx, math.Log(float64(ns[i])))
		ly = append(ly, math.Log(ys[i]))
	}
	if len(lx) < 2 || slices.Min(lx) == slices.Max(lx) {
		return Fit{}, ErrNotEnoughPoints
	}
	alpha, beta := stat.LinearRegression(lx, ly, nil, false)
	r2 := stat.RSquared(lx, ly, nil, alpha, beta)
	if math.IsNaN(r2) {
		// flat series: zero residual over zero variance
		r2 = 1
	}

	return Fit{
		Exponent:    beta,
		Coefficient: math.Exp(alpha),
		R2:          r2,
	}, nil
}

// Point is one (n, y) sample of a curve.
type Point struct {
	N int     `json:"n" yaml:"n"`
	Y float64 `json:"y" yaml:"y"`
}

// Curve is a reference growth curve.
type Curve struct {
	Name   string  `json:"name" yaml:"name"`
	Points []Point `json:"points" yaml:"points"`
}

var referenceCurves = []struct {
	name string
	f    func(n float64) float64
}{
	{"n", func(n float64) float64 { return n }},
	{"n log n", func(n float64) float64 { return n * math.Log2(math.Max(2, n)) }},
	{"n²", func(n float64) float64 { return n * n }},
}

// Curves returns the n, n log n and n² curves over ns, each scaled so
// that it passes through anchor at ns[0]. A zero anchor scales by 1.
func Curves(ns []int, anchor float64) []Curve {
	if len(ns) == 0 {
		return nil
	}
	if anchor == 0 {
		anchor = 1
	}
	out := make([]Curve, 0, len(referenceCurves))
	for _, rc := range referenceCurves {
		k := anchor / rc.f(float64(ns[0]))
		pts := make([]Point, len(ns))
		for i, n := range ns {
			pts[i] = Point{N: n, Y: k * rc.f(float64(n))}
		}
		out = append(out, Curve{Name: rc.name, Points: pts})
	}

	return out
}
