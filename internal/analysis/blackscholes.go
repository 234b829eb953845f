package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BlackScholesCall returns the closed-form European call price for spot s,
// strike k, time to expiry t, rate r, volatility sigma and dividend yield q.
func BlackScholesCall(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 || s <= 0 || k <= 0 {
		return math.Max(s*math.Exp(-q*t)-k*math.Exp(-r*t), 0)
	}
	d1, d2 := dValues(s, k, t, r, sigma, q)
	n := distuv.UnitNormal
	return s*math.Exp(-q*t)*n.CDF(d1) - k*math.Exp(-r*t)*n.CDF(d2)
}

// BlackScholesPut returns the closed-form European put price.
func BlackScholesPut(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 || s <= 0 || k <= 0 {
		return math.Max(k*math.Exp(-r*t)-s*math.Exp(-q*t), 0)
	}
	d1, d2 := dValues(s, k, t, r, sigma, q)
	n := distuv.UnitNormal
	return k*math.Exp(-r*t)*n.CDF(-d2) - s*math.Exp(-q*t)*n.CDF(-d1)
}

func dValues(s, k, t, r, sigma, q float64) (d1, d2 float64) {
	sqt := sigma * math.Sqrt(t)
	d1 = (math.Log(s/k) + (r-q+0.5*sigma*sigma)*t) / sqt
	d2 = d1 - sqt
	return d1, d2
}
