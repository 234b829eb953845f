package analysis

import (
	"math"
	"testing"
)

func TestBlackScholesKnownValues(t *testing.T) {
	// Reference values computed from the standard formulas.
	cases := []struct {
		name                   string
		s, k, tm, r, sigma, q  float64
		wantPut, wantCall, tol float64
	}{
		{"atm put", 100, 100, 1, 0.04, 0.2, 0, 6.0040, 9.9251, 2e-3},
		{"deep itm put", 50, 100, 1, 0.04, 0.2, 0, 46.0810, 0.0022, 2e-3},
		{"zero vol", 90, 100, 1, 0.04, 0, 0, 100*math.Exp(-0.04) - 90, 0, 1e-12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := BlackScholesPut(c.s, c.k, c.tm, c.r, c.sigma, c.q); math.Abs(got-c.wantPut) > c.tol {
				t.Errorf("put = %.6f, want %.6f", got, c.wantPut)
			}
			if got := BlackScholesCall(c.s, c.k, c.tm, c.r, c.sigma, c.q); math.Abs(got-c.wantCall) > c.tol {
				t.Errorf("call = %.6f, want %.6f", got, c.wantCall)
			}
		})
	}
}

func TestPutCallParity(t *testing.T) {
	s, k, tm, r, sigma, q := 105.0, 95.0, 0.75, 0.03, 0.25, 0.01
	call := BlackScholesCall(s, k, tm, r, sigma, q)
	put := BlackScholesPut(s, k, tm, r, sigma, q)
	lhs := call - put
	rhs := s*math.Exp(-q*tm) - k*math.Exp(-r*tm)
	if math.Abs(lhs-rhs) > 1e-10 {
		t.Errorf("parity violated: C-P = %.10f, S e^{-qT} - K e^{-rT} = %.10f", lhs, rhs)
	}
}

func TestPutExpiryLimit(t *testing.T) {
	if got := BlackScholesPut(80, 100, 0, 0.04, 0.2, 0); got != 20 {
		t.Errorf("put at expiry = %g, want intrinsic 20", got)
	}
}
