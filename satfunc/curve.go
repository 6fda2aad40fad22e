// Package satfunc builds the table-driven saturation-function material laws:
// piecewise-linear two-phase relative-permeability/capillary-pressure curves
// and their combination into the default three-phase model.
package satfunc

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

/*
TwoPhaseCurve is a sampled relative-permeability/capillary-pressure
relationship between a wetting and a non-wetting phase. The sample columns
are stored exactly as supplied; for the gas-oil system they arrive
re-expressed in oil saturation and therefore in descending order, which the
evaluator accepts. Finalize must be called before any evaluation.
*/
type TwoPhaseCurve struct {
	Sat  []float64 // wetting-phase saturation samples
	Krw  []float64 // wetting-phase relative permeability
	Krn  []float64 // non-wetting-phase relative permeability
	Pcnw []float64 // capillary pressure (non-wetting minus wetting)

	krw, krn, pc interp.PiecewiseLinear
	finalized    bool
}

// Finalize validates the sample columns and prepares the interpolants.
// Columns must have equal length (>= 2), saturations and relative
// permeabilities must lie in [0,1], and the saturation column must be
// strictly monotone in either direction.
func (c *TwoPhaseCurve) Finalize() error {
	n := len(c.Sat)
	if n < 2 {
		return fmt.Errorf("two-phase curve needs at least 2 samples, has %d", n)
	}
	if len(c.Krw) != n || len(c.Krn) != n || len(c.Pcnw) != n {
		return fmt.Errorf("two-phase curve columns have mismatched lengths %d/%d/%d/%d",
			n, len(c.Krw), len(c.Krn), len(c.Pcnw))
	}
	ascending := c.Sat[1] > c.Sat[0]
	for i := 0; i < n; i++ {
		if c.Sat[i] < 0 || c.Sat[i] > 1 {
			return fmt.Errorf("saturation sample %d is %g, outside [0,1]", i, c.Sat[i])
		}
		if c.Krw[i] < 0 || c.Krw[i] > 1 || c.Krn[i] < 0 || c.Krn[i] > 1 {
			return fmt.Errorf("relative permeability sample %d is outside [0,1]", i)
		}
		if i == 0 {
			continue
		}
		if ascending && c.Sat[i] <= c.Sat[i-1] ||
			!ascending && c.Sat[i] >= c.Sat[i-1] {
			return fmt.Errorf("saturation column is not strictly monotone at sample %d", i)
		}
	}

	sat, krw, krn, pc := c.Sat, c.Krw, c.Krn, c.Pcnw
	if !ascending {
		sat = reversed(sat)
		krw = reversed(krw)
		krn = reversed(krn)
		pc = reversed(pc)
	}
	if err := c.krw.Fit(sat, krw); err != nil {
		return err
	}
	if err := c.krn.Fit(sat, krn); err != nil {
		return err
	}
	if err := c.pc.Fit(sat, pc); err != nil {
		return err
	}
	c.finalized = true
	return nil
}

// SatMin is the smallest saturation sample (the connate saturation)
func (c *TwoPhaseCurve) SatMin() float64 {
	lo := c.Sat[0]
	if last := c.Sat[len(c.Sat)-1]; last < lo {
		lo = last
	}
	return lo
}

// KrWetting evaluates the wetting-phase relative permeability at s
func (c *TwoPhaseCurve) KrWetting(s float64) float64 {
	c.checkFinalized()
	return c.krw.Predict(s)
}

// KrNonwetting evaluates the non-wetting-phase relative permeability at s
func (c *TwoPhaseCurve) KrNonwetting(s float64) float64 {
	c.checkFinalized()
	return c.krn.Predict(s)
}

// CapillaryPressure evaluates the capillary pressure at s
func (c *TwoPhaseCurve) CapillaryPressure(s float64) float64 {
	c.checkFinalized()
	return c.pc.Predict(s)
}

func (c *TwoPhaseCurve) checkFinalized() {
	if !c.finalized {
		panic(fmt.Errorf("two-phase curve evaluated before Finalize"))
	}
}

func reversed(vals []float64) (out []float64) {
	out = make([]float64, len(vals))
	for i, v := range vals {
		out[len(vals)-1-i] = v
	}
	return
}
