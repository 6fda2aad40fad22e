package satfunc

import (
	"fmt"

	"github.com/notargets/goblackoil/deck"
)

/*
ThreePhaseLaw combines an oil-water and a gas-oil two-phase curve into one
three-phase relative-permeability/capillary-pressure model per saturation
region. The oil relative permeability follows the default saturation-weighted
interpolation between the two two-phase oil curves.
*/
type ThreePhaseLaw struct {
	OilWater *TwoPhaseCurve // parameterized by water saturation
	GasOil   *TwoPhaseCurve // parameterized by oil saturation

	swco      float64 // connate water saturation
	finalized bool
}

// Finalize validates both curves and derives the connate water saturation
func (l *ThreePhaseLaw) Finalize() error {
	if l.OilWater == nil || l.GasOil == nil {
		return fmt.Errorf("three-phase law needs both an oil-water and a gas-oil curve")
	}
	if !l.OilWater.finalized {
		if err := l.OilWater.Finalize(); err != nil {
			return fmt.Errorf("oil-water curve: %w", err)
		}
	}
	if !l.GasOil.finalized {
		if err := l.GasOil.Finalize(); err != nil {
			return fmt.Errorf("gas-oil curve: %w", err)
		}
	}
	l.swco = l.OilWater.SatMin()
	l.finalized = true
	return nil
}

// Krw is the water relative permeability at water saturation sw
func (l *ThreePhaseLaw) Krw(sw float64) float64 {
	return l.OilWater.KrWetting(sw)
}

// Krg is the gas relative permeability at gas saturation sg. The gas-oil
// curve is stored against oil saturation, so evaluate at 1-sg.
func (l *ThreePhaseLaw) Krg(sg float64) float64 {
	return l.GasOil.KrNonwetting(1 - sg)
}

// Kro is the three-phase oil relative permeability, interpolated between the
// oil-water and gas-oil two-phase values weighted by the saturations of the
// competing phases
func (l *ThreePhaseLaw) Kro(sw, sg float64) float64 {
	krow := l.OilWater.KrNonwetting(sw)
	krog := l.GasOil.KrWetting(1 - sg)
	denom := sg + sw - l.swco
	if denom <= 0 {
		return krow
	}
	return (sg*krog + (sw-l.swco)*krow) / denom
}

// PcOW is the oil-water capillary pressure at water saturation sw
func (l *ThreePhaseLaw) PcOW(sw float64) float64 {
	return l.OilWater.CapillaryPressure(sw)
}

// PcGO is the gas-oil capillary pressure at gas saturation sg
func (l *ThreePhaseLaw) PcGO(sg float64) float64 {
	return l.GasOil.CapillaryPressure(1 - sg)
}

/*
BuildLaws constructs one finalized three-phase law per saturation region from
paired SWOF and SGOF table sets. The table counts must match exactly.

SWOF columns: Sw, krw, krow, Pcow. SGOF columns: Sg, krog, krg, Pcog. The
gas-oil curve is re-expressed in oil saturation: each Sg sample becomes
So = 1 - Sg by pure value substitution, the sample order is preserved.
*/
func BuildLaws(swof, sgof []deck.Table) (laws []*ThreePhaseLaw, err error) {
	if len(swof) != len(sgof) {
		return nil, fmt.Errorf("have %d SWOF tables but %d SGOF tables, counts must match",
			len(swof), len(sgof))
	}
	laws = make([]*ThreePhaseLaw, len(swof))
	for regionIdx := range swof {
		ow := &TwoPhaseCurve{
			Sat:  swof[regionIdx].Column(0),
			Krw:  swof[regionIdx].Column(1),
			Krn:  swof[regionIdx].Column(2),
			Pcnw: swof[regionIdx].Column(3),
		}

		soSamples := sgof[regionIdx].Column(0)
		for sampleIdx, sg := range soSamples {
			soSamples[sampleIdx] = 1 - sg
		}
		gasoil := &TwoPhaseCurve{
			Sat:  soSamples,
			Krw:  sgof[regionIdx].Column(1),
			Krn:  sgof[regionIdx].Column(2),
			Pcnw: sgof[regionIdx].Column(3),
		}

		law := &ThreePhaseLaw{OilWater: ow, GasOil: gasoil}
		if err = law.Finalize(); err != nil {
			return nil, fmt.Errorf("saturation region %d: %w", regionIdx+1, err)
		}
		laws[regionIdx] = law
	}
	return laws, nil
}
