// Package blackoil implements the black-oil PVT fluid system: phase and
// component identities plus the pressure-dependent correlations (formation
// volume factors, gas dissolution) built from deck PVT tables.
package blackoil

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/notargets/goblackoil/deck"
)

type Phase uint8

const (
	WaterPhase Phase = iota
	OilPhase
	GasPhase
)

const NumPhases = 3

type Component uint8

const (
	WaterComponent Component = iota
	OilComponent
	GasComponent
)

const NumComponents = 3

// Component molar masses [kg/mol]. The oil pseudo-component uses the usual
// black-oil lumped value, gas is essentially methane.
const (
	MolarMassWater = 18.0e-3
	MolarMassOil   = 350.0e-3
	MolarMassGas   = 16.0e-3
)

/*
FluidSystem holds the initialized black-oil correlations. It is built once
from the deck's PVTO, PVDG, PVTW and DENSITY keywords and is read-only
afterwards.

The saturated live-oil table PVTO has rows [Rs, Pbub, Bo]; the dry-gas table
PVDG has rows [p, Bg]. Both are interpolated piecewise linearly in pressure
with constant extrapolation beyond the sampled range. Water follows the
single-record PVTW compressibility form.
*/
type FluidSystem struct {
	surfaceDensity [NumPhases]float64
	molarMass      [NumComponents]float64

	bo interp.PiecewiseLinear
	rs interp.PiecewiseLinear
	bg interp.PiecewiseLinear

	pwRef, bwRef, cw float64
}

// NewFluidSystem initializes the fluid system from deck tables. Missing PVT
// keywords are fatal configuration errors.
func NewFluidSystem(d *deck.Deck) (fs *FluidSystem, err error) {
	fs = &FluidSystem{
		molarMass: [NumComponents]float64{MolarMassWater, MolarMassOil, MolarMassGas},
	}

	pvto, err := d.TableSet("PVTO")
	if err != nil {
		return nil, err
	}
	if len(pvto) == 0 || len(pvto[0]) < 2 {
		return nil, fmt.Errorf("keyword \"PVTO\" needs at least 2 rows")
	}
	live := pvto[0]
	if err = fs.bo.Fit(live.Column(1), live.Column(2)); err != nil {
		return nil, fmt.Errorf("keyword \"PVTO\": %w", err)
	}
	if err = fs.rs.Fit(live.Column(1), live.Column(0)); err != nil {
		return nil, fmt.Errorf("keyword \"PVTO\": %w", err)
	}

	pvdg, err := d.TableSet("PVDG")
	if err != nil {
		return nil, err
	}
	if len(pvdg) == 0 || len(pvdg[0]) < 2 {
		return nil, fmt.Errorf("keyword \"PVDG\" needs at least 2 rows")
	}
	dry := pvdg[0]
	if err = fs.bg.Fit(dry.Column(0), dry.Column(1)); err != nil {
		return nil, fmt.Errorf("keyword \"PVDG\": %w", err)
	}

	pvtw, err := d.Record("PVTW")
	if err != nil {
		return nil, err
	}
	if len(pvtw) < 3 {
		return nil, fmt.Errorf("keyword \"PVTW\" needs 3 items, has %d", len(pvtw))
	}
	fs.pwRef, fs.bwRef, fs.cw = pvtw[0], pvtw[1], pvtw[2]

	density, err := d.Record("DENSITY")
	if err != nil {
		return nil, err
	}
	if len(density) != 3 {
		return nil, fmt.Errorf("keyword \"DENSITY\" needs 3 items, has %d", len(density))
	}
	// DENSITY record order is oil, water, gas
	fs.surfaceDensity[OilPhase] = density[0]
	fs.surfaceDensity[WaterPhase] = density[1]
	fs.surfaceDensity[GasPhase] = density[2]

	return fs, nil
}

// OilFormationVolumeFactor is Bo(p) [rm3/sm3]
func (fs *FluidSystem) OilFormationVolumeFactor(p float64) float64 {
	return fs.bo.Predict(p)
}

// GasDissolutionFactor is Rs(p) [sm3/sm3], the saturated gas-oil ratio
func (fs *FluidSystem) GasDissolutionFactor(p float64) float64 {
	return fs.rs.Predict(p)
}

// GasFormationVolumeFactor is Bg(p) [rm3/sm3]
func (fs *FluidSystem) GasFormationVolumeFactor(p float64) float64 {
	return fs.bg.Predict(p)
}

// WaterFormationVolumeFactor is Bw(p) from the PVTW compressibility record
func (fs *FluidSystem) WaterFormationVolumeFactor(p float64) float64 {
	x := fs.cw * (p - fs.pwRef)
	return fs.bwRef / (1 + x + x*x/2)
}

// SurfaceDensity is the phase mass density at surface conditions [kg/m3]
func (fs *FluidSystem) SurfaceDensity(phase Phase) float64 {
	return fs.surfaceDensity[phase]
}

// MolarMass is the component molar mass [kg/mol]
func (fs *FluidSystem) MolarMass(component Component) float64 {
	return fs.molarMass[component]
}
