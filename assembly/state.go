package assembly

import (
	"fmt"

	"github.com/notargets/goblackoil/blackoil"
	"github.com/notargets/goblackoil/grid"
)

// FluidState is the thermodynamic state of one cell: a shared temperature,
// three phase saturations, the phase pressures and a phase-by-component
// mole-fraction matrix
type FluidState struct {
	Temperature  float64
	Saturation   [blackoil.NumPhases]float64
	Pressure     [blackoil.NumPhases]float64
	MoleFraction [blackoil.NumPhases][blackoil.NumComponents]float64
}

// InitialStates holds the per-cell initial thermodynamic states
type InitialStates struct {
	states []FluidState
}

/*
BuildInitialStates converts the raw SWAT, SGAS, PRESSURE and RS arrays into
one thermodynamic state per active cell. All four keywords are required;
initialization aborts if any is missing.

The oil saturation closes the balance as 1 - Sw - Sg without clamping, so
out-of-range input data stays visible instead of being silently corrected.
The single oil-phase pressure is replicated across all phases; capillary
phase-pressure splitting is deliberately not applied at initialization.
Water and gas are single-component phases; the oil-phase composition follows
from the black-oil correlations evaluated at the cell's oil pressure.
*/
func BuildInitialStates(mesh grid.Mesh, store PropertyStore, pvt PVT, temperature float64) (is *InitialStates, err error) {
	swat, err := store.Double("SWAT")
	if err != nil {
		return nil, err
	}
	sgas, err := store.Double("SGAS")
	if err != nil {
		return nil, err
	}
	pressure, err := store.Double("PRESSURE")
	if err != nil {
		return nil, err
	}
	// RS is required in the deck even though the dissolved-gas ratio used
	// below comes from the saturated correlation at the cell pressure
	rs, err := store.Double("RS")
	if err != nil {
		return nil, err
	}

	nx, ny, nz := mesh.LogicalDimensions()
	numLogical := nx * ny * nz
	for _, raw := range []struct {
		key  string
		vals []float64
	}{{"SWAT", swat}, {"SGAS", sgas}, {"PRESSURE", pressure}, {"RS", rs}} {
		if len(raw.vals) != numLogical {
			return nil, fmt.Errorf("keyword %q has %d entries, logical grid has %d cells",
				raw.key, len(raw.vals), numLogical)
		}
	}

	numCells := mesh.NumCells()
	is = &InitialStates{states: make([]FluidState, numCells)}
	for cellIdx := 0; cellIdx < numCells; cellIdx++ {
		originIdx := mesh.OriginIndex(cellIdx)
		state := &is.states[cellIdx]

		state.Temperature = temperature

		sw := swat[originIdx]
		sg := sgas[originIdx]
		state.Saturation[blackoil.WaterPhase] = sw
		state.Saturation[blackoil.GasPhase] = sg
		state.Saturation[blackoil.OilPhase] = 1 - sw - sg

		oilPressure := pressure[originIdx]
		for phaseIdx := 0; phaseIdx < blackoil.NumPhases; phaseIdx++ {
			state.Pressure[phaseIdx] = oilPressure
		}

		// water and gas are single-component phases
		state.MoleFraction[blackoil.WaterPhase][blackoil.WaterComponent] = 1
		state.MoleFraction[blackoil.GasPhase][blackoil.GasComponent] = 1

		// oil-phase composition from the black-oil correlations at the
		// cell's oil pressure
		Bo := pvt.OilFormationVolumeFactor(oilPressure)
		Rs := pvt.GasDissolutionFactor(oilPressure)
		rhoO := pvt.SurfaceDensity(blackoil.OilPhase) / Bo
		rhoGRef := pvt.SurfaceDensity(blackoil.GasPhase)

		// dissolved gas as a mass fraction, then converted to moles
		XoG := Rs * rhoGRef / rhoO
		MG := pvt.MolarMass(blackoil.GasComponent)
		MO := pvt.MolarMass(blackoil.OilComponent)
		xoG := XoG * MO / ((MO-MG)*XoG + MG)

		state.MoleFraction[blackoil.OilPhase][blackoil.GasComponent] = xoG
		state.MoleFraction[blackoil.OilPhase][blackoil.OilComponent] = 1 - xoG
	}
	return is, nil
}

// NumCells is the number of active cells covered
func (is *InitialStates) NumCells() int { return len(is.states) }

// At returns the initial state of one active cell. The returned value is a
// copy; the assembled states are never mutated.
func (is *InitialStates) At(cell int) FluidState { return is.states[cell] }
