// Package assembly turns the raw geological deck into the per-cell and
// per-face numerical inputs a finite-volume discretization engine needs:
// permeability tensors and porosities, effective face permeabilities,
// saturation-function material laws and the initial thermodynamic state.
// Everything is computed once at startup and is read-only afterwards.
package assembly

import (
	"github.com/notargets/goblackoil/blackoil"
	"github.com/notargets/goblackoil/deck"
	"github.com/notargets/goblackoil/grid"
)

// PropertyStore is the keyed view of the loaded deck the assemblers read.
// All arrays are indexed by origin-grid index. A missing required keyword is
// the sole error signal distinguished from "present but defaulted".
type PropertyStore interface {
	Has(key string) bool
	Double(key string) ([]float64, error)
	Int(key string) ([]int, error)
	TableSet(key string) ([]deck.Table, error)
}

// PVT is the already-initialized black-oil correlation capability consumed
// by the initial-state computation
type PVT interface {
	OilFormationVolumeFactor(p float64) float64
	GasDissolutionFactor(p float64) float64
	SurfaceDensity(phase blackoil.Phase) float64
	MolarMass(component blackoil.Component) float64
}

// Config carries the few run-level settings the assembly needs
type Config struct {
	// Temperature is the single simulation-wide reservoir temperature [K]
	Temperature float64
}

// DefaultTemperature is the reservoir temperature used when none is given [K]
const DefaultTemperature = 293.15

// Result bundles the four assembled products. All of them are immutable
// after Assemble returns and may be shared read-only across however many
// worker threads the discretization engine uses.
type Result struct {
	Properties *Properties
	Faces      *FaceProperties
	Laws       *MaterialLaws
	States     *InitialStates
}

// Assemble runs the full one-time assembly pass. Any error aborts the whole
// initialization; there is no partial-success mode.
func Assemble(mesh grid.Mesh, store PropertyStore, pvt PVT, cfg Config) (res *Result, err error) {
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}

	props, err := BuildProperties(mesh, store)
	if err != nil {
		return nil, err
	}
	faces, err := BuildFaceProperties(mesh, store, props)
	if err != nil {
		return nil, err
	}
	laws, err := BuildMaterialLaws(mesh, store)
	if err != nil {
		return nil, err
	}
	states, err := BuildInitialStates(mesh, store, pvt, cfg.Temperature)
	if err != nil {
		return nil, err
	}

	return &Result{
		Properties: props,
		Faces:      faces,
		Laws:       laws,
		States:     states,
	}, nil
}
