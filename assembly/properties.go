package assembly

import (
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goblackoil/grid"
)

// Properties holds the assembled per-cell rock properties: a diagonal
// permeability tensor and a porosity scalar per active cell
type Properties struct {
	perm     []*mat.SymDense
	porosity []float64
}

/*
BuildProperties reads the raw per-cell rock property arrays and produces the
per-cell permeability tensors and porosities.

PERMX is required; PERMY and PERMZ default to the PERMX values. PORO is
required. If NTG is present it scales the X and Y permeability diagonal
entries (not Z) and the porosity; if MULTPV is present it scales the porosity
as well. The two multipliers are optional and applied independently. All raw
arrays are sized to the full logical grid and are read through the mesh's
origin-index mapping.
*/
func BuildProperties(mesh grid.Mesh, store PropertyStore) (props *Properties, err error) {
	numCells := mesh.NumCells()
	props = &Properties{
		perm:     make([]*mat.SymDense, numCells),
		porosity: make([]float64, numCells),
	}

	permX, err := store.Double("PERMX")
	if err != nil {
		return nil, err
	}
	permY := permX
	if store.Has("PERMY") {
		if permY, err = store.Double("PERMY"); err != nil {
			return nil, err
		}
	}
	permZ := permX
	if store.Has("PERMZ") {
		if permZ, err = store.Double("PERMZ"); err != nil {
			return nil, err
		}
	}
	poro, err := store.Double("PORO")
	if err != nil {
		return nil, err
	}

	var ntg, multpv []float64
	if store.Has("NTG") {
		if ntg, err = store.Double("NTG"); err != nil {
			return nil, err
		}
	}
	if store.Has("MULTPV") {
		if multpv, err = store.Double("MULTPV"); err != nil {
			return nil, err
		}
	}

	for cellIdx := 0; cellIdx < numCells; cellIdx++ {
		originIdx := mesh.OriginIndex(cellIdx)

		K := mat.NewSymDense(3, nil)
		K.SetSym(0, 0, permX[originIdx])
		K.SetSym(1, 1, permY[originIdx])
		K.SetSym(2, 2, permZ[originIdx])

		phi := poro[originIdx]
		if ntg != nil {
			// net-to-gross reduces the lateral flow area, not the
			// vertical one
			K.SetSym(0, 0, K.At(0, 0)*ntg[originIdx])
			K.SetSym(1, 1, K.At(1, 1)*ntg[originIdx])
			phi *= ntg[originIdx]
		}
		if multpv != nil {
			phi *= multpv[originIdx]
		}

		props.perm[cellIdx] = K
		props.porosity[cellIdx] = phi
	}
	return props, nil
}

// NumCells is the number of active cells covered
func (p *Properties) NumCells() int { return len(p.porosity) }

// Permeability is the diagonal permeability tensor of one active cell
func (p *Properties) Permeability(cell int) *mat.SymDense { return p.perm[cell] }

// Porosity is the effective porosity of one active cell
func (p *Properties) Porosity(cell int) float64 { return p.porosity[cell] }
