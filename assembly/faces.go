package assembly

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goblackoil/grid"
	"github.com/notargets/goblackoil/types"
	"github.com/notargets/goblackoil/utils"
)

/*
dirMultKeyword maps a direction index to its permeability multiplier keyword.
The direction indices coincide with the local face numbering: 0/1 are the X
minus/plus pair, 2/3 the Y pair, 4/5 the Z pair.
*/
var dirMultKeyword = [grid.NumLocalFaces]string{
	grid.FaceXMinus: "MULTX-",
	grid.FaceXPlus:  "MULTX",
	grid.FaceYMinus: "MULTY-",
	grid.FaceYPlus:  "MULTY",
	grid.FaceZMinus: "MULTZ-",
	grid.FaceZPlus:  "MULTZ",
}

// oppositeDir gives the direction seen from the other side of a face
var oppositeDir = [grid.NumLocalFaces]int{
	grid.FaceXMinus: grid.FaceXPlus,
	grid.FaceXPlus:  grid.FaceXMinus,
	grid.FaceYMinus: grid.FaceYPlus,
	grid.FaceYPlus:  grid.FaceYMinus,
	grid.FaceZMinus: grid.FaceZPlus,
	grid.FaceZPlus:  grid.FaceZMinus,
}

// FaceProperties is the sparse FaceKey-indexed lookup of effective face
// permeability tensors, stored once per physical interface
type FaceProperties struct {
	numCells int
	perm     map[types.FaceKey]*mat.SymDense
}

/*
BuildFaceProperties computes one effective permeability tensor per physical
interior interface. Each face is visited from both adjacent cells; the
canonical FaceKey makes the second visit a no-op ("seen from the other
side"). The directional multiplier of the interior cell's face direction
scales the interior cell's tensor and the opposite direction's multiplier
scales the exterior cell's tensor, both read through the cells' origin
indices. Faces with a local index outside the structured 0..5 range receive
no multiplier adjustment. The stored tensor is the componentwise harmonic
average of the two scaled tensors.
*/
func BuildFaceProperties(mesh grid.Mesh, store PropertyStore, props *Properties) (fp *FaceProperties, err error) {
	numCells := mesh.NumCells()
	nx, ny, nz := mesh.LogicalDimensions()
	numLogical := nx * ny * nz

	// the six optional multiplier arrays, defaulting to all ones over the
	// full logical grid
	var mults [grid.NumLocalFaces][]float64
	ones := make([]float64, numLogical)
	for i := range ones {
		ones[i] = 1
	}
	for dir, keyword := range dirMultKeyword {
		mults[dir] = ones
		if store.Has(keyword) {
			if mults[dir], err = store.Double(keyword); err != nil {
				return nil, err
			}
		}
	}

	// a conforming structured 3D grid stores each of at most 6 neighbor
	// interfaces per cell exactly once
	fp = &FaceProperties{
		numCells: numCells,
		perm:     make(map[types.FaceKey]*mat.SymDense, 6*numCells),
	}

	for cellIdx := 0; cellIdx < numCells; cellIdx++ {
		for _, face := range mesh.CellFaces(cellIdx) {
			if !face.Interior {
				continue
			}
			key := types.NewFaceKey(cellIdx, face.Neighbor, numCells)
			if _, seen := fp.perm[key]; seen {
				continue
			}

			K1 := props.Permeability(cellIdx)
			K2 := props.Permeability(face.Neighbor)
			if face.Local >= 0 && face.Local < grid.NumLocalFaces {
				interiorOrigin := mesh.OriginIndex(cellIdx)
				exteriorOrigin := mesh.OriginIndex(face.Neighbor)
				K1 = scaledTensor(K1, mults[face.Local][interiorOrigin])
				K2 = scaledTensor(K2, mults[oppositeDir[face.Local]][exteriorOrigin])
			}

			K := mat.NewSymDense(3, nil)
			for i := 0; i < 3; i++ {
				for j := i; j < 3; j++ {
					K.SetSym(i, j, utils.HarmonicAverage(K1.At(i, j), K2.At(i, j)))
				}
			}
			fp.perm[key] = K
		}
	}
	return fp, nil
}

func scaledTensor(K *mat.SymDense, factor float64) (scaled *mat.SymDense) {
	scaled = mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			scaled.SetSym(i, j, K.At(i, j)*factor)
		}
	}
	return
}

// NumFaces is the number of stored physical interfaces
func (fp *FaceProperties) NumFaces() int { return len(fp.perm) }

// Key builds the canonical key for the interface between two active cells
func (fp *FaceProperties) Key(a, b int) types.FaceKey {
	return types.NewFaceKey(a, b, fp.numCells)
}

// At returns the effective permeability tensor of an assembled interface.
// Querying a key that was never assembled is a programming error: every face
// the discretization engine asks for must have been discovered during
// assembly.
func (fp *FaceProperties) At(key types.FaceKey) *mat.SymDense {
	K, ok := fp.perm[key]
	if !ok {
		lo, hi := key.Cells(fp.numCells)
		panic(fmt.Errorf("no face permeability assembled for cell pair (%d,%d)", lo, hi))
	}
	return K
}

// Has reports whether an interface was assembled
func (fp *FaceProperties) Has(key types.FaceKey) bool {
	_, ok := fp.perm[key]
	return ok
}

// ConnectivityCSR exports the symmetric cell-adjacency pattern of the
// assembled face set, with a unit diagonal, as a compressed sparse row
// matrix. The discretization engine uses it as the Jacobian sparsity
// pattern.
func (fp *FaceProperties) ConnectivityCSR() *sparse.CSR {
	dok := sparse.NewDOK(fp.numCells, fp.numCells)
	for cellIdx := 0; cellIdx < fp.numCells; cellIdx++ {
		dok.Set(cellIdx, cellIdx, 1)
	}
	for key := range fp.perm {
		lo, hi := key.Cells(fp.numCells)
		dok.Set(lo, hi, 1)
		dok.Set(hi, lo, 1)
	}
	return dok.ToCSR()
}
