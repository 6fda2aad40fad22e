package assembly

import (
	"fmt"

	"github.com/notargets/goblackoil/grid"
	"github.com/notargets/goblackoil/satfunc"
)

// MaterialLaws holds the per-region three-phase material laws and the
// per-cell region lookup produced by the saturation-law builder
type MaterialLaws struct {
	laws       []*satfunc.ThreePhaseLaw
	cellRegion []int // nil when every cell uses region 0
}

/*
BuildMaterialLaws constructs the validated three-phase law of every
saturation region from the SWOF/SGOF table pair and resolves the optional
per-cell SATNUM region indices. SATNUM values are 1-based in the raw data
and must lie in [1, numRegions]; they are stored 0-based. Without SATNUM
every cell implicitly uses region 0.
*/
func BuildMaterialLaws(mesh grid.Mesh, store PropertyStore) (ml *MaterialLaws, err error) {
	swof, err := store.TableSet("SWOF")
	if err != nil {
		return nil, err
	}
	sgof, err := store.TableSet("SGOF")
	if err != nil {
		return nil, err
	}
	laws, err := satfunc.BuildLaws(swof, sgof)
	if err != nil {
		return nil, err
	}
	ml = &MaterialLaws{laws: laws}

	if !store.Has("SATNUM") {
		return ml, nil
	}
	satnum, err := store.Int("SATNUM")
	if err != nil {
		return nil, err
	}
	numCells := mesh.NumCells()
	ml.cellRegion = make([]int, numCells)
	for cellIdx := 0; cellIdx < numCells; cellIdx++ {
		raw := satnum[mesh.OriginIndex(cellIdx)]
		if raw < 1 || raw > len(laws) {
			return nil, fmt.Errorf("SATNUM value %d for cell %d is outside [1,%d]",
				raw, cellIdx, len(laws))
		}
		// raw deck indices are 1-based
		ml.cellRegion[cellIdx] = raw - 1
	}
	return ml, nil
}

// NumRegions is the number of saturation-function regions
func (ml *MaterialLaws) NumRegions() int { return len(ml.laws) }

// Law returns the finalized three-phase law of one region
func (ml *MaterialLaws) Law(region int) *satfunc.ThreePhaseLaw { return ml.laws[region] }

// RegionOf is the 0-based region index of one active cell
func (ml *MaterialLaws) RegionOf(cell int) int {
	if ml.cellRegion == nil {
		return 0
	}
	return ml.cellRegion[cell]
}

// LawForCell resolves the three-phase law governing one active cell
func (ml *MaterialLaws) LawForCell(cell int) *satfunc.ThreePhaseLaw {
	return ml.laws[ml.RegionOf(cell)]
}
