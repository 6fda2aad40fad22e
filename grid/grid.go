// Package grid provides the mesh abstraction the assemblers run against: an
// indexed collection of active cells and their directed faces. The only
// concrete mesh here is a structured Cartesian grid with an optional
// active-cell mask; the assemblers never depend on more than the Mesh
// interface.
package grid

import "fmt"

/*
Local face numbering on a cell follows the structured convention used by the
directional multiplier keywords:

	0/1 = X minus/plus
	2/3 = Y minus/plus
	4/5 = Z minus/plus
*/
const (
	FaceXMinus = iota
	FaceXPlus
	FaceYMinus
	FaceYPlus
	FaceZMinus
	FaceZPlus
	NumLocalFaces
)

// Face is one face of a cell as seen from that cell. Neighbor is the active
// index of the cell on the other side and is only meaningful for interior
// faces.
type Face struct {
	Local    int
	Neighbor int
	Interior bool
}

// Mesh is the opaque indexed cell collection consumed by the assemblers
type Mesh interface {
	// NumCells is the number of active cells
	NumCells() int
	// OriginIndex maps an active cell index to its index in the full
	// logical (Cartesian) grid, where the raw deck arrays live
	OriginIndex(active int) int
	// LogicalDimensions returns the full Cartesian extents
	LogicalDimensions() (nx, ny, nz int)
	// CellFaces enumerates the faces of one active cell
	CellFaces(active int) []Face
}

// Cartesian is a structured nx*ny*nz grid with inactive cells compacted out
type Cartesian struct {
	nx, ny, nz int
	origin     []int // active index -> origin index
	active     []int // origin index -> active index, -1 if inactive
	faces      [][]Face
}

// NewCartesian builds a Cartesian mesh. The mask follows the ACTNUM
// convention: nonzero means active; a nil mask means all cells are active.
func NewCartesian(nx, ny, nz int, mask []int) (c *Cartesian, err error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("grid dimensions must be positive, have %dx%dx%d", nx, ny, nz)
	}
	numLogical := nx * ny * nz
	if mask != nil && len(mask) != numLogical {
		return nil, fmt.Errorf("active mask has %d entries, logical grid has %d cells",
			len(mask), numLogical)
	}
	c = &Cartesian{
		nx:     nx,
		ny:     ny,
		nz:     nz,
		active: make([]int, numLogical),
	}
	for originIdx := 0; originIdx < numLogical; originIdx++ {
		if mask != nil && mask[originIdx] == 0 {
			c.active[originIdx] = -1
			continue
		}
		c.active[originIdx] = len(c.origin)
		c.origin = append(c.origin, originIdx)
	}
	c.buildFaces()
	return c, nil
}

// buildFaces precomputes the six faces of every active cell, ordered by
// local face number
func (c *Cartesian) buildFaces() {
	var (
		strideX = 1
		strideY = c.nx
		strideZ = c.nx * c.ny
	)
	c.faces = make([][]Face, len(c.origin))
	for activeIdx, originIdx := range c.origin {
		i := originIdx % c.nx
		j := (originIdx / c.nx) % c.ny
		k := originIdx / strideZ
		type candidate struct {
			local   int
			inGrid  bool
			originN int
		}
		candidates := [NumLocalFaces]candidate{
			{FaceXMinus, i > 0, originIdx - strideX},
			{FaceXPlus, i < c.nx-1, originIdx + strideX},
			{FaceYMinus, j > 0, originIdx - strideY},
			{FaceYPlus, j < c.ny-1, originIdx + strideY},
			{FaceZMinus, k > 0, originIdx - strideZ},
			{FaceZPlus, k < c.nz-1, originIdx + strideZ},
		}
		faces := make([]Face, 0, NumLocalFaces)
		for _, cand := range candidates {
			face := Face{Local: cand.local, Neighbor: -1}
			if cand.inGrid {
				if neighbor := c.active[cand.originN]; neighbor >= 0 {
					face.Neighbor = neighbor
					face.Interior = true
				}
			}
			faces = append(faces, face)
		}
		c.faces[activeIdx] = faces
	}
}

func (c *Cartesian) NumCells() int { return len(c.origin) }

func (c *Cartesian) OriginIndex(active int) int { return c.origin[active] }

func (c *Cartesian) LogicalDimensions() (nx, ny, nz int) { return c.nx, c.ny, c.nz }

func (c *Cartesian) CellFaces(active int) []Face { return c.faces[active] }
