package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartesianAllActive(t *testing.T) {
	// 2x2x1 grid, cells laid out as
	//   2 3
	//   0 1
	c, err := NewCartesian(2, 2, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, c.NumCells())
	nx, ny, nz := c.LogicalDimensions()
	assert.Equal(t, [3]int{2, 2, 1}, [3]int{nx, ny, nz})
	for cellIdx := 0; cellIdx < 4; cellIdx++ {
		assert.Equal(t, cellIdx, c.OriginIndex(cellIdx))
	}

	faces := c.CellFaces(0)
	require.Len(t, faces, NumLocalFaces)
	assert.Equal(t, Face{Local: FaceXMinus, Neighbor: -1}, faces[FaceXMinus])
	assert.Equal(t, Face{Local: FaceXPlus, Neighbor: 1, Interior: true}, faces[FaceXPlus])
	assert.Equal(t, Face{Local: FaceYPlus, Neighbor: 2, Interior: true}, faces[FaceYPlus])
	assert.Equal(t, Face{Local: FaceZMinus, Neighbor: -1}, faces[FaceZMinus])
	assert.Equal(t, Face{Local: FaceZPlus, Neighbor: -1}, faces[FaceZPlus])

	faces = c.CellFaces(3)
	assert.Equal(t, Face{Local: FaceXMinus, Neighbor: 2, Interior: true}, faces[FaceXMinus])
	assert.Equal(t, Face{Local: FaceYMinus, Neighbor: 1, Interior: true}, faces[FaceYMinus])
	assert.Equal(t, Face{Local: FaceXPlus, Neighbor: -1}, faces[FaceXPlus])
}

func TestCartesianActnum(t *testing.T) {
	// 3x1x1 with the middle cell removed: the two remaining cells are not
	// connected across the inactive one
	c, err := NewCartesian(3, 1, 1, []int{1, 0, 1})
	require.NoError(t, err)

	assert.Equal(t, 2, c.NumCells())
	assert.Equal(t, 0, c.OriginIndex(0))
	assert.Equal(t, 2, c.OriginIndex(1))

	for cellIdx := 0; cellIdx < 2; cellIdx++ {
		for _, face := range c.CellFaces(cellIdx) {
			assert.False(t, face.Interior)
		}
	}
}

func TestCartesianZNeighbors(t *testing.T) {
	c, err := NewCartesian(1, 1, 2, nil)
	require.NoError(t, err)

	faces := c.CellFaces(0)
	assert.Equal(t, Face{Local: FaceZPlus, Neighbor: 1, Interior: true}, faces[FaceZPlus])
	faces = c.CellFaces(1)
	assert.Equal(t, Face{Local: FaceZMinus, Neighbor: 0, Interior: true}, faces[FaceZMinus])
}

func TestCartesianErrors(t *testing.T) {
	_, err := NewCartesian(0, 2, 2, nil)
	assert.Error(t, err)
	_, err = NewCartesian(2, 2, 2, []int{1, 1})
	assert.Error(t, err)
}
