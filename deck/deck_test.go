package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDeck = []byte(`
dimensions: [2, 2, 1]
actnum: [1, 1, 1, 1]
doubles:
  PERMX: [100, 100, 100, 100]
  PORO: [0.2, 0.2, 0.2, 0.2]
ints:
  SATNUM: [1, 1, 1, 1]
tables:
  SWOF:
    - [[0.1, 0.0, 0.9, 3.0e4], [0.9, 0.8, 0.0, 0.0]]
records:
  DENSITY: [850.0, 1000.0, 0.9]
`)

func TestDeckParse(t *testing.T) {
	d, err := Parse(testDeck)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 2, 1}, d.Dimensions)
	assert.Equal(t, 4, d.NumLogicalCells())

	assert.True(t, d.Has("PERMX"))
	assert.True(t, d.Has("SATNUM"))
	assert.True(t, d.Has("SWOF"))
	assert.True(t, d.Has("DENSITY"))
	assert.False(t, d.Has("MULTX"))

	permx, err := d.Double("PERMX")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 100, 100, 100}, permx)

	satnum, err := d.Int("SATNUM")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1}, satnum)

	swof, err := d.TableSet("SWOF")
	require.NoError(t, err)
	require.Len(t, swof, 1)
	assert.Equal(t, []float64{0.1, 0.9}, swof[0].Column(0))
	assert.Equal(t, []float64{0.9, 0.0}, swof[0].Column(2))

	density, err := d.Record("DENSITY")
	require.NoError(t, err)
	assert.Equal(t, []float64{850, 1000, 0.9}, density)
}

func TestDeckMissingKeyword(t *testing.T) {
	d, err := Parse(testDeck)
	require.NoError(t, err)

	_, err = d.Double("SWAT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SWAT")

	_, err = d.TableSet("SGOF")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SGOF")

	_, err = d.Record("PVTW")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PVTW")
}

func TestDeckValidate(t *testing.T) {
	{ // array size must match the logical grid
		d := &Deck{
			Dimensions: []int{2, 2, 1},
			Doubles:    map[string][]float64{"PORO": {0.2, 0.2}},
		}
		err := d.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PORO")
	}
	{ // dimensions must be positive and 3 long
		d := &Deck{Dimensions: []int{2, 0, 1}}
		assert.Error(t, d.Validate())
		d = &Deck{Dimensions: []int{2, 2}}
		assert.Error(t, d.Validate())
	}
	{ // ACTNUM size is checked too
		d := &Deck{Dimensions: []int{2, 2, 1}, Actnum: []int{1, 1, 1}}
		err := d.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ACTNUM")
	}
}
