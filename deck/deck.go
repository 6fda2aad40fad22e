// Package deck implements the keyed store of raw geological input data: the
// per-cell arrays, table sets and records a property assembler reads. The
// on-disk format is a YAML document keyed by Eclipse-style keywords.
package deck

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
)

// Table is one sampled table: a list of rows, each row a fixed number of
// columns. Saturation-function tables (SWOF, SGOF) have four columns, PVT
// tables two or three.
type Table [][]float64

// Column extracts column j of the table as a freshly allocated slice
func (t Table) Column(j int) (col []float64) {
	col = make([]float64, len(t))
	for i, row := range t {
		if j < 0 || j >= len(row) {
			panic(fmt.Errorf("table has no column %d in row %d", j, i))
		}
		col[i] = row[j]
	}
	return
}

// Deck holds the fully loaded raw input data. All per-cell arrays are sized
// to the full logical (Cartesian) grid nx*ny*nz, not to the active cell set.
type Deck struct {
	Dimensions []int                `yaml:"dimensions"`
	Actnum     []int                `yaml:"actnum"`
	Doubles    map[string][]float64 `yaml:"doubles"`
	Ints       map[string][]int     `yaml:"ints"`
	Tables     map[string][]Table   `yaml:"tables"`
	Records    map[string][]float64 `yaml:"records"`
}

// Load reads and validates a YAML deck file
func Load(path string) (d *Deck, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read deck file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals and validates a YAML deck document
func Parse(data []byte) (d *Deck, err error) {
	d = &Deck{}
	if err = yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("unable to parse deck: %w", err)
	}
	if err = d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the grid dimensions and the shape of every per-cell array
// against the logical grid size
func (d *Deck) Validate() error {
	if len(d.Dimensions) != 3 {
		return fmt.Errorf("deck dimensions must have 3 entries, have %d", len(d.Dimensions))
	}
	for i, n := range d.Dimensions {
		if n < 1 {
			return fmt.Errorf("deck dimension %d is %d, must be positive", i, n)
		}
	}
	numCells := d.NumLogicalCells()
	if d.Actnum != nil && len(d.Actnum) != numCells {
		return fmt.Errorf("ACTNUM has %d entries, logical grid has %d cells",
			len(d.Actnum), numCells)
	}
	for key, vals := range d.Doubles {
		if len(vals) != numCells {
			return fmt.Errorf("keyword %q has %d entries, logical grid has %d cells",
				key, len(vals), numCells)
		}
	}
	for key, vals := range d.Ints {
		if len(vals) != numCells {
			return fmt.Errorf("keyword %q has %d entries, logical grid has %d cells",
				key, len(vals), numCells)
		}
	}
	return nil
}

// NumLogicalCells is the full Cartesian cell count nx*ny*nz
func (d *Deck) NumLogicalCells() int {
	if len(d.Dimensions) != 3 {
		return 0
	}
	return d.Dimensions[0] * d.Dimensions[1] * d.Dimensions[2]
}

// Has reports whether a double, int, table or record keyword is present
func (d *Deck) Has(key string) bool {
	if _, ok := d.Doubles[key]; ok {
		return true
	}
	if _, ok := d.Ints[key]; ok {
		return true
	}
	if _, ok := d.Tables[key]; ok {
		return true
	}
	_, ok := d.Records[key]
	return ok
}

// Double returns the per-cell double array for a keyword. A missing keyword
// is an error naming the key, the sole signal distinguished from "present
// but defaulted".
func (d *Deck) Double(key string) ([]float64, error) {
	vals, ok := d.Doubles[key]
	if !ok {
		return nil, fmt.Errorf("deck is missing required keyword %q", key)
	}
	return vals, nil
}

// Int returns the per-cell integer array for a keyword
func (d *Deck) Int(key string) ([]int, error) {
	vals, ok := d.Ints[key]
	if !ok {
		return nil, fmt.Errorf("deck is missing required keyword %q", key)
	}
	return vals, nil
}

// TableSet returns the tables for a keyword, one table per region
func (d *Deck) TableSet(key string) ([]Table, error) {
	ts, ok := d.Tables[key]
	if !ok {
		return nil, fmt.Errorf("deck is missing required keyword %q", key)
	}
	return ts, nil
}

// Record returns the single fixed-length record for a keyword (DENSITY, PVTW)
func (d *Deck) Record(key string) ([]float64, error) {
	rec, ok := d.Records[key]
	if !ok {
		return nil, fmt.Errorf("deck is missing required keyword %q", key)
	}
	return rec, nil
}
