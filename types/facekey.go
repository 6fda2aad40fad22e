package types

import "fmt"

/*
FaceKey identifies the physical interface between two active cells as a single
comparable number. The cell pair is canonicalized in ascending order before
packing, so the same interface visited from either adjacent cell packs to the
same key. The packing is min*numCells + max, which is collision free for any
pair of distinct indices in [0, numCells).
*/
type FaceKey uint64

func NewFaceKey(a, b, numCells int) (packed FaceKey) {
	if a < 0 || b < 0 || a >= numCells || b >= numCells || a == b {
		panic(fmt.Errorf("unable to build a face key for cells %d and %d with %d cells",
			a, b, numCells))
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	packed = FaceKey(uint64(lo)*uint64(numCells) + uint64(hi))
	return
}

// Cells recovers the canonical (ascending) cell pair from the packed key
func (fk FaceKey) Cells(numCells int) (lo, hi int) {
	lo = int(uint64(fk) / uint64(numCells))
	hi = int(uint64(fk) % uint64(numCells))
	return
}
