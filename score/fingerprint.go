package score

import (
	"encoding/binary"

	"blainsmith.com/go/seahash"
)

// Fingerprint folds every stored Range, in table order, through seahash
// and returns the result. It exists purely for diagnostics: logging
// "score map changed" around a Merge/Update call, and comparing maps in
// tests without reflect.DeepEqual walking the borrowed Init/Team values
// (spec.md §4.9).
func (m *ScoreMap) Fingerprint() uint64 {
	var buf []byte
	var tmp [32]byte
	for i := 0; i < ColTypeNum; i++ {
		for j := 0; j < MemTypeLast; j++ {
			for _, r := range m.cells[i][j] {
				binary.LittleEndian.PutUint32(tmp[0:4], uint32(i))
				binary.LittleEndian.PutUint32(tmp[4:8], uint32(j))
				binary.LittleEndian.PutUint64(tmp[8:16], r.Start)
				binary.LittleEndian.PutUint64(tmp[16:24], r.End)
				binary.LittleEndian.PutUint64(tmp[24:32], uint64(r.Score))
				buf = append(buf, tmp[:]...)
			}
		}
	}
	return seahash.Sum64(buf)
}
