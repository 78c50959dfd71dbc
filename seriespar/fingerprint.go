package seriespar

import "hash/fnv"

// fingerprint hashes idx (a sorted support index list) together with its
// sign pattern normalized so the first entry is always +1 — so a support
// vector and its exact negation hash identically, letting parallel and
// anti-parallel rows/columns collide into the same bucket (spec.md §4.3).
// Binary mode has no signs (all entries are 1), so normalization is a
// no-op and only equal patterns collide.
func fingerprint(idx []int, signs []int64, mode Mode) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeInt := func(v int64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	flip := int64(1)
	if mode == Ternary && len(signs) > 0 {
		flip = signs[0]
	}
	for i, c := range idx {
		writeInt(int64(c))
		if mode == Ternary {
			writeInt(signs[i] * flip)
		}
	}
	return h.Sum64()
}
