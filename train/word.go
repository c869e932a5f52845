package train

import "encoding/binary"

// word is one entry of the trainer's word_freqs map: a pretoken represented
// as a sequence of vocabulary ids (initially byte values, later replaced by
// merged ids) together with its multiplicity across the corpus (§3/§4.E).
type word struct {
	ids   []int
	count int
}

// encodeWordKey builds a canonical, collision-free map key for a sequence
// of ids: each id as a fixed-width big-endian uint32. Pretokens are short,
// so the allocation here is small relative to the index it keys into.
func encodeWordKey(ids []int) string {
	buf := make([]byte, len(ids)*4)
	for i, id := range ids {
		binary.BigEndian.PutUint32(buf[i*4:], uint32(id))
	}
	return string(buf)
}

// bytesToIDs converts a pretoken's raw UTF-8 bytes into initial ids: one id
// per byte, which is valid because the base vocabulary maps byte value b to
// id b (§3).
func bytesToIDs(b []byte) []int {
	ids := make([]int, len(b))
	for i, c := range b {
		ids[i] = int(c)
	}
	return ids
}
