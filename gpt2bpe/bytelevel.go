package gpt2bpe

// byteToPrintable and printableToByte implement the fixed bijection between
// byte values [0,256) and printable Unicode code points (§4.B of the spec):
// bytes in [33,126], [161,172] and [174,255] map to themselves; the
// remaining 68 byte values map, in ascending byte order, to code points
// 256..323. This exists only so vocab/merges can round-trip through plain
// text files without escape ambiguity; it has no role in BPE semantics.
var (
	byteToPrintable [256]rune
	printableToByte map[rune]byte
)

func init() {
	byteToPrintable, printableToByte = buildByteLevelMapping()
}

func isDirectlyPrintable(b int) bool {
	return (b >= 33 && b <= 126) || (b >= 161 && b <= 172) || (b >= 174 && b <= 255)
}

func buildByteLevelMapping() ([256]rune, map[rune]byte) {
	var toPrintable [256]rune
	toByte := make(map[rune]byte, 256)

	next := rune(256)
	for b := 0; b < 256; b++ {
		var r rune
		if isDirectlyPrintable(b) {
			r = rune(b)
		} else {
			r = next
			next++
		}
		toPrintable[b] = r
		toByte[r] = byte(b)
	}
	return toPrintable, toByte
}

// encodeBytePrintable converts raw bytes into their byte-printable string form.
func encodeBytePrintable(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = byteToPrintable[b]
	}
	return string(runes)
}

// decodeBytePrintable converts a byte-printable string back into raw bytes.
// Code points outside the fixed bijection are dropped.
func decodeBytePrintable(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := printableToByte[r]; ok {
			out = append(out, b)
		}
	}
	return out
}
