package gpt2bpe

import "unicode/utf8"

// Decode concatenates the vocabulary byte-strings for ids and decodes the
// result as UTF-8, substituting the replacement character for any
// ill-formed byte sequence (§4.G). An id outside [0, vocab size) is a
// caller error.
func (t *Tokenizer) Decode(ids []int) (string, error) {
	if len(ids) == 0 {
		return "", nil
	}

	buf := make([]byte, 0, len(ids)*2)
	for _, id := range ids {
		bytes, ok := t.vocab.Bytes(id)
		if !ok {
			return "", NewTokenIDError("decode", id, ErrInvalidTokenID)
		}
		buf = append(buf, bytes...)
	}

	return decodeUTF8Lossy(buf), nil
}

// decodeUTF8Lossy decodes b as UTF-8, replacing each ill-formed byte or
// byte sequence with U+FFFD, matching the reference decoder's behavior
// for the ill-formed sequences BPE can occasionally produce.
func decodeUTF8Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var sb []rune
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb = append(sb, r)
		b = b[size:]
	}
	return string(sb)
}
