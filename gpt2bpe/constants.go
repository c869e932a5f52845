package gpt2bpe

// Base alphabet and the fixed training corpus delimiter.
const (
	baseByteVocabSize = 256 // ids 0..255 are the single-byte strings.

	// endOfTextDelimiter is the designated split delimiter used by the
	// corpus partitioner during training (§4.C / §6).
	endOfTextDelimiter = "<|endoftext|>"
)

// Cache and allocation tuning.
const (
	defaultCacheSize              = 0  // 0 means unlimited (simple map cache).
	estimatedTokensPerCharacter   = 4  // rough capacity hint for Encode's output slice.
	defaultPretokenSliceCapacity  = 8
)
