package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Byte-pair-encoding vocabularies available from pkoukk/tiktoken-go.
// Each is a fixed subword alphabet: encoding a word yields a sequence
// of vocabulary indices, which the lexicon package uses directly as
// acceptor arc labels.
const (
	encodingCL100kBase = "cl100k_base"
	encodingP50kBase   = "p50k_base"
	encodingR50kBase   = "r50k_base"
)

// vocabSizes gives the exact token count of each supported encoding.
// tiktoken-go doesn't expose this on the encoder itself, so it's
// tracked here rather than estimated at call time.
var vocabSizes = map[string]int{
	encodingCL100kBase: 100256,
	encodingP50kBase:   50257,
	encodingR50kBase:   50257,
}

// TikToken is a Tokenizer backed by a tiktoken byte-pair-encoding
// vocabulary. It gives the lexicon package a subword alphabet instead
// of a whole-word one, so a word absent from any training vocabulary
// still decomposes into a sequence of known labels rather than falling
// back to an unknown-word arc.
type TikToken struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewTikToken loads the named encoding as a label vocabulary.
func NewTikToken(encodingName string) (*TikToken, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}

	return &TikToken{
		encoding: encoding,
		name:     encodingName,
	}, nil
}

// Encode converts a word to its label sequence.
func (t *TikToken) Encode(text string) ([]int32, error) {
	tokens := t.encoding.Encode(text, nil, nil)

	result := make([]int32, len(tokens))
	for i, tok := range tokens {
		result[i] = int32(tok) //nolint:gosec // G115: Token ID fits in int32 - vocab size < 2^31.
	}

	return result, nil
}

// Decode converts a label sequence back to the word it came from.
func (t *TikToken) Decode(tokens []int32) (string, error) {
	intTokens := make([]int, len(tokens))
	for i, tok := range tokens {
		intTokens[i] = int(tok)
	}

	return t.encoding.Decode(intTokens), nil
}

// VocabSize returns the token count recorded for the encoding in
// vocabSizes, or 0 for an encoding not listed there.
func (t *TikToken) VocabSize() int {
	if n, ok := vocabSizes[t.name]; ok {
		return n
	}
	return 0
}

// Name returns the encoding name.
func (t *TikToken) Name() string {
	return t.name
}
