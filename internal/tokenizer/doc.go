// Package tokenizer wraps third-party text tokenizers behind the
// Tokenizer interface so the lexicon package can turn words into
// label sequences without depending on a specific BPE implementation.
//
// Example usage:
//
//	tok, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	labels, err := tok.Encode("hello")
package tokenizer
