package lexicon

import (
	"fmt"

	"github.com/born-ml/gtn/internal/graph"
	"github.com/born-ml/gtn/internal/tokenizer"
)

// Entry pairs a word with the label sequence its chain was built from,
// in the order the word was added to a Lexicon.
type Entry struct {
	Word   string
	Labels []int32
}

// Lexicon is a disjoint union (Sum) of per-word Chain graphs, built
// with a tokenizer that turns words into label sequences. Scoring a
// Lexicon under Forward gives the logsumexp over every word's chain
// score, so the lexicon acts as a trainable, differentiable acceptor
// over its vocabulary.
type Lexicon struct {
	Graph   graph.Graph
	Entries []Entry
}

// Build tokenizes each word with tok and sums the resulting chains into
// a single Lexicon graph.
func Build(tok tokenizer.Tokenizer, words []string) (*Lexicon, error) {
	chains := make([]graph.Graph, len(words))
	entries := make([]Entry, len(words))
	for i, word := range words {
		labels, err := tok.Encode(word)
		if err != nil {
			return nil, fmt.Errorf("lexicon: encoding %q: %w", word, err)
		}
		chains[i] = Chain(labels)
		entries[i] = Entry{Word: word, Labels: labels}
	}
	return &Lexicon{Graph: graph.Sum(chains), Entries: entries}, nil
}
