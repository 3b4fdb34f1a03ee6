// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package lexicon provides the public API for building acceptor graphs
// over a vocabulary of words.
package lexicon

import (
	"github.com/born-ml/gtn/gtn"
	"github.com/born-ml/gtn/internal/lexicon"
	"github.com/born-ml/gtn/internal/tokenizer"
)

// Entry pairs a word with the label sequence its chain was built from.
type Entry = lexicon.Entry

// Lexicon is a disjoint union of per-word chain graphs.
type Lexicon = lexicon.Lexicon

// Chain builds a linear acceptor graph over labels: one node per label
// boundary and one arc per label, carrying the label on both the input
// and output side.
func Chain(labels []int32) gtn.Graph {
	return lexicon.Chain(labels)
}

// Build tokenizes each word with tok and sums the resulting chains into
// a single Lexicon graph.
func Build(tok tokenizer.Tokenizer, words []string) (*Lexicon, error) {
	return lexicon.Build(tok, words)
}
