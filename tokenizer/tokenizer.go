// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tokenizer provides the public API for turning text into the
// label sequences the lexicon package builds acceptor graphs from.
//
// Example usage:
//
//	tok, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	labels, err := tok.Encode("hello")
package tokenizer

import (
	"github.com/born-ml/gtn/internal/tokenizer"
)

// Tokenizer is the core interface for text tokenization.
type Tokenizer = tokenizer.Tokenizer

// NewTikToken loads a byte-pair-encoding vocabulary as a Tokenizer.
//
// Supported encodings: "cl100k_base", "p50k_base", "r50k_base".
func NewTikToken(encodingName string) (Tokenizer, error) {
	return tokenizer.NewTikToken(encodingName)
}
