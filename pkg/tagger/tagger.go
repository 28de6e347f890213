// Package tagger defines the contract to the external linguistic service
// that tokenizes comment text and assigns part-of-speech tags. The engine
// never tokenizes text itself.
package tagger

import "context"

// TaggedToken is a single token with its part-of-speech tag. POS values
// follow the jieba tag set (nr, ns, n, a, v, ...).
type TaggedToken struct {
	Token string `json:"token"`
	POS   string `json:"pos"`
}

// Tagger tokenizes and tags a piece of text.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]TaggedToken, error)
}

// TagFunc adapts a function to the Tagger interface.
type TagFunc func(ctx context.Context, text string) ([]TaggedToken, error)

// Tag calls f.
func (f TagFunc) Tag(ctx context.Context, text string) ([]TaggedToken, error) {
	return f(ctx, text)
}
