package syntax

import "slices"

// Phrase is an ordered span of tokens of one Sentence. The tokens are shared
// with the Sentence, not copied.
type Phrase []*Token

// Sorted returns a copy of the phrase in ascending index order.
func (p Phrase) Sorted() Phrase {
	if p == nil {
		return nil
	}

	sorted := slices.Clone(p)
	slices.SortStableFunc(sorted, func(a, b *Token) int {
		return a.Index - b.Index
	})

	return sorted
}

// Contains reports whether the token with the given index is in the phrase.
func (p Phrase) Contains(index int) bool {
	for _, t := range p {
		if t.Index == index {
			return true
		}
	}

	return false
}

// First returns the first token satisfying fn, or nil.
func (p Phrase) First(fn func(*Token) bool) *Token {
	for _, t := range p {
		if fn(t) {
			return t
		}
	}

	return nil
}
