package syntax

import "fmt"

// Type is the coarse classification of a sentence.
type Type int

const (
	Declarative Type = iota
	Conditional
)

func (t Type) String() string {
	switch t {
	case Declarative:
		return "Declarative"
	case Conditional:
		return "Conditional"
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// Sentence owns its tokens, ordered by Index. Phrases and SVOs hold
// references into Tokens and must not outlive the Sentence.
type Sentence struct {
	Tokens []*Token
	Type   Type
	SVOs   []SVO
}

// NewSentence builds a Sentence from tokens whose Index is their position.
func NewSentence(tokens []*Token) *Sentence {
	return &Sentence{Tokens: tokens}
}

// Len returns the number of tokens.
func (s *Sentence) Len() int {
	return len(s.Tokens)
}

// Phrase returns all tokens of the sentence as a phrase.
func (s *Sentence) Phrase() Phrase {
	return Phrase(s.Tokens)
}

// Root returns the token without head.
func (s *Sentence) Root() *Token {
	for _, t := range s.Tokens {
		if t.IsRoot() {
			return t
		}
	}

	return nil
}

// Validate checks that the tokens form a single rooted tree: indices match
// positions, heads point inside the sentence, there is exactly one root and
// every other token descends from it. A cycle detached from the root fails
// the last check.
func (s *Sentence) Validate() error {
	var root *Token
	roots := 0
	for i, t := range s.Tokens {
		if t.Index != i {
			return fmt.Errorf("%w: token at position %d has index %d", ErrMalformedTree, i, t.Index)
		}

		if t.Dep == nil {
			root = t
			roots++
			continue
		}

		if err := s.checkHead(t); err != nil {
			return err
		}
	}

	if roots != 1 {
		return fmt.Errorf("%w: %d roots", ErrMalformedTree, roots)
	}

	descendants, err := s.Descendants(root)
	if err != nil {
		return err
	}

	if unreachable := len(s.Tokens) - 1 - len(descendants); unreachable > 0 {
		return fmt.Errorf("%w: %d tokens not reachable from the root", ErrMalformedTree, unreachable)
	}

	return nil
}

func (s *Sentence) checkHead(t *Token) error {
	if t.Dep.Head == t.Index {
		return fmt.Errorf("%w: token %d is its own head", ErrMalformedTree, t.Index)
	}

	if t.Dep.Head < 0 || t.Dep.Head >= len(s.Tokens) {
		return fmt.Errorf("%w: token %d has head %d outside the sentence", ErrMalformedTree, t.Index, t.Dep.Head)
	}

	return nil
}
