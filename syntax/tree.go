package syntax

import "fmt"

// AscendToPOS follows the head references upward from start and returns the
// first ancestor whose coarse POS is pos. It returns nil when the root is
// reached without a match.
func (s *Sentence) AscendToPOS(start *Token, pos string) (*Token, error) {
	if err := s.checkMember(start); err != nil {
		return nil, err
	}

	visited := map[int]bool{start.Index: true}

	current := start
	for current.Dep != nil {
		if err := s.checkHead(current); err != nil {
			return nil, err
		}

		head := s.Tokens[current.Dep.Head]
		if head.Pos == pos {
			return head, nil
		}

		if visited[head.Index] {
			return nil, fmt.Errorf("%w: cycle through token %d", ErrMalformedTree, head.Index)
		}

		visited[head.Index] = true
		current = head
	}

	return nil, nil
}

// Descendants returns all tokens whose head chain passes through root, in
// discovery order. root itself is not included.
func (s *Sentence) Descendants(root *Token) (Phrase, error) {
	return s.walk(root, nil)
}

// RightwardDescendants is Descendants restricted to tokens placed at or after
// root. Punctuation tokens are neither matched nor expanded.
func (s *Sentence) RightwardDescendants(root *Token) (Phrase, error) {
	return s.walk(root, rightward(root))
}

// ComplementDescendants is RightwardDescendants without the tokens whose
// relation is in excluded, and without their subtrees.
func (s *Sentence) ComplementDescendants(root *Token, excluded []string) (Phrase, error) {
	isRight := rightward(root)
	return s.walk(root, func(t *Token) bool {
		return isRight(t) && !t.HasRel(excluded)
	})
}

func rightward(root *Token) func(*Token) bool {
	return func(t *Token) bool {
		return t.Index >= root.Index && t.Pos != PosPunctuation
	}
}

// walk visits the subtree of root depth first, in the same pre-order a
// recursive scan by index would produce, using an explicit stack. Only tokens
// accepted by eligible (all if nil) are collected and expanded.
func (s *Sentence) walk(root *Token, eligible func(*Token) bool) (Phrase, error) {
	if err := s.checkMember(root); err != nil {
		return nil, err
	}

	visited := map[int]bool{root.Index: true}

	var found Phrase
	stack := []*Token{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node != root {
			found = append(found, node)
		}

		children, err := s.children(node, eligible)
		if err != nil {
			return nil, err
		}

		// reverse push, so the lowest index is expanded first
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if visited[child.Index] {
				return nil, fmt.Errorf("%w: cycle through token %d", ErrMalformedTree, child.Index)
			}

			visited[child.Index] = true
			stack = append(stack, child)
		}
	}

	return found, nil
}

func (s *Sentence) children(node *Token, eligible func(*Token) bool) ([]*Token, error) {
	var children []*Token
	for _, t := range s.Tokens {
		if t.Dep == nil {
			continue
		}

		if err := s.checkHead(t); err != nil {
			return nil, err
		}

		if t.Dep.Head != node.Index {
			continue
		}

		if eligible != nil && !eligible(t) {
			continue
		}

		children = append(children, t)
	}

	return children, nil
}

// checkMember verifies that t is a token of s.
func (s *Sentence) checkMember(t *Token) error {
	if t == nil {
		return fmt.Errorf("%w: nil token", ErrMalformedTree)
	}

	if t.Index < 0 || t.Index >= len(s.Tokens) || s.Tokens[t.Index] != t {
		return fmt.Errorf("%w: token %d does not belong to the sentence", ErrMalformedTree, t.Index)
	}

	return nil
}
