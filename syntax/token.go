package syntax

import "strings"

// Coarse POS categories used by the extraction rules (Universal POS tags).
const (
	PosAdposition  = "ADP"
	PosVerb        = "VERB"
	PosPunctuation = "PUNCT"
)

// Relation labels of the dependency tree used by the extraction rules.
const (
	// RelSubject is the prefix of the nominal-subject family (nsubj,
	// nsubjpass).
	RelSubject        = "nsubj"
	RelDirectObject   = "dobj"
	RelIndirectObject = "iobj"
	RelDative         = "dative"
)

// Dependency is the labeled edge from a token to its head.
type Dependency struct {
	Rel  string
	Head int
}

// Token is a normalized word of a Sentence.
type Token struct {
	// Index is the position of the token in its sentence, starting at 0.
	Index int

	// Text is the lower-cased surface form.
	Text  string
	Pos   string
	Tag   string
	Lemma string

	// Dep is nil for the root of the sentence.
	Dep *Dependency
}

// IsRoot reports whether the token has no head.
func (t *Token) IsRoot() bool {
	return t.Dep == nil
}

// Rel returns the relation label to the head, or "" for the root.
func (t *Token) Rel() string {
	if t.Dep == nil {
		return ""
	}

	return t.Dep.Rel
}

// IsSubject reports whether the token is linked to its head by a
// nominal-subject relation, active or passive.
func (t *Token) IsSubject() bool {
	return strings.HasPrefix(t.Rel(), RelSubject)
}

// HasRel reports whether the token relation is one of rels.
func (t *Token) HasRel(rels []string) bool {
	if t.Dep == nil {
		return false
	}

	for _, r := range rels {
		if t.Dep.Rel == r {
			return true
		}
	}

	return false
}

func (t *Token) String() string {
	return t.Text
}
