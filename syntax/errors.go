package syntax

import "errors"

// ErrMalformedTree signals that the dependency edges of a sentence do not
// form a single rooted tree: a cycle, a head outside the sentence or a wrong
// number of roots.
var ErrMalformedTree = errors.New("malformed dependency tree")
