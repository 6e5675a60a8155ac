package sentence

// Doc is the output of the external parser for one text: the tokens of each
// detected sentence, in surface order.
type Doc struct {
	Id int `json:"id,omitempty"`

	Title string `json:"title,omitempty"`

	Labels []string `json:"labels,omitempty"`
	Tokens [][]Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and metadata, as emitted
// by the parser (spacy, stanza).
type Token struct {
	// Id identifies the token inside the Doc. Head refers to it.
	Id int `json:"id"`

	// Head is the Id of the governing token. The root of a sentence has
	// Head == Id.
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// IsRoot reports whether the parser marked t as the root of its sentence.
func (t Token) IsRoot() bool {
	return t.Head == t.Id
}
