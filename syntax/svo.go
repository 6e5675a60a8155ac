package syntax

// SVO is one Subject-Verb-Object structure of a sentence. A nil phrase means
// the field is absent. Subject is never nil.
type SVO struct {
	Subject        Phrase
	Verb           Phrase
	DirectObject   Phrase
	IndirectObject Phrase
}
