// Package stat aggregates counts over analysis results.
package stat

import (
	"github.com/revelaction/cadete/analyze"
	"github.com/revelaction/cadete/syntax"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	NumConditional int
	NumMalformed   int

	NumSVOs           int
	NumVerbs          int
	NumDirectObjects  int
	NumIndirectObject int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the results of one analysis. It can be called repeatedly.
func (h *Handler) Aggregate(results []analyze.Result) {
	for _, res := range results {
		h.stats.NumSentences++

		if res.Err != nil {
			h.stats.NumMalformed++
		}

		s := res.Sentence
		if s == nil {
			continue
		}

		h.stats.NumTokens += s.Len()
		h.stats.TokensPerSentenceDis[s.Len()]++

		if s.Type == syntax.Conditional {
			h.stats.NumConditional++
		}

		for _, svo := range s.SVOs {
			h.stats.NumSVOs++
			if svo.Verb != nil {
				h.stats.NumVerbs++
			}
			if svo.DirectObject != nil {
				h.stats.NumDirectObjects++
			}
			if svo.IndirectObject != nil {
				h.stats.NumIndirectObject++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}
