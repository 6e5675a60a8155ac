package storage

import (
	"testing"

	sent "github.com/revelaction/cadete/sentence"
)

func doc(n int) sent.Doc {
	d := sent.Doc{Title: "doc"}
	for i := 0; i < n; i++ {
		d.Tokens = append(d.Tokens, []sent.Token{{Id: i, Head: i, Text: "x"}})
	}
	return d
}

func TestSentences(t *testing.T) {
	cases := []struct {
		start, count int
		want         int
		first        int
	}{
		{0, -1, 5, 0},
		{2, -1, 3, 2},
		{2, 2, 2, 2},
		{-3, 1, 1, 0},
		{4, 10, 1, 4},
		{5, -1, 0, 0},
	}

	for _, c := range cases {
		got := Sentences(doc(5), c.start, c.count)
		if len(got.Tokens) != c.want {
			t.Errorf("start %d count %d: expected %d sentences, got %d", c.start, c.count, c.want, len(got.Tokens))
			continue
		}

		if c.want > 0 && got.Tokens[0][0].Id != c.first {
			t.Errorf("start %d count %d: expected first id %d, got %d", c.start, c.count, c.first, got.Tokens[0][0].Id)
		}

		if got.Title != "doc" {
			t.Errorf("metadata must be kept")
		}
	}
}
