package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/cadete/analyze"
)

// JSONRenderer writes analysis results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer

	HasTokens bool
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the results as a JSON array.
func (r *JSONRenderer) Render(results []analyze.Result) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(Views(results, r.HasTokens))
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
