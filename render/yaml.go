package render

import (
	"io"

	"github.com/revelaction/cadete/analyze"

	"gopkg.in/yaml.v3"
)

// YAMLRenderer writes analysis results as a YAML sequence.
type YAMLRenderer struct {
	W io.Writer

	HasTokens bool
}

func NewYAMLRenderer(w io.Writer) *YAMLRenderer {
	return &YAMLRenderer{W: w}
}

func (r *YAMLRenderer) Render(results []analyze.Result) error {
	enc := yaml.NewEncoder(r.W)
	enc.SetIndent(2)
	if err := enc.Encode(Views(results, r.HasTokens)); err != nil {
		return err
	}

	return enc.Close()
}

var _ Renderer = (*YAMLRenderer)(nil)
