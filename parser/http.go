package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	sent "github.com/revelaction/cadete/sentence"
)

const defaultTimeout = 30 * time.Second

// HTTP posts the text to a parsing service as {"text": "..."} and expects
// the parsed Doc as JSON in the response body.
type HTTP struct {
	URL    string
	Client *http.Client
}

func NewHTTP(url string) *HTTP {
	return &HTTP{
		URL:    url,
		Client: &http.Client{Timeout: defaultTimeout},
	}
}

type request struct {
	Text string `json:"text"`
}

func (h *HTTP) Parse(ctx context.Context, text string) (sent.Doc, error) {
	body, err := json.Marshal(request{Text: text})
	if err != nil {
		return sent.Doc{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(body))
	if err != nil {
		return sent.Doc{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return sent.Doc{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return sent.Doc{}, fmt.Errorf("parser service %s: %s: %s", h.URL, resp.Status, bytes.TrimSpace(msg))
	}

	return Decode(resp.Body)
}
