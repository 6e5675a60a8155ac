package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	sent "github.com/revelaction/cadete/sentence"
	"github.com/revelaction/cadete/storage"
)

// DocStore reads parsed docs from a directory of JSON files. Ids are the
// positions of the files in name order.
type DocStore struct {
	docDir string

	// metadata, contents are read on demand
	docs []sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document handler.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".json" {
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	docs := make([]sent.Doc, 0, len(names))
	for i, name := range names {
		docs = append(docs, sent.Doc{
			Id:    i,
			Title: name,
		})
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	return h.docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	meta := h.docs[id]
	doc, err := ReadDoc(filepath.Join(h.docDir, meta.Title))
	if err != nil {
		return sent.Doc{}, err
	}

	doc.Id = meta.Id
	doc.Title = meta.Title
	return doc, nil
}

// Write stores doc as <Title>.json in the directory. The Title gets the
// .json extension if it has none.
func (h *DocStore) Write(doc sent.Doc) error {
	name := doc.Title
	if name == "" {
		return fmt.Errorf("doc without title")
	}

	if filepath.Ext(name) != ".json" {
		name += ".json"
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(h.docDir, name), data, 0644); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	for _, d := range h.docs {
		if d.Title == name {
			return nil
		}
	}

	h.docs = append(h.docs, sent.Doc{Id: len(h.docs), Title: name, Labels: doc.Labels})
	return nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}
