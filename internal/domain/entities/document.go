package entities

// Snippet is a contiguous excerpt of a document selected for annotation.
// CharStart/CharEnd locate the snippet inside the full document text; entity
// offsets are relative to Text, not to the document.
type Snippet struct {
	ID        int      `json:"snippet_id"`
	Text      string   `json:"text"`
	CharStart int      `json:"char_start"`
	CharEnd   int      `json:"char_end"`
	Entities  []Entity `json:"entities"`
}

// Document is one annotated document: its snippets in selection order plus
// free-form metadata carried through from the source file.
type Document struct {
	ID       string         `json:"document_id"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Snippets []Snippet      `json:"snippets"`
}

// SnippetByID returns the snippet with the given ID, or nil.
func (d *Document) SnippetByID(id int) *Snippet {
	for i := range d.Snippets {
		if d.Snippets[i].ID == id {
			return &d.Snippets[i]
		}
	}
	return nil
}

// AllEntities flattens the document's entities across snippets, preserving
// snippet order and per-snippet annotation order. Order matters: greedy
// partial matching and error classification are order-sensitive.
func (d *Document) AllEntities() []Entity {
	var all []Entity
	for i := range d.Snippets {
		all = append(all, d.Snippets[i].Entities...)
	}
	return all
}
