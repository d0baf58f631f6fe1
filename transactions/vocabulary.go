package transactions

import "fmt"

// Vocabulary maps item identifiers (matrix columns) to their original labels
// and back. It is immutable once built.
type Vocabulary struct {
	labels []string       // id -> label
	ids    map[string]int // label -> id
}

// NewVocabulary builds a vocabulary where labels[i] names column i.
// Returns ErrDuplicateLabel on empty or repeated labels.
// Complexity: O(n).
func NewVocabulary(labels []string) (*Vocabulary, error) {
	v := &Vocabulary{
		labels: make([]string, len(labels)),
		ids:    make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrDuplicateLabel)
		}
		if prev, ok := v.ids[l]; ok {
			return nil, fmt.Errorf("label %q at columns %d and %d: %w", l, prev, i, ErrDuplicateLabel)
		}
		v.ids[l] = i
		v.labels[i] = l
	}

	return v, nil
}

// Len returns the number of items.
func (v *Vocabulary) Len() int { return len(v.labels) }

// Labels returns a copy of all labels in column order.
func (v *Vocabulary) Labels() []string {
	out := make([]string, len(v.labels))
	copy(out, v.labels)

	return out
}

// Label returns the label of item id.
func (v *Vocabulary) Label(id int) (string, error) {
	if id < 0 || id >= len(v.labels) {
		return "", fmt.Errorf("id %d: %w", id, ErrUnknownItem)
	}

	return v.labels[id], nil
}

// ID returns the identifier of label.
func (v *Vocabulary) ID(label string) (int, error) {
	id, ok := v.ids[label]
	if !ok {
		return 0, fmt.Errorf("label %q: %w", label, ErrUnknownItem)
	}

	return id, nil
}

// Labelize maps a slice of identifiers to labels, preserving order.
func (v *Vocabulary) Labelize(ids []int) ([]string, error) {
	out := make([]string, len(ids))
	for i, id := range ids {
		l, err := v.Label(id)
		if err != nil {
			return nil, err
		}
		out[i] = l
	}

	return out, nil
}

// Check returns ErrVocabularyMismatch unless the vocabulary names exactly m.Cols() items.
func (v *Vocabulary) Check(m Matrix) error {
	if v.Len() != m.Cols() {
		return fmt.Errorf("%d labels for %d columns: %w", v.Len(), m.Cols(), ErrVocabularyMismatch)
	}

	return nil
}
