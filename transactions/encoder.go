package transactions

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFitted is returned by Encoder.Transform before Fit was called.
var ErrNotFitted = errors.New("transactions: encoder is not fitted")

// Encoder turns raw records (lists of item labels) into a presence matrix.
//
// Fit collects the distinct labels and assigns column ids in lexicographic
// label order, so the encoding of a given record set does not depend on the
// order the records arrive in. Empty labels are ignored; a label repeated
// inside one record counts once.
type Encoder struct {
	vocab *Vocabulary
}

// NewEncoder returns an unfitted Encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// Fit learns the vocabulary from records.
// Complexity: O(total labels + k log k) for k distinct labels.
func (e *Encoder) Fit(records [][]string) error {
	seen := make(map[string]struct{})
	labels := make([]string, 0)
	for _, rec := range records {
		for _, l := range rec {
			if l == "" {
				continue
			}
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			labels = append(labels, l)
		}
	}
	sort.Strings(labels)

	v, err := NewVocabulary(labels)
	if err != nil {
		return err
	}
	e.vocab = v

	return nil
}

// Vocabulary returns the fitted vocabulary, or nil before Fit.
func (e *Encoder) Vocabulary() *Vocabulary { return e.vocab }

// Transform encodes records with the fitted vocabulary.
// Labels not seen during Fit return ErrUnknownItem.
// Complexity: O(r*c + total labels).
func (e *Encoder) Transform(records [][]string) (*Dense, error) {
	if e.vocab == nil {
		return nil, ErrNotFitted
	}
	m, err := NewDense(len(records), e.vocab.Len())
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		for _, l := range rec {
			if l == "" {
				continue
			}
			id, err := e.vocab.ID(l)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			m.data[i*m.c+id] = 1
		}
	}

	return m, nil
}

// FitTransform is Fit followed by Transform on the same records.
func (e *Encoder) FitTransform(records [][]string) (*Dense, error) {
	if err := e.Fit(records); err != nil {
		return nil, err
	}

	return e.Transform(records)
}
