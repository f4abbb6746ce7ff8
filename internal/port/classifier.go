package port

import "weave/internal/domain"

// Classifier turns raw source text into an ordered block sequence and back.
// Implementations are pure: no I/O, no shared mutable state, safe for
// concurrent use.
type Classifier interface {
	Classify(source string) []domain.Block

	Serialize(blocks []domain.Block) (string, error)
}
