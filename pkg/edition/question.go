package edition

import (
	"context"
	"math/rand/v2"

	"github.com/matzehuels/wikireader/pkg/errors"
)

// questionCandidates is how many shuffled questions get thumbnails before
// one is picked.
const questionCandidates = 10

// PickQuestion shuffles bank, resolves thumbnails for the first ten
// candidates and returns one of them chosen uniformly at random. bank is
// not modified.
func PickQuestion(ctx context.Context, bank []Question, r *ThumbnailResolver, rng *rand.Rand) (*Question, error) {
	if len(bank) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "question bank is empty")
	}

	shuffled := append([]Question(nil), bank...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	candidates := shuffled[:min(questionCandidates, len(shuffled))]

	pages := make([]Page, len(candidates))
	for i, q := range candidates {
		pages[i] = q.Page
	}
	pages = r.Resolve(ctx, pages)
	for i := range candidates {
		candidates[i].Page = pages[i]
	}

	q := candidates[rng.IntN(len(candidates))]
	return &q, nil
}
