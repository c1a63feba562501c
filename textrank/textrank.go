// Package textrank implements extractive summarization by ranking
// sentences with a damped, PageRank-style centrality computation over a
// TF-IDF cosine-similarity graph. Sentence boundaries are detected with
// the Punkt-style tokenizer from gopkg.in/neurosnap/sentences.v1.
package textrank

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/fwojciec/docsum"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Ranking constants. These are defaults; see the Option functions.
const (
	// DefaultDamping is the PageRank damping factor.
	DefaultDamping = 0.85

	// DefaultTolerance is the elementwise convergence tolerance.
	DefaultTolerance = 1e-5

	// DefaultMaxIterations caps the ranking loop regardless of convergence.
	DefaultMaxIterations = 100
)

// Ensure Summarizer implements docsum.Summarizer at compile time.
var _ docsum.Summarizer = (*Summarizer)(nil)

// Summarizer ranks sentences by graph centrality and selects the top ones
// in original document order. It is a pure function of its inputs and is
// safe for concurrent use across documents.
type Summarizer struct {
	tokenizer     *sentences.DefaultSentenceTokenizer
	damping       float64
	tolerance     float64
	maxIterations int
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithDamping sets the damping factor. Must be in (0, 1) to preserve
// score non-negativity. Defaults to DefaultDamping.
func WithDamping(d float64) Option {
	return func(s *Summarizer) {
		s.damping = d
	}
}

// WithTolerance sets the convergence tolerance. Defaults to DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(s *Summarizer) {
		s.tolerance = tol
	}
}

// WithMaxIterations sets the hard iteration cap. Defaults to
// DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(s *Summarizer) {
		s.maxIterations = n
	}
}

// New creates a new Summarizer with an English sentence tokenizer.
func New(opts ...Option) (*Summarizer, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}

	s := &Summarizer{
		tokenizer:     tokenizer,
		damping:       DefaultDamping,
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Summarize returns an extractive summary of at most maxSentences sentences.
//
// If the text contains no more sentences than requested, the input is
// returned verbatim with Unchanged set; no vectorization or ranking runs.
// Returns EEMPTYINPUT when no sentences are detected and EINSUFFICIENT
// when stop-word removal leaves no vocabulary to rank with.
func (s *Summarizer) Summarize(_ context.Context, text string, maxSentences int) (*docsum.Summary, error) {
	if maxSentences < 1 {
		return nil, docsum.Errorf(docsum.EINVALID, "maxSentences must be positive, got %d", maxSentences)
	}

	sents := s.segment(text)
	if len(sents) == 0 {
		return nil, docsum.Errorf(docsum.EEMPTYINPUT, "nothing to summarize")
	}

	// Short-circuit: already-short documents pass through untouched.
	if len(sents) <= maxSentences {
		return &docsum.Summary{
			Text:           text,
			Unchanged:      true,
			SentenceCount:  len(sents),
			TotalSentences: len(sents),
		}, nil
	}

	tokenized := make([][]string, len(sents))
	for i, sent := range sents {
		tokenized[i] = tokenize(sent)
	}

	c := newCorpus(tokenized)
	if c.empty() {
		return nil, docsum.Errorf(docsum.EINSUFFICIENT,
			"could not generate a summary: the document may not contain enough meaningful content")
	}

	vectors := make([]map[string]float64, len(tokenized))
	for i, tokens := range tokenized {
		vectors[i] = c.vectorize(tokens)
	}

	scores, iterations, converged := s.rank(similarityMatrix(vectors))

	selected := selectTop(scores, maxSentences)
	if len(selected) == 0 {
		return nil, docsum.Errorf(docsum.EINTERNAL, "could not generate a summary")
	}

	parts := make([]string, len(selected))
	for i, idx := range selected {
		parts[i] = sents[idx]
	}

	return &docsum.Summary{
		Text:           strings.Join(parts, " "),
		SentenceCount:  len(selected),
		TotalSentences: len(sents),
		Iterations:     iterations,
		Converged:      converged,
	}, nil
}

// similarityMatrix computes the full symmetric cosine-similarity matrix
// for the sentence vectors. The diagonal holds each sentence's
// self-similarity (1 for non-zero vectors, 0 for zero vectors); it is
// excluded from neighbor sums but counted in row sums, so a row sums to
// zero only for a sentence with no retained terms at all.
func similarityMatrix(vectors []map[string]float64) [][]float64 {
	n := len(vectors)
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		sim[i][i] = cosine(vectors[i], vectors[i])
		for j := i + 1; j < n; j++ {
			v := cosine(vectors[i], vectors[j])
			sim[i][j] = v
			sim[j][i] = v
		}
	}
	return sim
}

// rank runs the damped power iteration over the similarity graph. Scores
// start at zero, and every sentence's score is recomputed each round from
// the previous round's scores. Iteration stops once every score's change
// is within the tolerance, or after the iteration cap.
func (s *Summarizer) rank(sim [][]float64) (scores []float64, iterations int, converged bool) {
	n := len(sim)
	scores = make([]float64, n)

	rowSums := make([]float64, n)
	for j := range sim {
		for _, v := range sim[j] {
			rowSums[j] += v
		}
		// An isolated sentence contributes nothing rather than
		// producing a division by zero.
		if rowSums[j] == 0 {
			rowSums[j] = 1
		}
	}

	prev := make([]float64, n)
	for iterations = 1; iterations <= s.maxIterations; iterations++ {
		copy(prev, scores)

		maxDelta := 0.0
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				sum += sim[i][j] * prev[j] / rowSums[j]
			}
			scores[i] = (1 - s.damping) + s.damping*sum

			if delta := math.Abs(scores[i] - prev[i]); delta > maxDelta {
				maxDelta = delta
			}
		}

		if maxDelta <= s.tolerance {
			return scores, iterations, true
		}
	}
	return scores, s.maxIterations, false
}

// selectTop returns the indices of the n highest-scoring sentences in
// ascending original order. Ties are broken by the lower original index.
func selectTop(scores []float64, n int) []int {
	indices := make([]int, len(scores))
	for i := range indices {
		indices[i] = i
	}

	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})

	if n > len(indices) {
		n = len(indices)
	}
	top := append([]int(nil), indices[:n]...)
	sort.Ints(top)
	return top
}
