package textrank

import "math"

// corpus stores document frequencies for terms across the sentence set.
// Each sentence is treated as a document for IDF purposes.
type corpus struct {
	docFrequencies map[string]int
	numDocs        int
}

// newCorpus builds a corpus from tokenized sentences. Each term is
// counted once per sentence (document frequency, not term frequency).
func newCorpus(sentences [][]string) *corpus {
	docFrequencies := make(map[string]int)
	for _, tokens := range sentences {
		seen := make(map[string]bool)
		for _, term := range tokens {
			if !seen[term] {
				docFrequencies[term]++
				seen[term] = true
			}
		}
	}
	return &corpus{
		docFrequencies: docFrequencies,
		numDocs:        len(sentences),
	}
}

// empty reports whether no sentence contributed any term. This is the
// "insufficient content" condition: vectorization cannot proceed.
func (c *corpus) empty() bool {
	return len(c.docFrequencies) == 0
}

// vectorize converts a token list into a sparse TF-IDF vector.
//   - TF: term count normalized by token count.
//   - IDF: log-scaled inverse document frequency with smoothing,
//     ln(1 + N/(1+df)).
func (c *corpus) vectorize(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return map[string]float64{}
	}

	tf := make(map[string]float64, len(tokens))
	for _, term := range tokens {
		tf[term]++
	}

	numTokens := float64(len(tokens))
	vector := make(map[string]float64, len(tf))
	for term, count := range tf {
		idf := math.Log(1 + float64(c.numDocs)/(1+float64(c.docFrequencies[term])))
		vector[term] = (count / numTokens) * idf
	}
	return vector
}

// cosine computes the cosine similarity between two sparse vectors.
// Returns a value in [0, 1]; 0 if either vector is zero.
func cosine(v1, v2 map[string]float64) float64 {
	var dot, norm1, norm2 float64

	for term, x := range v1 {
		norm1 += x * x
		if y, ok := v2[term]; ok {
			dot += x * y
		}
	}
	for _, y := range v2 {
		norm2 += y * y
	}

	if norm1 == 0 || norm2 == 0 {
		return 0
	}
	return dot / (math.Sqrt(norm1) * math.Sqrt(norm2))
}
