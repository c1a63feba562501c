package textrank

import (
	"strings"
	"unicode"
)

// segment splits raw text into an ordered list of sentences using the
// Punkt-style English tokenizer. Sentences are trimmed of surrounding
// whitespace; whitespace-only sentences are dropped. The result is
// deterministic for a given input.
func (s *Summarizer) segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tokenized := s.tokenizer.Tokenize(text)
	result := make([]string, 0, len(tokenized))
	for _, sentence := range tokenized {
		trimmed := strings.TrimSpace(sentence.Text)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}
	return result
}

// tokenize lower-cases a sentence and returns its terms with stop words
// removed. Terms are maximal runs of letters and digits.
func tokenize(sentence string) []string {
	fields := strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := stopwords[f]; ok {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}
