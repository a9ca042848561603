package corrector

import "sort"

// Candidate is a dictionary word close to an unknown word.
type Candidate struct {
	Word     string `json:"word"`
	Distance int    `json:"distance"`
}

// FindCandidates scans the whole dictionary for words within threshold
// edits of target. Results are ordered by distance, then lexically.
//
// A dictionary built from a reference that starts with a separator holds
// the empty word, which is within one edit of every one-character target.
// Replacing with it removes the word and keeps the separator.
func FindCandidates(target string, dict *Dictionary, threshold int) []Candidate {
	var out []Candidate
	dict.each(func(word string) {
		if d, ok := WithinDistance(word, target, threshold); ok {
			out = append(out, Candidate{Word: word, Distance: d})
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance == out[j].Distance {
			return out[i].Word < out[j].Word
		}
		return out[i].Distance < out[j].Distance
	})
	return out
}

// Words returns just the words of a candidate list.
func Words(cands []Candidate) []string {
	if len(cands) == 0 {
		return nil
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Word
	}
	return out
}
