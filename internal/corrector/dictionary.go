package corrector

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Dictionary is the set of known words. It is not safe for concurrent use.
type Dictionary struct {
	words mapset.Set[string]
}

// NewDictionary returns a dictionary holding words.
func NewDictionary(words ...string) *Dictionary {
	return &Dictionary{words: mapset.NewThreadUnsafeSet(words...)}
}

// Build tokenizes reference and collects every word, the empty word
// included when the tokenizer produces one.
func Build(reference string, seps Separators) *Dictionary {
	d := NewDictionary()
	for _, t := range Tokenize(reference, seps) {
		d.Add(t.Word)
	}
	return d
}

// Add inserts word and reports whether it was new.
func (d *Dictionary) Add(word string) bool { return d.words.Add(word) }

// Contains reports whether word is known.
func (d *Dictionary) Contains(word string) bool { return d.words.Contains(word) }

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return d.words.Cardinality() }

// Words returns the dictionary sorted.
func (d *Dictionary) Words() []string {
	out := d.words.ToSlice()
	sort.Strings(out)
	return out
}

func (d *Dictionary) each(fn func(word string)) {
	d.words.Each(func(w string) bool {
		fn(w)
		return false
	})
}
