package corrector

import (
	"strings"
	"unicode/utf8"
)

// Separators is the set of characters that split words.
// A byte of the text that is not valid UTF-8 is never a separator, even
// when the set holds U+FFFD.
type Separators string

func (s Separators) has(r rune) bool {
	if r == utf8.RuneError {
		return strings.Contains(string(s), string(utf8.RuneError))
	}
	return strings.ContainsRune(string(s), r)
}

// index returns the byte offset of the first character of text that is
// (sep true) or is not (sep false) a separator, or -1.
func (s Separators) index(text string, sep bool) int {
	for i := 0; i < len(text); {
		r, n := utf8.DecodeRuneInString(text[i:])
		invalid := r == utf8.RuneError && n == 1
		if (!invalid && s.has(r)) == sep {
			return i
		}
		i += n
	}
	return -1
}

// Token is a word followed by the separator run that trails it in the source.
type Token struct {
	Word string `json:"word"`
	Sep  string `json:"sep"`
}

// Tokenize turns "word1 sep1 word2 sep2 ..." into {{word1, sep1}, {word2, sep2}, ...}.
//
// A leading separator run is returned as a first token with an empty word.
// Text that is empty or made only of separators yields exactly one token
// with an empty word. Join(Tokenize(text, seps)) == text for any input.
func Tokenize(text string, seps Separators) []Token {
	first := seps.index(text, false)
	if first < 0 {
		return []Token{{Sep: text}}
	}

	var out []Token
	if first > 0 {
		out = append(out, Token{Sep: text[:first]})
		text = text[first:]
	}

	for text != "" {
		end := seps.index(text, true)
		if end < 0 {
			out = append(out, Token{Word: text})
			break
		}
		word := text[:end]
		text = text[end:]

		next := seps.index(text, false)
		if next < 0 {
			out = append(out, Token{Word: word, Sep: text})
			break
		}
		out = append(out, Token{Word: word, Sep: text[:next]})
		text = text[next:]
	}
	return out
}

// Join reassembles tokens into text.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Word)
		b.WriteString(t.Sep)
	}
	return b.String()
}
