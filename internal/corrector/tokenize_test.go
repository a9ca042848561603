package corrector

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dictcorrector/pkg/options"
)

const defaultSeps = Separators(options.DefaultSeparators)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		seps Separators
		want []Token
	}{
		{
			name: "leading and trailing separators",
			text: "  hi, world!",
			seps: defaultSeps,
			want: []Token{{"", "  "}, {"hi", ", "}, {"world", "!"}},
		},
		{
			name: "empty text",
			text: "",
			seps: defaultSeps,
			want: []Token{{"", ""}},
		},
		{
			name: "only separators",
			text: " .,\r\n",
			seps: defaultSeps,
			want: []Token{{"", " .,\r\n"}},
		},
		{
			name: "single word",
			text: "word",
			seps: defaultSeps,
			want: []Token{{"word", ""}},
		},
		{
			name: "plain sentence",
			text: "the cat sat",
			seps: defaultSeps,
			want: []Token{{"the", " "}, {"cat", " "}, {"sat", ""}},
		},
		{
			name: "brackets and backslash",
			text: "(a)[b]\\c",
			seps: defaultSeps,
			want: []Token{{"", "("}, {"a", ")["}, {"b", "]\\"}, {"c", ""}},
		},
		{
			name: "custom separators",
			text: "a-b--c d",
			seps: "-",
			want: []Token{{"a", "-"}, {"b", "--"}, {"c d", ""}},
		},
		{
			name: "multi-byte separator",
			text: "one—two—",
			seps: "—",
			want: []Token{{"one", "—"}, {"two", "—"}},
		},
		{
			name: "invalid bytes are word characters",
			text: "a\xffb\uFFFDc \xfe",
			seps: "\uFFFD ",
			want: []Token{{"a\xffb", "\uFFFD"}, {"c", " "}, {"\xfe", ""}},
		},
		{
			name: "lone invalid byte",
			text: "\xff",
			seps: defaultSeps,
			want: []Token{{"\xff", ""}},
		},
		{
			name: "no case folding",
			text: "Hello hello",
			seps: defaultSeps,
			want: []Token{{"Hello", " "}, {"hello", ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text, tt.seps)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, Join(got))
		})
	}
}

// separatorRunes reports how many characters of s are separators and how
// many are not. Invalid bytes are never separators.
func separatorRunes(s string, seps Separators) (in, out int) {
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if !(r == utf8.RuneError && n == 1) && strings.ContainsRune(string(seps), r) {
			in++
		} else {
			out++
		}
		i += n
	}
	return in, out
}

func TestTokenizeRoundTrip(t *testing.T) {
	alphabet := strings.Split("a|b|c|X|Y| |é|—| |,|.|!|?|&|(|)|[|]|:|;|\n|\r|\\|\xff|\xfe|\xc3|\uFFFD", "|")
	sepSets := []Separators{defaultSeps, " ", "—é", "ab", "\uFFFD "}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		n := rng.Intn(24)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteString(alphabet[rng.Intn(len(alphabet))])
		}
		text := b.String()
		seps := sepSets[i%len(sepSets)]

		tokens := Tokenize(text, seps)
		require.NotEmpty(t, tokens)
		require.Equal(t, text, Join(tokens), "text %q seps %q", text, seps)

		for k, tok := range tokens {
			in, _ := separatorRunes(tok.Word, seps)
			assert.Zero(t, in, "word %q holds a separator", tok.Word)
			_, out := separatorRunes(tok.Sep, seps)
			assert.Zero(t, out, "sep %q holds a word character", tok.Sep)
			if k > 0 {
				assert.NotEmpty(t, tok.Word, "only the first token may have an empty word")
			}
			if k < len(tokens)-1 {
				assert.NotEmpty(t, tok.Sep, "inner tokens end with a separator run")
			}
		}
	}
}
