package corrector

import (
	"math/rand"
	"testing"

	"github.com/hbollon/go-edlib"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"helo", "hello", 1},
		{"hello", "help", 2},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"ab", "ba", 2},
		{"héllo", "hello", 1},
		{"привет", "превет", 1},
		{"\xff", "\xfe", 1},
		{"ab\xff", "ab\xfe", 1},
		{"ab\xff", "ab\uFFFD", 1},
		{"\xc3\xa9", "\xc3", 1},
		{"a\xffb", "ab", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "Distance(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want, Distance(tt.b, tt.a), "Distance(%q, %q)", tt.b, tt.a)
	}
}

func randomWord(rng *rand.Rand, alphabet []rune, max int) string {
	n := rng.Intn(max + 1)
	r := make([]rune, n)
	for i := range r {
		r[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(r)
}

func TestDistanceProperties(t *testing.T) {
	alphabet := []rune("abcdé")
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		a := randomWord(rng, alphabet, 8)
		b := randomWord(rng, alphabet, 8)

		d := Distance(a, b)
		assert.Equal(t, edlib.LevenshteinDistance(a, b), d, "reference distance for %q %q", a, b)
		assert.Equal(t, d, Distance(b, a), "symmetry for %q %q", a, b)
		assert.Equal(t, 0, Distance(a, a))
		assert.Equal(t, len([]rune(b)), Distance("", b))

		for max := 0; max <= 3; max++ {
			got, ok := WithinDistance(a, b, max)
			assert.Equal(t, d <= max, ok, "WithinDistance(%q, %q, %d)", a, b, max)
			if ok {
				assert.Equal(t, d, got)
			} else {
				assert.Greater(t, got, max)
			}
		}
	}
}

func TestDistanceInvalidUTF8(t *testing.T) {
	alphabet := []string{"a", "é", "\uFFFD", "\xff", "\xfe", "\xc3"}
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 1000; i++ {
		var a, b string
		for j := rng.Intn(5); j > 0; j-- {
			a += alphabet[rng.Intn(len(alphabet))]
		}
		for j := rng.Intn(5); j > 0; j-- {
			b += alphabet[rng.Intn(len(alphabet))]
		}

		d := Distance(a, b)
		assert.Equal(t, a == b, d == 0, "Distance(%q, %q) = %d", a, b, d)
		assert.Equal(t, d, Distance(b, a))
		got, ok := WithinDistance(a, b, 1)
		assert.Equal(t, d <= 1, ok, "WithinDistance(%q, %q, 1)", a, b)
		if ok {
			assert.Equal(t, d, got)
		}
	}
}

func TestWithinDistanceNegativeMax(t *testing.T) {
	_, ok := WithinDistance("a", "a", -1)
	assert.False(t, ok)
}
