package corrector

import "unicode/utf8"

// Distance returns the Levenshtein distance between a and b over runes:
// the fewest single-character insertions, deletions and substitutions
// that turn a into b. A byte that is not valid UTF-8 counts as one
// character equal only to the same byte, so Distance(a, b) == 0 iff a == b.
func Distance(a, b string) int {
	ra, rb := units(a), units(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			curr[j] = step(prev, curr, i, j, ra, rb)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// WithinDistance reports whether Distance(a, b) <= max. The returned
// distance is exact only when ok is true; otherwise it is just some value
// above max.
func WithinDistance(a, b string, max int) (dist int, ok bool) {
	if max < 0 {
		return 0, false
	}
	ra, rb := units(a), units(b)
	la, lb := len(ra), len(rb)
	if abs(la-lb) > max {
		return max + 1, false
	}
	if la == 0 || lb == 0 {
		return la + lb, true
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= lb; j++ {
			curr[j] = step(prev, curr, i, j, ra, rb)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		// row minima never decrease
		if rowMin > max {
			return max + 1, false
		}
		prev, curr = curr, prev
	}
	d := prev[lb]
	return d, d <= max
}

// units decodes s into runes. Invalid bytes become negative values so
// they never equal a valid rune or a different invalid byte.
func units(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			r = -1 - rune(s[i])
		}
		out = append(out, r)
		i += n
	}
	return out
}

func step(prev, curr []int, i, j int, ra, rb []rune) int {
	cost := 0
	if ra[i-1] != rb[j-1] {
		cost = 1
	}
	x := prev[j] + 1
	if y := curr[j-1] + 1; y < x {
		x = y
	}
	if z := prev[j-1] + cost; z < x {
		x = z
	}
	return x
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
