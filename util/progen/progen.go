// Some helpers using closures to generate program sources
package progen

import (
	"math/rand/v2"
	"strings"
)

const (
	straightOps = "+-<>."
	comments    = "abc xyz\n\r\t#0123456789"
)

// MakeCommentGen returns sources made only of comment characters.
func MakeCommentGen(seed uint64, maxLen int) func() string {
	rng := rand.New(rand.NewPCG(seed, seed))
	return func() string {
		return randomString(rng, comments, rng.IntN(maxLen+1))
	}
}

// MakeNestedGen returns "[+[+...-]-]" with one more level on every call.
func MakeNestedGen() func() string {
	depth := 0
	return func() string {
		depth++
		return strings.Repeat("[+", depth) + strings.Repeat("-]", depth)
	}
}

// MakeBalancedGen returns random sources whose brackets are balanced and
// nest at most maxDepth deep. Comments are sprinkled in.
func MakeBalancedGen(seed uint64, maxDepth, maxLen int) func() string {
	rng := rand.New(rand.NewPCG(seed, seed))
	return func() string {
		var sb strings.Builder
		depth := 0
		for n := rng.IntN(maxLen + 1); n > 0; n-- {
			switch r := rng.IntN(10); {
			case r < 2 && depth < maxDepth:
				sb.WriteByte('[')
				depth++
			case r < 4 && depth > 0:
				sb.WriteByte(']')
				depth--
			case r < 5:
				sb.WriteByte(comments[rng.IntN(len(comments))])
			default:
				sb.WriteByte(straightOps[rng.IntN(len(straightOps))])
			}
		}
		sb.WriteString(strings.Repeat("]", depth))
		return sb.String()
	}
}

func randomString(rng *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return string(b)
}
