package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutation2OrderInvariance(t *testing.T) {
	t.Parallel()

	p := Permutation2[rune, string, string](digits(), alphas())

	out1, err, remaining := ParseText[Tuple2[string, string]](p, "123abc")
	assert.NoError(t, err)
	assert.Equal(t, "123", out1.F1)
	assert.Equal(t, "abc", out1.F2)
	assert.Equal(t, "", remaining)

	out2, err, remaining := ParseText[Tuple2[string, string]](p, "abc123")
	assert.NoError(t, err)
	// Regardless of which order they matched in, F1 always carries
	// digits' result and F2 always carries alphas' result.
	assert.Equal(t, "123", out2.F1)
	assert.Equal(t, "abc", out2.F2)
	assert.Equal(t, "", remaining)
}

func TestPermutation2MissingMemberFails(t *testing.T) {
	t.Parallel()

	p := Permutation2[rune, string, string](digits(), alphas())

	_, err, remaining := ParseText[Tuple2[string, string]](p, "123123")
	assert.Error(t, err)
	assert.Equal(t, "123123", remaining)
}

func TestPermutation3(t *testing.T) {
	t.Parallel()

	p := Permutation3[rune, string, string, rune](digits(), alphas(), Item('!'))

	out, err, remaining := ParseText[Tuple3[string, string, rune]](p, "!abc123")
	assert.NoError(t, err)
	assert.Equal(t, "123", out.F1)
	assert.Equal(t, "abc", out.F2)
	assert.Equal(t, '!', out.F3)
	assert.Equal(t, "", remaining)
}

func BenchmarkPermutation2(b *testing.B) {
	p := Permutation2[rune, string, string](digits(), alphas())

	for i := 0; i < b.N; i++ {
		ParseText[Tuple2[string, string]](p, "123abc")
	}
}
