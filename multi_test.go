package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		input         string
		wantErr       bool
		wantOutput    []string
		wantRemaining string
	}{
		{
			name:          "parsing exact count should succeed",
			input:         "abcabc",
			wantOutput:    []string{"abc", "abc"},
			wantRemaining: "",
		},
		{
			name:          "parsing more than count should succeed",
			input:         "abcabcabc",
			wantOutput:    []string{"abc", "abc"},
			wantRemaining: "abc",
		},
		{
			name:          "parsing less than count should fail",
			input:         "abc123",
			wantErr:       true,
			wantRemaining: "abc123",
		},
		{
			name:          "parsing no count should fail",
			input:         "123123",
			wantErr:       true,
			wantRemaining: "123123",
		},
	}
	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := Count[rune, string](Literal("abc"), 2)
			out, err, remaining := ParseText[[]string](p, tc.input)
			if (err != nil) != tc.wantErr {
				t.Errorf("got error %v, want error %v", err, tc.wantErr)
			}
			if err != nil {
				assert.Equal(t, tc.wantRemaining, remaining)
				return
			}

			assert.Equal(t, tc.wantOutput, out)
			assert.Equal(t, tc.wantRemaining, remaining)
		})
	}
}

func TestMany0(t *testing.T) {
	t.Parallel()

	p := Many0[rune, string](Literal("ab"))

	out, err, remaining := ParseText[[]string](p, "ababab!")
	assert.NoError(t, err)
	assert.Equal(t, []string{"ab", "ab", "ab"}, out)
	assert.Equal(t, "!", remaining)

	out, err, remaining = ParseText[[]string](p, "!")
	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "!", remaining)
}

func TestMany1(t *testing.T) {
	t.Parallel()

	p := Many1[rune, string](Literal("ab"))

	out, err, remaining := ParseText[[]string](p, "ababab!")
	assert.NoError(t, err)
	assert.Equal(t, []string{"ab", "ab", "ab"}, out)
	assert.Equal(t, "!", remaining)

	_, err, remaining = ParseText[[]string](p, "!")
	assert.Error(t, err)
	assert.Equal(t, "!", remaining)
}

func TestSeparatedList0(t *testing.T) {
	t.Parallel()

	p := SeparatedList0[rune, string, string](digits(), Literal(","))

	out, err, remaining := ParseText[[]string](p, "1,22,333;")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "22", "333"}, out)
	assert.Equal(t, ";", remaining)

	out, err, remaining = ParseText[[]string](p, ";")
	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, ";", remaining)
}

func TestSeparatedList1(t *testing.T) {
	t.Parallel()

	p := SeparatedList1[rune, string, string](digits(), Literal(","))

	_, err, remaining := ParseText[[]string](p, ";")
	assert.Error(t, err)
	assert.Equal(t, ";", remaining)
}

func BenchmarkMany0(b *testing.B) {
	p := Many0[rune, string](Literal("ab"))

	for i := 0; i < b.N; i++ {
		ParseText[[]string](p, "ababab!")
	}
}
