package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

func digits() ParserFunc[rune, string] {
	return AsInputText(NewRepeat[rune, rune](Predicate(isDigit, KindTag)).Min(1))
}

func alphas() ParserFunc[rune, string] {
	return AsInputText(NewRepeat[rune, rune](Predicate(isAlpha, KindTag)).Min(1))
}

func TestAlt(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		p             ParserFunc[rune, string]
		input         string
		wantErr       bool
		wantOutput    string
		wantRemaining string
	}{
		{
			name:          "head matching parser should succeed",
			input:         "123",
			p:             Alt[rune, string](digits(), alphas()),
			wantOutput:    "123",
			wantRemaining: "",
		},
		{
			name:          "second matching parser should succeed",
			input:         "abc",
			p:             Alt[rune, string](digits(), alphas()),
			wantOutput:    "abc",
			wantRemaining: "",
		},
		{
			name:    "no matching parser should fail",
			input:   "$%^*",
			p:       Alt[rune, string](digits(), alphas()),
			wantErr: true,
		},
		{
			name:    "empty input should fail",
			input:   "",
			p:       Alt[rune, string](digits(), alphas()),
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err, remaining := ParseText[string](tc.p, tc.input)
			if (err != nil) != tc.wantErr {
				t.Errorf("got error %v, want error %v", err, tc.wantErr)
			}
			if err != nil {
				return
			}

			assert.Equal(t, tc.wantOutput, out)
			assert.Equal(t, tc.wantRemaining, remaining)
		})
	}
}

func TestAltFurthestProgress(t *testing.T) {
	t.Parallel()

	p := Alt[rune, string](
		Literal("abd"),
		Literal("abc"),
	)

	_, err, remaining := ParseText[string](p, "abx")
	assert.Error(t, err)
	assert.Equal(t, "abx", remaining)
}

func BenchmarkAlt(b *testing.B) {
	p := Alt[rune, string](digits(), alphas())

	for i := 0; i < b.N; i++ {
		ParseText[string](p, "123")
	}
}
