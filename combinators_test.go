package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	t.Parallel()

	p := Map[rune, string, int](digits(), func(s string) int { return len(s) })

	out, err, remaining := ParseText[int](p, "12345x")
	assert.NoError(t, err)
	assert.Equal(t, 5, out)
	assert.Equal(t, "x", remaining)
}

func TestMapPurity(t *testing.T) {
	t.Parallel()

	// Map applies the same function every time; running it twice on the
	// same input produces the same output.
	p := Map[rune, string, int](digits(), func(s string) int { return len(s) })

	out1, _, _ := ParseText[int](p, "777")
	out2, _, _ := ParseText[int](p, "777")
	assert.Equal(t, out1, out2)
}

func TestTryMap(t *testing.T) {
	t.Parallel()

	p := TryMap[rune, string, int](digits(), func(s string) (int, error) {
		if s == "0" {
			return 0, assert.AnError
		}
		return len(s), nil
	})

	out, err, _ := ParseText[int](p, "99x")
	assert.NoError(t, err)
	assert.Equal(t, 2, out)

	_, err, remaining := ParseText[int](p, "0x")
	assert.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "0x", remaining, "a rejecting TryMap rewinds past whatever the inner parser consumed")
}

func TestValue(t *testing.T) {
	t.Parallel()

	p := Value[rune, string, bool](Literal("true"), true)

	out, err, remaining := ParseText[bool](p, "true!")
	assert.NoError(t, err)
	assert.True(t, out)
	assert.Equal(t, "!", remaining)
}

func TestOpt(t *testing.T) {
	t.Parallel()

	p := Opt[rune, string](Literal("-"))

	out, err, remaining := ParseText[Option[string]](p, "-5")
	assert.NoError(t, err)
	assert.True(t, out.Present)
	assert.Equal(t, "5", remaining)

	out, err, remaining = ParseText[Option[string]](p, "5")
	assert.NoError(t, err, "Opt never fails")
	assert.False(t, out.Present)
	assert.Equal(t, "5", remaining)
}

func TestTakeNot(t *testing.T) {
	t.Parallel()

	p := TakeNot[rune, string](Literal("end"))

	_, err, remaining := ParseText[struct{}](p, "endure")
	assert.Error(t, err)
	assert.Equal(t, "endure", remaining, "TakeNot never consumes, on success or failure")

	_, err, remaining = ParseText[struct{}](p, "continue")
	assert.NoError(t, err)
	assert.Equal(t, "continue", remaining)
}

func BenchmarkMap(b *testing.B) {
	p := Map[rune, string, int](digits(), func(s string) int { return len(s) })

	for i := 0; i < b.N; i++ {
		ParseText[int](p, "12345")
	}
}
