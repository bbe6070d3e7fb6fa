package cursor

import (
	"testing"

	"github.com/deltran/swiftmt/internal/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(pairs ...string) []block.Field {
	var out []block.Field
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, block.Field{Tag: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func TestExpectOrdering(t *testing.T) {
	c := New(fields("20", "REF1", "23B", "CRED"))
	v, err := c.Expect("20")
	require.NoError(t, err)
	assert.Equal(t, "REF1", v)

	_, err = c.Expect("32A")
	assert.Error(t, err)

	v, err = c.Expect("23B")
	require.NoError(t, err)
	assert.Equal(t, "CRED", v)
	assert.True(t, c.Done())
}

func TestTryOptionalDoesNotScanAhead(t *testing.T) {
	c := New(fields("20", "REF1", "32A", "X"))
	_, ok, err := c.TryOptional("13C")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, c.Done())
}

func TestExpectVariant(t *testing.T) {
	c := New(fields("50K", "JOHN DOE"))
	letter, val, err := c.ExpectVariant("50")
	require.NoError(t, err)
	assert.Equal(t, "K", letter)
	assert.Equal(t, "JOHN DOE", val)
}

func TestDuplicateDetection(t *testing.T) {
	c := New(fields("20", "A", "20", "B"))
	_, err := c.Expect("20")
	require.NoError(t, err)
	_, _, err = c.TryOptional("20")
	assert.Error(t, err)
}

func TestRepeatUntilWithDuplicates(t *testing.T) {
	c := New(fields("23", "BASE", "30", "240101", "37H", "C1,50", "25", "ACC", "30", "240102", "37H", "C2,00"))
	type seq struct {
		has23, has25 bool
		rate         int
	}
	var seqs []seq
	err := c.RepeatUntil(func(tag string) bool {
		return tag != "23" && tag != "25"
	}, func() error {
		var s seq
		if c.Peek("23") {
			_, _ = c.Expect("23")
			s.has23 = true
		}
		if c.Peek("25") {
			_, _ = c.Expect("25")
			s.has25 = true
		}
		if _, err := c.Expect("30"); err != nil {
			return err
		}
		if _, err := c.Expect("37H"); err != nil {
			return err
		}
		s.rate = len(seqs) + 1
		seqs = append(seqs, s)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seqs, 2)
	assert.True(t, seqs[0].has23)
	assert.True(t, seqs[1].has25)
	assert.True(t, c.Done())
}
