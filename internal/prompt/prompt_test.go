package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/localnerve/marketdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceRetriesUntilInteger(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("abc\n\n 7 \n"), &out)

	n, err := r.Choice()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 2, strings.Count(out.String(), "Your input is invalid!"))
	assert.Equal(t, 3, strings.Count(out.String(), "Please make your choice: "))
}

func TestChoiceAcceptsAnyInteger(t *testing.T) {
	r := New(strings.NewReader("-4\n12345\n"), io.Discard)

	n, err := r.Choice()
	require.NoError(t, err)
	assert.Equal(t, -4, n)
	n, err = r.Choice()
	require.NoError(t, err)
	assert.Equal(t, 12345, n)
}

func TestChoiceEOF(t *testing.T) {
	r := New(strings.NewReader("x\n"), io.Discard)
	_, err := r.Choice()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineWithoutTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("Widget\r\nlast"), &out)

	line, err := r.Line("\tEnter Product Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Widget", line)
	assert.Equal(t, "\tEnter Product Name: ", out.String())

	line, err = r.Line("")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = r.Line("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestNumbers(t *testing.T) {
	r := New(strings.NewReader("42\n3.5\nlots\n"), io.Discard)

	n, err := r.Int("\tEnter StoreID: ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	f, err := r.Float("\tEnter latitude: ")
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)

	_, err = r.Int64("\tEnter Number of Units: ")
	assert.True(t, types.IsKind(err, types.KindInvalidInput))
	assert.Contains(t, err.Error(), "Enter Number of Units")
}

func TestYesNo(t *testing.T) {
	r := New(strings.NewReader("y\nYES\nn\nmaybe\n"), io.Discard)
	for _, want := range []bool{true, true, false, false} {
		got, err := r.YesNo("\tUpdate price? y/n: ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFloatRejectsNonFinite(t *testing.T) {
	r := New(strings.NewReader("NaN\nInf\n-inf\n1e400\n"), io.Discard)
	for i := 0; i < 4; i++ {
		_, err := r.Float("\tEnter latitude: ")
		assert.True(t, types.IsKind(err, types.KindInvalidInput), "answer %d", i)
	}
}
