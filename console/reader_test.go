package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_ReadLine(t *testing.T) {
	var out bytes.Buffer
	s := NewScanner(strings.NewReader("3\n  4 \n"), &out)

	got, err := s.ReadLine("Enter the number of rows:")
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	got, err = s.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "  4 ", got)

	_, err = s.ReadLine("again")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Enter the number of rows:\nagain\n", out.String())
}

func TestScanner_ReadLineEdges(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	s := NewScanner(strings.NewReader("1\r\n"+long+"\nlast"), io.Discard)

	got, err := s.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = s.ReadLine("")
	require.NoError(t, err)
	assert.Len(t, got, len(long))

	got, err = s.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = s.ReadLine("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestValidateNumber(t *testing.T) {
	assert.NoError(t, validateNumber("12"))
	assert.NoError(t, validateNumber(" -3 "))
	assert.Error(t, validateNumber(""))
	assert.Error(t, validateNumber("1.5"))
	assert.Error(t, validateNumber("seven"))
}
