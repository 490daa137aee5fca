package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	got, err := Generate(12)
	require.NoError(t, err)
	assert.Len(t, got, 12)

	// Non-positive lengths fall back to the default.
	got, err = Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerate_Alphabet(t *testing.T) {
	got, err := Generate(64)
	require.NoError(t, err)
	for _, r := range got {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	sid, err := GenerateWithPrefix(PrefixProject, DefaultLength)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sid, "pr_"))

	prefix, short, err := ParsePrefixedID(sid)
	require.NoError(t, err)
	assert.Equal(t, PrefixProject, prefix)
	assert.Len(t, short, DefaultLength)
}

func TestValidatePrefix(t *testing.T) {
	sid := NewFindingSID()
	assert.NoError(t, ValidatePrefix(sid, PrefixFinding))
	assert.Error(t, ValidatePrefix(sid, PrefixProject))
	assert.Error(t, ValidatePrefix("no-underscore", PrefixFinding))
}

func TestExtractShortID(t *testing.T) {
	short, err := ExtractShortID("cl_aB3xY9kQ2mN7", PrefixClient)
	require.NoError(t, err)
	assert.Equal(t, "aB3xY9kQ2mN7", short)

	_, err = ExtractShortID("ar_aB3xY9kQ2mN7", PrefixClient)
	assert.Error(t, err)
}
