package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/tripbook/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	assert.True(t, strings.HasPrefix(string(Template), ",,Destination,"))
	assert.Contains(t, string(Guide), "C1 (Row 1, Column 3)")
	assert.Contains(t, string(Guide), "T = Transportation")
}

func TestSampleDecodes(t *testing.T) {
	doc, err := source.Decode(SampleName, Sample)
	require.NoError(t, err)

	lines := strings.Split(doc.Text, "\n")
	assert.Equal(t, ",,Thailand Trip,,,,,,,,,", lines[0])
	for _, l := range lines {
		assert.NotEmpty(t, strings.Trim(l, ", "), "blank rows are removed")
	}
	assert.Contains(t, doc.Text, "Grand Palace")
}

func TestTemplateDecodes(t *testing.T) {
	doc, err := source.Decode(TemplateName, Template)
	require.NoError(t, err)
	assert.Contains(t, doc.Text, "6/3/2022,,,Flight,,,,,$xxx,A")
	assert.NotContains(t, doc.Text, "\n,,,,,,,,,\n")
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), GuideName)
	require.NoError(t, Write(path, Guide, false))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Guide, got)

	err = Write(path, []byte("x"), false)
	assert.ErrorIs(t, err, ErrExists)

	require.NoError(t, Write(path, []byte("x"), true))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}
