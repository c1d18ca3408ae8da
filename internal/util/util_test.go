package util

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTempFile_RemovesFileOnSuccess(t *testing.T) {
	t.Parallel()

	var seen string
	err := WithTempFile(strings.NewReader("%PDF-1.4 body"), "resume-*.pdf", func(path string) error {
		seen = path
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 body", string(b))
		assert.Equal(t, ".pdf", filepath.Ext(path))
		return nil
	})

	require.NoError(t, err)
	require.NotEmpty(t, seen)
	_, statErr := os.Stat(seen)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWithTempFile_RemovesFileOnFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("extraction failed")
	var seen string
	err := WithTempFile(strings.NewReader("garbage"), "resume-*.pdf", func(path string) error {
		seen = path
		return boom
	})

	assert.ErrorIs(t, err, boom)
	_, statErr := os.Stat(seen)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCleanJSONFence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"padded fence", "  ```json {\"a\":1} ```  ", `{"a":1}`},
		{"only trailing", "{\"a\":1}\n```", `{"a":1}`},
		{"bare fence kept", "```\n{\"a\":1}\n```", "```\n{\"a\":1}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CleanJSONFence(tc.in))
		})
	}
}

func TestExtractPlainText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Go developer\n"), 0o600))

	text, err := ExtractPlainText(path)
	require.NoError(t, err)
	assert.Equal(t, "Go developer", text)
}

func TestExtractPDFText_NotAPDF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a pdf"), 0o600))

	_, err := ExtractPDFText(path)
	assert.Error(t, err)
}

func TestUnescapeXML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "it’s & <b> – \"ok\"", unescapeXML("it&#8217;s &amp; &lt;b&gt; &#x2013; &quot;ok&quot;"))
	assert.Equal(t, "plain", unescapeXML("plain"))
}
