package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "windows line endings normalized",
			input:    "Recruiter role\r\n7+ years required",
			expected: "Recruiter role\n7+ years required",
		},
		{
			name:     "blank runs collapsed to one",
			input:    "Title\n\n\n\nBody",
			expected: "Title\n\nBody",
		},
		{
			name:     "internal whitespace collapsed per line",
			input:    "Recruiter    role   (remote)",
			expected: "Recruiter role (remote)",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "\n\n  Recruiter role  \n\n",
			expected: "Recruiter role",
		},
		{
			name:     "empty input stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestIngestFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads and cleans the file", func(t *testing.T) {
		path := filepath.Join(dir, "job.txt")
		require.NoError(t, os.WriteFile(path, []byte("Recruiter\r\n\r\n\r\n7+ years"), 0o644))

		text, err := IngestFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Recruiter\n\n7+ years", text)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := IngestFromFile(filepath.Join(dir, "missing.txt"))
		assert.Error(t, err)
	})

	t.Run("whitespace-only file reports empty content", func(t *testing.T) {
		path := filepath.Join(dir, "blank.txt")
		require.NoError(t, os.WriteFile(path, []byte("   \n \t \n"), 0o644))

		_, err := IngestFromFile(path)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})
}
