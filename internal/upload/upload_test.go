package upload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/rfp-advisor/internal/extract"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		size    int64
		format  extract.Format
		wantErr error
	}{
		{name: "txt", file: "rfp.txt", size: 10, format: extract.FormatText},
		{name: "upper-case pdf", file: "RFP.PDF", size: MaxSize, format: extract.FormatPDF},
		{name: "no file", file: "  ", wantErr: ErrNoFile},
		{name: "docx", file: "rfp.docx", size: 10, wantErr: ErrUnsupportedType},
		{name: "no extension", file: "rfp", size: 10, wantErr: ErrUnsupportedType},
		{name: "too large", file: "rfp.pdf", size: MaxSize + 1, wantErr: ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := Check(tt.file, tt.size)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Retail.TXT")
	require.NoError(t, os.WriteFile(path, []byte("We are a retail client seeking litigation defense support"), 0o600))

	doc, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "Retail.TXT", doc.Name)
	assert.Equal(t, extract.FormatText, doc.Format)
	assert.Equal(t, "We are a retail client seeking litigation defense support", doc.Text)

	bad := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(bad, []byte("x"), 0o600))
	_, err = Open(bad)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = Open(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)

	_, err = Open(dir)
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = Open("")
	assert.ErrorIs(t, err, ErrNoFile)
}
