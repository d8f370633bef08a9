package textextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUploadPlainText(t *testing.T) {
	out, err := FromUpload("notes.txt", []byte("The sky is blue."))
	require.NoError(t, err)
	assert.Equal(t, "The sky is blue.", out)
}

func TestFromUploadToleratesInvalidBytes(t *testing.T) {
	data := []byte{'o', 'k', 0xff, 0xfe, '!'}
	out, err := FromUpload("weird.txt", data)
	require.NoError(t, err)
	assert.Equal(t, "ok��!", out)
}

func TestFromPDFEmptyInput(t *testing.T) {
	out, err := FromPDF(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestFromUploadBrokenPDF(t *testing.T) {
	_, err := FromUpload("broken.PDF", []byte("not a pdf at all"))
	assert.Error(t, err)
}
