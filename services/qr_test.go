package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableQRProducesPNG(t *testing.T) {
	png, err := TableQR{BaseURL: "https://dineinn.example"}.Generate("thaicorner", 7)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
}
