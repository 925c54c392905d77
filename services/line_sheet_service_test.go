package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLineSheetPDF(t *testing.T) {
	products := EnsureMinimumProductsPerCategory(SeedProducts(), 2)

	buf, err := GenerateLineSheetPDF(products, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, buf)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestGenerateLineSheetPDFEmptyCatalog(t *testing.T) {
	buf, err := GenerateLineSheetPDF(nil, time.Now())
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
