package label

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkleiv/pos-backend/internal/catalog"
)

func TestRenderProducesFixedSizePNG(t *testing.T) {
	b, err := Render(catalog.Product{
		ProductID:   "P-100",
		ShortID:     "A1",
		Name:        "Brown cheese",
		PackageSize: "500g",
		BasePrice:   "89",
		Producer:    "Fjellgard",
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
}

func TestRenderEmptyProduct(t *testing.T) {
	// a sparse row still renders; the QR payload is just empty ids
	b, err := Render(catalog.Product{})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
