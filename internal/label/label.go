package label

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rkleiv/pos-backend/internal/catalog"
)

const (
	Width  = 400
	Height = 300

	qrSize = 128
	qrX    = 250
	qrY    = 50
)

// Render composes the printable shelf label: the product facts as text and
// a QR code carrying {product_id, short_id} for the handheld scanner.
func Render(p catalog.Product) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	lines := []string{
		fmt.Sprintf("%s - %s", p.ShortID, p.Name),
		fmt.Sprintf("Size: %s", p.PackageSize),
		fmt.Sprintf("Price: %s NOK", p.BasePrice),
		fmt.Sprintf("Producer: %s", p.Producer),
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		d.Dot = fixed.P(10, 20+i*16)
		d.DrawString(line)
	}

	code, err := json.Marshal(map[string]string{
		"product_id": p.ProductID,
		"short_id":   p.ShortID,
	})
	if err != nil {
		return nil, err
	}
	qr, err := qrcode.New(string(code), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("label: qr: %w", err)
	}
	draw.Draw(img, image.Rect(qrX, qrY, qrX+qrSize, qrY+qrSize), qr.Image(qrSize), image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
