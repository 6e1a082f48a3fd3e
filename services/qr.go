package services

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// TableQR renders per-table QR codes pointing at the public menu page.
type TableQR struct {
	BaseURL string
}

// Generate returns a 256x256 PNG encoding the menu URL for one table.
func (g TableQR) Generate(subdomain string, table int) ([]byte, error) {
	url := fmt.Sprintf("%s/m/%s?table=%d", g.BaseURL, subdomain, table)
	return qrcode.Encode(url, qrcode.Medium, 256)
}
