package main

import (
	"image/color"
	"strconv"

	"github.com/skip2/go-qrcode"
)

// QR defaults. Dark-on-white regardless of card theme so codes stay
// scannable; error correction level H survives the styled border around
// the code on the card page.
const (
	qrDefaultSize = 128
	qrMinSize     = 64
	qrMaxSize     = 512
)

var (
	qrForeground = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	qrBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// encodeQRPNG renders text as a QR code PNG with the given size, colors,
// and error correction level.
func encodeQRPNG(text string, size int, fg, bg color.Color, level qrcode.RecoveryLevel) ([]byte, error) {
	q, err := qrcode.New(text, level)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg
	q.DisableBorder = false
	return q.PNG(size)
}

// parseQRSize clamps a size query parameter to sane bounds.
func parseQRSize(s string) int {
	if s == "" {
		return qrDefaultSize
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < qrMinSize || n > qrMaxSize {
		return qrDefaultSize
	}
	return n
}
