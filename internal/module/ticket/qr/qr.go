package qr

import (
	"context"

	qrcode "github.com/skip2/go-qrcode"
)

type EncodeResult struct {
	PNG []byte
	Err error
}

// Encoder turns a payload into a scannable PNG. Encoding is asynchronous;
// the result channel is the completion signal the caller waits on, never a
// fixed delay.
type Encoder interface {
	Encode(ctx context.Context, payload []byte, size int) <-chan EncodeResult
}

type encoder struct{}

func NewEncoder() Encoder {
	return encoder{}
}

func (encoder) Encode(ctx context.Context, payload []byte, size int) <-chan EncodeResult {
	ch := make(chan EncodeResult, 1)

	go func() {
		png, err := qrcode.Encode(string(payload), qrcode.High, size)
		ch <- EncodeResult{PNG: png, Err: err}
	}()

	return ch
}
