package render_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"zoo-ticketing/internal/module/ticket/models/entity"
	"zoo-ticketing/internal/module/ticket/pricing"
	"zoo-ticketing/internal/module/ticket/qr"
	"zoo-ticketing/internal/module/ticket/render"

	"github.com/stretchr/testify/assert"
)

func testRecord() entity.TicketRecord {
	purchased := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	return entity.TicketRecord{
		ID:          "TKT-TEST123ABCDEFGHIJKLMNO",
		Name:        "Jane Doe",
		Age:         34,
		Gender:      "female",
		Category:    entity.CategoryAdult,
		Price:       30,
		VisitDate:   purchased.AddDate(0, 0, 14),
		PurchasedAt: purchased,
		ValidUntil:  purchased.AddDate(0, 3, 0),
	}
}

func encodeQR(t *testing.T, rec entity.TicketRecord, size int) []byte {
	t.Helper()

	result := <-qr.NewEncoder().Encode(context.Background(), []byte(rec.ID), size)
	assert.NoError(t, result.Err)
	return result.PNG
}

func TestRenderProducesFixedSizePNG(t *testing.T) {
	renderer, err := render.NewRenderer(pricing.Default(), render.DefaultOptions())
	assert.NoError(t, err)

	rec := testRecord()
	artifact, err := renderer.Render(rec, encodeQR(t, rec, renderer.QRSize()))
	assert.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(artifact.PNG))
	assert.NoError(t, err)
	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, 450, img.Bounds().Dy())
}

func TestRenderFilenameIsDeterministic(t *testing.T) {
	renderer, err := render.NewRenderer(pricing.Default(), render.DefaultOptions())
	assert.NoError(t, err)

	rec := testRecord()
	artifact, err := renderer.Render(rec, encodeQR(t, rec, renderer.QRSize()))
	assert.NoError(t, err)

	assert.Equal(t, "zoo-ticket-TKT-TEST123ABCDEFGHIJKLMNO.png", artifact.Filename)
	assert.Equal(t, artifact.Filename, render.Filename(rec.ID))
}

func TestRenderRescalesMismatchedQR(t *testing.T) {
	renderer, err := render.NewRenderer(pricing.Default(), render.DefaultOptions())
	assert.NoError(t, err)

	// encoder produced a different size than the composited region
	rec := testRecord()
	artifact, err := renderer.Render(rec, encodeQR(t, rec, 256))
	assert.NoError(t, err)
	assert.NotEmpty(t, artifact.PNG)
}

func TestRenderUnknownCategory(t *testing.T) {
	renderer, err := render.NewRenderer(pricing.Default(), render.DefaultOptions())
	assert.NoError(t, err)

	rec := testRecord()
	rec.Category = entity.Category("llama")

	_, err = renderer.Render(rec, encodeQR(t, rec, renderer.QRSize()))
	assert.ErrorIs(t, err, pricing.ErrUnknownCategory)
}

func TestCustomCanvasSize(t *testing.T) {
	renderer, err := render.NewRenderer(pricing.Default(), render.Options{Width: 800, Height: 400, QRSize: 150})
	assert.NoError(t, err)

	rec := testRecord()
	artifact, err := renderer.Render(rec, encodeQR(t, rec, renderer.QRSize()))
	assert.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(artifact.PNG))
	assert.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}
