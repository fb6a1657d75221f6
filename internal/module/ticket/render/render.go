package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"
	"time"

	"zoo-ticketing/internal/module/ticket/models/entity"
	"zoo-ticketing/internal/module/ticket/pricing"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Options parameterize the canvas so the historical pipeline variants share
// one renderer.
type Options struct {
	Width  int
	Height int
	QRSize int
}

func DefaultOptions() Options {
	return Options{Width: 1000, Height: 450, QRSize: 180}
}

// Artifact is the downloadable ticket image.
type Artifact struct {
	PNG      []byte
	Filename string
}

func Filename(ticketID string) string {
	return fmt.Sprintf("zoo-ticket-%s.png", ticketID)
}

type Renderer struct {
	opts     Options
	schedule pricing.Schedule

	headerFace font.Face
	bannerFace font.Face
	labelFace  font.Face
	infoFace   font.Face
}

func NewRenderer(schedule pricing.Schedule, opts Options) (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}

	r := &Renderer{opts: opts, schedule: schedule}
	for _, f := range []struct {
		face *font.Face
		fnt  *opentype.Font
		size float64
	}{
		{&r.headerFace, bold, 48},
		{&r.bannerFace, bold, 24},
		{&r.labelFace, bold, 24},
		{&r.infoFace, regular, 20},
	} {
		face, err := opentype.NewFace(f.fnt, &opentype.FaceOptions{Size: f.size, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return nil, err
		}
		*f.face = face
	}

	return r, nil
}

func (r *Renderer) QRSize() int {
	return r.opts.QRSize
}

// Render composites the fixed-size ticket artifact: background, category
// colored border and gradient accent, header, category banner, the textual
// fields and the QR image in the reserved right-hand region.
func (r *Renderer) Render(rec entity.TicketRecord, qrPNG []byte) (Artifact, error) {
	accent, err := r.schedule.ColorOf(rec.Category)
	if err != nil {
		return Artifact{}, err
	}

	w := float64(r.opts.Width)
	h := float64(r.opts.Height)
	dc := gg.NewContext(r.opts.Width, r.opts.Height)

	// background
	dc.SetHexColor("#ffffff")
	dc.Clear()

	// border
	dc.SetHexColor(accent)
	dc.SetLineWidth(8)
	dc.DrawRectangle(10, 10, w-20, h-20)
	dc.Stroke()

	// translucent gradient accent
	grad := gg.NewLinearGradient(0, 0, w, 0)
	grad.AddColorStop(0, hexWithAlpha(accent, 0x22))
	grad.AddColorStop(0.5, hexWithAlpha(accent, 0x11))
	grad.AddColorStop(1, hexWithAlpha(accent, 0x22))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(10, 10, w-20, h-20)
	dc.Fill()

	// header
	dc.SetHexColor(accent)
	dc.SetFontFace(r.headerFace)
	dc.DrawString("WildLife Zoo", 40, 70)

	// category banner
	dc.DrawRectangle(40, 90, 300, 40)
	dc.Fill()
	dc.SetHexColor("#ffffff")
	dc.SetFontFace(r.bannerFace)
	dc.DrawString(fmt.Sprintf("%s TICKET", strings.ToUpper(rec.Category.String())), 50, 120)

	// textual fields
	dc.SetHexColor("#1F2937")
	dc.SetFontFace(r.labelFace)
	dc.DrawString("Ticket ID: "+rec.ID, 40, 160)

	dc.SetFontFace(r.infoFace)
	lines := []string{
		"Name: " + rec.Name,
		"Age: " + strconv.Itoa(rec.Age),
		"Gender: " + rec.Gender,
		"Category: " + rec.Category.String(),
		"Price: CHF" + strconv.FormatFloat(rec.Price, 'f', -1, 64),
		"Visit Date: " + formatDate(rec.VisitDate),
		"Valid Until: " + formatDate(rec.ValidUntil),
	}
	const infoStartY, lineHeight = 200, 35
	for i, line := range lines {
		dc.DrawString(line, 40, float64(infoStartY+i*lineHeight))
	}

	// reserved QR region
	dc.SetHexColor("#E5E7EB")
	dc.SetLineWidth(1)
	dc.DrawRectangle(w-260, 40, 220, 220)
	dc.Stroke()

	qrImage, err := decodeQR(qrPNG, r.opts.QRSize)
	if err != nil {
		return Artifact{}, err
	}
	dc.DrawImage(qrImage, r.opts.Width-240, 60)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return Artifact{}, err
	}

	return Artifact{PNG: buf.Bytes(), Filename: Filename(rec.ID)}, nil
}

// decodeQR decodes the encoder's PNG and rescales it when the encoder did
// not produce the composited size.
func decodeQR(qrPNG []byte, size int) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(qrPNG))
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() == size && b.Dy() == size {
		return img, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst, nil
}

func formatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

func hexWithAlpha(hex string, alpha uint8) color.Color {
	var red, green, blue uint8
	fmt.Sscanf(hex, "#%02x%02x%02x", &red, &green, &blue)
	return color.NRGBA{R: red, G: green, B: blue, A: alpha}
}
