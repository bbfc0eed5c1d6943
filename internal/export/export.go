// Package export renders a computed allocation as text or as a PNG image.
//
// Exporting is best effort: it only reads the allocation it is given, so a
// failed export never affects the result shown to the user.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mmynk/quicksplit/internal/format"
	"github.com/mmynk/quicksplit/internal/metrics"
	"github.com/mmynk/quicksplit/internal/models"
)

const (
	cardWidth  = 360
	padding    = 16
	rowHeight  = 24
	titleText  = "Split Result"
	filePrefix = "split-result"
)

// ErrEmptyAllocation is returned when there are no shares to render.
var ErrEmptyAllocation = errors.New("nothing to render: allocation is empty")

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	foreground = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	rule       = color.RGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff}
)

// WriteText writes one line per share followed by the sum of the shares.
func WriteText(w io.Writer, alloc models.Allocation, f *format.Formatter) error {
	nameWidth := lipgloss.Width("Total")
	amounts := make([]string, len(alloc.Shares))
	amountWidth := 0
	for i, s := range alloc.Shares {
		if n := lipgloss.Width(s.Name); n > nameWidth {
			nameWidth = n
		}
		amounts[i] = f.Amount(s.Amount)
		if n := lipgloss.Width(amounts[i]); n > amountWidth {
			amountWidth = n
		}
	}
	sum := f.Amount(alloc.Sum())
	if n := lipgloss.Width(sum); n > amountWidth {
		amountWidth = n
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", titleText, alloc.Mode.Label())
	for i, s := range alloc.Shares {
		fmt.Fprintf(&b, "%s  %s\n", padRight(s.Name, nameWidth), padLeft(amounts[i], amountWidth))
	}
	fmt.Fprintf(&b, "%s  %s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", amountWidth))
	fmt.Fprintf(&b, "%s  %s\n", padRight("Total", nameWidth), padLeft(sum, amountWidth))

	_, err := io.WriteString(w, b.String())
	return err
}

// padRight and padLeft pad to terminal cell width, so wide runes count twice.
func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// RenderPNG draws the result card: a title row, then one row per share with
// the name on the left and the amount right-aligned.
func RenderPNG(alloc models.Allocation, f *format.Formatter) ([]byte, error) {
	if alloc.Empty() {
		return nil, ErrEmptyAllocation
	}

	height := padding*2 + rowHeight*(len(alloc.Shares)+1)
	img := image.NewRGBA(image.Rect(0, 0, cardWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(foreground),
		Face: basicfont.Face7x13,
	}
	baseline := func(row int) fixed.Int26_6 {
		return fixed.I(padding + row*rowHeight + rowHeight/2 + basicfont.Face7x13.Ascent/2)
	}

	d.Dot = fixed.Point26_6{X: fixed.I(padding), Y: baseline(0)}
	d.DrawString(titleText)

	for i, s := range alloc.Shares {
		row := i + 1
		top := padding + row*rowHeight
		draw.Draw(img, image.Rect(padding, top, cardWidth-padding, top+1), image.NewUniform(rule), image.Point{}, draw.Src)

		d.Dot = fixed.Point26_6{X: fixed.I(padding), Y: baseline(row)}
		d.DrawString(s.Name)

		amount := f.ASCIIAmount(s.Amount)
		d.Dot = fixed.Point26_6{X: fixed.I(cardWidth-padding) - d.MeasureString(amount), Y: baseline(row)}
		d.DrawString(amount)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Exporter writes result images into a directory.
type Exporter struct {
	dir       string
	formatter *format.Formatter
	metrics   *metrics.Collector
}

// NewExporter creates an Exporter writing into dir. m may be nil.
func NewExporter(dir string, f *format.Formatter, m *metrics.Collector) *Exporter {
	return &Exporter{dir: dir, formatter: f, metrics: m}
}

// Export renders alloc and writes it as split-result-<id>.png, returning the
// path written.
func (e *Exporter) Export(ctx context.Context, alloc models.Allocation) (string, error) {
	path, err := e.export(alloc)
	e.metrics.ExportFinished(err)
	if err != nil {
		slog.WarnContext(ctx, "Export failed", "dir", e.dir, "error", err)
		return "", err
	}
	slog.InfoContext(ctx, "Exported split result", "path", path, "shares", len(alloc.Shares))
	return path, nil
}

func (e *Exporter) export(alloc models.Allocation) (string, error) {
	data, err := RenderPNG(alloc, e.formatter)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	id := strings.SplitN(uuid.NewString(), "-", 2)[0]
	path := filepath.Join(e.dir, fmt.Sprintf("%s-%s.png", filePrefix, id))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
