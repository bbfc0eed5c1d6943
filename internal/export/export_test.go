package export

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/quicksplit/internal/format"
	"github.com/mmynk/quicksplit/internal/models"
)

func testFormatter(t *testing.T) *format.Formatter {
	t.Helper()
	f, err := format.New("USD", "$", "en")
	if err != nil {
		t.Fatalf("format.New: %v", err)
	}
	return f
}

func testAllocation() models.Allocation {
	return models.Allocation{
		Mode:  models.ModeShares,
		Total: decimal.NewFromInt(90),
		Shares: []models.Share{
			{Name: "Alice", Amount: decimal.NewFromInt(15)},
			{Name: "Bob", Amount: decimal.NewFromInt(30)},
			{Name: "Charlie", Amount: decimal.NewFromInt(45)},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, testAllocation(), testFormatter(t)); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	want := strings.Join([]string{
		"Split Result (By Shares)",
		"Alice    $ 15.00",
		"Bob      $ 30.00",
		"Charlie  $ 45.00",
		"-------  -------",
		"Total    $ 90.00",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteText output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteText_WideNames(t *testing.T) {
	alloc := models.Allocation{
		Mode:  models.ModeEqual,
		Total: decimal.NewFromInt(20),
		Shares: []models.Share{
			{Name: "田中太郎", Amount: decimal.NewFromInt(10)},
			{Name: "Bob", Amount: decimal.NewFromInt(10)},
		},
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, alloc, testFormatter(t)); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	// 田中太郎 is 8 cells wide
	want := strings.Join([]string{
		"Split Result (By People)",
		"田中太郎  $ 10.00",
		"Bob       $ 10.00",
		"--------  -------",
		"Total     $ 20.00",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteText output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testAllocation(), testFormatter(t))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != cardWidth {
		t.Errorf("width = %d, want %d", b.Dx(), cardWidth)
	}
	if want := padding*2 + rowHeight*4; b.Dy() != want {
		t.Errorf("height = %d, want %d", b.Dy(), want)
	}
}

func TestRenderPNG_Empty(t *testing.T) {
	if _, err := RenderPNG(models.Allocation{}, testFormatter(t)); !errors.Is(err, ErrEmptyAllocation) {
		t.Error("RenderPNG of empty allocation should fail")
	}
}

func TestExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	e := NewExporter(dir, testFormatter(t), nil)

	path, err := e.Export(context.Background(), testAllocation())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if filepath.Dir(path) != dir || !strings.HasPrefix(filepath.Base(path), "split-result-") {
		t.Errorf("unexpected path %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}

	// every export gets its own file
	second, err := e.Export(context.Background(), testAllocation())
	if err != nil {
		t.Fatalf("second Export: %v", err)
	}
	if second == path {
		t.Errorf("second export overwrote %s", path)
	}
}

func TestExporter_ExportFailureLeavesAllocation(t *testing.T) {
	// a regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	e := NewExporter(blocker, testFormatter(t), nil)

	alloc := testAllocation()
	if _, err := e.Export(context.Background(), alloc); err == nil {
		t.Fatal("expected export error")
	}
	if len(alloc.Shares) != 3 || !alloc.Shares[0].Amount.Equal(decimal.NewFromInt(15)) {
		t.Errorf("allocation modified: %+v", alloc)
	}
}
