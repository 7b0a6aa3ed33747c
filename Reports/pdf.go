package Reports

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/rdclab2001/rdc-backend/Constants"
)

// AllowedImage reports whether the uploaded filename passes the png/jpg/jpeg
// allow-list.
func AllowedImage(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return Constants.AllowedImageExtensions[ext]
}

// SanitizeFilename strips any path components and replaces characters that
// have no business in a filename.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// StagedName builds a collision-resistant name for one uploaded image, so
// concurrent uploads of the same file never clobber each other.
func StagedName(original string) string {
	timestamp := time.Now().Format("20060102150405.000000")
	timestamp = strings.ReplaceAll(timestamp, ".", "")
	return fmt.Sprintf("%s_%s_%s", timestamp, uuid.NewString()[:8], SanitizeFilename(original))
}

// ReportFilename names the output PDF by generation time.
func ReportFilename() string {
	return fmt.Sprintf("Report_%s.pdf", time.Now().Format("20060102_150405"))
}

// ConvertImagesToPDF concatenates the images, in the given order, into a
// single PDF with one page per image, each page sized to its image. Any
// image that fails to decode fails the whole conversion; no partial PDF is
// left behind.
func ConvertImagesToPDF(imagePaths []string, outPath string) error {
	if len(imagePaths) == 0 {
		return fmt.Errorf("no images to convert")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt"})

	for _, path := range imagePaths {
		width, height, err := imageSize(path)
		if err != nil {
			return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}

		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: width, Ht: height})
		opts := gofpdf.ImageOptions{ImageType: imageType(path), ReadDpi: false}
		pdf.ImageOptions(path, 0, 0, width, height, false, opts, 0, "")
		if pdf.Err() {
			return fmt.Errorf("embed %s: %s", filepath.Base(path), pdf.Error())
		}
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		os.Remove(outPath)
		return err
	}
	return nil
}

// CleanupImages removes staged images after assembly. Best-effort; a file
// that will not delete is left for the cron sweep.
func CleanupImages(imagePaths []string) {
	for _, path := range imagePaths {
		os.Remove(path)
	}
}

func imageSize(path string) (float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

func imageType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG"
	default:
		return "PNG"
	}
}
