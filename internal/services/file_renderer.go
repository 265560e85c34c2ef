package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/prefeitura-rio/app-attestation/internal/logging"
	"github.com/prefeitura-rio/app-attestation/internal/models"
	"github.com/prefeitura-rio/app-attestation/internal/observability"
	"github.com/prefeitura-rio/app-attestation/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/semaphore"
)

const (
	// FilePrefix and FileExtension frame every generated file name
	FilePrefix    = "attestation-"
	FileExtension = ".pdf"

	fontFamily    = "attestation"
	contentWidth  = 180.0
	lineHeight    = 10.0
	pageMargin    = 15.0
	documentTitle = "Attestation de déplacement dérogatoire"
)

// Renderer turns a composed attestation into a file
type Renderer interface {
	Render(ctx context.Context, doc models.AttestationDocument) (*models.RenderedFile, error)
}

// PDFRendererConfig configures a PDFRenderer
type PDFRendererConfig struct {
	OutputDir   string
	FontPath    string
	FontSize    float64
	Concurrency int
}

// PDFRenderer renders attestations as A4 PDFs with an embedded UTF-8 font
type PDFRenderer struct {
	outputDir string
	font      []byte
	fontSize  float64
	slots     *semaphore.Weighted
	idGen     func() string
	now       func() time.Time
	logger    *logging.SafeLogger
}

// NewPDFRenderer prepares the output directory and loads the font.
// An empty FontPath selects the embedded Go Regular font.
func NewPDFRenderer(cfg PDFRendererConfig, logger *logging.SafeLogger) (*PDFRenderer, error) {
	if cfg.FontSize <= 0 {
		cfg.FontSize = 12
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	font := goregular.TTF
	if cfg.FontPath != "" {
		data, err := os.ReadFile(cfg.FontPath)
		if err != nil {
			return nil, &models.RenderError{Op: "load_font", Err: fmt.Errorf("%w: %w", models.ErrFontUnavailable, err)}
		}
		font = data
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o750); err != nil {
		return nil, &models.RenderError{Op: "prepare_output_dir", Err: err}
	}

	r := &PDFRenderer{
		outputDir: cfg.OutputDir,
		font:      font,
		fontSize:  cfg.FontSize,
		slots:     semaphore.NewWeighted(int64(cfg.Concurrency)),
		idGen:     utils.GenerateFileID,
		now:       time.Now,
		logger:    logger,
	}

	// Fail at startup rather than on the first request if the font cannot be embedded
	if _, err := r.encode(models.AttestationDocument{Body: documentTitle}); err != nil {
		return nil, err
	}

	return r, nil
}

// OutputDir returns the directory files are written to
func (r *PDFRenderer) OutputDir() string {
	return r.outputDir
}

// Render encodes the document and writes it under a fresh unique name
func (r *PDFRenderer) Render(ctx context.Context, doc models.AttestationDocument) (*models.RenderedFile, error) {
	if err := r.slots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrRenderBusy, err)
	}
	defer r.slots.Release(1)

	observability.RendersInFlight.Inc()
	defer observability.RendersInFlight.Dec()

	start := time.Now()
	data, err := r.encode(doc)
	if err != nil {
		return nil, err
	}
	observability.RenderDuration.Observe(time.Since(start).Seconds())

	id := r.idGen()
	fileName := FilePrefix + id + FileExtension
	path := filepath.Join(r.outputDir, fileName)

	_, span, done := utils.TraceFileOperation(ctx, "write", fileName)
	defer done()

	if err := writeExclusive(path, data); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"file.size": len(data)})
		return nil, &models.RenderError{Op: "write", Err: err}
	}
	utils.AddSpanAttribute(span, "file.size", len(data))

	r.logger.Debug("attestation file written",
		zap.String("file_id", id),
		zap.Int("size", len(data)),
		zap.Duration("render_duration", time.Since(start)))

	return &models.RenderedFile{
		ID:        id,
		Path:      path,
		FileName:  fileName,
		Size:      int64(len(data)),
		CreatedAt: r.now(),
	}, nil
}

// encode lays the body out as a justified block. Dates come from the document
// so identical documents produce identical bytes.
func (r *PDFRenderer) encode(doc models.AttestationDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(doc.IssuedAt)
	pdf.SetModificationDate(doc.IssuedAt)
	pdf.SetTitle(documentTitle, true)
	pdf.SetCreator("app-attestation", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	pdf.AddUTF8FontFromBytes(fontFamily, "", r.font)
	if pdf.Err() {
		return nil, &models.RenderError{Op: "load_font", Err: fmt.Errorf("%w: %w", models.ErrFontUnavailable, pdf.Error())}
	}
	pdf.SetFont(fontFamily, "", r.fontSize)
	pdf.AddPage()
	pdf.MultiCell(contentWidth, lineHeight, doc.Body, "", "J", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &models.RenderError{Op: "encode", Err: err}
	}
	return buf.Bytes(), nil
}

// writeExclusive creates path and fails if it already exists, so a file is never overwritten
func writeExclusive(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	_, err = f.Write(data)
	return err
}

// IsRenderBusy reports whether err means no render slot could be acquired
func IsRenderBusy(err error) bool {
	return errors.Is(err, models.ErrRenderBusy)
}
