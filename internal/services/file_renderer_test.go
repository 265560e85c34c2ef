package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/prefeitura-rio/app-attestation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, concurrency int) *PDFRenderer {
	t.Helper()
	r, err := NewPDFRenderer(PDFRendererConfig{
		OutputDir:   t.TempDir(),
		FontSize:    12,
		Concurrency: concurrency,
	}, testLogger)
	require.NoError(t, err)
	return r
}

func sampleDocument() models.AttestationDocument {
	return ComposeDocument(sampleSubmission(models.SexFemale), travailText, fixedTime())
}

func TestNewPDFRenderer_Defaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	r, err := NewPDFRenderer(PDFRendererConfig{OutputDir: dir}, testLogger)
	require.NoError(t, err)

	assert.Equal(t, dir, r.OutputDir())
	assert.Equal(t, 12.0, r.fontSize)
	assert.DirExists(t, dir)
}

func TestNewPDFRenderer_MissingFont(t *testing.T) {
	_, err := NewPDFRenderer(PDFRendererConfig{
		OutputDir: t.TempDir(),
		FontPath:  filepath.Join(t.TempDir(), "DejaVuSansCondensed.ttf"),
	}, testLogger)

	var rerr *models.RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "load_font", rerr.Op)
	assert.ErrorIs(t, err, models.ErrFontUnavailable)
}

func TestNewPDFRenderer_CorruptFont(t *testing.T) {
	fontPath := filepath.Join(t.TempDir(), "broken.ttf")
	require.NoError(t, os.WriteFile(fontPath, []byte("not a font"), 0o600))

	_, err := NewPDFRenderer(PDFRendererConfig{OutputDir: t.TempDir(), FontPath: fontPath}, testLogger)

	var rerr *models.RenderError
	assert.ErrorAs(t, err, &rerr)
}

func TestNewPDFRenderer_UnusableOutputDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := NewPDFRenderer(PDFRendererConfig{OutputDir: filepath.Join(blocker, "out")}, testLogger)

	var rerr *models.RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "prepare_output_dir", rerr.Op)
}

func TestPDFRenderer_Render(t *testing.T) {
	r := newTestRenderer(t, 2)

	file, err := r.Render(context.Background(), sampleDocument())
	require.NoError(t, err)

	assert.NotEmpty(t, file.ID)
	assert.Equal(t, FilePrefix+file.ID+FileExtension, file.FileName)
	assert.Equal(t, filepath.Join(r.OutputDir(), file.FileName), file.Path)
	assert.False(t, file.CreatedAt.IsZero())

	data, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), file.Size)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.True(t, bytes.Contains(data, []byte("%%EOF")))
}

func TestPDFRenderer_LongBodyPaginates(t *testing.T) {
	r := newTestRenderer(t, 1)
	doc := models.AttestationDocument{
		Body:     strings.Repeat("Déplacements brefs, dans la limite d'une heure quotidienne.\n", 120),
		IssuedAt: fixedTime(),
	}

	file, err := r.Render(context.Background(), doc)
	require.NoError(t, err)

	data, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, bytes.Count(data, []byte("/Type /Page\n")), 2)
}

func TestPDFRenderer_SameDocumentSameBytes(t *testing.T) {
	r := newTestRenderer(t, 1)
	doc := sampleDocument()

	first, err := r.Render(context.Background(), doc)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), doc)
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)

	firstData, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second.Path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(firstData, secondData), "renders of the same document differ")
}

func TestPDFRenderer_ConcurrentRendersNeverCollide(t *testing.T) {
	r := newTestRenderer(t, 4)
	doc := sampleDocument()

	const requests = 24
	var wg sync.WaitGroup
	files := make([]*models.RenderedFile, requests)
	errs := make([]error, requests)

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			files[i], errs[i] = r.Render(context.Background(), doc)
		}(i)
	}
	wg.Wait()

	paths := make(map[string]bool, requests)
	for i := 0; i < requests; i++ {
		require.NoError(t, errs[i])
		assert.False(t, paths[files[i].Path], "duplicate path %s", files[i].Path)
		paths[files[i].Path] = true

		info, err := os.Stat(files[i].Path)
		require.NoError(t, err)
		assert.Equal(t, files[i].Size, info.Size())
	}

	entries, err := os.ReadDir(r.OutputDir())
	require.NoError(t, err)
	assert.Len(t, entries, requests)
}

func TestPDFRenderer_NeverOverwrites(t *testing.T) {
	r := newTestRenderer(t, 1)
	r.idGen = func() string { return "FIXED" }

	existing := filepath.Join(r.OutputDir(), FilePrefix+"FIXED"+FileExtension)
	require.NoError(t, os.WriteFile(existing, []byte("someone else's attestation"), 0o600))

	_, err := r.Render(context.Background(), sampleDocument())

	var rerr *models.RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "write", rerr.Op)
	assert.ErrorIs(t, err, os.ErrExist)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "someone else's attestation", string(data))
}

func TestPDFRenderer_OutputDirRemovedAfterStartup(t *testing.T) {
	r := newTestRenderer(t, 1)
	require.NoError(t, os.RemoveAll(r.OutputDir()))
	// a regular file in place of the directory makes the write fail even for root
	require.NoError(t, os.WriteFile(r.OutputDir(), []byte("x"), 0o600))

	_, err := r.Render(context.Background(), sampleDocument())

	var rerr *models.RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "write", rerr.Op)
}

func TestPDFRenderer_CancelledWhileWaitingForSlot(t *testing.T) {
	r := newTestRenderer(t, 1)
	require.True(t, r.slots.TryAcquire(1))
	defer r.slots.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, sampleDocument())

	assert.True(t, IsRenderBusy(err))
	assert.True(t, errors.Is(err, context.Canceled))
}
