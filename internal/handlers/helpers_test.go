package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-attestation/internal/logging"
	"github.com/prefeitura-rio/app-attestation/internal/models"
	"github.com/prefeitura-rio/app-attestation/internal/services"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testLogger = logging.NewSafeLogger(zap.NewNop())

func init() {
	gin.SetMode(gin.TestMode)
}

// failingRenderer always returns the configured error
type failingRenderer struct {
	err error
}

func (r failingRenderer) Render(context.Context, models.AttestationDocument) (*models.RenderedFile, error) {
	return nil, r.err
}

func validForm() url.Values {
	return url.Values{
		"sex":            {"F"},
		"firstname":      {"Marie"},
		"lastname":       {"Curie"},
		"birthday":       {"07/11/1967"},
		"place_of_birth": {"Varsovie"},
		"address":        {"11 rue Pierre et Marie Curie"},
		"city":           {"Paris"},
		"postcode":       {"75005"},
		"reason":         {"Santé"},
	}
}

func newTestRouter(t *testing.T, renderer services.Renderer, outputDir string) *gin.Engine {
	t.Helper()

	table, err := services.NewReasonTable(models.DefaultReasons)
	require.NoError(t, err)

	service := services.NewAttestationService(table, renderer, time.UTC, testLogger)

	router := gin.New()
	RegisterRoutes(router, NewAttestationHandlers(testLogger, service), NewSystemHandlers(outputDir))
	return router
}

func newPDFRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	dir := t.TempDir()
	renderer, err := services.NewPDFRenderer(services.PDFRendererConfig{
		OutputDir:   dir,
		Concurrency: 2,
	}, testLogger)
	require.NoError(t, err)

	return newTestRouter(t, renderer, dir), dir
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postMultipart(t *testing.T, router *gin.Engine, path string, form url.Values, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, values := range form {
		for _, v := range values {
			require.NoError(t, writer.WriteField(key, v))
		}
	}
	for field, content := range files {
		part, err := writer.CreateFormFile(field, field+".txt")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
