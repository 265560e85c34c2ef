package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-attestation/internal/models"
)

// ErrorResponse is the JSON body of every error
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []models.FieldError `json:"fields,omitempty"`
}

// HealthResponse reports service liveness and output directory writability
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// APIInfo is served on the root endpoint
var APIInfo = models.APIInfo{
	Info: models.APIInfoDetails{
		Title:       "covid API",
		Description: "API pour générer une attestation de déplacement",
		Version:     "1.0.0",
		Contact: models.APIContact{
			Name: "Mathieu Garcia",
			URL:  "https://covid19.api.wiseflat.com",
		},
	},
}

// SystemHandlers serves health and service metadata
type SystemHandlers struct {
	outputDir string
}

// NewSystemHandlers creates a new instance of system handlers
func NewSystemHandlers(outputDir string) *SystemHandlers {
	return &SystemHandlers{outputDir: outputDir}
}

// GetAPIInfo godoc
// @Summary Informations sur l'API
// @Tags system
// @Produce json
// @Success 200 {object} models.APIInfo
// @Router / [get]
func (h *SystemHandlers) GetAPIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, APIInfo)
}

// HealthCheck godoc
// @Summary Vérification de santé
// @Description Vérifie que le répertoire de sortie des attestations est accessible en écriture
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /v1/health [get]
func (h *SystemHandlers) HealthCheck(c *gin.Context) {
	status := http.StatusOK
	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  map[string]string{"storage": "healthy"},
	}

	if err := probeWritable(h.outputDir); err != nil {
		status = http.StatusServiceUnavailable
		health.Status = "unhealthy"
		health.Services["storage"] = "unhealthy"
	}

	c.JSON(status, health)
}

// NotFound answers unknown routes
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
}

// MethodNotAllowed answers known routes called with the wrong method
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}

func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".healthcheck-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Remove(name)
}
