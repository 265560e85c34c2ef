package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-attestation/internal/logging"
	"github.com/prefeitura-rio/app-attestation/internal/middleware"
	"github.com/prefeitura-rio/app-attestation/internal/models"
	"github.com/prefeitura-rio/app-attestation/internal/services"
	"github.com/prefeitura-rio/app-attestation/internal/utils"
)

const (
	maxFormBytes     = 64 << 10
	maxMultipartSize = 32 << 10
)

// AttestationHandlers contains all attestation-related HTTP handlers
type AttestationHandlers struct {
	logger  *logging.SafeLogger
	service *services.AttestationService
}

// NewAttestationHandlers creates a new instance of attestation handlers
func NewAttestationHandlers(logger *logging.SafeLogger, service *services.AttestationService) *AttestationHandlers {
	return &AttestationHandlers{
		logger:  logger,
		service: service,
	}
}

// CreateAttestation godoc
// @Summary Générer une attestation de déplacement
// @Description Valide les données du formulaire et renvoie l'attestation de déplacement dérogatoire au format PDF. Tout champ non déclaré est refusé.
// @Tags attestation
// @Accept x-www-form-urlencoded
// @Accept multipart/form-data
// @Produce application/pdf
// @Produce json
// @Param sex formData string true "Sexe (H/F)" Enums(H, F)
// @Param firstname formData string true "Prénom"
// @Param lastname formData string true "Nom de famille"
// @Param birthday formData string true "Date de naissance (JJ/MM/AAAA)"
// @Param place_of_birth formData string true "Ville de naissance"
// @Param address formData string true "Adresse"
// @Param city formData string true "Ville"
// @Param postcode formData string true "Code postal"
// @Param reason formData string true "Motif du déplacement" Enums(Convocation, Missions, Handicap, Santé, Enfants, Famille, Sports et animaux, Travail, Achats) default(Travail)
// @Success 200 {file} file "Attestation PDF"
// @Failure 400 {object} ErrorResponse "Champs invalides, manquants ou non déclarés"
// @Failure 500 {object} ErrorResponse "Erreur interne du serveur"
// @Failure 503 {object} ErrorResponse "Capacité de génération saturée"
// @Router /v1/attestation [post]
func (h *AttestationHandlers) CreateAttestation(c *gin.Context) {
	ctx := c.Request.Context()

	_, parseSpan := utils.TraceInputParsing(ctx, "form")
	form, err := parseSubmittedForm(c)
	if err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		h.logger.Debug("invalid form payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid form data"})
		return
	}
	parseSpan.End()

	submission, err := h.service.Validate(ctx, form)
	if err != nil {
		h.writeError(c, err)
		return
	}

	file, err := h.service.Generate(ctx, submission)
	if err != nil {
		h.writeError(c, err)
		return
	}

	_, responseSpan := utils.TraceResponseSerialization(ctx, "file")
	c.FileAttachment(file.Path, file.FileName)
	responseSpan.End()
}

// ListReasons godoc
// @Summary Lister les motifs de déplacement
// @Description Renvoie les codes de motif acceptés et le texte légal associé
// @Tags attestation
// @Produce json
// @Success 200 {object} models.ReasonsResponse
// @Router /v1/reasons [get]
func (h *AttestationHandlers) ListReasons(c *gin.Context) {
	c.JSON(http.StatusOK, models.ReasonsResponse{Reasons: h.service.Reasons().Reasons()})
}

// writeError maps pipeline errors onto HTTP responses
func (h *AttestationHandlers) writeError(c *gin.Context, err error) {
	logger := h.logger.With(zap.String("request_id", c.GetString(middleware.RequestIDKey)))

	var verr *models.ValidationError
	var rerr *models.RenderError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Fields: verr.Fields})
	case services.IsRenderBusy(err):
		logger.Warn("no render slot available", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Service temporarily unavailable"})
	case errors.As(err, &rerr):
		logger.Error("failed to render attestation", zap.String("op", rerr.Op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	default:
		logger.Error("failed to generate attestation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// parseSubmittedForm returns query and body values. Uploaded files are reported as
// fields so strict validation rejects them.
func parseSubmittedForm(c *gin.Context) (url.Values, error) {
	req := c.Request
	req.Body = http.MaxBytesReader(c.Writer, req.Body, maxFormBytes)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := req.ParseMultipartForm(maxMultipartSize); err != nil {
			return nil, err
		}
	} else if err := req.ParseForm(); err != nil {
		return nil, err
	}

	form := make(url.Values, len(req.Form))
	for key, values := range req.Form {
		form[key] = append([]string(nil), values...)
	}
	if req.MultipartForm != nil {
		for key := range req.MultipartForm.File {
			form.Add(key, "")
		}
	}
	return form, nil
}
