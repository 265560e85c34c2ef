package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-attestation/internal/logging"
	"github.com/prefeitura-rio/app-attestation/internal/models"
	"github.com/prefeitura-rio/app-attestation/internal/observability"
	"github.com/prefeitura-rio/app-attestation/internal/utils"
	"go.uber.org/zap"
)

// slowGenerationThreshold is the pipeline duration above which a warning is logged
const slowGenerationThreshold = 2 * time.Second

// AttestationService runs the validate -> resolve -> compose -> render pipeline
type AttestationService struct {
	reasons  *ReasonTable
	renderer Renderer
	location *time.Location
	clock    func() time.Time
	logger   *logging.SafeLogger
}

// NewAttestationService creates a new AttestationService instance
func NewAttestationService(reasons *ReasonTable, renderer Renderer, location *time.Location, logger *logging.SafeLogger) *AttestationService {
	if location == nil {
		location = time.Local
	}
	return &AttestationService{
		reasons:  reasons,
		renderer: renderer,
		location: location,
		clock:    time.Now,
		logger:   logger,
	}
}

// Reasons exposes the reason table
func (s *AttestationService) Reasons() *ReasonTable {
	return s.reasons
}

// Validate checks raw form values and returns a typed submission or a *models.ValidationError
func (s *AttestationService) Validate(ctx context.Context, form url.Values) (*models.Submission, error) {
	_, span := utils.TraceInputValidation(ctx, "attestation_submission", len(form))
	defer span.End()

	sub, result := utils.ValidateSubmission(form, s.reasons)
	if err := result.Err(); err != nil {
		for _, fe := range result.Errors {
			observability.ValidationFailures.WithLabelValues(metricFieldLabel(fe.Field)).Inc()
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"validation.error_count": len(result.Errors),
		})
		s.logger.Debug("submission rejected",
			zap.Any("form", observability.MaskSensitiveData(flattenForm(form))),
			zap.Int("error_count", len(result.Errors)))
		return nil, err
	}

	return sub, nil
}

// Generate produces the attestation file for a validated submission
func (s *AttestationService) Generate(ctx context.Context, sub *models.Submission) (*models.RenderedFile, error) {
	ctx, span, done := utils.TraceOperation(ctx, "attestation.generate", map[string]interface{}{
		"attestation.reason": sub.Reason,
	})
	defer done()

	monitor := utils.NewPerformanceMonitor("attestation.generate", s.logger)
	defer monitor.End(slowGenerationThreshold)

	_, resolveSpan := utils.TraceBusinessLogic(ctx, "resolve_reason")
	reasonText, err := s.reasons.Resolve(sub.Reason)
	resolveSpan.End()
	monitor.Checkpoint("resolve_reason")
	if err != nil {
		observability.AttestationsGenerated.WithLabelValues("unknown", "validation_error").Inc()
		utils.RecordErrorInSpan(span, err, nil)
		return nil, &models.ValidationError{Fields: []models.FieldError{
			{Field: models.FieldReason, Message: "must be one of the published reasons"},
		}}
	}

	_, composeSpan := utils.TraceBusinessLogic(ctx, "compose_document")
	doc := ComposeDocument(*sub, reasonText, s.clock().In(s.location))
	composeSpan.End()
	monitor.Checkpoint("compose_document")

	file, err := s.renderer.Render(ctx, doc)
	monitor.Checkpoint("render")
	if err != nil {
		status := "render_error"
		if IsRenderBusy(err) {
			status = "busy"
		}
		observability.AttestationsGenerated.WithLabelValues(sub.Reason, status).Inc()
		utils.RecordErrorInSpan(span, err, nil)
		return nil, err
	}

	observability.AttestationsGenerated.WithLabelValues(sub.Reason, "success").Inc()
	utils.AddSpanAttribute(span, "attestation.file_id", file.ID)

	s.logger.Info("attestation generated",
		zap.String("file_id", file.ID),
		zap.String("reason", sub.Reason),
		zap.String("name", observability.MaskName(sub.FirstName+" "+sub.LastName)),
		zap.Int64("size", file.Size))

	return file, nil
}

// flattenForm joins repeated values so a rejected form can be logged
func flattenForm(form url.Values) map[string]string {
	flat := make(map[string]string, len(form))
	for key, values := range form {
		flat[key] = strings.Join(values, ",")
	}
	return flat
}

// metricFieldLabel keeps label cardinality bounded when clients send arbitrary field names
func metricFieldLabel(field string) string {
	for _, f := range models.SubmissionFields {
		if f == field {
			return field
		}
	}
	return "unexpected"
}
