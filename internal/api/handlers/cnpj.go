package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/cnpj-dv/internal/cnpj"
	"github.com/nexconsult/cnpj-dv/internal/models"
	"github.com/nexconsult/cnpj-dv/internal/services"
	"github.com/sirupsen/logrus"
)

// CNPJHandler handles CNPJ validation and check digit requests
type CNPJHandler struct {
	cnpjService  services.CNPJServiceInterface
	cacheControl string
	logger       *logrus.Logger
}

// NewCNPJHandler creates a new CNPJ handler. Responses may be cached by
// clients for as long as the service caches results.
func NewCNPJHandler(cnpjService services.CNPJServiceInterface, cacheTTL time.Duration, logger *logrus.Logger) *CNPJHandler {
	return &CNPJHandler{
		cnpjService:  cnpjService,
		cacheControl: cacheControl(cacheTTL),
		logger:       logger,
	}
}

// ValidateCNPJ handles validation of a CNPJ given in the path
// @Summary Validate a CNPJ
// @Description Check a CNPJ against its own check digits. Accepts the masked form (slash URL-encoded) or the bare 14 character form.
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ, masked or bare" example(11222333000181)
// @Success 200 {object} models.ValidationResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cnpj/validate/{cnpj} [get]
func (h *CNPJHandler) ValidateCNPJ(c *gin.Context) {
	h.validate(c, PathInput(c.Param("cnpj")))
}

// ValidateCNPJBody handles validation of a CNPJ given in the request body
// @Summary Validate a CNPJ
// @Description Check a masked CNPJ (AA.AAA.AAA/AAAA-DD) against its own check digits
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.CNPJRequest true "CNPJ to validate"
// @Success 200 {object} models.ValidationResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cnpj/validate [post]
func (h *CNPJHandler) ValidateCNPJBody(c *gin.Context) {
	raw, ok := h.bindRequest(c)
	if !ok {
		return
	}
	h.validate(c, raw)
}

// GenerateCheckDigits handles check digit generation for a CNPJ given in the path
// @Summary Generate check digits
// @Description Compute the two check digits of a CNPJ root. Existing check digits are ignored.
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ root, masked or bare" example(112223330001)
// @Success 200 {object} models.GenerationResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cnpj/check-digits/{cnpj} [get]
func (h *CNPJHandler) GenerateCheckDigits(c *gin.Context) {
	h.generate(c, PathInput(c.Param("cnpj")))
}

// GenerateCheckDigitsBody handles check digit generation for a CNPJ given in the request body
// @Summary Generate check digits
// @Description Compute the two check digits of a masked CNPJ root (AA.AAA.AAA/AAAA)
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.CNPJRequest true "CNPJ root"
// @Success 200 {object} models.GenerationResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cnpj/check-digits [post]
func (h *CNPJHandler) GenerateCheckDigitsBody(c *gin.Context) {
	raw, ok := h.bindRequest(c)
	if !ok {
		return
	}
	h.generate(c, raw)
}

func (h *CNPJHandler) validate(c *gin.Context, raw string) {
	start := time.Now()

	result, err := h.cnpjService.Validate(c.Request.Context(), raw)
	if err != nil {
		h.respondError(c, raw, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"cnpj":       result.CNPJ,
		"valid":      result.Valid,
		"cache":      result.Cache,
		"duration":   time.Since(start),
	}).Info("CNPJ validation completed")

	h.setCacheHeader(c, result.Cache)
	c.JSON(http.StatusOK, result)
}

func (h *CNPJHandler) generate(c *gin.Context, raw string) {
	start := time.Now()

	result, err := h.cnpjService.Generate(c.Request.Context(), raw)
	if err != nil {
		h.respondError(c, raw, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id":   c.GetString("request_id"),
		"root":         result.Root,
		"check_digits": result.CheckDigits,
		"cache":        result.Cache,
		"duration":     time.Since(start),
	}).Info("Check digit generation completed")

	h.setCacheHeader(c, result.Cache)
	c.JSON(http.StatusOK, result)
}

func (h *CNPJHandler) bindRequest(c *gin.Context) (string, bool) {
	var request models.CNPJRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"error":      err.Error(),
		}).Warn("Invalid request body")

		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid request format",
			Message:   err.Error(),
			Code:      "INVALID_REQUEST",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return "", false
	}
	return request.CNPJ, true
}

// respondError renders err as an ErrorResponse. Format and length errors are
// client errors, anything else is a server error.
func (h *CNPJHandler) respondError(c *gin.Context, raw string, err error) {
	fields := logrus.Fields{
		"request_id": c.GetString("request_id"),
		"cnpj":       raw,
		"error":      err.Error(),
	}

	var (
		formatErr *cnpj.FormatError
		lengthErr *cnpj.LengthError
	)
	switch {
	case errors.As(err, &formatErr):
		h.logger.WithFields(fields).Warn("Invalid CNPJ format")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid CNPJ format",
			Message:   formatErr.Error(),
			Code:      "INVALID_CNPJ_FORMAT",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	case errors.As(err, &lengthErr):
		h.logger.WithFields(fields).Warn("Invalid CNPJ length")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid CNPJ length",
			Message:   lengthErr.Error(),
			Code:      "INVALID_CNPJ_LENGTH",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	default:
		h.logger.WithFields(fields).Error("CNPJ request failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Internal server error",
			Message:   "An unexpected error occurred while processing your request",
			Code:      "INTERNAL_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	}
}

// PathInput re-masks a bare 12 or 14 character path parameter so it can be
// parsed. Anything carrying punctuation is returned unchanged.
func PathInput(param string) string {
	param = strings.TrimSpace(param)
	if strings.ContainsAny(param, "./-") {
		return param
	}
	return cnpj.Mask(param)
}

func (h *CNPJHandler) setCacheHeader(c *gin.Context, hit bool) {
	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.Header("Cache-Control", h.cacheControl)
}

func cacheControl(ttl time.Duration) string {
	seconds := int64(ttl / time.Second)
	if seconds <= 0 {
		return "no-cache"
	}
	return "public, max-age=" + strconv.FormatInt(seconds, 10)
}
