package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shenikar/ireporter/internal/models"
	"github.com/shenikar/ireporter/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	msgRedFlagCreated         = "Create red-flag record"
	msgRedFlagDeleted         = "red-flag record has been deleted"
	msgLocationUpdated        = "Updated red-flag record’s location"
	msgCommentUpdated         = "Updated red-flag record’s comment"
	msgStatusUpdated          = "Updated red-flag record’s status"
	msgNoRedFlags             = "no red-flag has been added yet"
	msgBadRedFlagID           = "red-flag id must be an Integer"
	msgOnlyRegularCreate      = "Only regular users can create a red-flag"
	msgOnlyRegularModify      = "Only regular users can modify a red-flag"
	msgOnlyAdminStatus        = "Only administrators can change a red-flag status"
	msgNotCreator             = "Only the creator of a red-flag can modify it"
	msgOperationForbidden     = "You are not allowed to perform this operation"
	msgInvalidRequestBody     = "invalid request body"
	msgInternalServerError    = "internal server error"
	msgUnknownRedFlagStatusFm = "status must be one of %s, %s, %s, %s"
)

type Handler struct {
	incidentService service.IncidentService
	authService     service.AuthService
	logger          *logrus.Logger
	validate        *validator.Validate
}

func NewHandler(incidentService service.IncidentService, authService service.AuthService, logger *logrus.Logger) *Handler {
	return &Handler{
		incidentService: incidentService,
		authService:     authService,
		logger:          logger,
		validate:        newValidator(),
	}
}

// newValidator регистрирует собственные теги валидации, ошибка регистрации приводит к panic
func newValidator() *validator.Validate {
	v := validator.New()
	mustRegisterValidation(v, "notblank", validators.NotBlank)
	// username из одних цифр не допускается
	mustRegisterValidation(v, "has_letter", func(fl validator.FieldLevel) bool {
		return service.HasNonDigit(fl.Field().String())
	})
	return v
}

func mustRegisterValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("v1: could not register validation %q: %v", tag, err))
	}
}

// @Summary Create a new red-flag
// @Description Create a red-flag record. Only regular users may create records.
// @Tags Red-flags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest true "Red-flag creation request"
// @Success 201 {object} RecordResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/red-flags [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), currentUser(c), model); err != nil {
		h.respondServiceError(c, log, err, 0)
		return
	}
	c.JSON(http.StatusCreated, RecordResponse{
		Status: http.StatusCreated,
		Data:   []RecordMessage{{ID: model.ID, Message: msgRedFlagCreated}},
	})
}

// @Summary Get all red-flags
// @Description Get every red-flag record in creation order.
// @Tags Red-flags
// @Produce json
// @Security BearerAuth
// @Success 200 {object} IncidentsResponse
// @Failure 401 {object} AuthErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No red-flags yet"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/red-flags [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err, 0)
		return
	}
	if len(incidents) == 0 {
		abortWithError(c, http.StatusNotFound, msgNoRedFlags)
		return
	}

	c.JSON(http.StatusOK, IncidentsResponse{Status: http.StatusOK, Data: ModelsToIncidentResponses(incidents)})
}

// @Summary Get red-flag by ID
// @Description Get a single red-flag record by its ID.
// @Tags Red-flags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Red-flag ID"
// @Success 200 {object} IncidentsResponse
// @Failure 400 {object} ErrorResponse "Invalid red-flag ID"
// @Failure 401 {object} AuthErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Red-flag not found"
// @Router /api/v1/red-flags/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, log, err, id)
		return
	}
	c.JSON(http.StatusOK, IncidentsResponse{
		Status: http.StatusOK,
		Data:   []*IncidentResponse{ModelToIncidentResponse(incident)},
	})
}

// @Summary Delete a red-flag
// @Description Delete a red-flag record. Only its creator may delete it.
// @Tags Red-flags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Red-flag ID"
// @Success 200 {object} RecordResponse
// @Failure 400 {object} ErrorResponse "Invalid red-flag ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Red-flag not found"
// @Router /api/v1/red-flags/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), currentUser(c), id); err != nil {
		h.respondServiceError(c, log, err, id)
		return
	}
	c.JSON(http.StatusOK, RecordResponse{
		Status: http.StatusOK,
		Data:   []RecordMessage{{ID: id, Message: msgRedFlagDeleted}},
	})
}

// @Summary Update red-flag location
// @Description Replace the location of a red-flag record. Only its creator may edit it.
// @Tags Red-flags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Red-flag ID"
// @Param location body UpdateLocationRequest true "New location"
// @Success 200 {object} RecordResponse
// @Failure 400 {object} ErrorResponse "Invalid red-flag ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Red-flag not found"
// @Router /api/v1/red-flags/{id}/location [put]
func (h *Handler) updateLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateLocation").WithField("id", id)

	var input UpdateLocationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if _, err := h.incidentService.UpdateLocation(c.Request.Context(), currentUser(c), id, input.Location); err != nil {
		h.respondServiceError(c, log, err, id)
		return
	}
	c.JSON(http.StatusOK, RecordResponse{
		Status: http.StatusOK,
		Data:   []RecordMessage{{ID: id, Message: msgLocationUpdated}},
	})
}

// @Summary Update red-flag comment
// @Description Replace the comment of a red-flag record. Only its creator may edit it.
// @Tags Red-flags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Red-flag ID"
// @Param comment body UpdateCommentRequest true "New comment"
// @Success 200 {object} RecordResponse
// @Failure 400 {object} ErrorResponse "Invalid red-flag ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Red-flag not found"
// @Router /api/v1/red-flags/{id}/comment [put]
func (h *Handler) updateComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateComment").WithField("id", id)

	var input UpdateCommentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if _, err := h.incidentService.UpdateComment(c.Request.Context(), currentUser(c), id, input.Comment); err != nil {
		h.respondServiceError(c, log, err, id)
		return
	}
	c.JSON(http.StatusOK, RecordResponse{
		Status: http.StatusOK,
		Data:   []RecordMessage{{ID: id, Message: msgCommentUpdated}},
	})
}

// @Summary Update red-flag status
// @Description Change the status of a red-flag record. Administrators only.
// @Tags Red-flags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Red-flag ID"
// @Param status body UpdateStatusRequest true "New status: DRAFT, UNDER_INVESTIGATION, RESOLVED or REJECTED"
// @Success 200 {object} RecordResponse
// @Failure 400 {object} ErrorResponse "Invalid red-flag ID, request body or status"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Red-flag not found"
// @Router /api/v1/red-flags/{id}/status [put]
func (h *Handler) updateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if _, err := h.incidentService.UpdateStatus(c.Request.Context(), currentUser(c), id, input.Status); err != nil {
		h.respondServiceError(c, log, err, id)
		return
	}
	c.JSON(http.StatusOK, RecordResponse{
		Status: http.StatusOK,
		Data:   []RecordMessage{{ID: id, Message: msgStatusUpdated}},
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /api/v1/system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID разбирает :id, допускаются только десятичные цифры
func parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	for _, r := range raw {
		if r < '0' || r > '9' {
			raw = ""
			break
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, msgBadRedFlagID)
		return 0, false
	}
	return id, true
}

func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		abortWithError(c, http.StatusBadRequest, msgInvalidRequestBody)
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		abortWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// respondServiceError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error, id int64) {
	switch {
	case errors.Is(err, models.ErrIncidentNotFound):
		log.WithError(err).Warn("Red-flag not found")
		abortWithError(c, http.StatusNotFound, fmt.Sprintf("red flag with id %d doesn't exist", id))
	case errors.Is(err, service.ErrInvalidStatus):
		log.WithError(err).Warn("Unknown status")
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf(msgUnknownRedFlagStatusFm,
			models.StatusDraft, models.StatusUnderInvestigation, models.StatusResolved, models.StatusRejected))
	case errors.Is(err, service.ErrValidation):
		log.WithError(err).Warn("Validation failed")
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		log.WithError(err).Warn("Operation not permitted")
		abortWithError(c, http.StatusUnauthorized, forbiddenMessage(err))
	default:
		log.WithError(err).Error("Failed to process request in service")
		abortWithError(c, http.StatusInternalServerError, msgInternalServerError)
	}
}

// forbiddenMessage выбирает текст ответа по причине отказа
func forbiddenMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrAdminCannotCreate):
		return msgOnlyRegularCreate
	case errors.Is(err, service.ErrAdminCannotModify):
		return msgOnlyRegularModify
	case errors.Is(err, service.ErrNotAdmin):
		return msgOnlyAdminStatus
	case errors.Is(err, service.ErrNotCreator):
		return msgNotCreator
	}
	return msgOperationForbidden
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Status: status, Message: message})
}
