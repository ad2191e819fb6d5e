package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/ireporter/internal/models"
	"github.com/shenikar/ireporter/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, caller *models.User, incident *models.Incident) error
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	DeleteIncident(ctx context.Context, caller *models.User, id int64) error
	UpdateLocation(ctx context.Context, caller *models.User, id int64, location string) (*models.Incident, error)
	UpdateComment(ctx context.Context, caller *models.User, id int64, comment string) (*models.Incident, error)
	UpdateStatus(ctx context.Context, caller *models.User, id int64, status string) (*models.Incident, error)
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	publisher webhook.WebhookPublisher
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, publisher webhook.WebhookPublisher) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// CreateIncident создает инцидент от имени обычного пользователя
func (s *incidentService) CreateIncident(ctx context.Context, caller *models.User, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"user_id": caller.ID,
	})
	log.Info("Attempting to create a new incident")

	if caller.IsAdmin {
		log.Warn("Administrator attempted to create an incident")
		return fmt.Errorf("service: could not create incident: %w", ErrAdminCannotCreate)
	}

	incident.Type = strings.TrimSpace(incident.Type)
	incident.Location = strings.TrimSpace(incident.Location)
	incident.Comment = strings.TrimSpace(incident.Comment)
	if incident.Type == "" || incident.Location == "" || incident.Comment == "" {
		return fmt.Errorf("service: type, location and comment are required: %w", ErrValidation)
	}

	incident.CreatedBy = caller.ID
	incident.Status = models.StatusDraft
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// ListIncidents возвращает все инциденты в порядке создания
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// DeleteIncident удаляет инцидент, удалить может только его автор
func (s *incidentService) DeleteIncident(ctx context.Context, caller *models.User, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
		"user_id":     caller.ID,
	})
	log.Info("Attempting to delete incident")

	if _, err := s.ownedIncident(ctx, caller, id); err != nil {
		log.WithError(err).Warn("Refused to delete incident")
		return fmt.Errorf("service: could not delete incident %d: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident %d: %w", id, err)
	}

	log.Info("Incident deleted successfully")
	return nil
}

// UpdateLocation заменяет location инцидента
func (s *incidentService) UpdateLocation(ctx context.Context, caller *models.User, id int64, location string) (*models.Incident, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("service: location is required: %w", ErrValidation)
	}
	return s.updateOwned(ctx, caller, id, "UpdateLocation", models.IncidentPatch{Location: &location})
}

// UpdateComment заменяет comment инцидента
func (s *incidentService) UpdateComment(ctx context.Context, caller *models.User, id int64, comment string) (*models.Incident, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("service: comment is required: %w", ErrValidation)
	}
	return s.updateOwned(ctx, caller, id, "UpdateComment", models.IncidentPatch{Comment: &comment})
}

// UpdateStatus меняет статус инцидента, доступно только администратору
func (s *incidentService) UpdateStatus(ctx context.Context, caller *models.User, id int64, rawStatus string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"user_id":     caller.ID,
	})
	log.Info("Attempting to update incident status")

	if !caller.IsAdmin {
		log.Warn("Regular user attempted to change incident status")
		return nil, fmt.Errorf("service: could not update incident %d status: %w", id, ErrNotAdmin)
	}

	status, ok := models.ParseStatus(rawStatus)
	if !ok {
		return nil, fmt.Errorf("service: unknown status %q: %w", rawStatus, ErrInvalidStatus)
	}

	previous, updated, err := s.repo.Update(ctx, id, models.IncidentPatch{Status: &status})
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.WithError(err).Warn("Attempted to update status of a non-existent incident")
			return nil, fmt.Errorf("service: incident with id %d not found for update: %w", id, err)
		}
		log.WithError(err).Error("Failed to update incident status in repository")
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}

	event := webhook.StatusChangeEvent{
		IncidentID:     updated.ID,
		OwnerID:        updated.CreatedBy,
		ChangedBy:      caller.ID,
		PreviousStatus: previous.Status,
		Status:         updated.Status,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// статус уже изменен, неудачная отправка уведомления не отменяет запрос
		log.WithError(err).Warn("Failed to publish status change event")
	}

	log.WithField("status", updated.Status).Info("Incident status updated successfully")
	return updated, nil
}

func (s *incidentService) updateOwned(ctx context.Context, caller *models.User, id int64, method string, patch models.IncidentPatch) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      method,
		"incident_id": id,
		"user_id":     caller.ID,
	})
	log.Info("Attempting to update incident")

	if _, err := s.ownedIncident(ctx, caller, id); err != nil {
		log.WithError(err).Warn("Refused to update incident")
		return nil, fmt.Errorf("service: incident with id %d not updated: %w", id, err)
	}

	_, updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	log.Info("Incident updated successfully")
	return updated, nil
}

// ownedIncident возвращает инцидент, если caller - его автор и не администратор
func (s *incidentService) ownedIncident(ctx context.Context, caller *models.User, id int64) (*models.Incident, error) {
	if caller.IsAdmin {
		return nil, ErrAdminCannotModify
	}
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if incident.CreatedBy != caller.ID {
		return nil, ErrNotCreator
	}
	return incident, nil
}
