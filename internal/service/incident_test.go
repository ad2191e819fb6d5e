package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/ireporter/internal/models"
	"github.com/shenikar/ireporter/internal/service/mocks"
	"github.com/shenikar/ireporter/internal/webhook"
	webhook_mocks "github.com/shenikar/ireporter/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	regularUser = &models.User{ID: 1, Username: "jondo"}
	otherUser   = &models.User{ID: 2, Username: "janedo"}
	adminUser   = &models.User{ID: 3, Username: "admin", IsAdmin: true}
)

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewIncidentService(repoMock, logger, webhookMock)
	return service.(*incidentService), repoMock, webhookMock
}

func storedIncident(id, createdBy int64) *models.Incident {
	return &models.Incident{
		ID:        id,
		CreatedBy: createdBy,
		Type:      models.IncidentTypeRedFlag,
		Location:  "12NE",
		Comment:   "comment",
		Status:    models.StatusDraft,
	}
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentToCreate := &models.Incident{
		Type:     "RED-FLAG",
		Location: " 12NE ",
		Comment:  "comment",
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *models.Incident) error {
			assert.Equal(t, regularUser.ID, inc.CreatedBy)
			assert.Equal(t, "12NE", inc.Location)
			inc.ID = 1
			return nil
		}).Times(1)

	// Действие
	err := service.CreateIncident(ctx, regularUser, incidentToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(1), incidentToCreate.ID)
	assert.Equal(t, models.StatusDraft, incidentToCreate.Status)
}

func TestCreateIncident_AdminForbidden(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие: даже невалидные данные не доходят до проверки
	err := service.CreateIncident(ctx, adminUser, &models.Incident{})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, err, ErrAdminCannotCreate)
}

func TestCreateIncident_MissingField(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CreateIncident(ctx, regularUser, &models.Incident{Type: "RED-FLAG", Location: "12NE", Comment: "   "})

	// Проверки
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateIncident_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("boom")).Times(1)

	// Действие
	err := service.CreateIncident(ctx, regularUser, &models.Incident{Type: "RED-FLAG", Location: "12NE", Comment: "comment"})

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create incident")
}

func TestGetIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := storedIncident(1, regularUser.ID)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(1)).Return(expected, nil).Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, 1)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, int64(7)).
		Return(nil, fmt.Errorf("incident with id 7: %w", models.ErrIncidentNotFound)).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, 7)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
	assert.ErrorContains(t, err, "could not get incident")
}

func TestListIncidents_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := []*models.Incident{storedIncident(1, 1), storedIncident(2, 1)}

	// Ожидания
	repoMock.EXPECT().List(ctx).Return(expected, nil).Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestDeleteIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	gomock.InOrder(
		repoMock.EXPECT().GetByID(ctx, int64(1)).Return(storedIncident(1, regularUser.ID), nil),
		repoMock.EXPECT().Delete(ctx, int64(1)).Return(nil),
	)

	// Действие
	err := service.DeleteIncident(ctx, regularUser, 1)

	// Проверки
	require.NoError(t, err)
}

func TestDeleteIncident_NotCreator(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(1)).Return(storedIncident(1, regularUser.ID), nil).Times(1)
	repoMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.DeleteIncident(ctx, otherUser, 1)

	// Проверки
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(2)).Return(nil, models.ErrIncidentNotFound).Times(1)

	// Действие
	err := service.DeleteIncident(ctx, regularUser, 2)

	// Проверки
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestUpdateLocation_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	updated := storedIncident(1, regularUser.ID)
	updated.Location = "5S10E"

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(1)).Return(storedIncident(1, regularUser.ID), nil).Times(1)
	repoMock.EXPECT().
		Update(ctx, int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, patch models.IncidentPatch) (*models.Incident, *models.Incident, error) {
			require.NotNil(t, patch.Location)
			assert.Equal(t, "5S10E", *patch.Location)
			assert.Nil(t, patch.Comment)
			assert.Nil(t, patch.Status)
			return storedIncident(1, regularUser.ID), updated, nil
		}).Times(1)

	// Действие
	incident, err := service.UpdateLocation(ctx, regularUser, 1, "5S10E")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "5S10E", incident.Location)
}

func TestUpdateLocation_Blank(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)

	// Ожидания
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.UpdateLocation(context.Background(), regularUser, 1, "  ")

	// Проверки
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateComment_NotCreator(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(1)).Return(storedIncident(1, regularUser.ID), nil).Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.UpdateComment(ctx, otherUser, 1, "RED FLAG TEST TWO")

	// Проверки
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, err, ErrNotCreator)
}

func TestUpdateComment_AdminForbidden(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)

	// Ожидания
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.UpdateComment(context.Background(), adminUser, 1, "comment")

	// Проверки
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, err, ErrAdminCannotModify)
}

func TestUpdateStatus_Success(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	updated := storedIncident(1, regularUser.ID)
	updated.Status = models.StatusUnderInvestigation

	// Ожидания: предыдущий статус берется из того же вызова Update
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().
		Update(ctx, int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, patch models.IncidentPatch) (*models.Incident, *models.Incident, error) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, models.StatusUnderInvestigation, *patch.Status)
			return storedIncident(1, regularUser.ID), updated, nil
		}).Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.StatusChangeEvent) {
			assert.Equal(t, int64(1), event.IncidentID)
			assert.Equal(t, regularUser.ID, event.OwnerID)
			assert.Equal(t, adminUser.ID, event.ChangedBy)
			assert.Equal(t, models.StatusDraft, event.PreviousStatus)
			assert.Equal(t, models.StatusUnderInvestigation, event.Status)
		}).Return(nil).Times(1)

	// Действие
	incident, err := service.UpdateStatus(ctx, adminUser, 1, "under investigation")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderInvestigation, incident.Status)
}

func TestUpdateStatus_PublishErrorIsNotFatal(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	updated := storedIncident(1, regularUser.ID)
	updated.Status = models.StatusResolved

	// Ожидания
	repoMock.EXPECT().Update(ctx, int64(1), gomock.Any()).Return(storedIncident(1, regularUser.ID), updated, nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	// Действие
	incident, err := service.UpdateStatus(ctx, adminUser, 1, "RESOLVED")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, incident.Status)
}

func TestUpdateStatus_RegularUserForbidden(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestIncidentService(t)

	// Ожидания
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.UpdateStatus(context.Background(), regularUser, 1, "RESOLVED")

	// Проверки
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)

	// Ожидания
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.UpdateStatus(context.Background(), adminUser, 1, "CLOSED")

	// Проверки
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Update(ctx, int64(9), gomock.Any()).
		Return(nil, nil, fmt.Errorf("incident with id 9 not found for update: %w", models.ErrIncidentNotFound)).
		Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.UpdateStatus(ctx, adminUser, 9, "REJECTED")

	// Проверки
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
	assert.ErrorContains(t, err, "not found for update")
}

func TestUpdateStatus_PreviousStatusFromSameUpdate(t *testing.T) {
	// Подготовка: между чтением и записью статус уже поменял другой администратор
	service, repoMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	before := storedIncident(1, regularUser.ID)
	before.Status = models.StatusRejected
	after := storedIncident(1, regularUser.ID)
	after.Status = models.StatusResolved

	// Ожидания
	repoMock.EXPECT().Update(ctx, int64(1), gomock.Any()).Return(before, after, nil).Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.StatusChangeEvent) {
			assert.Equal(t, models.StatusRejected, event.PreviousStatus)
			assert.Equal(t, models.StatusResolved, event.Status)
		}).Return(nil).Times(1)

	// Действие
	_, err := service.UpdateStatus(ctx, adminUser, 1, "RESOLVED")

	// Проверки
	require.NoError(t, err)
}
