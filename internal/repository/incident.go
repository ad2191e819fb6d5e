package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shenikar/ireporter/internal/models"
	"github.com/shenikar/ireporter/internal/service"
)

// IncidentRepository хранит инциденты в памяти процесса.
// Наружу всегда отдаются копии, id выдаются монотонным счетчиком и не переиспользуются.
type IncidentRepository struct {
	mu        sync.RWMutex
	incidents map[int64]*models.Incident
	lastID    int64
	now       func() time.Time
}

func NewIncidentRepository() service.IncidentRepository {
	return newIncidentRepository()
}

func newIncidentRepository() *IncidentRepository {
	return &IncidentRepository{
		incidents: make(map[int64]*models.Incident),
		now:       time.Now,
	}
}

// Create сохраняет новый инцидент, проставляя id, дату создания и значения по умолчанию
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	incident.ID = r.lastID
	incident.CreatedAt = r.now().UTC()
	if incident.Status == "" {
		incident.Status = models.StatusDraft
	}
	if incident.Images == nil {
		incident.Images = []string{}
	}
	if incident.Videos == nil {
		incident.Videos = []string{}
	}

	r.incidents[incident.ID] = incident.Clone()
	return nil
}

// GetByID возвращает копию инцидента по id
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incident, ok := r.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %d: %w", id, models.ErrIncidentNotFound)
	}
	return incident.Clone(), nil
}

// Delete удаляет инцидент по id
func (r *IncidentRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.incidents[id]; !ok {
		return fmt.Errorf("incident with id %d not found for delete: %w", id, models.ErrIncidentNotFound)
	}
	delete(r.incidents, id)
	return nil
}

// List возвращает копии всех инцидентов в порядке создания
func (r *IncidentRepository) List(ctx context.Context) ([]*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]*models.Incident, 0, len(r.incidents))
	for _, incident := range r.incidents {
		incidents = append(incidents, incident.Clone())
	}
	slices.SortFunc(incidents, func(a, b *models.Incident) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return incidents, nil
}

// Update применяет патч к хранимому инциденту.
// Копии до и после изменения снимаются под одной блокировкой.
func (r *IncidentRepository) Update(ctx context.Context, id int64, patch models.IncidentPatch) (*models.Incident, *models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	incident, ok := r.incidents[id]
	if !ok {
		return nil, nil, fmt.Errorf("incident with id %d not found for update: %w", id, models.ErrIncidentNotFound)
	}
	previous := incident.Clone()
	patch.Apply(incident)
	return previous, incident.Clone(), nil
}
