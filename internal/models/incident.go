package models

import (
	"strings"
	"time"
)

// Status - статус жизненного цикла инцидента
type Status string

const (
	StatusDraft              Status = "DRAFT"
	StatusUnderInvestigation Status = "UNDER_INVESTIGATION"
	StatusResolved           Status = "RESOLVED"
	StatusRejected           Status = "REJECTED"
)

// IncidentTypeRedFlag - тип инцидента по умолчанию для /red-flags
const IncidentTypeRedFlag = "RED-FLAG"

// ParseStatus приводит строку к каноническому статусу.
// "under investigation", "Under-Investigation" и "UNDER_INVESTIGATION" дают один и тот же результат.
func ParseStatus(raw string) (Status, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.Join(strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")

	switch s := Status(normalized); s {
	case StatusDraft, StatusUnderInvestigation, StatusResolved, StatusRejected:
		return s, true
	}
	return "", false
}

type Incident struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdOn"`
	CreatedBy int64     `json:"createdBy"`
	Type      string    `json:"type"`
	Comment   string    `json:"comment"`
	Location  string    `json:"location"`
	Status    Status    `json:"status"`
	Images    []string  `json:"images"`
	Videos    []string  `json:"videos"`
}

// Clone возвращает глубокую копию инцидента
func (i *Incident) Clone() *Incident {
	if i == nil {
		return nil
	}
	c := *i
	c.Images = append(make([]string, 0, len(i.Images)), i.Images...)
	c.Videos = append(make([]string, 0, len(i.Videos)), i.Videos...)
	return &c
}

// IncidentPatch описывает частичное обновление инцидента, nil-поля не меняются
type IncidentPatch struct {
	Location *string
	Comment  *string
	Status   *Status
}

// IsEmpty сообщает, что патч ничего не меняет
func (p IncidentPatch) IsEmpty() bool {
	return p.Location == nil && p.Comment == nil && p.Status == nil
}

// Apply применяет патч к инциденту
func (p IncidentPatch) Apply(incident *Incident) {
	if p.Location != nil {
		incident.Location = *p.Location
	}
	if p.Comment != nil {
		incident.Comment = *p.Comment
	}
	if p.Status != nil {
		incident.Status = *p.Status
	}
}
