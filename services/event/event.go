package event

import (
	"fmt"
	"time"

	eventRepo "weddinghub/database/repository/event"
	"weddinghub/models"

	"github.com/google/uuid"
)

// ForbiddenError signals access to another customer's event.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	return e.Reason
}

// NotFoundError signals a missing event.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("event %s not found", e.ID)
}

// EventInput carries a timeline event.
type EventInput struct {
	Name string    `json:"name" binding:"required"`
	Date time.Time `json:"date" binding:"required"`
}

// EventService manages a customer's wedding timeline.
type EventService interface {
	AddEvent(actor *models.User, in EventInput) (*models.Event, error)
	UpdateEvent(actor *models.User, eventID string, in EventInput) (*models.Event, error)
	RemoveEvent(actor *models.User, eventID string) error
	ListEvents(actor *models.User) ([]models.Event, error)
}

// DefaultEventService implements EventService.
type DefaultEventService struct {
	Repo eventRepo.EventRepository
}

// NewEventService creates an EventService.
func NewEventService(repo eventRepo.EventRepository) *DefaultEventService {
	return &DefaultEventService{Repo: repo}
}

// AddEvent adds a milestone to the caller's timeline.
func (s *DefaultEventService) AddEvent(actor *models.User, in EventInput) (*models.Event, error) {
	now := time.Now()
	e := &models.Event{
		ID:        uuid.New().String(),
		OwnerID:   actor.ID,
		Name:      in.Name,
		Date:      in.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *DefaultEventService) loadOwned(actor *models.User, eventID string) (*models.Event, error) {
	e, err := s.Repo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, NotFoundError{ID: eventID}
	}
	if e.OwnerID != actor.ID {
		return nil, ForbiddenError{Reason: "not authorized to access this event"}
	}
	return e, nil
}

// UpdateEvent edits a timeline event.
func (s *DefaultEventService) UpdateEvent(actor *models.User, eventID string, in EventInput) (*models.Event, error) {
	e, err := s.loadOwned(actor, eventID)
	if err != nil {
		return nil, err
	}

	e.Name = in.Name
	e.Date = in.Date
	e.UpdatedAt = time.Now()

	if err := s.Repo.Update(e); err != nil {
		return nil, err
	}
	return e, nil
}

// RemoveEvent drops a timeline event.
func (s *DefaultEventService) RemoveEvent(actor *models.User, eventID string) error {
	if _, err := s.loadOwned(actor, eventID); err != nil {
		return err
	}
	return s.Repo.Delete(eventID)
}

// ListEvents lists the caller's events ordered by date.
func (s *DefaultEventService) ListEvents(actor *models.User) ([]models.Event, error) {
	return s.Repo.FindByOwner(actor.ID)
}
