package guest

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	guestRepo "weddinghub/database/repository/guest"
	userRepo "weddinghub/database/repository/user"
	"weddinghub/models"
	"weddinghub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ForbiddenError signals access to another customer's guest list.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	return e.Reason
}

// NotFoundError signals a missing guest.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("guest %s not found", e.ID)
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// GuestInput carries a guest list entry.
type GuestInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Side     string `json:"side,omitempty"`
	Category string `json:"category,omitempty"`
}

// SendResult reports the outcome of an invitation batch. Failures carry the
// guest name and the reason.
type SendResult struct {
	Sent     int      `json:"sent"`
	Skipped  int      `json:"skipped"`
	Failures []string `json:"failures,omitempty"`
}

// GuestService manages a customer's guest list and invitation sending.
type GuestService interface {
	AddGuest(actor *models.User, in GuestInput) (*models.Guest, error)
	UpdateGuest(actor *models.User, guestID string, in GuestInput) (*models.Guest, error)
	RemoveGuest(actor *models.User, guestID string) error
	ListGuests(actor *models.User) ([]models.Guest, error)
	// SendInvitations mails the customer's invitation to every guest with an
	// email address that has not been invited yet.
	SendInvitations(userID string) (*SendResult, error)
}

// DefaultGuestService implements GuestService.
type DefaultGuestService struct {
	Repo   guestRepo.GuestRepository
	Users  userRepo.UserRepository
	Mailer utils.Mailer
}

// NewGuestService creates a GuestService.
func NewGuestService(repo guestRepo.GuestRepository, users userRepo.UserRepository, mailer utils.Mailer) *DefaultGuestService {
	return &DefaultGuestService{Repo: repo, Users: users, Mailer: mailer}
}

// invitationTemplate renders the invitation mail body from the customer's
// stored settings.
var invitationTemplate = template.Must(template.New("invitation").Parse(`
<div style="text-align:center;font-family:serif;">
  <h2>{{.BrideName}} &amp; {{.GroomName}}</h2>
  <p>request the pleasure of your company, {{.GuestName}}</p>
  <p><strong>{{.WeddingDate}}</strong>{{if .Time}} at {{.Time}}{{end}}</p>
  {{if .Venue}}<p>{{.Venue}}</p>{{end}}
  {{if .Message}}<p><em>{{.Message}}</em></p>{{end}}
</div>
`))

type invitationData struct {
	GuestName   string
	BrideName   string
	GroomName   string
	WeddingDate string
	Time        string
	Venue       string
	Message     string
}

// AddGuest adds an entry to the caller's guest list.
func (s *DefaultGuestService) AddGuest(actor *models.User, in GuestInput) (*models.Guest, error) {
	now := time.Now()
	g := &models.Guest{
		ID:        uuid.New().String(),
		OwnerID:   actor.ID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Side:      in.Side,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

// loadOwned fetches a guest and checks the actor owns it.
func (s *DefaultGuestService) loadOwned(actor *models.User, guestID string) (*models.Guest, error) {
	g, err := s.Repo.GetByID(guestID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, NotFoundError{ID: guestID}
	}
	if g.OwnerID != actor.ID {
		return nil, ForbiddenError{Reason: "not authorized to access this guest"}
	}
	return g, nil
}

// UpdateGuest edits a guest list entry.
func (s *DefaultGuestService) UpdateGuest(actor *models.User, guestID string, in GuestInput) (*models.Guest, error) {
	g, err := s.loadOwned(actor, guestID)
	if err != nil {
		return nil, err
	}

	g.Name = in.Name
	g.Email = in.Email
	g.Phone = in.Phone
	g.Side = in.Side
	g.Category = in.Category
	g.UpdatedAt = time.Now()

	if err := s.Repo.Update(g); err != nil {
		return nil, err
	}
	return g, nil
}

// RemoveGuest drops a guest list entry.
func (s *DefaultGuestService) RemoveGuest(actor *models.User, guestID string) error {
	if _, err := s.loadOwned(actor, guestID); err != nil {
		return err
	}
	return s.Repo.Delete(guestID)
}

// ListGuests lists the caller's guests.
func (s *DefaultGuestService) ListGuests(actor *models.User) ([]models.Guest, error) {
	return s.Repo.FindByOwner(actor.ID)
}

// SendInvitations renders and mails the invitation to every uninvited guest
// with an email address. One guest failing does not stop the batch; each
// failure is collected in the result.
func (s *DefaultGuestService) SendInvitations(userID string) (*SendResult, error) {
	logger := utils.GetLogger()

	owner, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("owner lookup failed: %w", err)
	}
	if owner == nil {
		return nil, ValidationError{Message: "user not found"}
	}
	setting := owner.InvitationSetting
	if setting.WeddingDate == "" {
		return nil, ValidationError{Message: "invitation settings are not configured"}
	}

	guests, err := s.Repo.FindByOwner(userID)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("You're invited: %s & %s", setting.BrideName, setting.GroomName)
	result := &SendResult{}
	for _, g := range guests {
		if g.InvitationSent || g.Email == "" {
			result.Skipped++
			continue
		}

		var body bytes.Buffer
		err := invitationTemplate.Execute(&body, invitationData{
			GuestName:   g.Name,
			BrideName:   setting.BrideName,
			GroomName:   setting.GroomName,
			WeddingDate: setting.WeddingDate,
			Time:        setting.Time,
			Venue:       setting.Venue,
			Message:     setting.Message,
		})
		if err != nil {
			result.Failures = append(result.Failures, fmt.Sprintf("%s: %v", g.Name, err))
			continue
		}

		if err := s.Mailer.Send(g.Email, subject, body.String()); err != nil {
			logger.Warn("invitation delivery failed",
				zap.String("guestId", g.ID),
				zap.Error(err),
			)
			result.Failures = append(result.Failures, fmt.Sprintf("%s: %v", g.Name, err))
			continue
		}

		if err := s.Repo.MarkInvited(g.ID); err != nil {
			logger.Warn("failed to mark guest invited",
				zap.String("guestId", g.ID),
				zap.Error(err),
			)
		}
		result.Sent++
	}

	logger.Info("invitation batch finished",
		zap.String("userId", userID),
		zap.Int("sent", result.Sent),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", len(result.Failures)),
	)
	return result, nil
}
