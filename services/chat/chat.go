package chat

import (
	"fmt"
	"time"

	chatRepo "weddinghub/database/repository/chat"
	userRepo "weddinghub/database/repository/user"
	"weddinghub/models"

	"github.com/google/uuid"
)

// ForbiddenError signals a chat attempt outside the customer↔vendor pairing.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	return e.Reason
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// SendMessageInput carries a chat message request.
type SendMessageInput struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// ChatService handles direct messaging between customers and vendors.
type ChatService interface {
	// SendMessage stores a message. Chats only run between a customer and a
	// vendor; sending within the same role is rejected.
	SendMessage(actor *models.User, in SendMessageInput) (*models.ChatMessage, error)
	// GetConversation lists the messages between the actor and another user,
	// oldest first.
	GetConversation(actor *models.User, otherUserID string) ([]models.ChatMessage, error)
	// ListPartners summarizes everyone the actor has chatted with, most
	// recent conversation first.
	ListPartners(actor *models.User) ([]models.ChatPartner, error)
}

// DefaultChatService implements ChatService.
type DefaultChatService struct {
	Repo  chatRepo.ChatRepository
	Users userRepo.UserRepository
}

// NewChatService creates a ChatService.
func NewChatService(repo chatRepo.ChatRepository, users userRepo.UserRepository) *DefaultChatService {
	return &DefaultChatService{Repo: repo, Users: users}
}

// SendMessage validates the pairing and persists the message.
func (s *DefaultChatService) SendMessage(actor *models.User, in SendMessageInput) (*models.ChatMessage, error) {
	if in.ReceiverID == actor.ID {
		return nil, ValidationError{Message: "cannot message yourself"}
	}

	receiver, err := s.Users.GetByID(in.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("receiver lookup failed: %w", err)
	}
	if receiver == nil {
		return nil, ValidationError{Message: "receiver not found"}
	}
	if receiver.Role == actor.Role {
		return nil, ForbiddenError{Reason: "chats run between a customer and a vendor"}
	}

	// Vendors need a tier with chat enabled, whichever side starts the
	// conversation.
	vendor := receiver
	if actor.IsVendor() {
		vendor = actor
	}
	if !models.TierFeatures(vendor.VendorPackage).ChatWithCustomer {
		return nil, ForbiddenError{Reason: "chat is not available on this vendor's plan"}
	}

	msg := &models.ChatMessage{
		ID:         uuid.New().String(),
		SenderID:   actor.ID,
		ReceiverID: in.ReceiverID,
		Message:    in.Message,
		Timestamp:  time.Now(),
	}
	if err := s.Repo.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// GetConversation lists the messages between the actor and another user.
func (s *DefaultChatService) GetConversation(actor *models.User, otherUserID string) ([]models.ChatMessage, error) {
	return s.Repo.FindConversation(actor.ID, otherUserID)
}

// ListPartners folds the actor's message history into one entry per partner,
// carrying the latest message. Partners whose accounts are gone are skipped.
func (s *DefaultChatService) ListPartners(actor *models.User) ([]models.ChatPartner, error) {
	msgs, err := s.Repo.FindByParticipant(actor.ID)
	if err != nil {
		return nil, err
	}

	partners := []models.ChatPartner{}
	seen := map[string]bool{}
	for _, m := range msgs {
		otherID := m.SenderID
		if otherID == actor.ID {
			otherID = m.ReceiverID
		}
		if seen[otherID] {
			continue
		}
		seen[otherID] = true

		other, err := s.Users.GetByID(otherID)
		if err != nil {
			return nil, fmt.Errorf("partner lookup failed: %w", err)
		}
		if other == nil {
			continue
		}
		partners = append(partners, models.ChatPartner{
			UserID:          other.ID,
			Name:            other.Name,
			Role:            other.Role,
			LastMessage:     m.Message,
			LastMessageTime: m.Timestamp,
		})
	}
	return partners, nil
}
