package chat

import (
	"errors"
	"testing"
	"time"

	"weddinghub/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeChatRepo struct {
	messages []models.ChatMessage
}

func (r *fakeChatRepo) Create(msg *models.ChatMessage) error {
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeChatRepo) FindConversation(userID, otherUserID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range r.messages {
		if (m.SenderID == userID && m.ReceiverID == otherUserID) ||
			(m.SenderID == otherUserID && m.ReceiverID == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) FindByParticipant(userID string) ([]models.ChatMessage, error) {
	// Newest first.
	var out []models.ChatMessage
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := r.messages[i]
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) Create(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Update(u *models.User) error                   { return nil }
func (r *fakeUserRepo) UpdateFields(id string, fields bson.M) (*models.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Delete(id string) error                               { return nil }
func (r *fakeUserRepo) FindVendors(projection bson.M) ([]models.User, error) { return nil, nil }

var (
	customer  = &models.User{ID: "cust-1", Name: "Asha", Role: models.RoleCustomer}
	customer2 = &models.User{ID: "cust-2", Name: "Ben", Role: models.RoleCustomer}
	vendorStd = &models.User{ID: "vend-1", Name: "Blooms", Role: models.RoleVendor, VendorPackage: models.TierStandard}
	vendorBas = &models.User{ID: "vend-2", Name: "Cakes", Role: models.RoleVendor, VendorPackage: models.TierBasic}
)

func newTestService() (*DefaultChatService, *fakeChatRepo) {
	repo := &fakeChatRepo{}
	svc := NewChatService(repo, &fakeUserRepo{users: map[string]*models.User{
		customer.ID:  customer,
		customer2.ID: customer2,
		vendorStd.ID: vendorStd,
		vendorBas.ID: vendorBas,
	}})
	return svc, repo
}

func TestSendMessagePairing(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.SendMessage(customer, SendMessageInput{ReceiverID: vendorStd.ID, Message: "hi"}); err != nil {
		t.Fatalf("customer to vendor: %v", err)
	}
	if _, err := svc.SendMessage(vendorStd, SendMessageInput{ReceiverID: customer.ID, Message: "hello"}); err != nil {
		t.Fatalf("vendor to customer: %v", err)
	}

	var forbidden ForbiddenError
	if _, err := svc.SendMessage(customer, SendMessageInput{ReceiverID: customer2.ID, Message: "hey"}); !errors.As(err, &forbidden) {
		t.Fatalf("customer to customer: got %v, want ForbiddenError", err)
	}

	var validation ValidationError
	if _, err := svc.SendMessage(customer, SendMessageInput{ReceiverID: customer.ID, Message: "me"}); !errors.As(err, &validation) {
		t.Fatalf("self message: got %v, want ValidationError", err)
	}
	if _, err := svc.SendMessage(customer, SendMessageInput{ReceiverID: "ghost", Message: "?"}); !errors.As(err, &validation) {
		t.Fatalf("unknown receiver: got %v, want ValidationError", err)
	}
}

func TestSendMessageTierGate(t *testing.T) {
	svc, _ := newTestService()

	var forbidden ForbiddenError
	if _, err := svc.SendMessage(customer, SendMessageInput{ReceiverID: vendorBas.ID, Message: "hi"}); !errors.As(err, &forbidden) {
		t.Fatalf("basic-tier vendor: got %v, want ForbiddenError", err)
	}
	if _, err := svc.SendMessage(vendorBas, SendMessageInput{ReceiverID: customer.ID, Message: "hi"}); !errors.As(err, &forbidden) {
		t.Fatalf("basic-tier vendor sending: got %v, want ForbiddenError", err)
	}
}

func TestListPartners(t *testing.T) {
	svc, repo := newTestService()

	base := time.Now()
	repo.messages = []models.ChatMessage{
		{ID: "1", SenderID: customer.ID, ReceiverID: vendorStd.ID, Message: "first", Timestamp: base},
		{ID: "2", SenderID: vendorStd.ID, ReceiverID: customer.ID, Message: "reply", Timestamp: base.Add(time.Minute)},
		{ID: "3", SenderID: customer.ID, ReceiverID: vendorBas.ID, Message: "other", Timestamp: base.Add(2 * time.Minute)},
	}

	partners, err := svc.ListPartners(customer)
	if err != nil {
		t.Fatalf("list partners: %v", err)
	}
	if len(partners) != 2 {
		t.Fatalf("partners = %d, want 2", len(partners))
	}
	// Newest conversation first; each partner appears once with the latest
	// message.
	if partners[0].UserID != vendorBas.ID || partners[0].LastMessage != "other" {
		t.Fatalf("first partner = %+v", partners[0])
	}
	if partners[1].UserID != vendorStd.ID || partners[1].LastMessage != "reply" {
		t.Fatalf("second partner = %+v", partners[1])
	}
}
