package guest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"weddinghub/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeGuestRepo struct {
	guests map[string]*models.Guest
	order  []string
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{guests: make(map[string]*models.Guest)}
}

func (r *fakeGuestRepo) Create(g *models.Guest) error {
	cp := *g
	r.guests[g.ID] = &cp
	r.order = append(r.order, g.ID)
	return nil
}

func (r *fakeGuestRepo) GetByID(id string) (*models.Guest, error) {
	g, ok := r.guests[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGuestRepo) FindByOwner(ownerID string) ([]models.Guest, error) {
	var out []models.Guest
	for _, id := range r.order {
		g := r.guests[id]
		if g != nil && g.OwnerID == ownerID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGuestRepo) Update(g *models.Guest) error {
	if _, ok := r.guests[g.ID]; !ok {
		return errors.New("not found")
	}
	cp := *g
	r.guests[g.ID] = &cp
	return nil
}

func (r *fakeGuestRepo) Delete(id string) error {
	delete(r.guests, id)
	return nil
}

func (r *fakeGuestRepo) MarkInvited(id string) error {
	g, ok := r.guests[id]
	if !ok {
		return errors.New("not found")
	}
	g.InvitationSent = true
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error)       { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) Create(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Update(u *models.User) error                   { return nil }
func (r *fakeUserRepo) UpdateFields(id string, fields bson.M) (*models.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Delete(id string) error                               { return nil }
func (r *fakeUserRepo) FindVendors(projection bson.M) ([]models.User, error) { return nil, nil }

// fakeMailer records sends and fails addresses listed in failFor.
type fakeMailer struct {
	sent    []string
	bodies  []string
	failFor map[string]bool
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	if m.failFor[to] {
		return fmt.Errorf("relay refused %s", to)
	}
	m.sent = append(m.sent, to)
	m.bodies = append(m.bodies, htmlBody)
	return nil
}

var owner = &models.User{
	ID:   "cust-1",
	Role: models.RoleCustomer,
	InvitationSetting: models.InvitationSetting{
		WeddingDate: "2027-06-12",
		BrideName:   "Asha",
		GroomName:   "Ben",
		Venue:       "Rose Garden",
		Time:        "15:00",
	},
}

func newTestService(mailer *fakeMailer) (*DefaultGuestService, *fakeGuestRepo) {
	repo := newFakeGuestRepo()
	svc := NewGuestService(repo, &fakeUserRepo{users: map[string]*models.User{owner.ID: owner}}, mailer)
	return svc, repo
}

func TestGuestOwnership(t *testing.T) {
	svc, _ := newTestService(&fakeMailer{})
	stranger := &models.User{ID: "cust-2", Role: models.RoleCustomer}

	g, err := svc.AddGuest(owner, GuestInput{Name: "Maya", Email: "maya@example.com"})
	if err != nil {
		t.Fatalf("add guest: %v", err)
	}

	var forbidden ForbiddenError
	if _, err := svc.UpdateGuest(stranger, g.ID, GuestInput{Name: "X"}); !errors.As(err, &forbidden) {
		t.Fatalf("update by stranger: got %v, want ForbiddenError", err)
	}
	if err := svc.RemoveGuest(stranger, g.ID); !errors.As(err, &forbidden) {
		t.Fatalf("remove by stranger: got %v, want ForbiddenError", err)
	}

	var notFound NotFoundError
	if _, err := svc.UpdateGuest(owner, "missing", GuestInput{Name: "X"}); !errors.As(err, &notFound) {
		t.Fatalf("update missing: got %v, want NotFoundError", err)
	}

	if err := svc.RemoveGuest(owner, g.ID); err != nil {
		t.Fatalf("remove by owner: %v", err)
	}
}

func TestSendInvitations(t *testing.T) {
	mailer := &fakeMailer{failFor: map[string]bool{"bad@example.com": true}}
	svc, repo := newTestService(mailer)

	if _, err := svc.AddGuest(owner, GuestInput{Name: "Maya", Email: "maya@example.com"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddGuest(owner, GuestInput{Name: "NoMail", Phone: "123"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddGuest(owner, GuestInput{Name: "Flaky", Email: "bad@example.com"}); err != nil {
		t.Fatal(err)
	}
	already, err := svc.AddGuest(owner, GuestInput{Name: "Done", Email: "done@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.MarkInvited(already.ID); err != nil {
		t.Fatal(err)
	}

	result, err := svc.SendInvitations(owner.ID)
	if err != nil {
		t.Fatalf("send invitations: %v", err)
	}
	if result.Sent != 1 {
		t.Fatalf("sent = %d, want 1", result.Sent)
	}
	if result.Skipped != 2 {
		t.Fatalf("skipped = %d, want 2 (no email + already invited)", result.Skipped)
	}
	if len(result.Failures) != 1 || !strings.Contains(result.Failures[0], "Flaky") {
		t.Fatalf("failures = %v", result.Failures)
	}

	// The delivered body carries the couple's details and the guest name.
	body := mailer.bodies[0]
	for _, want := range []string{"Asha", "Ben", "Maya", "2027-06-12", "Rose Garden"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %s", want, body)
		}
	}

	// Successful sends are marked; a second batch skips them.
	result2, err := svc.SendInvitations(owner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result2.Sent != 0 {
		t.Fatalf("second batch sent = %d, want 0", result2.Sent)
	}
}

func TestSendInvitationsRequiresSettings(t *testing.T) {
	bare := &models.User{ID: "cust-9", Role: models.RoleCustomer}
	repo := newFakeGuestRepo()
	svc := NewGuestService(repo, &fakeUserRepo{users: map[string]*models.User{bare.ID: bare}}, &fakeMailer{})

	var validation ValidationError
	if _, err := svc.SendInvitations(bare.ID); !errors.As(err, &validation) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}
