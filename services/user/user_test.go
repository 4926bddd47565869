package user

import (
	"errors"
	"testing"
	"time"

	"weddinghub/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return errors.New("not found")
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateFields(id string, fields bson.M) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "invitationSetting":
			u.InvitationSetting = v.(models.InvitationSetting)
		case "unavailableDates":
			u.UnavailableDates = v.([]string)
		case "businessName":
			u.BusinessName = v.(string)
		case "vendorPackage":
			u.VendorPackage = v.(models.PackageTier)
		case "name":
			u.Name = v.(string)
		case "address":
			u.Address = v.(string)
		}
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindVendors(projection bson.M) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.IsVendor() {
			out = append(out, *u)
		}
	}
	return out, nil
}

type recordingScheduler struct {
	userIDs []string
	times   []time.Time
}

func (s *recordingScheduler) ScheduleInvitations(userID string, sendAt time.Time) error {
	s.userIDs = append(s.userIDs, userID)
	s.times = append(s.times, sendAt)
	return nil
}

var (
	vendorAcct   = &models.User{ID: "vend-1", Role: models.RoleVendor, VendorPackage: models.TierStandard}
	customerAcct = &models.User{ID: "cust-1", Role: models.RoleCustomer}
)

func TestRegisterUser(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	resp, err := svc.RegisterUser(SignupInput{
		Name: "Asha", Email: "asha@example.com", Phone: "555-0100",
		Password: "correct-horse", Role: models.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.ID == "" || resp.Token == "" || resp.Role != models.RoleCustomer {
		t.Fatalf("auth response = %+v", resp)
	}

	var duplicate DuplicateAccountError
	_, err = svc.RegisterUser(SignupInput{
		Name: "Other", Email: "asha@example.com", Phone: "555-0101",
		Password: "correct-horse", Role: models.RoleCustomer,
	})
	if !errors.As(err, &duplicate) {
		t.Fatalf("duplicate email: got %v, want DuplicateAccountError", err)
	}

	var validation ValidationError
	_, err = svc.RegisterUser(SignupInput{
		Email: "b@example.com", Phone: "1", Password: "short", Role: models.RoleCustomer,
	})
	if !errors.As(err, &validation) {
		t.Fatalf("short password: got %v, want ValidationError", err)
	}
	_, err = svc.RegisterUser(SignupInput{
		Email: "c@example.com", Phone: "1", Password: "long-enough", Role: "admin",
	})
	if !errors.As(err, &validation) {
		t.Fatalf("bad role: got %v, want ValidationError", err)
	}

	vresp, err := svc.RegisterUser(SignupInput{
		Email: "v@example.com", Phone: "2", Password: "long-enough", Role: models.RoleVendor,
	})
	if err != nil {
		t.Fatal(err)
	}
	stored, _ := svc.Repo.GetByID(vresp.ID)
	if stored.VendorPackage != models.TierBasic {
		t.Fatalf("new vendor tier = %q, want BASIC", stored.VendorPackage)
	}
	if stored.PasswordHash == "long-enough" || stored.PasswordHash == "" {
		t.Fatal("password stored unhashed")
	}
}

func TestServiceCatalog(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(vendorAcct, customerAcct)}

	u, err := svc.AddService(vendorAcct, ServiceDetailInput{
		ServiceName: "Full-day photography",
		ServiceType: "photography",
		BasePrice:   1200,
	})
	if err != nil {
		t.Fatalf("add service: %v", err)
	}
	if len(u.ServiceDetails) != 1 || u.ServiceDetails[0].ID == "" {
		t.Fatalf("services = %+v", u.ServiceDetails)
	}
	serviceID := u.ServiceDetails[0].ID

	var roleErr RoleError
	if _, err := svc.AddService(customerAcct, ServiceDetailInput{ServiceName: "x", ServiceType: "y"}); !errors.As(err, &roleErr) {
		t.Fatalf("customer adding service: got %v, want RoleError", err)
	}

	u, err = svc.AddPackage(vendorAcct, PackageInput{
		PackageName: "Gold", PackagePrice: 2000, ServiceID: serviceID,
	})
	if err != nil {
		t.Fatalf("add package: %v", err)
	}
	if len(u.Packages) != 1 {
		t.Fatalf("packages = %+v", u.Packages)
	}

	var validation ValidationError
	if _, err := svc.AddPackage(vendorAcct, PackageInput{PackageName: "Bad", PackagePrice: 1, ServiceID: "other"}); !errors.As(err, &validation) {
		t.Fatalf("package on foreign service: got %v, want ValidationError", err)
	}

	// Removing the service removes its packages.
	u, err = svc.RemoveService(vendorAcct, serviceID)
	if err != nil {
		t.Fatalf("remove service: %v", err)
	}
	if len(u.ServiceDetails) != 0 || len(u.Packages) != 0 {
		t.Fatalf("after removal: services=%d packages=%d", len(u.ServiceDetails), len(u.Packages))
	}
}

func TestTasksByIndex(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(customerAcct)}

	u, err := svc.AddTask(customerAcct, TaskInput{Name: "Book venue"})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := svc.AddTask(customerAcct, TaskInput{Name: "Order cake"}); err != nil {
		t.Fatal(err)
	}

	u, err = svc.AddSubtask(customerAcct, 0, "Visit three venues")
	if err != nil {
		t.Fatalf("add subtask: %v", err)
	}
	if len(u.Tasks[0].Subtasks) != 1 || u.Tasks[0].Subtasks[0].Completed {
		t.Fatalf("subtasks = %+v", u.Tasks[0].Subtasks)
	}

	u, err = svc.ToggleSubtask(customerAcct, 0, 0)
	if err != nil {
		t.Fatalf("toggle subtask: %v", err)
	}
	if !u.Tasks[0].Subtasks[0].Completed {
		t.Fatal("subtask not completed after toggle")
	}

	var validation ValidationError
	if _, err := svc.ToggleSubtask(customerAcct, 0, 5); !errors.As(err, &validation) {
		t.Fatalf("out-of-range subtask: got %v, want ValidationError", err)
	}
	if _, err := svc.RemoveTask(customerAcct, 7); !errors.As(err, &validation) {
		t.Fatalf("out-of-range task: got %v, want ValidationError", err)
	}

	u, err = svc.RemoveTask(customerAcct, 0)
	if err != nil {
		t.Fatalf("remove task: %v", err)
	}
	if len(u.Tasks) != 1 || u.Tasks[0].Name != "Order cake" {
		t.Fatalf("tasks = %+v", u.Tasks)
	}
}

func TestInvitationScheduling(t *testing.T) {
	scheduler := &recordingScheduler{}
	svc := &DefaultUserService{Repo: newFakeUserRepo(customerAcct), Scheduler: scheduler}

	weddingDate := time.Now().AddDate(0, 2, 0)
	setting := models.InvitationSetting{
		WeddingDate:    weddingDate.Format(models.DateLayout),
		SendBeforeDays: 14,
		BrideName:      "Asha",
		GroomName:      "Ben",
	}

	if _, err := svc.SetInvitationSetting(customerAcct, setting); err != nil {
		t.Fatalf("set setting: %v", err)
	}
	if len(scheduler.userIDs) != 1 || scheduler.userIDs[0] != customerAcct.ID {
		t.Fatalf("scheduled = %v", scheduler.userIDs)
	}
	wantDay := weddingDate.AddDate(0, 0, -14).Format(models.DateLayout)
	if got := scheduler.times[0].Format(models.DateLayout); got != wantDay {
		t.Fatalf("sendAt day = %s, want %s", got, wantDay)
	}

	var validation ValidationError
	if _, err := svc.SetInvitationSetting(customerAcct, models.InvitationSetting{WeddingDate: "june 2027"}); !errors.As(err, &validation) {
		t.Fatalf("bad date: got %v, want ValidationError", err)
	}

	// A dispatch time already in the past does not enqueue.
	past := models.InvitationSetting{
		WeddingDate:    time.Now().AddDate(0, 0, 3).Format(models.DateLayout),
		SendBeforeDays: 10,
	}
	if _, err := svc.SetInvitationSetting(customerAcct, past); err != nil {
		t.Fatalf("past dispatch: %v", err)
	}
	if len(scheduler.userIDs) != 1 {
		t.Fatalf("past dispatch enqueued: %v", scheduler.userIDs)
	}

	var roleErr RoleError
	if _, err := svc.SetInvitationSetting(vendorAcct, setting); !errors.As(err, &roleErr) {
		t.Fatalf("vendor setting invitations: got %v, want RoleError", err)
	}
}

func TestSetUnavailableDates(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(vendorAcct)}

	u, err := svc.SetUnavailableDates(vendorAcct, []string{"2027-06-12", "2027-06-13"})
	if err != nil {
		t.Fatalf("set dates: %v", err)
	}
	if len(u.UnavailableDates) != 2 {
		t.Fatalf("dates = %v", u.UnavailableDates)
	}

	var validation ValidationError
	if _, err := svc.SetUnavailableDates(vendorAcct, []string{"12/06/2027"}); !errors.As(err, &validation) {
		t.Fatalf("bad format: got %v, want ValidationError", err)
	}
}
