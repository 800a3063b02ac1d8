package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"identity-service/internal/domain/entity"
	"identity-service/internal/domain/valueobject"
	"identity-service/internal/infrastructure/memory"
	"identity-service/pkg/helpers"
)

// countingRepo records repository calls to verify short-circuit behavior.
type countingRepo struct {
	inner      *memory.UsersRepository
	creates    int
	emailReads int
	idReads    int
}

func (r *countingRepo) Create(u *entity.User) error {
	r.creates++
	return r.inner.Create(u)
}

func (r *countingRepo) GetByEmail(email string) (*entity.User, error) {
	r.emailReads++
	return r.inner.GetByEmail(email)
}

func (r *countingRepo) GetByID(id string) (*entity.User, error) {
	r.idReads++
	return r.inner.GetByID(id)
}

func newTestService() (*Service, *countingRepo) {
	repo := &countingRepo{inner: memory.NewUsersRepository()}
	svc := NewService(
		repo,
		helpers.NewHasher(4),
		helpers.NewJWTManager("test-secret", time.Hour),
		nil,
		nil,
		"identity-service",
	)
	return svc, repo
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
		Telephones: []TelephoneInput{
			{Number: float64(987654321), AreaCode: float64(11)},
		},
	}
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService()

	out, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if out.ID == "" {
		t.Error("expected a non-empty id")
	}
	if out.CreatedAt.IsZero() || out.ModifiedAt.IsZero() {
		t.Error("expected server-assigned timestamps")
	}
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	svc, repo := newTestService()

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	u, err := repo.inner.GetByEmail("john@example.com")
	if err != nil || u == nil {
		t.Fatalf("lookup: %v", err)
	}
	if u.Password == "password123" {
		t.Fatal("plaintext password must never be persisted")
	}
	if !helpers.NewHasher(4).Compare(u.Password, "password123") {
		t.Error("stored hash must verify against the original password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, validRegisterInput())
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Errorf("err = %v, want ErrUserAlreadyExists", err)
	}
}

func TestRegisterValidationShortCircuits(t *testing.T) {
	svc, repo := newTestService()

	in := validRegisterInput()
	in.Email = "not-an-email"
	_, err := svc.Register(context.Background(), in)

	var verr *valueobject.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Message != "Please provide a valid e-mail" {
		t.Errorf("message = %q", verr.Message)
	}
	if repo.emailReads != 0 || repo.creates != 0 {
		t.Error("repository must not be touched when validation fails")
	}
}

func TestRegisterRequiresTelephones(t *testing.T) {
	svc, _ := newTestService()

	for _, telephones := range [][]TelephoneInput{nil, {}} {
		in := validRegisterInput()
		in.Telephones = telephones
		_, err := svc.Register(context.Background(), in)

		var verr *valueobject.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if verr.Message != "At least one telephone is required" {
			t.Errorf("message = %q", verr.Message)
		}
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := svc.Authenticate(ctx, "john@example.com", "password123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if out.AccessToken == "" {
		t.Fatal("expected a non-empty access token")
	}

	claims, err := svc.JWT.ParseAccessToken(out.AccessToken)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Sub.ID != reg.ID {
		t.Errorf("sub.id = %q, want %q", claims.Sub.ID, reg.ID)
	}
	if claims.Sub.Email != "john@example.com" {
		t.Errorf("sub.email = %q", claims.Sub.Email)
	}
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPw := svc.Authenticate(ctx, "john@example.com", "wrong-password")
	_, noUser := svc.Authenticate(ctx, "nobody@example.com", "password123")

	if !errors.Is(wrongPw, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", wrongPw)
	}
	if !errors.Is(noUser, ErrInvalidCredentials) {
		t.Errorf("missing account: err = %v, want ErrInvalidCredentials", noUser)
	}
	if wrongPw.Error() != noUser.Error() {
		t.Error("both failure modes must carry identical message text")
	}
}

func TestAuthenticateValidatesInputShape(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Authenticate(context.Background(), "", "password123")
	var verr *valueobject.ValidationError
	if !errors.As(err, &verr) || verr.Message != "Email is required" {
		t.Errorf("err = %v, want Email is required", err)
	}

	_, err = svc.Authenticate(context.Background(), "john@example.com", "123")
	if !errors.As(err, &verr) || verr.Message != "Password must have at least 6 characters" {
		t.Errorf("err = %v, want password length message", err)
	}
}

func TestGetUserByID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	profile, err := svc.GetUserByID(reg.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if profile.ID != reg.ID || profile.Name != "John Doe" || profile.Email != "john@example.com" {
		t.Errorf("unexpected profile: %+v", profile)
	}
	if len(profile.Telephones) != 1 || profile.Telephones[0].Number != 987654321 || profile.Telephones[0].AreaCode != 11 {
		t.Errorf("unexpected telephones: %+v", profile.Telephones)
	}
}

func TestGetUserByIDMissing(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetUserByID("no-such-id")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
