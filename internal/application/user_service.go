package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"identity-service/internal/domain/entity"
	repo "identity-service/internal/domain/repository"
	"identity-service/internal/domain/valueobject"
	"identity-service/pkg/helpers"
	"identity-service/pkg/mailer"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Service orchestrates value objects, the hasher, the repository, and the
// token issuer into the three supported operations.
type Service struct {
	Repo    repo.UsersRepository
	Hasher  *helpers.Hasher
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Pub     *helpers.RabbitPublisher
	AppName string

	// dummyHash keeps Authenticate's failure path doing a real bcrypt
	// comparison even when no account matches the e-mail, so a missing
	// account and a wrong password are indistinguishable by timing.
	dummyHash string
}

func NewService(repo repo.UsersRepository, hasher *helpers.Hasher, jwt *helpers.JWTManager, logger *logrus.Logger, pub *helpers.RabbitPublisher, appName string) *Service {
	dummy, _ := hasher.Hash("no-such-account")
	return &Service{
		Repo:      repo,
		Hasher:    hasher,
		JWT:       jwt,
		Logger:    logger,
		Pub:       pub,
		AppName:   appName,
		dummyHash: dummy,
	}
}

// TelephoneInput carries a raw telephone pair from the request body. The
// fields are untyped so absent and non-numeric values reach the value
// object and fail with its exact messages.
type TelephoneInput struct {
	Number   any `json:"number"`
	AreaCode any `json:"area_code"`
}

type RegisterInput struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Password   string           `json:"password"`
	Telephones []TelephoneInput `json:"telephones"`
}

type RegisterOutput struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Register validates all inputs, hashes the password, checks email
// uniqueness, and persists the new user. No side effect happens before
// every input has been validated.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	name, err := valueobject.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	if len(in.Telephones) == 0 {
		return nil, &valueobject.ValidationError{Message: "At least one telephone is required"}
	}
	telephones := make([]entity.Telephone, 0, len(in.Telephones))
	for _, t := range in.Telephones {
		tel, err := valueobject.NewTelephone(t.Number, t.AreaCode)
		if err != nil {
			return nil, err
		}
		telephones = append(telephones, entity.Telephone{Number: tel.Number(), AreaCode: tel.AreaCode()})
	}

	hash, err := s.Hasher.Hash(password.Value())
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(email.Value())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	u := &entity.User{
		Name:       name.Value(),
		Email:      email.Value(),
		Password:   hash,
		Telephones: telephones,
	}
	if err := s.Repo.Create(u); err != nil {
		// The unique index is the authoritative guard against a
		// concurrent duplicate slipping past the pre-check above.
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	s.publishWelcome(ctx, u)

	return &RegisterOutput{ID: u.ID, CreatedAt: u.CreatedAt, ModifiedAt: u.UpdatedAt}, nil
}

type SignInOutput struct {
	AccessToken string `json:"accessToken"`
}

// Authenticate validates credentials and issues an access token embedding
// {id, email}. A missing account and a wrong password both fail with
// ErrInvalidCredentials and cost one bcrypt comparison.
func (s *Service) Authenticate(ctx context.Context, rawEmail, rawPassword string) (*SignInOutput, error) {
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.NewPassword(rawPassword)
	if err != nil {
		return nil, err
	}

	u, err := s.Repo.GetByEmail(email.Value())
	if err != nil {
		return nil, err
	}
	if u == nil {
		s.Hasher.Compare(s.dummyHash, password.Value())
		return nil, ErrInvalidCredentials
	}
	if !s.Hasher.Compare(u.Password, password.Value()) {
		return nil, ErrInvalidCredentials
	}

	access, _, err := s.JWT.GenerateAccessToken(helpers.TokenSubject{ID: u.ID, Email: u.Email})
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return nil, err
	}
	return &SignInOutput{AccessToken: access}, nil
}

// PublicProfile is the projection returned by GetUserByID. It never
// carries the password hash.
type PublicProfile struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Telephones []entity.Telephone `json:"telephones"`
	CreatedAt  time.Time          `json:"created_at"`
	ModifiedAt time.Time          `json:"modified_at"`
}

// GetUserByID returns the public projection for a verified identity. The
// id comes from validated token claims, never from client input.
func (s *Service) GetUserByID(id string) (*PublicProfile, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	telephones := u.Telephones
	if telephones == nil {
		telephones = []entity.Telephone{}
	}
	return &PublicProfile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Telephones: telephones,
		CreatedAt:  u.CreatedAt,
		ModifiedAt: u.UpdatedAt,
	}, nil
}

func (s *Service) publishWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.WelcomeEmail(u.Email, u.Name, s.AppName)
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
	}
}
