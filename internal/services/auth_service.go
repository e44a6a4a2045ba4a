package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/youssefhammani/file-rouge-final/internal/models"
	"github.com/youssefhammani/file-rouge-final/internal/observability/metrics"
	"github.com/youssefhammani/file-rouge-final/internal/repository"
	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
	"github.com/youssefhammani/file-rouge-final/pkg/logger"
)

type AuthService interface {
	Register(ctx context.Context, in *RegisterInput) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type authService struct {
	userRepo   repository.UserRepository
	hmacSecret []byte
	tokenTTL   time.Duration
}

func NewAuthService(userRepo repository.UserRepository, secret []byte, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		hmacSecret: secret,
		tokenTTL:   tokenTTL,
	}
}

var _ AuthService = (*authService)(nil)

var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Register creates an account and returns a signed token plus the stored
// user. The email uniqueness check here is a fast path; the unique index on
// users.email is what actually rejects a concurrent duplicate.
func (s *authService) Register(ctx context.Context, in *RegisterInput) (string, *models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" || email == "" || in.Password == "" {
		return "", nil, appErr.New(appErr.CodeInvalid, "Name, email and password are required")
	}
	if !emailShape.MatchString(email) {
		return "", nil, appErr.New(appErr.CodeInvalid, "Please enter a valid email")
	}
	if len(in.Password) < 6 {
		return "", nil, appErr.New(appErr.CodeInvalid, "Password must be at least 6 characters")
	}

	role := models.RoleCandidate
	if r := strings.TrimSpace(in.Role); r != "" {
		role = models.Role(r)
		if role != models.RoleCandidate && role != models.RoleCompany {
			return "", nil, appErr.New(appErr.CodeInvalid, "Role must be candidate or company")
		}
	}

	var existing models.User
	if err := s.userRepo.GetByEmail(ctx, email, &existing); err == nil {
		return "", nil, appErr.New(appErr.CodeConflict, "Email already in use")
	} else if !appErr.IsCode(err, appErr.CodeNotFound) {
		return "", nil, err
	}

	ph, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(ph),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return "", nil, appErr.New(appErr.CodeConflict, "Email already in use")
		}
		return "", nil, err
	}

	token, err := s.signToken(u.ID)
	if err != nil {
		return "", nil, err
	}

	metrics.RecordRegistration(string(role))
	logger.L().Info("user registered", zap.String("user_id", u.ID.String()), zap.String("role", string(role)))
	return token, u, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error so callers cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, appErr.New(appErr.CodeInvalid, "Please provide email and password")
	}

	var u models.User
	if err := s.userRepo.GetByEmail(ctx, email, &u); err != nil {
		metrics.RecordLogin("failed")
		return "", nil, appErr.New(appErr.CodeUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		metrics.RecordLogin("failed")
		return "", nil, appErr.New(appErr.CodeUnauthorized, "Invalid credentials")
	}

	token, err := s.signToken(u.ID)
	if err != nil {
		return "", nil, err
	}

	metrics.RecordLogin("ok")
	logger.L().Info("user logged in", zap.String("user_id", u.ID.String()))
	return token, &u, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.userRepo.GetByID(ctx, userID, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *authService) signToken(userID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.hmacSecret)
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "sign token failed")
	}
	return signed, nil
}
