package app

import (
	"context"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"jobbox/internal/common"
	"jobbox/internal/domain/profile"
	"jobbox/internal/domain/user"
	"jobbox/internal/integration/jobboard"
)

type AuthService struct {
	api    API
	logger *zap.Logger
}

func NewAuthService(api API, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{api: api, logger: logger}
}

// LoginOutcome is the session triple the remote API hands back on a
// successful login.
type LoginOutcome struct {
	Token  string
	Role   user.Role
	UserID string
}

func (s *AuthService) Login(ctx context.Context, email, password string) (LoginOutcome, error) {
	if err := validateCredentials(email, password); err != nil {
		return LoginOutcome{}, err
	}
	result, err := s.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return LoginOutcome{}, err
	}
	role := user.ParseRole(result.Role)
	if result.Token == "" || result.UserID == "" || !role.Known() {
		s.logger.Warn("login response missing session fields", zap.String("role", result.Role))
		return LoginOutcome{}, common.NewError(common.CodeUpstream, "login response was incomplete", nil)
	}
	return LoginOutcome{Token: result.Token, Role: role, UserID: result.UserID}, nil
}

// Register signs a new account up under the given role. The submitted
// profile is merged over the role's default shape so a fresh account
// always starts fully keyed.
func (s *AuthService) Register(ctx context.Context, role user.Role, email, password string, submitted map[string]any) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	defaults, ok := profile.DefaultsFor(role)
	if !ok {
		return common.NewValidationError("invalid signup", map[string]string{"role": "role must be student or company"})
	}
	req := jobboard.RegisterRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
		Role:     string(role),
		Profile:  profile.Merge(defaults, submitted),
	}
	if err := s.api.Register(ctx, req); err != nil {
		return err
	}
	s.logger.Info("account registered", zap.String("role", string(role)))
	return nil
}

func validateCredentials(email, password string) error {
	fields := map[string]string{}
	email = strings.TrimSpace(email)
	if email == "" {
		fields["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "email is not valid"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid credentials", fields)
	}
	return nil
}
