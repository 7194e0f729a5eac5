package app

import (
	"context"

	"jobbox/internal/common"
	"jobbox/internal/domain/profile"
	"jobbox/internal/domain/user"
)

type ProfileService struct {
	api API
}

func NewProfileService(api API) *ProfileService {
	return &ProfileService{api: api}
}

// LoadedProfile is a user record shaped for an edit form: the profile
// is fully keyed regardless of what subset the server stored.
type LoadedProfile struct {
	Email   string         `json:"email"`
	Profile map[string]any `json:"profile"`
}

func (s *ProfileService) Load(ctx context.Context, token, userID string, role user.Role) (LoadedProfile, error) {
	defaults, ok := profile.DefaultsFor(role)
	if !ok {
		return LoadedProfile{}, common.NewError(common.CodeForbidden, "no profile shape for this role", nil)
	}
	fetched, err := s.api.GetUser(ctx, token, userID)
	if err != nil {
		return LoadedProfile{}, err
	}
	return LoadedProfile{
		Email:   fetched.Email,
		Profile: profile.Merge(defaults, fetched.Profile),
	}, nil
}

// Save sends the edited profile back as a full replace of the profile
// sub-document. The submitted state is normalized onto the role's
// shape first, which also drops keys the shape does not know.
func (s *ProfileService) Save(ctx context.Context, token, userID string, role user.Role, submitted map[string]any) error {
	defaults, ok := profile.DefaultsFor(role)
	if !ok {
		return common.NewError(common.CodeForbidden, "no profile shape for this role", nil)
	}
	merged := profile.Merge(defaults, submitted)
	return s.api.UpdateUser(ctx, token, userID, profile.Payload(merged))
}
