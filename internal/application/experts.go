package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/learnhub/learnhub-cli/internal/adapters/api"
	"github.com/learnhub/learnhub-cli/internal/domain"
)

// ExpertService binds the SME directory to GET /smes. Creation is a
// two-step write: the backing instructor account first, then the profile
// referencing it, followed by a full refetch since /smes/add returns no
// record body.
type ExpertService struct {
	gateway *api.Client
	loader  *Loader[domain.SME]
}

func NewExpertService(gateway *api.Client) *ExpertService {
	svc := &ExpertService{gateway: gateway}
	svc.loader = NewLoader(svc.fetch)
	return svc
}

func (s *ExpertService) fetch(ctx context.Context) ([]domain.SME, error) {
	response, err := s.gateway.Get(ctx, "/smes")
	if err != nil {
		return nil, err
	}
	return api.DecodeList[domain.SME](response)
}

func (s *ExpertService) Load(ctx context.Context) error {
	return s.loader.Load(ctx)
}

func (s *ExpertService) Experts() []domain.SME {
	return s.loader.Items()
}

func (s *ExpertService) State() LoadState {
	return s.loader.State()
}

func (s *ExpertService) Err() error {
	return s.loader.Err()
}

func (s *ExpertService) Create(ctx context.Context, draft domain.SMEDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return errors.New("SME name is required")
	}

	firstName, lastName := splitName(draft.Name)

	userResponse, err := s.gateway.Post(ctx, "/users", domain.LearnerDraft{
		FirstName: firstName,
		LastName:  lastName,
		Email:     draft.Email,
		Password:  draft.Password,
		Role:      "instructor",
	})
	if err != nil {
		return err
	}
	if userResponse.Status != http.StatusCreated {
		return errors.New(api.ServerMessage(userResponse.Body, "failed to create SME user account"))
	}

	var created createdUserResponse
	if err := json.Unmarshal(userResponse.Body, &created); err != nil || created.User == nil || created.User.ID == "" {
		return fmt.Errorf("%w: user create response missing user", domain.ErrUnexpectedShape)
	}

	profileResponse, err := s.gateway.Post(ctx, "/smes/add", map[string]string{
		"userId":    created.User.ID,
		"name":      draft.Name,
		"expertise": draft.Expertise,
		"email":     draft.Email,
		"phone":     draft.Phone,
		"bio":       draft.Bio,
	})
	if err != nil {
		return err
	}
	if !profileResponse.OK() {
		return errors.New(api.ServerMessage(profileResponse.Body, "failed to add SME profile"))
	}

	if err := s.loader.Load(ctx); err != nil {
		return fmt.Errorf("refresh SMEs after create: %w", err)
	}

	return nil
}

func splitName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
