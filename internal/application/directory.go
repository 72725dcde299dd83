package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/learnhub/learnhub-cli/internal/adapters/api"
	"github.com/learnhub/learnhub-cli/internal/domain"
)

// DirectoryService binds the learner list to GET /users. POST /users
// returns the created record, so the create strategy is an optimistic
// prepend with no refetch round-trip.
type DirectoryService struct {
	gateway *api.Client
	loader  *Loader[domain.Learner]
}

func NewDirectoryService(gateway *api.Client) *DirectoryService {
	svc := &DirectoryService{gateway: gateway}
	svc.loader = NewLoader(svc.fetch)
	return svc
}

func (s *DirectoryService) fetch(ctx context.Context) ([]domain.Learner, error) {
	response, err := s.gateway.Get(ctx, "/users")
	if err != nil {
		return nil, err
	}
	return api.DecodeList[domain.Learner](response)
}

func (s *DirectoryService) Load(ctx context.Context) error {
	return s.loader.Load(ctx)
}

func (s *DirectoryService) Learners() []domain.Learner {
	return s.loader.Items()
}

func (s *DirectoryService) State() LoadState {
	return s.loader.State()
}

func (s *DirectoryService) Err() error {
	return s.loader.Err()
}

type createdUserResponse struct {
	User *domain.Learner `json:"user"`
}

// Create submits a new learner account and prepends the record the
// backend returns. A failure leaves the loaded list untouched.
func (s *DirectoryService) Create(ctx context.Context, draft domain.LearnerDraft) (domain.Learner, error) {
	if draft.Role == "" {
		draft.Role = "learner"
	}

	response, err := s.gateway.Post(ctx, "/users", draft)
	if err != nil {
		return domain.Learner{}, err
	}
	if response.Status != http.StatusCreated {
		return domain.Learner{}, errors.New(api.ServerMessage(response.Body, "failed to add learner"))
	}

	var payload createdUserResponse
	if err := json.Unmarshal(response.Body, &payload); err != nil || payload.User == nil || payload.User.ID == "" {
		return domain.Learner{}, fmt.Errorf("%w: create response missing user", domain.ErrUnexpectedShape)
	}

	s.loader.Prepend(*payload.User)
	return *payload.User, nil
}
