package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/learnhub/learnhub-cli/internal/adapters/api"
	"github.com/learnhub/learnhub-cli/internal/domain"
)

// CatalogService binds the course list to GET /courses and reconciles
// creates. POST /courses/add returns only a confirmation message, so the
// create strategy is refetch-everything.
type CatalogService struct {
	gateway *api.Client
	loader  *Loader[domain.Course]
}

func NewCatalogService(gateway *api.Client) *CatalogService {
	svc := &CatalogService{gateway: gateway}
	svc.loader = NewLoader(svc.fetch)
	return svc
}

func (s *CatalogService) fetch(ctx context.Context) ([]domain.Course, error) {
	response, err := s.gateway.Get(ctx, "/courses")
	if err != nil {
		return nil, err
	}
	return api.DecodeList[domain.Course](response)
}

func (s *CatalogService) Load(ctx context.Context) error {
	return s.loader.Load(ctx)
}

func (s *CatalogService) Courses() []domain.Course {
	return s.loader.Items()
}

func (s *CatalogService) State() LoadState {
	return s.loader.State()
}

func (s *CatalogService) Err() error {
	return s.loader.Err()
}

// Create submits a new course and refetches the list on success. A create
// failure leaves the already-loaded list untouched.
func (s *CatalogService) Create(ctx context.Context, draft domain.CourseDraft) (string, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return "", errors.New("course title is required")
	}

	response, err := s.gateway.Post(ctx, "/courses/add", draft)
	if err != nil {
		return "", err
	}
	if !response.OK() {
		return "", errors.New(api.ServerMessage(response.Body, "failed to add course"))
	}

	confirmation := confirmationMessage(response.Body)
	if err := s.loader.Load(ctx); err != nil {
		return confirmation, fmt.Errorf("refresh courses after create: %w", err)
	}

	return confirmation, nil
}

// confirmationMessage normalizes what the add endpoint returns: either a
// bare JSON string or a plain-text body.
func confirmationMessage(body []byte) string {
	var message string
	if err := json.Unmarshal(body, &message); err == nil && message != "" {
		return message
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return "Created"
}
