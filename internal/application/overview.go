package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/learnhub/learnhub-cli/internal/adapters/api"
	"github.com/learnhub/learnhub-cli/internal/domain"
)

// Overview is the dashboard aggregate: four reads joined into one view.
type Overview struct {
	Metrics     domain.Metrics
	Performance []domain.CoursePerformance
	AtRisk      []domain.AtRiskLearner
	Activities  []domain.Activity
}

// OverviewService fetches the dashboard's endpoints concurrently with a
// join-all discipline: state commits only after every read settles, and
// any single failure fails the whole aggregate. Partial dashboards are
// deliberately not rendered.
type OverviewService struct {
	gateway *api.Client

	state    LoadState
	overview Overview
	err      error
}

func NewOverviewService(gateway *api.Client) *OverviewService {
	return &OverviewService{gateway: gateway, state: StateIdle}
}

func (s *OverviewService) Load(ctx context.Context) error {
	s.state = StateLoading
	s.err = nil

	var (
		wg       sync.WaitGroup
		next     Overview
		loadErrs [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		next.Metrics, loadErrs[0] = s.fetchMetrics(ctx)
	}()
	go func() {
		defer wg.Done()
		next.Performance, loadErrs[1] = s.fetchPerformance(ctx)
	}()
	go func() {
		defer wg.Done()
		next.AtRisk, loadErrs[2] = s.fetchAtRisk(ctx)
	}()
	go func() {
		defer wg.Done()
		next.Activities, loadErrs[3] = s.fetchActivities(ctx)
	}()
	wg.Wait()

	if err := errors.Join(loadErrs[:]...); err != nil {
		s.overview = Overview{}
		s.err = err
		s.state = StateFailed
		return err
	}

	s.overview = next
	s.state = StateSucceeded
	return nil
}

func (s *OverviewService) Retry(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *OverviewService) Overview() Overview {
	return s.overview
}

func (s *OverviewService) State() LoadState {
	return s.state
}

func (s *OverviewService) Err() error {
	return s.err
}

func (s *OverviewService) fetchMetrics(ctx context.Context) (domain.Metrics, error) {
	response, err := s.gateway.Get(ctx, "/analytics/metrics")
	if err != nil {
		return domain.Metrics{}, fmt.Errorf("metrics: %w", err)
	}
	metrics, err := api.DecodeObject[domain.Metrics](response)
	if err != nil {
		return domain.Metrics{}, fmt.Errorf("metrics: %w", err)
	}
	return metrics, nil
}

func (s *OverviewService) fetchPerformance(ctx context.Context) ([]domain.CoursePerformance, error) {
	response, err := s.gateway.Get(ctx, "/analytics/course-performance")
	if err != nil {
		return nil, fmt.Errorf("course performance: %w", err)
	}
	rows, err := api.DecodeList[domain.CoursePerformance](response)
	if err != nil {
		return nil, fmt.Errorf("course performance: %w", err)
	}
	return rows, nil
}

func (s *OverviewService) fetchAtRisk(ctx context.Context) ([]domain.AtRiskLearner, error) {
	response, err := s.gateway.Get(ctx, "/analytics/at-risk-learners")
	if err != nil {
		return nil, fmt.Errorf("at-risk learners: %w", err)
	}
	learners, err := api.DecodeList[domain.AtRiskLearner](response)
	if err != nil {
		return nil, fmt.Errorf("at-risk learners: %w", err)
	}

	for i := range learners {
		learners[i].Avatar = domain.Initials(learners[i].Name)
	}
	return learners, nil
}

func (s *OverviewService) fetchActivities(ctx context.Context) ([]domain.Activity, error) {
	response, err := s.gateway.Get(ctx, "/activitylog")
	if err != nil {
		return nil, fmt.Errorf("activity log: %w", err)
	}
	activities, err := api.DecodeList[domain.Activity](response)
	if err != nil {
		return nil, fmt.Errorf("activity log: %w", err)
	}
	return activities, nil
}
