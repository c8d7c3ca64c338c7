package service

import (
	"context"
	"errors"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"
)

// --- Error Definitions ---
var (
	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrMealNotFound     = errors.New("meal not found")
)

// MealService manages meal plans and nutrition summaries.
type MealService interface {
	CreateMealPlan(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error)
	GetMealPlan(ctx context.Context, id string) (*domain.MealPlan, error)
	// GetMealPlansForClient returns a client's plans in storage order.
	// Unknown clients get an empty list, not an error.
	GetMealPlansForClient(ctx context.Context, clientID string) ([]domain.MealPlan, error)
	ListMealPlans(ctx context.Context) ([]domain.MealPlan, error)
	MarkMealCompleted(ctx context.Context, planID, planMealID string, completed bool) error
	// NutritionSummary aggregates the client's active plan targets against
	// completed meals. Clients without an active plan get a zeroed summary.
	NutritionSummary(ctx context.Context, clientID string) (*domain.NutritionSummary, error)
}

type mealService struct {
	mealPlanRepo repository.MealPlanRepository
}

// NewMealService creates a new instance of mealService.
func NewMealService(mealPlanRepo repository.MealPlanRepository) MealService {
	return &mealService{mealPlanRepo: mealPlanRepo}
}

func (s *mealService) CreateMealPlan(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error) {
	if plan.Name == "" || plan.ClientID == "" {
		return nil, errors.New("meal plan name and client id are required")
	}
	if _, err := s.mealPlanRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *mealService) GetMealPlan(ctx context.Context, id string) (*domain.MealPlan, error) {
	plan, err := s.mealPlanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *mealService) GetMealPlansForClient(ctx context.Context, clientID string) ([]domain.MealPlan, error) {
	return s.mealPlanRepo.GetByClientID(ctx, clientID)
}

func (s *mealService) ListMealPlans(ctx context.Context) ([]domain.MealPlan, error) {
	return s.mealPlanRepo.List(ctx)
}

// MarkMealCompleted sets the completion flag on one meal within a plan.
// Repeated calls with the same flag are idempotent.
func (s *mealService) MarkMealCompleted(ctx context.Context, planID, planMealID string, completed bool) error {
	err := s.mealPlanRepo.SetMealCompleted(ctx, planID, planMealID, completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMealNotFound
		}
		return err
	}
	return nil
}

func (s *mealService) NutritionSummary(ctx context.Context, clientID string) (*domain.NutritionSummary, error) {
	plans, err := s.mealPlanRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	summary := &domain.NutritionSummary{ClientID: clientID}

	// First active plan wins, matching the current-plan selection rule.
	var active *domain.MealPlan
	for i := range plans {
		if plans[i].IsActive {
			active = &plans[i]
			break
		}
	}
	if active == nil {
		return summary, nil
	}

	summary.TargetCalories = active.TargetCalories
	summary.TargetProtein = active.TargetProtein
	summary.TargetCarbs = active.TargetCarbs
	summary.TargetFat = active.TargetFat

	for _, m := range active.Meals {
		if !m.IsCompleted {
			continue
		}
		portions := m.Portions
		if portions == 0 {
			portions = 1
		}
		summary.ConsumedCalories += m.Meal.CaloriesPerServing * portions
		summary.ConsumedProtein += m.Meal.ProteinGrams * portions
		summary.ConsumedCarbs += m.Meal.CarbsGrams * portions
		summary.ConsumedFat += m.Meal.FatGrams * portions
	}

	return summary, nil
}
