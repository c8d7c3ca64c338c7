package client

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"fitnesspr/portal/internal/domain"
)

// MealsService wraps the meal plan endpoints and the derived "current plan"
// / "today's meals" reads.
type MealsService struct {
	c *Client
}

func (s *MealsService) Plans(ctx context.Context) ([]domain.MealPlan, error) {
	var plans []domain.MealPlan
	if err := s.c.do(ctx, http.MethodGet, "/meals/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *MealsService) Plan(ctx context.Context, id string) (*domain.MealPlan, error) {
	var plan domain.MealPlan
	if err := s.c.do(ctx, http.MethodGet, "/meals/plans/"+id, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealsService) CreatePlan(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error) {
	var created domain.MealPlan
	if err := s.c.do(ctx, http.MethodPost, "/meals/plans", plan, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// PlansForClient lists a client's meal plans, in backend order.
func (s *MealsService) PlansForClient(ctx context.Context, clientID string) ([]domain.MealPlan, error) {
	var plans []domain.MealPlan
	if err := s.c.do(ctx, http.MethodGet, "/meals/plans?client_id="+clientID, nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// CurrentMealPlan returns the client's active plan: the first entry with
// is_active set, in backend order, or nil when none is active.
func (s *MealsService) CurrentMealPlan(ctx context.Context, clientID string) (*domain.MealPlan, error) {
	plans, err := s.PlansForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].IsActive {
			return &plans[i], nil
		}
	}
	return nil, nil
}

// TodayMeals returns the active plan's meals scheduled for the weekday of
// now, sorted ascending by meal_order. The list is empty when the client has
// no active plan or nothing is scheduled today.
func (s *MealsService) TodayMeals(ctx context.Context, clientID string, now time.Time) ([]domain.MealPlanMeal, error) {
	plan, err := s.CurrentMealPlan(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return []domain.MealPlanMeal{}, nil
	}

	today := domain.DayNumber(now)
	meals := []domain.MealPlanMeal{}
	for _, m := range plan.Meals {
		if m.DayOfWeek == today {
			meals = append(meals, m)
		}
	}
	sort.SliceStable(meals, func(i, j int) bool {
		return meals[i].MealOrder < meals[j].MealOrder
	})
	return meals, nil
}

// MarkMealCompleted sends the completion flag for one meal in a plan.
// Repeated calls simply resend the same flag.
func (s *MealsService) MarkMealCompleted(ctx context.Context, planID, planMealID string, completed bool) error {
	path := fmt.Sprintf("/meals/plans/%s/meals/%s/complete", planID, planMealID)
	body := map[string]bool{"completed": completed}
	return s.c.do(ctx, http.MethodPost, path, body, nil)
}

// NutritionSummary fetches the client's aggregated nutrition figures.
// Unknown clients get a zeroed summary from the backend, not an error.
func (s *MealsService) NutritionSummary(ctx context.Context, clientID string) (*domain.NutritionSummary, error) {
	var summary domain.NutritionSummary
	if err := s.c.do(ctx, http.MethodGet, "/clients/"+clientID+"/nutrition-summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
