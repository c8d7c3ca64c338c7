package memory

import (
	"context"
	"sync"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"

	"github.com/google/uuid"
)

// memoryMealPlanRepository implements repository.MealPlanRepository in memory.
type memoryMealPlanRepository struct {
	mu    sync.RWMutex
	plans []domain.MealPlan
}

// NewMemoryMealPlanRepository creates an in-memory meal plan repository
// holding the given seed records.
func NewMemoryMealPlanRepository(seed []domain.MealPlan) repository.MealPlanRepository {
	return &memoryMealPlanRepository{plans: append([]domain.MealPlan(nil), seed...)}
}

func (r *memoryMealPlanRepository) Create(ctx context.Context, plan *domain.MealPlan) (string, error) {
	if plan.Name == "" || plan.ClientID == "" {
		return "", repository.RepositoryError("meal plan name and client id are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	for i := range plan.Meals {
		if plan.Meals[i].ID == "" {
			plan.Meals[i].ID = uuid.NewString()
		}
	}
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	r.plans = append(r.plans, clonePlan(*plan))
	return plan.ID, nil
}

func (r *memoryMealPlanRepository) GetByID(ctx context.Context, id string) (*domain.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.plans {
		if r.plans[i].ID == id {
			p := clonePlan(r.plans[i])
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryMealPlanRepository) GetByClientID(ctx context.Context, clientID string) ([]domain.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.MealPlan{}
	for i := range r.plans {
		if r.plans[i].ClientID == clientID {
			result = append(result, clonePlan(r.plans[i]))
		}
	}
	return result, nil
}

func (r *memoryMealPlanRepository) List(ctx context.Context) ([]domain.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.MealPlan, 0, len(r.plans))
	for i := range r.plans {
		result = append(result, clonePlan(r.plans[i]))
	}
	return result, nil
}

// SetMealCompleted flags one meal within a plan. Resending the same flag is
// a no-op, keeping repeated completion calls idempotent.
func (r *memoryMealPlanRepository) SetMealCompleted(ctx context.Context, planID, planMealID string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plans {
		if r.plans[i].ID != planID {
			continue
		}
		for j := range r.plans[i].Meals {
			if r.plans[i].Meals[j].ID == planMealID {
				r.plans[i].Meals[j].IsCompleted = completed
				r.plans[i].UpdatedAt = time.Now().UTC()
				return nil
			}
		}
		return repository.ErrNotFound
	}
	return repository.ErrNotFound
}

func clonePlan(p domain.MealPlan) domain.MealPlan {
	p.Meals = append([]domain.MealPlanMeal(nil), p.Meals...)
	return p
}
