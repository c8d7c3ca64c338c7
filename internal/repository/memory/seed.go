package memory

import (
	"time"

	"fitnesspr/portal/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// Fixtures bundles the seed data the stores start with. The small fixed set
// of client IDs ("1".."5") mirrors the demo dataset the dashboards expect.
type Fixtures struct {
	Users     []domain.User
	Clients   []domain.Client
	Exercises []domain.Exercise
	Programs  []domain.Program
	MealPlans []domain.MealPlan
	Entries   []domain.ProgressEntry
	Goals     []domain.Goal
	Sessions  []domain.Session
	Payments  []domain.Payment
}

// SeedFixtures builds the demo dataset. Session times are placed relative to
// now so "today's sessions" views have data on any day the server starts.
func SeedFixtures(now time.Time) Fixtures {
	seeded := now.UTC().AddDate(0, -2, 0)

	hash := func(password string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			panic(err)
		}
		return string(h)
	}

	users := []domain.User{
		{
			ID: "1", Email: "trainer@fitnesspr.com", FullName: "John Smith",
			PasswordHash: hash("trainer123"), IsTrainer: true, IsActive: true,
			CreatedAt: seeded, UpdatedAt: seeded,
		},
		{
			ID: "2", Email: "sarah.johnson@example.com", FullName: "Sarah Johnson",
			PasswordHash: hash("client123"), IsActive: true,
			CreatedAt: seeded, UpdatedAt: seeded,
		},
		{
			ID: "3", Email: "admin@fitnesspr.com", FullName: "Ana Torres",
			PasswordHash: hash("admin123"), IsTrainer: true, IsSuperuser: true, IsActive: true,
			CreatedAt: seeded, UpdatedAt: seeded,
		},
	}

	clients := []domain.Client{
		{
			ID: "1", Name: "Sarah Johnson", Email: "sarah.johnson@example.com",
			TrainerID: "1", PIN: "123456", Age: 28, FitnessLevel: "intermediate",
			Goals: "Lose 5kg, improve endurance", IsActive: true,
			CreatedAt: seeded, UpdatedAt: seeded,
		},
		{
			ID: "2", Name: "Mike Chen", Email: "mike.chen@example.com",
			TrainerID: "1", PIN: "234567", Age: 35, FitnessLevel: "beginner",
			Goals: "Build muscle", IsActive: true,
			CreatedAt: seeded.AddDate(0, 0, 10), UpdatedAt: seeded.AddDate(0, 0, 10),
		},
		{
			ID: "3", Name: "Emma Wilson", Email: "emma.wilson@example.com",
			TrainerID: "1", PIN: "345678", Age: 42, FitnessLevel: "advanced",
			IsActive: true,
			CreatedAt: seeded.AddDate(0, 0, 20), UpdatedAt: seeded.AddDate(0, 0, 20),
		},
		{
			ID: "4", Name: "David Lee", Email: "david.lee@example.com",
			TrainerID: "1", PIN: "456789", Age: 31, FitnessLevel: "intermediate",
			Goals: "Marathon preparation", IsActive: true,
			CreatedAt: now.UTC().AddDate(0, 0, -20), UpdatedAt: now.UTC().AddDate(0, 0, -20),
		},
		{
			ID: "5", Name: "Lisa Brown", Email: "lisa.brown@example.com",
			TrainerID: "1", PIN: "567890", Age: 26, FitnessLevel: "beginner",
			Goals: "General fitness", IsActive: true,
			CreatedAt: now.UTC().AddDate(0, 0, -10), UpdatedAt: now.UTC().AddDate(0, 0, -10),
		},
	}

	exercises := []domain.Exercise{
		{ID: "1", TrainerID: "1", Name: "Barbell Squat", MuscleGroup: "Legs", Equipment: "Barbell", Difficulty: "intermediate", CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "2", TrainerID: "1", Name: "Bench Press", MuscleGroup: "Chest", Equipment: "Barbell", Difficulty: "intermediate", CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "3", TrainerID: "1", Name: "Deadlift", MuscleGroup: "Back", Equipment: "Barbell", Difficulty: "advanced", CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "4", TrainerID: "1", Name: "Plank", MuscleGroup: "Core", Equipment: "Bodyweight", Difficulty: "beginner", CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "5", TrainerID: "1", Name: "Treadmill Run", MuscleGroup: "Cardio", Equipment: "Treadmill", Difficulty: "beginner", CreatedAt: seeded, UpdatedAt: seeded},
	}

	programs := []domain.Program{
		{
			ID: "1", Name: "Strength Foundation", Description: "Full-body strength, three days a week",
			TrainerID: "1", ClientID: "1", DurationWeeks: 8, SessionsPerWeek: 3,
			DifficultyLevel: "intermediate", IsActive: true,
			Exercises: []domain.ProgramExercise{
				{ID: "1", ExerciseID: "1", Exercise: exercises[0], Sets: 4, Reps: "8-12", Weight: 60, RestSeconds: 90, OrderInProgram: 1, WeekNumber: 1, DayNumber: 1},
				{ID: "2", ExerciseID: "2", Exercise: exercises[1], Sets: 4, Reps: "8-10", Weight: 40, RestSeconds: 90, OrderInProgram: 2, WeekNumber: 1, DayNumber: 1},
				{ID: "3", ExerciseID: "3", Exercise: exercises[2], Sets: 3, Reps: "5", Weight: 80, RestSeconds: 120, OrderInProgram: 1, WeekNumber: 1, DayNumber: 3},
				{ID: "4", ExerciseID: "4", Exercise: exercises[3], Sets: 3, Reps: "60 seconds", OrderInProgram: 2, WeekNumber: 1, DayNumber: 3},
				{ID: "5", ExerciseID: "5", Exercise: exercises[4], Sets: 1, Reps: "30 minutes", OrderInProgram: 1, WeekNumber: 1, DayNumber: 5},
			},
			CreatedAt: seeded, UpdatedAt: seeded,
		},
		{
			ID: "2", Name: "Beginner Kickstart", Description: "Low-impact introduction program",
			TrainerID: "1", ClientID: "2", DurationWeeks: 4, SessionsPerWeek: 2,
			DifficultyLevel: "beginner", IsActive: true,
			Exercises: []domain.ProgramExercise{
				{ID: "6", ExerciseID: "4", Exercise: exercises[3], Sets: 3, Reps: "30 seconds", OrderInProgram: 1, WeekNumber: 1, DayNumber: 2},
				{ID: "7", ExerciseID: "5", Exercise: exercises[4], Sets: 1, Reps: "20 minutes", OrderInProgram: 2, WeekNumber: 1, DayNumber: 2},
			},
			CreatedAt: seeded, UpdatedAt: seeded,
		},
		{
			ID: "3", Name: "Archived Bulk Phase", Description: "Previous program, kept for history",
			TrainerID: "1", ClientID: "1", DurationWeeks: 6, SessionsPerWeek: 4,
			DifficultyLevel: "advanced", IsActive: false,
			Exercises: []domain.ProgramExercise{
				{ID: "8", ExerciseID: "2", Exercise: exercises[1], Sets: 5, Reps: "5", Weight: 50, OrderInProgram: 1, WeekNumber: 1, DayNumber: 1},
			},
			CreatedAt: seeded.AddDate(0, -3, 0), UpdatedAt: seeded.AddDate(0, -3, 0),
		},
	}

	meals := []domain.Meal{
		{ID: "1", TrainerID: "1", Name: "Oatmeal with Berries", MealType: domain.MealBreakfast, CaloriesPerServing: 350, ProteinGrams: 12, CarbsGrams: 55, FatGrams: 8, CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "2", TrainerID: "1", Name: "Grilled Chicken Salad", MealType: domain.MealLunch, CaloriesPerServing: 450, ProteinGrams: 40, CarbsGrams: 20, FatGrams: 22, CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "3", TrainerID: "1", Name: "Salmon with Rice", MealType: domain.MealDinner, CaloriesPerServing: 550, ProteinGrams: 35, CarbsGrams: 50, FatGrams: 20, CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "4", TrainerID: "1", Name: "Greek Yogurt", MealType: domain.MealSnack, CaloriesPerServing: 150, ProteinGrams: 15, CarbsGrams: 10, FatGrams: 5, CreatedAt: seeded, UpdatedAt: seeded},
	}

	mealPlans := []domain.MealPlan{
		{
			ID: "1", Name: "Cut Week Plan", TrainerID: "1", ClientID: "1",
			TargetCalories: 1800, TargetProtein: 140, TargetCarbs: 160, TargetFat: 60,
			IsActive: true,
			Meals: []domain.MealPlanMeal{
				{ID: "1", MealID: "1", Meal: meals[0], DayOfWeek: 1, MealOrder: 1, Portions: 1},
				{ID: "2", MealID: "2", Meal: meals[1], DayOfWeek: 1, MealOrder: 2, Portions: 1},
				{ID: "3", MealID: "3", Meal: meals[2], DayOfWeek: 1, MealOrder: 3, Portions: 1},
				{ID: "4", MealID: "1", Meal: meals[0], DayOfWeek: 3, MealOrder: 1, Portions: 1},
				{ID: "5", MealID: "4", Meal: meals[3], DayOfWeek: 3, MealOrder: 2, Portions: 2},
			},
			CreatedAt: seeded, UpdatedAt: seeded,
		},
		{
			ID: "2", Name: "Muscle Gain Plan", TrainerID: "1", ClientID: "2",
			TargetCalories: 2800, TargetProtein: 180, TargetCarbs: 300, TargetFat: 80,
			IsActive: true,
			Meals: []domain.MealPlanMeal{
				{ID: "6", MealID: "3", Meal: meals[2], DayOfWeek: 2, MealOrder: 1, Portions: 1.5},
			},
			CreatedAt: seeded, UpdatedAt: seeded,
		},
	}

	entries := []domain.ProgressEntry{
		{ID: "1", ClientID: "1", TrainerID: "1", Date: now.UTC().AddDate(0, 0, -14), Weight: 68.5, BodyFatPercentage: 24.0, Notes: "Feeling stronger", CreatedAt: now.UTC().AddDate(0, 0, -14), UpdatedAt: now.UTC().AddDate(0, 0, -14)},
		{ID: "2", ClientID: "1", TrainerID: "1", Date: now.UTC().AddDate(0, 0, -7), Weight: 67.8, BodyFatPercentage: 23.4, CreatedAt: now.UTC().AddDate(0, 0, -7), UpdatedAt: now.UTC().AddDate(0, 0, -7)},
		{ID: "3", ClientID: "2", TrainerID: "1", Date: now.UTC().AddDate(0, 0, -3), Weight: 82.1, CreatedAt: now.UTC().AddDate(0, 0, -3), UpdatedAt: now.UTC().AddDate(0, 0, -3)},
	}

	// Client "3" deliberately has no goals; her dashboard shows an empty list.
	goals := []domain.Goal{
		{ID: "1", ClientID: "1", Title: "Reach 65kg", TargetValue: 65, CurrentValue: 67.8, Unit: "kg", Status: domain.GoalActive, TargetDate: now.UTC().AddDate(0, 3, 0), CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "2", ClientID: "1", Title: "Run 5km without stopping", TargetValue: 5, CurrentValue: 3.5, Unit: "km", Status: domain.GoalActive, CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "3", ClientID: "2", Title: "Bench press bodyweight", TargetValue: 82, CurrentValue: 60, Unit: "kg", Status: domain.GoalActive, CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "4", ClientID: "4", Title: "Finish first marathon", TargetValue: 42.2, CurrentValue: 42.2, Unit: "km", Status: domain.GoalAchieved, CreatedAt: seeded, UpdatedAt: seeded},
	}

	today := now.UTC()
	sessions := []domain.Session{
		{ID: "1", ClientID: "1", TrainerID: "1", ScheduledAt: time.Date(today.Year(), today.Month(), today.Day(), 9, 0, 0, 0, time.UTC), DurationMinutes: 60, Status: domain.SessionScheduled, CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "2", ClientID: "2", TrainerID: "1", ScheduledAt: time.Date(today.Year(), today.Month(), today.Day(), 17, 30, 0, 0, time.UTC), DurationMinutes: 45, Status: domain.SessionScheduled, CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "3", ClientID: "4", TrainerID: "1", ScheduledAt: today.AddDate(0, 0, 2), DurationMinutes: 60, Status: domain.SessionScheduled, CreatedAt: seeded, UpdatedAt: seeded},
		{ID: "4", ClientID: "3", TrainerID: "1", ScheduledAt: today.AddDate(0, 0, -1), DurationMinutes: 60, Status: domain.SessionCompleted, CreatedAt: seeded, UpdatedAt: seeded},
	}

	payments := []domain.Payment{
		{ID: "1", ClientID: "1", TrainerID: "1", Amount: 120, Currency: "USD", Description: "Monthly coaching", Status: domain.PaymentCompleted, CreatedAt: now.UTC().AddDate(0, 0, -15), UpdatedAt: now.UTC().AddDate(0, 0, -15)},
		{ID: "2", ClientID: "2", TrainerID: "1", Amount: 90, Currency: "USD", Description: "Monthly coaching", Status: domain.PaymentCompleted, CreatedAt: now.UTC().AddDate(0, 0, -5), UpdatedAt: now.UTC().AddDate(0, 0, -5)},
		{ID: "3", ClientID: "4", TrainerID: "1", Amount: 120, Currency: "USD", Description: "Monthly coaching", Status: domain.PaymentPending, CreatedAt: now.UTC().AddDate(0, 0, -2), UpdatedAt: now.UTC().AddDate(0, 0, -2)},
		{ID: "4", ClientID: "5", TrainerID: "1", Amount: 90, Currency: "USD", Description: "Monthly coaching", Status: domain.PaymentCompleted, CreatedAt: now.UTC().AddDate(0, -2, 0), UpdatedAt: now.UTC().AddDate(0, -2, 0)},
	}

	return Fixtures{
		Users:     users,
		Clients:   clients,
		Exercises: exercises,
		Programs:  programs,
		MealPlans: mealPlans,
		Entries:   entries,
		Goals:     goals,
		Sessions:  sessions,
		Payments:  payments,
	}
}
