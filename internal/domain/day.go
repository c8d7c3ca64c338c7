package domain

import "time"

// DayNumber converts a calendar time to the 1 (Monday) - 7 (Sunday) weekday
// numbering used by ProgramExercise.DayNumber and MealPlanMeal.DayOfWeek.
// Go's time.Weekday counts Sunday as 0; that maps to 7.
func DayNumber(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}
