package models

import "time"

type MuscleDay struct {
	MuscleGroup string
	Exercises   []string
}

type MealItem struct {
	Item         string
	Calories     int
	ProteinGrams float64
}

// MealTemplate holds one item per meal slot, keyed by MealSlots values.
type MealTemplate map[string]MealItem

type PlanCatalog struct {
	Schedule map[time.Weekday]MuscleDay
	// Meals is keyed by goal type, then by vegetarian preference.
	Meals map[string]map[bool]MealTemplate
}

func DefaultPlanCatalog() PlanCatalog {
	return PlanCatalog{
		Schedule: map[time.Weekday]MuscleDay{
			time.Monday:    {MuscleGroup: "Cardio + Shoulders", Exercises: []string{"Running (30min)", "Military Press", "Lateral Raise"}},
			time.Tuesday:   {MuscleGroup: "Cardio + Chest", Exercises: []string{"Cycling (30min)", "Bench Press", "Incline Dumbbell Press"}},
			time.Wednesday: {MuscleGroup: "Cardio + Back", Exercises: []string{"Swimming (30min)", "Pull-ups", "Deadlift"}},
			time.Thursday:  {MuscleGroup: "Cardio + Abs", Exercises: []string{"Jump Rope (30min)", "Plank", "Crunches"}},
			time.Friday:    {MuscleGroup: "Cardio + Arms", Exercises: []string{"Rowing (30min)", "Barbell Curl", "Skull Crusher"}},
			time.Saturday:  {MuscleGroup: "Cardio + Legs", Exercises: []string{"HIIT (30min)", "Squats", "Lunges"}},
			time.Sunday:    {MuscleGroup: RestDay, Exercises: []string{}},
		},
		Meals: map[string]map[bool]MealTemplate{
			GoalLoss: {
				true: {
					MealBreakfast: {Item: "Oats with berries", Calories: 250, ProteinGrams: 10},
					MealLunch:     {Item: "Salad with lentils", Calories: 300, ProteinGrams: 15},
					MealDinner:    {Item: "Grilled vegetables with quinoa", Calories: 350, ProteinGrams: 12},
					MealSnacks:    {Item: "Greek yogurt", Calories: 100, ProteinGrams: 8},
				},
				false: {
					MealBreakfast: {Item: "Egg whites with spinach", Calories: 250, ProteinGrams: 20},
					MealLunch:     {Item: "Grilled chicken with vegetables", Calories: 300, ProteinGrams: 30},
					MealDinner:    {Item: "Baked fish with asparagus", Calories: 350, ProteinGrams: 25},
					MealSnacks:    {Item: "Protein shake", Calories: 100, ProteinGrams: 20},
				},
			},
			GoalGain: {
				true: {
					MealBreakfast: {Item: "Paneer + Oats", Calories: 500, ProteinGrams: 30},
					MealLunch:     {Item: "Lentils + Rice + Curd", Calories: 600, ProteinGrams: 35},
					MealDinner:    {Item: "Tofu + Veggies + Quinoa", Calories: 550, ProteinGrams: 40},
					MealSnacks:    {Item: "Nuts + Banana", Calories: 300, ProteinGrams: 10},
				},
				false: {
					MealBreakfast: {Item: "Eggs + Toast", Calories: 500, ProteinGrams: 30},
					MealLunch:     {Item: "Chicken + Rice + Veggies", Calories: 600, ProteinGrams: 35},
					MealDinner:    {Item: "Fish + Brown Rice + Salad", Calories: 550, ProteinGrams: 40},
					MealSnacks:    {Item: "Protein bar", Calories: 300, ProteinGrams: 20},
				},
			},
		},
	}
}
