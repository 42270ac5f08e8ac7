package models

// MealSlot names one of the three sections of a day's meal log.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// Meal is a single logged food item with its nutrition facts.
type Meal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DayMeals is the meal log of one calendar day, split into the three slots
// the dashboard renders.
type DayMeals struct {
	Breakfast []Meal `json:"breakfast"`
	Lunch     []Meal `json:"lunch"`
	Dinner    []Meal `json:"dinner"`
}

// All returns every meal of the day across all slots.
func (d DayMeals) All() []Meal {
	all := make([]Meal, 0, len(d.Breakfast)+len(d.Lunch)+len(d.Dinner))
	all = append(all, d.Breakfast...)
	all = append(all, d.Lunch...)
	all = append(all, d.Dinner...)
	return all
}

// NutritionTotals is the per-day sum of the logged macros.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Totals sums calories and macros over every meal of the day.
func (d DayMeals) Totals() NutritionTotals {
	var t NutritionTotals
	for _, m := range d.All() {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}
