package models

import "time"

// FavoriteFood is a food the user saved for quick re-logging. Two favorites
// are considered the same food when name, serving size and serving unit all
// match; ID and AddedAt are assigned by the client on save.
type FavoriteFood struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ServingSize float64   `json:"servingSize"`
	ServingUnit string    `json:"servingUnit"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	AddedAt     time.Time `json:"addedAt"`
}

// SameFood reports whether other describes the same food and portion.
func (f FavoriteFood) SameFood(other FavoriteFood) bool {
	return f.Name == other.Name &&
		f.ServingSize == other.ServingSize &&
		f.ServingUnit == other.ServingUnit
}
