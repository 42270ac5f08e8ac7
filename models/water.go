package models

// WaterDailyGoal is the default number of glasses per day. Logging is capped
// at twice the goal; the progress percentage is capped at 100.
const WaterDailyGoal = 8

// WaterRecord is the water intake of one calendar day.
type WaterRecord struct {
	// Date is the day key in YYYY-MM-DD form.
	Date string `json:"date"`
	// Glasses is the number of glasses drunk that day.
	Glasses int `json:"glasses"`
}
