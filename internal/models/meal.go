package models

import "time"

// Meal is a single diet entry. Date and Time are free-text values stored
// verbatim; the server never parses them into calendar types. UpdatedAt
// stays nil until the first update.
type Meal struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	IsPartOfDiet bool       `json:"isPartOfDiet"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
