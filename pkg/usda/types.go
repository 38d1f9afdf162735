package usda

import (
	"fmt"
	"net/http"
	"time"
)

type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type searchBody struct {
	GeneralSearchInput string `json:"generalSearchInput"`
	PageSize           int    `json:"pageSize"`
}

// Food is one search hit.
type Food struct {
	Description string
	Nutrients   []Nutrient
}

type Nutrient struct {
	Name  string
	Unit  string
	Value float64
}

// Facts are the nutrient amounts the heuristic reads. Zero means unknown or absent.
type Facts struct {
	Calories     float64
	Protein      float64
	TotalFat     float64
	SaturatedFat float64
	Carbs        float64
	Sugar        float64
	Fiber        float64
	Sodium       float64
}

// Assessment is the heuristic verdict for one food.
type Assessment struct {
	Description    string
	Classification string
	Reasons        []string
	Facts          Facts
}

type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("USDA search failed: %d %s", e.StatusCode, e.Body)
}
