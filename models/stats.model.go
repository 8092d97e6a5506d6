package models

// Stats reports document counts per collection.
type Stats struct {
	Collections map[string]int64 `json:"collections"`
	Total       int64            `json:"total"`
}
