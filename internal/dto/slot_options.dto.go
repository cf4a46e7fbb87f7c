package dto

type SlotOptionsDTO struct {
	MinDate string   `json:"min_date"`
	MaxDate string   `json:"max_date"`
	Times   []string `json:"times"`
}
