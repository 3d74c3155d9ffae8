package models

import "time"

// ActionRecord is one row of the experiment log. The item slices are always
// the same length, one entry per item involved in the action.
type ActionRecord struct {
	ID               string    `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	ParticipantID    string    `json:"participant_id"`
	Action           string    `json:"action"`
	TotalPrice       int       `json:"total_price"`
	ProductNames     []string  `json:"product_names"`
	Quantities       []int     `json:"quantities"`
	Subtotals        []int     `json:"subtotals"`
	RoomTypes        []string  `json:"room_types"`
	BreakfastOptions []string  `json:"breakfast_options"`
	Page             string    `json:"page"`
}

func NewActionRecord(id string, ts time.Time, participantID, action, page string, total int, items []CartViewItem) ActionRecord {
	rec := ActionRecord{
		ID:               id,
		Timestamp:        ts,
		ParticipantID:    participantID,
		Action:           action,
		TotalPrice:       total,
		Page:             page,
		ProductNames:     make([]string, 0, len(items)),
		Quantities:       make([]int, 0, len(items)),
		Subtotals:        make([]int, 0, len(items)),
		RoomTypes:        make([]string, 0, len(items)),
		BreakfastOptions: make([]string, 0, len(items)),
	}
	for _, item := range items {
		rec.ProductNames = append(rec.ProductNames, item.Name)
		rec.Quantities = append(rec.Quantities, item.Quantity)
		rec.Subtotals = append(rec.Subtotals, item.Subtotal)
		rec.RoomTypes = append(rec.RoomTypes, item.RoomType)
		rec.BreakfastOptions = append(rec.BreakfastOptions, item.BreakfastOption)
	}
	return rec
}

func (r ActionRecord) ItemCount() int {
	return len(r.ProductNames)
}
