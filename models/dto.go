package models

type StartSessionRequest struct {
	ParticipantID string `json:"participant_id" form:"participant_id" binding:"required"`
}

// AddItemRequest carries the add-to-cart form or JSON body. Quantity has no
// default: a missing, zero or non-numeric value is rejected.
type AddItemRequest struct {
	ProductID       string `json:"product_id" form:"product_id" binding:"required"`
	RoomType        string `json:"room_type" form:"room_type"`
	BreakfastOption string `json:"breakfast_option" form:"breakfast_option"`
	Quantity        int    `json:"quantity" form:"quantity" binding:"required,min=1,max=99"`
}

func (r AddItemRequest) Key() ItemKey {
	return ItemKey{ProductID: r.ProductID, RoomType: r.RoomType, BreakfastOption: r.BreakfastOption}
}

// UpdateItemRequest uses a pointer so an explicit 0 (remove) is distinguishable
// from a missing field.
type UpdateItemRequest struct {
	ProductID       string `json:"product_id" form:"product_id" binding:"required"`
	RoomType        string `json:"room_type" form:"room_type"`
	BreakfastOption string `json:"breakfast_option" form:"breakfast_option"`
	Quantity        *int   `json:"quantity" form:"quantity" binding:"required,max=99"`
}

func (r UpdateItemRequest) Key() ItemKey {
	return ItemKey{ProductID: r.ProductID, RoomType: r.RoomType, BreakfastOption: r.BreakfastOption}
}

type ActionQuery struct {
	ParticipantID string `form:"participant_id"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}
