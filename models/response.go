package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type ProductListData struct {
	Products  []Product `json:"products"`
	CartCount int       `json:"cart_count"`
}

type ProductDetailData struct {
	Product   Product `json:"product"`
	CartCount int     `json:"cart_count"`
}

type CartData struct {
	State CheckoutState `json:"state"`
	Cart  CartView      `json:"cart"`
}

type CompletionData struct {
	ParticipantID string   `json:"participant_id"`
	Receipt       *Receipt `json:"receipt,omitempty"`
}
