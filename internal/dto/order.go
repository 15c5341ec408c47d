package dto

import "time"

type CreateOrderRequest struct {
	ClientID uint    `json:"client_id"`
	DishName string  `json:"dish_name"`
	Notes    *string `json:"notes"`
}

type OrderResponse struct {
	ID        uint      `json:"id"`
	ClientID  uint      `json:"client_id"`
	DishName  string    `json:"dish_name"`
	Notes     *string   `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
