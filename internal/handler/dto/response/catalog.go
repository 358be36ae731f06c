package response

import "github.com/google/uuid"

type MenuItemResponse struct {
	CateringID uuid.UUID `json:"catering_id"`
	DishID     uuid.UUID `json:"dish_id"`
}
