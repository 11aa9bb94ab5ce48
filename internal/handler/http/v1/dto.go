package v1

import (
	"time"
)

// ObstacleRequest DTO для создания и обновления препятствия
// @Description DTO для создания и обновления препятствия
type ObstacleRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"required"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"required_with=Latitude,omitempty,longitude"`
}

// ObstacleResponse DTO для ответа с информацией о препятствии
// @Description DTO для ответа с информацией о препятствии
type ObstacleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ContactResponse DTO для ответа с контактом
// @Description DTO для ответа с контактом
type ContactResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}
