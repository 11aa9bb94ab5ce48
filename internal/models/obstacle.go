package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Obstacle - препятствие на дороге, отмеченное пользователем
type Obstacle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewObstacle создает препятствие с новым ID и временем создания
func NewObstacle(title, description string, lat, lon *float64) *Obstacle {
	return &Obstacle{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Latitude:    lat,
		Longitude:   lon,
		// Round(0) убирает монотонные часы, чтобы значение совпадало после JSON
		CreatedAt: time.Now().UTC().Round(0),
	}
}

// HasLocation сообщает, заданы ли обе координаты
func (o *Obstacle) HasLocation() bool {
	return o.Latitude != nil && o.Longitude != nil
}
