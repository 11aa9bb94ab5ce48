package v1

import (
	"strings"

	"github.com/shenikar/road_obstacles/internal/models"
)

// normalize обрезает пробелы до валидации: строка из пробелов считается пустой
func (r *ObstacleRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

// DTOToObstacleModel создает новое препятствие с собственным ID и временем создания
func DTOToObstacleModel(dto ObstacleRequest) *models.Obstacle {
	return models.NewObstacle(dto.Title, dto.Description, dto.Latitude, dto.Longitude)
}

// ApplyObstacleDTO переносит изменяемые поля, сохраняя ID и CreatedAt
func ApplyObstacleDTO(existing *models.Obstacle, dto ObstacleRequest) *models.Obstacle {
	updated := *existing
	updated.Title = dto.Title
	updated.Description = dto.Description
	updated.Latitude = dto.Latitude
	updated.Longitude = dto.Longitude
	return &updated
}

// ModelToObstacleResponse преобразует доменную модель в DTO для ответа
func ModelToObstacleResponse(model *models.Obstacle) *ObstacleResponse {
	return &ObstacleResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToObstacleResponses преобразует слайс моделей в слайс DTO
func ModelsToObstacleResponses(models []*models.Obstacle) []*ObstacleResponse {
	responses := make([]*ObstacleResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToObstacleResponse(model)
	}
	return responses
}

// ModelsToContactResponses преобразует контакты в DTO
func ModelsToContactResponses(contacts []*models.Contact) []*ContactResponse {
	responses := make([]*ContactResponse, len(contacts))
	for i, c := range contacts {
		responses[i] = &ContactResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Role: c.Role}
	}
	return responses
}
