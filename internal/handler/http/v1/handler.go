package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/road_obstacles/internal/config"
	"github.com/shenikar/road_obstacles/internal/models"
	"github.com/shenikar/road_obstacles/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	storageService service.StorageService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(storageService service.StorageService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		storageService: storageService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// bindObstacle читает и валидирует тело запроса; при ошибке ответ уже записан
func (h *Handler) bindObstacle(c *gin.Context, log *logrus.Entry) (ObstacleRequest, bool) {
	var input ObstacleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return input, false
	}

	input.normalize()
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return input, false
	}
	return input, true
}

// @Summary Create a new obstacle
// @Description Record a roadway obstacle with optional GPS coordinates.
// @Tags Obstacles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param obstacle body ObstacleRequest true "Obstacle creation request"
// @Success 201 {object} ObstacleResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /obstacles [post]
func (h *Handler) createObstacle(c *gin.Context) {
	log := h.logger.WithField("method", "createObstacle")

	input, ok := h.bindObstacle(c, log)
	if !ok {
		return
	}

	model := DTOToObstacleModel(input)
	if err := h.storageService.SaveObstacle(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to save obstacle in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save obstacle"})
		return
	}
	c.JSON(http.StatusCreated, ModelToObstacleResponse(model))
}

// @Summary Get the list of obstacles
// @Description Get every recorded obstacle. Storage read failures yield an empty list.
// @Tags Obstacles
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ObstacleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /obstacles [get]
func (h *Handler) listObstacles(c *gin.Context) {
	obstacles := h.storageService.ListObstacles(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToObstacleResponses(obstacles))
}

// @Summary Get obstacle by ID
// @Tags Obstacles
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Obstacle ID"
// @Success 200 {object} ObstacleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obstacle not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /obstacles/{id} [get]
func (h *Handler) getObstacle(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getObstacle").WithField("id", id)

	obstacle, err := h.storageService.GetObstacle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrObstacleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "obstacle not found"})
			return
		}
		log.WithError(err).Error("Failed to get obstacle from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToObstacleResponse(obstacle))
}

// @Summary Update an existing obstacle
// @Description Replace title, description and coordinates. ID and creation time are kept.
// @Tags Obstacles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Obstacle ID"
// @Param obstacle body ObstacleRequest true "Obstacle update request"
// @Success 200 {object} ObstacleResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obstacle not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /obstacles/{id} [put]
func (h *Handler) updateObstacle(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateObstacle").WithField("id", id)

	input, ok := h.bindObstacle(c, log)
	if !ok {
		return
	}

	updated, err := h.storageService.UpdateObstacle(c.Request.Context(), id, func(existing *models.Obstacle) *models.Obstacle {
		return ApplyObstacleDTO(existing, input)
	})
	if err != nil {
		if errors.Is(err, service.ErrObstacleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "obstacle not found"})
			return
		}
		log.WithError(err).Error("Failed to update obstacle in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save obstacle"})
		return
	}
	c.JSON(http.StatusOK, ModelToObstacleResponse(updated))
}

// @Summary Delete an obstacle
// @Description Delete an obstacle by ID. Unknown IDs are not an error.
// @Tags Obstacles
// @Security ApiKeyAuth
// @Param id path string true "Obstacle ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /obstacles/{id} [delete]
func (h *Handler) deleteObstacle(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteObstacle").WithField("id", id)

	if err := h.storageService.DeleteObstacle(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete obstacle in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete obstacle"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get the contact directory
// @Description Emergency and utility contacts. Seeded with defaults on first read.
// @Tags Contacts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ContactResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /contacts [get]
func (h *Handler) listContacts(c *gin.Context) {
	contacts := h.storageService.ListContacts(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToContactResponses(contacts))
}

// @Summary Reset the contact directory
// @Description Remove stored contacts so the next read restores the defaults.
// @Tags Contacts
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts/reset [post]
func (h *Handler) resetContacts(c *gin.Context) {
	log := h.logger.WithField("method", "resetContacts")

	if err := h.storageService.ResetContacts(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to reset contacts in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset contacts"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
