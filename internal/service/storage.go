package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/road_obstacles/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	ObstaclesKey = "obstacles"
	ContactsKey  = "contacts"
)

var (
	ErrObstacleNotFound    = errors.New("obstacle not found")
	ErrMalformedCollection = errors.New("stored collection is not a valid JSON array")
)

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

// KeyValueStore определяет контракт для хранилища строк по ключу
type KeyValueStore interface {
	// Get возвращает значение и признак его наличия
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// StorageService определяет контракт для работы с препятствиями и контактами
type StorageService interface {
	ListObstacles(ctx context.Context) []*models.Obstacle
	GetObstacle(ctx context.Context, id string) (*models.Obstacle, error)
	SaveObstacle(ctx context.Context, obstacle *models.Obstacle) error
	UpdateObstacle(ctx context.Context, id string, apply func(existing *models.Obstacle) *models.Obstacle) (*models.Obstacle, error)
	DeleteObstacle(ctx context.Context, id string) error
	ListContacts(ctx context.Context) []*models.Contact
	ResetContacts(ctx context.Context) error
}

type storageService struct {
	store  KeyValueStore
	logger *logrus.Logger

	// отдельная блокировка на каждую коллекцию: read-modify-write выполняется целиком
	obstaclesMu sync.Mutex
	contactsMu  sync.Mutex
}

func NewStorageService(store KeyValueStore, logger *logrus.Logger) StorageService {
	return &storageService{
		store:  store,
		logger: logger,
	}
}

// ListObstacles возвращает все препятствия. Ошибки чтения только логируются.
func (s *storageService) ListObstacles(ctx context.Context) []*models.Obstacle {
	log := s.logger.WithFields(logrus.Fields{
		"service": "storage",
		"method":  "ListObstacles",
		"key":     ObstaclesKey,
	})

	s.obstaclesMu.Lock()
	defer s.obstaclesMu.Unlock()

	obstacles, err := s.loadObstacles(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read obstacles, returning empty list")
		return []*models.Obstacle{}
	}

	log.WithField("count", len(obstacles)).Debug("Obstacles loaded")
	return obstacles
}

// GetObstacle ищет препятствие по ID среди сохраненных.
// В отличие от ListObstacles ошибки чтения возвращаются вызывающему.
func (s *storageService) GetObstacle(ctx context.Context, id string) (*models.Obstacle, error) {
	s.obstaclesMu.Lock()
	defer s.obstaclesMu.Unlock()

	obstacles, err := s.loadObstacles(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "storage",
			"method":      "GetObstacle",
			"obstacle_id": id,
		}).WithError(err).Error("Failed to load obstacles")
		return nil, fmt.Errorf("service: could not get obstacle: %w", err)
	}

	for _, o := range obstacles {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, fmt.Errorf("service: obstacle %s: %w", id, ErrObstacleNotFound)
}

// SaveObstacle добавляет препятствие или заменяет первое с тем же ID
func (s *storageService) SaveObstacle(ctx context.Context, obstacle *models.Obstacle) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "storage",
		"method":      "SaveObstacle",
		"obstacle_id": obstacle.ID,
	})
	log.Info("Attempting to save obstacle")

	s.obstaclesMu.Lock()
	defer s.obstaclesMu.Unlock()

	obstacles, err := s.loadObstacles(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load obstacles before save")
		return fmt.Errorf("service: could not save obstacle: %w", err)
	}

	replaced := false
	for i, o := range obstacles {
		if o.ID == obstacle.ID {
			obstacles[i] = obstacle
			replaced = true
			break
		}
	}
	if !replaced {
		obstacles = append(obstacles, obstacle)
	}

	if err := s.write(ctx, ObstaclesKey, obstacles); err != nil {
		log.WithError(err).Error("Failed to write obstacles")
		return fmt.Errorf("service: could not save obstacle: %w", err)
	}

	log.WithField("replaced", replaced).Info("Obstacle saved successfully")
	return nil
}

// UpdateObstacle заменяет первое препятствие с данным ID результатом apply.
// Поиск и запись выполняются под одной блокировкой, поэтому параллельное
// удаление не может быть отменено обновлением.
func (s *storageService) UpdateObstacle(
	ctx context.Context,
	id string,
	apply func(existing *models.Obstacle) *models.Obstacle,
) (*models.Obstacle, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "storage",
		"method":      "UpdateObstacle",
		"obstacle_id": id,
	})
	log.Info("Attempting to update obstacle")

	s.obstaclesMu.Lock()
	defer s.obstaclesMu.Unlock()

	obstacles, err := s.loadObstacles(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load obstacles before update")
		return nil, fmt.Errorf("service: could not update obstacle: %w", err)
	}

	idx := -1
	for i, o := range obstacles {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Warn("Obstacle not found")
		return nil, fmt.Errorf("service: obstacle %s: %w", id, ErrObstacleNotFound)
	}

	updated := apply(obstacles[idx])
	if updated == nil {
		return nil, fmt.Errorf("service: could not update obstacle %s: empty result", id)
	}
	// ID менять нельзя, иначе запись "переедет"
	updated.ID = id
	obstacles[idx] = updated

	if err := s.write(ctx, ObstaclesKey, obstacles); err != nil {
		log.WithError(err).Error("Failed to write obstacles")
		return nil, fmt.Errorf("service: could not update obstacle: %w", err)
	}

	log.Info("Obstacle updated successfully")
	return updated, nil
}

// DeleteObstacle удаляет все записи с данным ID. Отсутствие записи не ошибка.
func (s *storageService) DeleteObstacle(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "storage",
		"method":      "DeleteObstacle",
		"obstacle_id": id,
	})
	log.Info("Attempting to delete obstacle")

	s.obstaclesMu.Lock()
	defer s.obstaclesMu.Unlock()

	obstacles, err := s.loadObstacles(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load obstacles before delete")
		return fmt.Errorf("service: could not delete obstacle: %w", err)
	}

	kept := make([]*models.Obstacle, 0, len(obstacles))
	for _, o := range obstacles {
		if o.ID != id {
			kept = append(kept, o)
		}
	}

	if err := s.write(ctx, ObstaclesKey, kept); err != nil {
		log.WithError(err).Error("Failed to write obstacles")
		return fmt.Errorf("service: could not delete obstacle: %w", err)
	}

	log.WithField("removed", len(obstacles)-len(kept)).Info("Obstacle delete completed")
	return nil
}

// ListContacts возвращает контакты; при первом обращении сохраняет набор по умолчанию
func (s *storageService) ListContacts(ctx context.Context) []*models.Contact {
	log := s.logger.WithFields(logrus.Fields{
		"service": "storage",
		"method":  "ListContacts",
		"key":     ContactsKey,
	})

	s.contactsMu.Lock()
	defer s.contactsMu.Unlock()

	raw, found, err := s.store.Get(ctx, ContactsKey)
	if err != nil {
		log.WithError(err).Error("Failed to read contacts, returning empty list")
		return []*models.Contact{}
	}

	if !found {
		contacts := DefaultContacts()
		if err := s.write(ctx, ContactsKey, contacts); err != nil {
			log.WithError(err).Error("Failed to seed default contacts, returning empty list")
			return []*models.Contact{}
		}
		log.WithField("count", len(contacts)).Info("Default contacts seeded")
		return contacts
	}

	var contacts []*models.Contact
	if err := json.Unmarshal([]byte(raw), &contacts); err != nil {
		log.WithError(err).Error("Failed to parse contacts, returning empty list")
		return []*models.Contact{}
	}

	// "null" и null-элементы массива пропускаем, как и для препятствий
	valid := make([]*models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c != nil {
			valid = append(valid, c)
		}
	}
	if skipped := len(contacts) - len(valid); skipped > 0 {
		log.WithField("skipped", skipped).Warn("Null contact entries skipped")
	}
	return valid
}

// ResetContacts удаляет сохраненные контакты; следующее чтение снова их заполнит
func (s *storageService) ResetContacts(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "storage",
		"method":  "ResetContacts",
	})
	log.Info("Attempting to reset contacts")

	s.contactsMu.Lock()
	defer s.contactsMu.Unlock()

	if err := s.store.Remove(ctx, ContactsKey); err != nil {
		log.WithError(err).Error("Failed to remove contacts")
		return fmt.Errorf("service: could not reset contacts: %w", err)
	}

	log.Info("Contacts reset successfully")
	return nil
}

// loadObstacles читает коллекцию без блокировки; вызывающий держит obstaclesMu
func (s *storageService) loadObstacles(ctx context.Context) ([]*models.Obstacle, error) {
	raw, found, err := s.store.Get(ctx, ObstaclesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", ObstaclesKey, err)
	}
	obstacles := make([]*models.Obstacle, 0)
	if !found {
		return obstacles, nil
	}
	if err := json.Unmarshal([]byte(raw), &obstacles); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedCollection, ObstaclesKey, err)
	}

	// "null" и null-элементы массива пропускаем
	valid := make([]*models.Obstacle, 0, len(obstacles))
	for _, o := range obstacles {
		if o != nil {
			valid = append(valid, o)
		}
	}
	return valid, nil
}

func (s *storageService) write(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", key, err)
	}
	if err := s.store.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}
