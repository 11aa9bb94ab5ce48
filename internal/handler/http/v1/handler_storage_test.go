package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/road_obstacles/internal/config"
	"github.com/shenikar/road_obstacles/internal/models"
	"github.com/shenikar/road_obstacles/internal/repository"
	"github.com/shenikar/road_obstacles/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// newStorageBackedRouter поднимает роутер поверх настоящего сервиса и хранилища в памяти
func newStorageBackedRouter(t *testing.T) (service.KeyValueStore, service.StorageService, *gin.Engine) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	store := repository.NewMemoryStore()
	storageService := service.NewStorageService(store, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(storageService, logger, &config.Config{}).RegisterRoutes(router.Group("/api/v1"))

	return store, storageService, router
}

func TestListContacts_NullEntriesInStore(t *testing.T) {
	store, _, router := newStorageBackedRouter(t)
	require.NoError(t, store.Set(context.Background(), service.ContactsKey,
		`[null,{"id":"1","name":"Police","phone":"17","role":"Police secours"},null]`))

	w := makeRequest(router, "GET", "/api/v1/contacts", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []ContactResponse{{ID: "1", Name: "Police", Phone: "17", Role: "Police secours"}}, resp)
}

func TestUpdateAndDelete_ConcurrentNeverResurrects(t *testing.T) {
	_, storageService, router := newStorageBackedRouter(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		obstacle := models.NewObstacle("Chantier", "Voie fermée", nil, nil)
		require.NoError(t, storageService.SaveObstacle(ctx, obstacle))
		url := "/api/v1/obstacles/" + obstacle.ID

		var putCode, deleteCode int
		var g errgroup.Group
		g.Go(func() error {
			w := makeRequest(router, "PUT", url,
				bytes.NewBufferString(`{"title":"Chantier levé","description":"Voie rouverte"}`))
			putCode = w.Code
			return nil
		})
		g.Go(func() error {
			deleteCode = makeRequest(router, "DELETE", url, nil).Code
			return nil
		})
		require.NoError(t, g.Wait())

		assert.Equal(t, http.StatusNoContent, deleteCode)
		assert.Contains(t, []int{http.StatusOK, http.StatusNotFound}, putCode)
		assert.Empty(t, storageService.ListObstacles(ctx), "iteration %d: deleted obstacle came back", i)
	}
}
