package boat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goflare.io/marina/models"
	"goflare.io/marina/store"
)

const (
	collection = "boat"
	cacheTTL   = 5 * time.Minute
)

var _ Repository = (*repository)(nil)

type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Boat, error)
	List(ctx context.Context) ([]*models.Boat, error)
	Create(ctx context.Context, boat *models.Boat) (string, error)
	CreateMany(ctx context.Context, boats []*models.Boat) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	store  store.Store
	cache  *redis.Client
	logger *zap.Logger
}

// NewRepository returns a boat repository backed by the document store.
// A nil cache disables caching without changing behavior.
func NewRepository(store store.Store, cache *redis.Client, logger *zap.Logger) Repository {
	return &repository{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

func (r *repository) GetByID(ctx context.Context, id string) (*models.Boat, error) {
	if cached := r.fromCache(ctx, id); cached != nil {
		return cached, nil
	}

	raw, err := r.store.FindOne(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	boat, err := decodeBoat(store.Document{ID: id, Raw: raw})
	if err != nil {
		return nil, err
	}

	r.toCache(ctx, boat)
	return boat, nil
}

func (r *repository) List(ctx context.Context) ([]*models.Boat, error) {
	docs, err := r.store.FindAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	boats := make([]*models.Boat, 0, len(docs))
	for _, doc := range docs {
		boat, err := decodeBoat(doc)
		if err != nil {
			return nil, err
		}
		boats = append(boats, boat)
	}

	return boats, nil
}

func (r *repository) Create(ctx context.Context, boat *models.Boat) (string, error) {
	return r.store.InsertOne(ctx, collection, boat)
}

func (r *repository) CreateMany(ctx context.Context, boats []*models.Boat) error {
	docs := make([]any, 0, len(boats))
	for _, boat := range boats {
		docs = append(docs, boat)
	}
	return r.store.InsertMany(ctx, collection, docs)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.store.CountAll(ctx, collection)
}

// fromCache is best-effort: any cache failure falls through to the store.
func (r *repository) fromCache(ctx context.Context, id string) *models.Boat {
	if r.cache == nil {
		return nil
	}

	data, err := r.cache.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		return nil
	}

	var boat models.Boat
	if err = json.Unmarshal(data, &boat); err != nil {
		return nil
	}
	return &boat
}

func (r *repository) toCache(ctx context.Context, boat *models.Boat) {
	if r.cache == nil {
		return
	}

	data, err := json.Marshal(boat)
	if err != nil {
		return
	}
	if err = r.cache.Set(ctx, cacheKey(boat.ID), data, cacheTTL).Err(); err != nil {
		r.logger.Warn("failed to cache boat", zap.Error(err), zap.String("id", boat.ID))
	}
}

func cacheKey(id string) string {
	return "boat:" + id
}

func decodeBoat(doc store.Document) (*models.Boat, error) {
	var boat models.Boat
	if err := json.Unmarshal(doc.Raw, &boat); err != nil {
		return nil, fmt.Errorf("failed to decode boat document: %w", err)
	}
	boat.ID = doc.ID
	return &boat, nil
}
