package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goflare.io/marina/driver"
)

// Collections the service uses; created on startup if missing.
var defaultCollections = []string{"boat", "booking", "event"}

var collectionNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var _ Store = (*postgresStore)(nil)

// postgresStore keeps each collection in its own table of
// (id uuid, doc jsonb) rows.
type postgresStore struct {
	pool   driver.PostgresPool
	name   string
	logger *zap.Logger
}

func NewPostgres(conn *driver.DB, logger *zap.Logger) (Store, error) {
	s := &postgresStore{
		pool:   conn.Pool,
		name:   conn.Pool.Config().ConnConfig.Database,
		logger: logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, collection := range defaultCollections {
		if err := s.ensureCollection(ctx, collection); err != nil {
			return nil, fmt.Errorf("failed to prepare collection %s: %w", collection, err)
		}
	}

	return s, nil
}

func (s *postgresStore) ensureCollection(ctx context.Context, collection string) error {
	table, err := tableName(collection)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (id uuid PRIMARY KEY DEFAULT gen_random_uuid(), doc jsonb NOT NULL)`, table))
	return err
}

func (s *postgresStore) FindOne(ctx context.Context, collection, id string) (json.RawMessage, error) {
	table, err := tableName(collection)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	err = s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1::uuid`, table), id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error("error finding document", zap.Error(err), zap.String("collection", collection), zap.String("id", id))
		return nil, err
	}

	return raw, nil
}

func (s *postgresStore) FindAll(ctx context.Context, collection string) ([]Document, error) {
	table, err := tableName(collection)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, fmt.Sprintf(`SELECT id::text, doc FROM %s`, table))
	if err != nil {
		s.logger.Error("error listing documents", zap.Error(err), zap.String("collection", collection))
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err = rows.Scan(&doc.ID, &doc.Raw); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (s *postgresStore) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	table, err := tableName(collection)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	var id string
	err = s.pool.QueryRow(ctx, fmt.Sprintf(`INSERT INTO %s (doc) VALUES ($1) RETURNING id::text`, table), data).Scan(&id)
	if err != nil {
		s.logger.Error("error inserting document", zap.Error(err), zap.String("collection", collection))
		return "", err
	}

	return id, nil
}

func (s *postgresStore) InsertMany(ctx context.Context, collection string, docs []any) error {
	table, err := tableName(collection)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
		if _, err = s.pool.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (doc) VALUES ($1)`, table), data); err != nil {
			s.logger.Error("error inserting documents", zap.Error(err), zap.String("collection", collection))
			return err
		}
	}

	return nil
}

func (s *postgresStore) CountAll(ctx context.Context, collection string) (int64, error) {
	table, err := tableName(collection)
	if err != nil {
		return 0, err
	}

	var count int64
	if err = s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT count(*) FROM %s`, table)).Scan(&count); err != nil {
		s.logger.Error("error counting documents", zap.Error(err), zap.String("collection", collection))
		return 0, err
	}

	return count, nil
}

func (s *postgresStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`)
	if err != nil {
		s.logger.Error("error listing collections", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *postgresStore) Name() string {
	return s.name
}

// tableName validates a collection name before it is interpolated into
// SQL.
func tableName(collection string) (string, error) {
	if !collectionNamePattern.MatchString(collection) {
		return "", fmt.Errorf("invalid collection name %q", collection)
	}
	return pgx.Identifier{collection}.Sanitize(), nil
}
