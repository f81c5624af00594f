package db

import (
	"context"
	"fmt"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The analysis pipeline holds a connection only for the brief history
// insert and the occasional list query, so a small pool is plenty.
const (
	poolMaxConns          = 8
	poolMinConns          = 2
	poolHealthCheckPeriod = time.Minute
)

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBName         string
	TracingEnabled bool
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(params)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return db, nil
}

func poolConfig(params NewDBPoolParams) (*pgxpool.Config, error) {
	connString := fmt.Sprintf(
		"postgres://postgres@%s:%s/%s",
		params.DBHost, params.DBPort, params.DBName,
	)
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	cfg.MaxConns = poolMaxConns
	cfg.MinConns = poolMinConns
	cfg.HealthCheckPeriod = poolHealthCheckPeriod

	if params.TracingEnabled {
		cfg.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	return cfg, nil
}
