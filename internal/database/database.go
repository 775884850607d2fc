package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MonoCollector_Go/internal/config"
)

// Pool is the part of the connection pool the HTTP layer needs
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig describes the PostgreSQL connection pool
type PoolConfig struct {
	ConnString      string
	ApplicationName string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

// PoolConfigFromConfig derives the pool settings from the application config
func PoolConfigFromConfig(cfg *config.Config) PoolConfig {
	return PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		ApplicationName: cfg.ServiceName,
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	}
}

// parse turns pc into a pgxpool config. Sessions always run in UTC so that
// timestamps are stored and compared the same way whatever the server's
// default is; day boundaries are applied in Go with the configured zone.
func (pc PoolConfig) parse() (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(pc.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := pc.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConnections
	}
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	poolCfg.MaxConns = int32(maxConns)
	poolCfg.MinConns = min(DefaultMinConnections, poolCfg.MaxConns)
	poolCfg.MaxConnIdleTime = pc.MaxConnIdleTime
	poolCfg.MaxConnLifetime = pc.MaxConnLifetime
	poolCfg.HealthCheckPeriod = HealthCheckPeriod

	params := poolCfg.ConnConfig.RuntimeParams
	params[RuntimeParamTimeZone] = SessionTimeZone
	if pc.ApplicationName != "" {
		params[RuntimeParamApplicationName] = pc.ApplicationName
	}
	return poolCfg, nil
}

// NewPool opens the connection pool and verifies it with a ping. ctx bounds
// only the connect; the pool outlives it.
func NewPool(ctx context.Context, pc PoolConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pc.parse()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", poolCfg.ConnConfig.Host,
		"database", poolCfg.ConnConfig.Database,
		"max_conns", poolCfg.MaxConns)
	return pool, nil
}
