package db

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Provider owns the location of the SQLite file and hands out request-scoped
// connections. Each store operation acquires its own connection and releases
// it on every exit path; nothing retains a handle across calls.
type Provider struct {
	path string
	log  *zap.Logger

	mu sync.Mutex
	db *sqlx.DB
}

func NewProvider(path string, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{path: path, log: log}
}

// Acquire returns a connection scoped to a single logical operation. The
// caller must Close it. The backing pool is opened lazily on first use,
// creating the containing directory if absent.
func (p *Provider) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	pool, err := p.pool(ctx)
	if err != nil {
		return nil, err
	}
	conn, err := pool.Connx(ctx)
	if err != nil {
		return nil, &ConnectionError{Path: p.path, Err: err}
	}
	return conn, nil
}

func (p *Provider) pool(ctx context.Context) (*sqlx.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db != nil {
		return p.db, nil
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &ConnectionError{Path: p.path, Err: err}
		}
	}

	dsn := "file:" + p.path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	pool, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, &ConnectionError{Path: p.path, Err: err}
	}
	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, &ConnectionError{Path: p.path, Err: err}
	}
	p.log.Debug("database opened", zap.String("path", p.path))
	p.db = pool
	return pool, nil
}

func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
