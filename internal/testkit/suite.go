package testkit

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

// module is a piece of infrastructure owned by the suite.
type module interface {
	name() string
	Terminate(ctx context.Context) error
}

// Suite manages the Postgres and Redis instances shared by one test binary.
type Suite struct {
	mu    sync.Mutex
	cfg   Config
	pg    *PostgresModule
	redis *RedisModule
}

var (
	globalSuite *Suite
	globalOnce  sync.Once
)

// Global returns the singleton Suite instance.
func Global() *Suite {
	globalOnce.Do(func() {
		globalSuite = &Suite{cfg: LoadConfig()}
	})
	return globalSuite
}

// Setup starts Postgres and Redis concurrently. If either fails, whatever did start is terminated.
func (s *Suite) Setup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pg != nil || s.redis != nil {
		return fmt.Errorf("suite already set up; call Shutdown first")
	}

	var (
		pg  *PostgresModule
		rdb *RedisModule
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pg, err = StartPostgres(gctx, &s.cfg)
		return err
	})
	g.Go(func() (err error) {
		rdb, err = StartRedis(gctx, &s.cfg)
		return err
	})
	if err := g.Wait(); err != nil {
		if pg != nil {
			_ = pg.Terminate(ctx)
		}
		if rdb != nil {
			_ = rdb.Terminate(ctx)
		}
		return fmt.Errorf("setup: %w", err)
	}

	s.pg, s.redis = pg, rdb
	return nil
}

// Shutdown terminates every module unless KEEP_CONTAINERS is set.
func (s *Suite) Shutdown(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	modules := make([]module, 0, 2)
	if s.redis != nil {
		modules = append(modules, s.redis)
	}
	if s.pg != nil {
		modules = append(modules, s.pg)
	}
	s.pg, s.redis = nil, nil

	for _, m := range modules {
		if s.cfg.KeepContainers {
			fmt.Println("KEEP_CONTAINERS=true, leaving", m.name())
			continue
		}
		if err := m.Terminate(ctx); err != nil {
			fmt.Println("warning: failed to terminate", m.name()+":", err)
		}
	}
}

// PostgresDSN returns the connection string for the test Postgres database.
func (s *Suite) PostgresDSN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pg == nil {
		return ""
	}
	return s.pg.DSN()
}

// RedisAddr returns the host:port address for the test Redis instance.
func (s *Suite) RedisAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.redis == nil {
		return ""
	}
	return s.redis.Addr()
}

// Run sets up the suite, calls afterSetup callbacks (opening connections,
// migrating), runs the tests and shuts down. Intended for use in TestMain.
func (s *Suite) Run(m *testing.M, afterSetup ...func() error) {
	ctx := context.Background()

	if err := s.Setup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "integration test setup failed: %v\n", err)
		os.Exit(1)
	}

	for _, fn := range afterSetup {
		if err := fn(); err != nil {
			fmt.Fprintf(os.Stderr, "afterSetup callback failed: %v\n", err)
			s.Shutdown(ctx)
			os.Exit(1)
		}
	}

	code := m.Run()

	s.Shutdown(ctx)
	os.Exit(code)
}

// Run delegates to Global().Run.
func Run(m *testing.M, afterSetup ...func() error) {
	Global().Run(m, afterSetup...)
}
