// Package graphdb owns the shared Neo4j driver and hands out per-request
// sessions bound to one logical database.
package graphdb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
)

// ErrMissingConfig is matched by errors.Is on a MissingConfigError.
var ErrMissingConfig = errors.New("missing required graph database configuration")

// MissingConfigError lists the environment keys that were not set.
type MissingConfigError struct {
	Keys []string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("%s must be set", strings.Join(e.Keys, ", "))
}

func (e *MissingConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// Session is a scoped handle opened in read or write mode. Close must be
// called on every exit path.
type Session interface {
	// Run executes one statement inside a managed transaction matching the
	// session's access mode and returns all records.
	Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error)
	Close(ctx context.Context) error
}

// SessionProvider is what repositories need from the database layer.
type SessionProvider interface {
	Session(ctx context.Context, mode neo4j.AccessMode) (Session, error)
}

// DriverFactory builds a driver from config. Replaced in tests.
type DriverFactory func(cfg Config) (neo4j.DriverWithContext, error)

// Provider lazily constructs one driver and shares it across requests.
type Provider struct {
	cfg       Config
	newDriver DriverFactory

	mu     sync.Mutex
	driver neo4j.DriverWithContext
}

// NewProvider creates a provider. No connection is made until Init or Session.
func NewProvider(cfg Config) *Provider {
	return &Provider{cfg: cfg, newDriver: NewDriver}
}

// NewProviderWithFactory creates a provider that builds its driver with factory.
func NewProviderWithFactory(cfg Config, factory DriverFactory) *Provider {
	return &Provider{cfg: cfg, newDriver: factory}
}

// NewDriver builds a Neo4j driver using basic auth.
func NewDriver(cfg Config) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""),
		func(c *neo4j.Config) {
			if cfg.MaxPoolSize > 0 {
				c.MaxConnectionPoolSize = cfg.MaxPoolSize
			}
			if cfg.ConnectTimeout > 0 {
				c.SocketConnectTimeout = cfg.ConnectTimeout
			}
		})
	if err != nil {
		return nil, fmt.Errorf("could not create Neo4j driver: %w", err)
	}
	return driver, nil
}

// Init builds the shared driver on first call. Repeated calls return the
// already constructed driver.
func (p *Provider) Init() (neo4j.DriverWithContext, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.driver != nil {
		return p.driver, nil
	}

	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	driver, err := p.newDriver(p.cfg)
	if err != nil {
		return nil, err
	}

	p.driver = driver
	log.Info().Str("uri", p.cfg.URI).Str("database", p.cfg.Database).Msg("neo4j driver initialized")
	return driver, nil
}

// Verify checks connectivity of the shared driver.
func (p *Provider) Verify(ctx context.Context) error {
	driver, err := p.Init()
	if err != nil {
		return err
	}
	return driver.VerifyConnectivity(ctx)
}

// Session opens a session in the given access mode.
func (p *Provider) Session(ctx context.Context, mode neo4j.AccessMode) (Session, error) {
	driver, err := p.Init()
	if err != nil {
		return nil, err
	}

	sess := driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: p.cfg.Database,
	})
	return &session{sess: sess, mode: mode}, nil
}

// Close releases the shared driver. Safe to call when never initialized.
func (p *Provider) Close(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.driver == nil {
		return nil
	}

	err := p.driver.Close(ctx)
	p.driver = nil
	log.Info().Msg("neo4j driver closed")
	return err
}

type session struct {
	sess neo4j.SessionWithContext
	mode neo4j.AccessMode
}

func (s *session) Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	work := func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	}

	var (
		out any
		err error
	)
	if s.mode == neo4j.AccessModeRead {
		out, err = s.sess.ExecuteRead(ctx, work)
	} else {
		out, err = s.sess.ExecuteWrite(ctx, work)
	}
	if err != nil {
		return nil, err
	}

	records, _ := out.([]*neo4j.Record)
	return records, nil
}

func (s *session) Close(ctx context.Context) error {
	return s.sess.Close(ctx)
}

// Run opens a session, executes one statement and releases the session.
func Run(ctx context.Context, provider SessionProvider, mode neo4j.AccessMode, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	sess, err := provider.Session(ctx, mode)
	if err != nil {
		return nil, err
	}
	defer CloseSession(ctx, sess)

	return sess.Run(ctx, cypher, params)
}

// CloseSession releases sess, logging a failure instead of returning it.
func CloseSession(ctx context.Context, sess Session) {
	if err := sess.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to close neo4j session")
	}
}
