package graphdb

import (
	"context"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriver only implements the methods the provider calls outside of sessions.
type fakeDriver struct {
	neo4j.DriverWithContext
	closed   int
	verified int
}

func (d *fakeDriver) Close(context.Context) error {
	d.closed++
	return nil
}

func (d *fakeDriver) VerifyConnectivity(context.Context) error {
	d.verified++
	return nil
}

func validConfig() Config {
	return Config{URI: "neo4j://localhost:7687", User: "neo4j", Password: "secret"}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		missing []string
	}{
		{name: "complete", cfg: validConfig()},
		{name: "no uri", cfg: Config{User: "neo4j", Password: "x"}, missing: []string{"NEO4J_URI"}},
		{name: "nothing", cfg: Config{}, missing: []string{"NEO4J_URI", "NEO4J_USER", "NEO4J_PASSWORD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingConfig))

			var mce *MissingConfigError
			require.True(t, errors.As(err, &mce))
			assert.Equal(t, tt.missing, mce.Keys)
		})
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("NEO4J_URI", "neo4j://db:7687")
	t.Setenv("NEO4J_USER", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "pw")
	t.Setenv("NEO4J_DATABASE", "sport")
	t.Setenv("NEO4J_MAX_POOL_SIZE", "25")
	t.Setenv("NEO4J_CONNECT_TIMEOUT", "3s")

	cfg := NewConfigFromEnv()
	assert.Equal(t, "neo4j://db:7687", cfg.URI)
	assert.Equal(t, "sport", cfg.Database)
	assert.Equal(t, 25, cfg.MaxPoolSize)
	assert.Equal(t, "3s", cfg.ConnectTimeout.String())
	assert.NoError(t, cfg.Validate())
}

func TestProviderInitIsIdempotent(t *testing.T) {
	built := 0
	driver := &fakeDriver{}
	p := NewProviderWithFactory(validConfig(), func(Config) (neo4j.DriverWithContext, error) {
		built++
		return driver, nil
	})

	first, err := p.Init()
	require.NoError(t, err)
	second, err := p.Init()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, built)

	require.NoError(t, p.Verify(context.Background()))
	assert.Equal(t, 1, driver.verified)
}

func TestProviderInitFailsWithoutCredentials(t *testing.T) {
	p := NewProviderWithFactory(Config{URI: "neo4j://localhost"}, func(Config) (neo4j.DriverWithContext, error) {
		t.Fatal("driver must not be built without credentials")
		return nil, nil
	})

	_, err := p.Init()
	assert.ErrorIs(t, err, ErrMissingConfig)

	_, err = p.Session(context.Background(), neo4j.AccessModeRead)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestProviderCloseIsSafe(t *testing.T) {
	ctx := context.Background()

	never := NewProvider(validConfig())
	assert.NoError(t, never.Close(ctx))

	driver := &fakeDriver{}
	built := 0
	p := NewProviderWithFactory(validConfig(), func(Config) (neo4j.DriverWithContext, error) {
		built++
		return driver, nil
	})
	_, err := p.Init()
	require.NoError(t, err)

	require.NoError(t, p.Close(ctx))
	require.NoError(t, p.Close(ctx))
	assert.Equal(t, 1, driver.closed)

	// a closed provider rebuilds on next use
	_, err = p.Init()
	require.NoError(t, err)
	assert.Equal(t, 2, built)
}
