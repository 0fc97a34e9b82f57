//go:build integration

package graphdbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb"
)

const (
	neo4jImage    = "neo4j:5"
	neo4jPassword = "integration-secret"
)

// StartNeo4j runs a throwaway Neo4j container and returns a provider
// connected to it. Both are torn down with t.Cleanup.
func StartNeo4j(t *testing.T) *graphdb.Provider {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        neo4jImage,
		ExposedPorts: []string{"7687/tcp", "7474/tcp"},
		Env: map[string]string{
			"NEO4J_AUTH": "neo4j/" + neo4jPassword,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("7687/tcp"),
			wait.ForLog("Started.").WithStartupTimeout(2*time.Minute),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start Neo4j container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "7687")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}

	provider := graphdb.NewProvider(graphdb.Config{
		URI:      fmt.Sprintf("bolt://%s:%s", host, port.Port()),
		User:     "neo4j",
		Password: neo4jPassword,
	})
	t.Cleanup(func() {
		_ = provider.Close(context.Background())
	})

	verifyCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := provider.Verify(verifyCtx); err != nil {
		t.Fatalf("Neo4j not ready: %v", err)
	}
	return provider
}

// Exec runs cypher in write mode and fails the test on error.
func Exec(t *testing.T, db graphdb.SessionProvider, cypher string, params map[string]any) []*neo4j.Record {
	t.Helper()
	records, err := graphdb.Run(context.Background(), db, neo4j.AccessModeWrite, cypher, params)
	if err != nil {
		t.Fatalf("cypher failed: %v\n%s", err, cypher)
	}
	return records
}

// CreateNode creates one node with props and returns its element id.
func CreateNode(t *testing.T, db graphdb.SessionProvider, label string, props map[string]any) string {
	t.Helper()
	records := Exec(t, db, "CREATE (n:"+label+") SET n = $props RETURN elementId(n) AS id", map[string]any{"props": props})
	id, _ := records[0].Get("id")
	return id.(string)
}
