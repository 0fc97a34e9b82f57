// Package graphdbtest provides an in-memory SessionProvider that records
// statements and replays canned results.
package graphdbtest

import (
	"context"
	"errors"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb"
)

// Call is one statement run through a fake session.
type Call struct {
	Mode   neo4j.AccessMode
	Cypher string
	Params map[string]any
}

type result struct {
	records []*neo4j.Record
	err     error
}

// Provider is a fake graphdb.SessionProvider.
type Provider struct {
	mu         sync.Mutex
	calls      []Call
	results    []result
	sessionErr error
	opened     int
	closed     int
}

var _ graphdb.SessionProvider = (*Provider)(nil)

// New returns an empty fake provider.
func New() *Provider {
	return &Provider{}
}

// Push queues the records returned by the next unanswered Run.
func (p *Provider) Push(records ...*neo4j.Record) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = append(p.results, result{records: records})
	return p
}

// Fail queues an error returned by the next unanswered Run.
func (p *Provider) Fail(err error) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = append(p.results, result{err: err})
	return p
}

// FailSessions makes every Session call return err.
func (p *Provider) FailSessions(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sessionErr = err
}

// Calls returns the statements run so far.
func (p *Provider) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}

// Opened reports how many sessions were opened.
func (p *Provider) Opened() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opened
}

// Closed reports how many sessions were closed.
func (p *Provider) Closed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *Provider) Session(_ context.Context, mode neo4j.AccessMode) (graphdb.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sessionErr != nil {
		return nil, p.sessionErr
	}
	p.opened++
	return &session{provider: p, mode: mode}, nil
}

type session struct {
	provider *Provider
	mode     neo4j.AccessMode
	closed   bool
}

func (s *session) Run(_ context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	if s.closed {
		return nil, errors.New("session already closed")
	}

	p := s.provider
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, Call{Mode: s.mode, Cypher: cypher, Params: params})
	if len(p.results) == 0 {
		return nil, nil
	}
	next := p.results[0]
	p.results = p.results[1:]
	return next.records, next.err
}

func (s *session) Close(_ context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.provider.mu.Lock()
	s.provider.closed++
	s.provider.mu.Unlock()
	return nil
}

// Record builds a result row from alternating key, value pairs.
func Record(kv ...any) *neo4j.Record {
	rec := &neo4j.Record{}
	for i := 0; i+1 < len(kv); i += 2 {
		rec.Keys = append(rec.Keys, kv[i].(string))
		rec.Values = append(rec.Values, kv[i+1])
	}
	return rec
}

// Node builds a node with the given element id, label and properties.
func Node(elementID, label string, props map[string]any) dbtype.Node {
	return dbtype.Node{
		ElementId: elementID,
		Labels:    []string{label},
		Props:     props,
	}
}
