package db

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo connects to the remote store and verifies the connection
// with a ping. An empty URI means the remote store is not configured; the
// caller treats the error as "run without a remote store", not as fatal.
func ConnectMongo(uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("remote store URI not configured")
	}
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// Probe answers one question: is the remote store configured and reachable.
// The answer is computed once at construction and cached; Refresh re-runs
// the check on demand. Probe methods never fail; any check failure resolves
// to unavailable.
type Probe struct {
	client    *mongo.Client
	available atomic.Bool
}

// NewProbe builds a probe for the given client. A nil client (remote store
// never connected) is unavailable.
func NewProbe(client *mongo.Client) *Probe {
	p := &Probe{client: client}
	p.available.Store(p.check(context.Background()))
	return p
}

// Available reports the cached availability decision.
func (p *Probe) Available() bool {
	return p.available.Load()
}

// Refresh re-runs the reachability check and updates the cached decision.
func (p *Probe) Refresh(ctx context.Context) bool {
	ok := p.check(ctx)
	p.available.Store(ok)
	return ok
}

func (p *Probe) check(ctx context.Context) bool {
	if p.client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := p.client.Ping(ctx, nil); err != nil {
		log.WithError(err).Warn("remote store probe failed")
		return false
	}
	return true
}
