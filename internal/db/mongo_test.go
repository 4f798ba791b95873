package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/property-portal/internal/models"
)

func TestConnectMongoRequiresURI(t *testing.T) {
	_, err := ConnectMongo("")
	assert.Error(t, err)
}

func TestProbeWithoutClientIsUnavailable(t *testing.T) {
	probe := NewProbe(nil)

	assert.False(t, probe.Available())
	assert.False(t, probe.Refresh(context.Background()), "refresh cannot revive a missing client")
	assert.False(t, probe.Available())
}

func TestRemoteStoreWithoutConnectionErrors(t *testing.T) {
	store := NewRemoteStore(nil, "")
	ctx := context.Background()

	_, err := store.ListProperties(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound, "a missing connection is a failure, not an absence")

	_, err = store.GetUnit(ctx, "unit-1a")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

// Integration coverage below needs a reachable Mongo instance.

func integrationStore(t *testing.T) *RemoteStore {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skipf("set MONGO_TEST_URI to run remote store integration tests")
	}
	client, err := ConnectMongo(uri)
	if err != nil {
		t.Skipf("remote store unreachable: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return NewRemoteStore(client, "property_portal_test")
}

func TestRemoteStoreRoundTrip(t *testing.T) {
	store := integrationStore(t)
	ctx := context.Background()

	created, err := store.CreateProperty(ctx, models.Property{Name: "Integration Fixture"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	defer store.DeleteProperty(ctx, created.ID)

	fetched, err := store.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Integration Fixture", fetched.Name)

	name := "Integration Fixture Renamed"
	updated, err := store.UpdateProperty(ctx, created.ID, models.PropertyPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)

	deleted, err := store.DeleteProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	missing, err := store.GetProperty(ctx, created.ID)
	assert.Nil(t, missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoteStoreDeleteMissing(t *testing.T) {
	store := integrationStore(t)

	deleted, err := store.DeleteProperty(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.False(t, deleted)
}
