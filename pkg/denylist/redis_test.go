package denylist_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/limbo/manifest/pkg/denylist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) string {
	if os.Getenv("RUN_INTEGRATION") == "" {
		t.Skip("set RUN_INTEGRATION=1 to run against a redis container")
	}
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestRedisDenylist(t *testing.T) {
	url := setupRedis(t)
	ctx := context.Background()
	r, err := denylist.NewRedis(ctx, denylist.RedisConfig{URL: url})
	require.NoError(t, err)

	require.NoError(t, r.Revoke(ctx, "live", time.Now().Add(time.Hour)))
	require.NoError(t, r.Revoke(ctx, "short", time.Now().Add(time.Second)))
	require.NoError(t, r.Revoke(ctx, "already-expired", time.Now().Add(-time.Minute)))

	revoked, err := r.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = r.IsRevoked(ctx, "already-expired")
	require.NoError(t, err)
	assert.False(t, revoked)

	assert.Eventually(t, func() bool {
		revoked, err := r.IsRevoked(ctx, "short")
		return err == nil && !revoked
	}, 5*time.Second, 100*time.Millisecond)
}
