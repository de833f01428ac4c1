package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedClient(t *testing.T) (*Client, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	return &Client{
		opts:   &goredis.UniversalOptions{Addrs: []string{"localhost:6379"}},
		client: db,
	}, mock
}

func TestClient_SetGet(t *testing.T) {
	client, mock := newMockedClient(t)
	ctx := context.Background()

	mock.ExpectSet("crm:leads", `[]`, time.Minute).SetVal("OK")
	mock.ExpectGet("crm:leads").SetVal(`[]`)

	err := client.Set(ctx, "crm:leads", `[]`, time.Minute)
	require.NoError(t, err)

	val, err := client.Get(ctx, "crm:leads")
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Del(t *testing.T) {
	client, mock := newMockedClient(t)

	mock.ExpectDel("crm:leads").SetVal(1)

	err := client.Del(context.Background(), "crm:leads")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Exists(t *testing.T) {
	client, mock := newMockedClient(t)

	mock.ExpectExists("crm:leads").SetVal(1)

	ok, err := client.Exists(context.Background(), "crm:leads")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_GetClient(t *testing.T) {
	client, _ := newMockedClient(t)
	assert.NotNil(t, client.GetClient())
}
