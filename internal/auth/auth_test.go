package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), "user-1")
	id, ok := UserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", id)

	_, ok = UserID(context.Background())
	assert.False(t, ok)

	_, ok = UserID(WithUserID(context.Background(), ""))
	assert.False(t, ok)
}

func TestStaticAuthenticator(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	id, ok := Static{ID: "device"}.Authenticate(r)
	assert.True(t, ok)
	assert.Equal(t, "device", id)

	_, ok = Static{}.Authenticate(r)
	assert.False(t, ok)
}

func TestHeaderAuthenticator(t *testing.T) {
	authn := Header{Name: "X-Auth-User"}

	r := httptest.NewRequest("GET", "/", nil)
	_, ok := authn.Authenticate(r)
	assert.False(t, ok)

	r.Header.Set("X-Auth-User", "  alice  ")
	id, ok := authn.Authenticate(r)
	assert.True(t, ok)
	assert.Equal(t, "alice", id)
}
