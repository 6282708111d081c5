package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finstagram/backend/internal/service"
	"github.com/finstagram/backend/internal/testhelpers"
)

func TestNotificationsAfterSignup(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db)
	svc := service.NewNotificationService(db)
	ctx := context.Background()

	_, err := auth.Signup(ctx, "amy", "pw")
	require.NoError(t, err)

	notifs, err := svc.List(ctx, "amy")
	require.NoError(t, err)
	require.Len(t, notifs, 2)
	for _, n := range notifs {
		assert.Equal(t, "amy", n.Username)
		assert.Equal(t, "welcome", n.Kind)
		assert.False(t, n.Read)
	}
}

func TestNotificationsScopedToUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db)
	svc := service.NewNotificationService(db)
	ctx := context.Background()

	_, err := auth.Signup(ctx, "amy", "pw")
	require.NoError(t, err)

	notifs, err := svc.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, notifs)
}
