package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finstagram/backend/internal/service"
	"github.com/finstagram/backend/internal/testhelpers"
)

func TestConversationSymmetric(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	profiles := service.NewProfileService(db, testhelpers.SetupTestMedia(t))
	svc := service.NewMessageService(db, profiles)
	ctx := context.Background()

	a, err := svc.Send(ctx, "amy", "bob", "hi bob")
	require.NoError(t, err)
	b, err := svc.Send(ctx, "bob", "amy", "hi amy")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "amy", "carol", "unrelated")
	require.NoError(t, err)

	require.NoError(t, db.Model(a).Update("created_at", time.Now().Add(-time.Minute)).Error)
	require.NoError(t, db.Model(b).Update("created_at", time.Now()).Error)

	// Both participants see the same conversation, oldest-first.
	for _, pair := range [][2]string{{"amy", "bob"}, {"bob", "amy"}} {
		msgs, err := svc.Conversation(ctx, pair[0], pair[1])
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "hi bob", msgs[0].Body)
		assert.Equal(t, "hi amy", msgs[1].Body)
	}
}

func TestChatCandidates(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db)
	profiles := service.NewProfileService(db, testhelpers.SetupTestMedia(t))
	svc := service.NewMessageService(db, profiles)
	ctx := context.Background()

	for _, u := range []string{"amy", "bob", "carol"} {
		_, err := auth.Signup(ctx, u, "pw")
		require.NoError(t, err)
	}
	_, err := profiles.UploadAvatar(ctx, "bob", "bob.png", strings.NewReader("x"), 1, "image/png")
	require.NoError(t, err)

	candidates, err := svc.ChatCandidates(ctx, "amy")
	require.NoError(t, err)
	require.Len(t, candidates, 2, "the requesting user is excluded")

	assert.Equal(t, "bob", candidates[0].Username)
	assert.Equal(t, "avatar_bob_bob.png", candidates[0].Avatar)
	assert.Equal(t, "carol", candidates[1].Username)
	assert.Empty(t, candidates[1].Avatar)
}
