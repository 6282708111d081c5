package service_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finstagram/backend/internal/models"
	"github.com/finstagram/backend/internal/service"
	"github.com/finstagram/backend/internal/storage"
	"github.com/finstagram/backend/internal/testhelpers"
	"gorm.io/gorm"
)

func setupPostTest(t *testing.T) (*service.PostService, *service.ProfileService, storage.MediaStore, *gorm.DB) {
	db := testhelpers.SetupTestDB(t)
	media := testhelpers.SetupTestMedia(t)
	profiles := service.NewProfileService(db, media)
	posts := service.NewPostService(db, media, profiles)
	return posts, profiles, media, db
}

func TestCreatePost(t *testing.T) {
	posts, _, media, _ := setupPostTest(t)
	ctx := context.Background()

	post, err := posts.Create(ctx, "amy", "at the beach", "clip.MP4", strings.NewReader("videobytes"), 10, "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "amy", post.Username)
	assert.True(t, post.IsVideo, "video flag is persisted at write time")
	assert.Contains(t, post.Filename, "amy_")
	assert.True(t, strings.HasSuffix(post.Filename, "_clip.MP4"))

	rc, err := media.Open(ctx, post.Filename)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "videobytes", string(got))
}

func TestCreatePostSameNameNoCollision(t *testing.T) {
	posts, _, _, db := setupPostTest(t)
	ctx := context.Background()

	a, err := posts.Create(ctx, "amy", "one", "pic.jpg", strings.NewReader("first"), 5, "image/jpeg")
	require.NoError(t, err)
	b, err := posts.Create(ctx, "amy", "two", "pic.jpg", strings.NewReader("second"), 6, "image/jpeg")
	require.NoError(t, err)

	assert.NotEqual(t, a.Filename, b.Filename, "timestamped names keep identical originals apart")

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestFeedOrderAndAvatars(t *testing.T) {
	posts, profiles, _, db := setupPostTest(t)
	ctx := context.Background()

	_, err := profiles.UploadAvatar(ctx, "amy", "me.png", strings.NewReader("x"), 1, "image/png")
	require.NoError(t, err)

	first, err := posts.Create(ctx, "amy", "older", "a.jpg", strings.NewReader("a"), 1, "image/jpeg")
	require.NoError(t, err)
	second, err := posts.Create(ctx, "bob", "newer", "b.jpg", strings.NewReader("b"), 1, "image/jpeg")
	require.NoError(t, err)

	// Force distinct timestamps; sqlite stores them with enough precision
	// but the two creates can land in the same instant on a fast machine.
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Minute)).Error)
	require.NoError(t, db.Model(second).Update("created_at", time.Now()).Error)

	feed, err := posts.Feed(ctx, false)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	assert.Equal(t, "bob", feed[0].Post.Username, "feed is newest-first")
	assert.Equal(t, "amy", feed[1].Post.Username)
	assert.Equal(t, "avatar_amy_me.png", feed[1].Avatar)
	assert.Empty(t, feed[0].Avatar, "posters without a profile have no avatar")
}

func TestReelsFilter(t *testing.T) {
	posts, _, _, _ := setupPostTest(t)
	ctx := context.Background()

	_, err := posts.Create(ctx, "amy", "photo", "pic.jpg", strings.NewReader("p"), 1, "image/jpeg")
	require.NoError(t, err)
	_, err = posts.Create(ctx, "amy", "video", "clip.mp4", strings.NewReader("v"), 1, "video/mp4")
	require.NoError(t, err)

	reels, err := posts.Feed(ctx, true)
	require.NoError(t, err)
	require.Len(t, reels, 1)
	assert.True(t, reels[0].Post.IsVideo)
	assert.True(t, strings.HasSuffix(reels[0].Post.Filename, "clip.mp4"))
}
