package draft

import (
	"testing"

	courseModels "lmsadmin/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stagedImage(name string) courseModels.ImagePayload {
	return courseModels.ImagePayload{Data: "data:image/png;base64," + name, ContentType: "image/png", Size: 1024}
}

func persistedImage(url string) courseModels.ImagePayload {
	return courseModels.ImagePayload{URL: url}
}

func TestStageThumbnailCap(t *testing.T) {
	d := &courseModels.CourseDraft{}

	for i := 0; i < 4; i++ {
		require.NoError(t, StageThumbnail(d, stagedImage("t"), 4))
	}
	assert.Equal(t, 4, ActiveThumbnails(d))

	err := StageThumbnail(d, stagedImage("overflow"), 4)
	assert.ErrorIs(t, err, ErrThumbnailCap)
	assert.Len(t, d.Thumbnails, 4)
}

func TestRemovedPersistedThumbnailFreesASlot(t *testing.T) {
	d := &courseModels.CourseDraft{Thumbnails: []courseModels.ImagePayload{
		persistedImage("https://cdn/a"), persistedImage("https://cdn/b"),
		persistedImage("https://cdn/c"), persistedImage("https://cdn/d"),
	}}

	assert.ErrorIs(t, StageThumbnail(d, stagedImage("x"), 4), ErrThumbnailCap)

	require.NoError(t, RemoveThumbnail(d, 1))
	assert.Equal(t, 3, ActiveThumbnails(d))
	assert.Len(t, d.Thumbnails, 4, "persisted removal is a soft mark")
	assert.True(t, d.Thumbnails[1].Removed)

	require.NoError(t, StageThumbnail(d, stagedImage("x"), 4))
	assert.Equal(t, 4, ActiveThumbnails(d))
}

func TestRemoveStagedThumbnailIsDestructive(t *testing.T) {
	d := &courseModels.CourseDraft{}
	require.NoError(t, StageThumbnail(d, stagedImage("a"), 4))

	require.NoError(t, RemoveThumbnail(d, 0))
	assert.Empty(t, d.Thumbnails)

	assert.ErrorIs(t, RemoveThumbnail(d, 0), ErrImageNotFound)
}

func TestRestoreThumbnail(t *testing.T) {
	d := &courseModels.CourseDraft{Thumbnails: []courseModels.ImagePayload{persistedImage("https://cdn/a")}}

	assert.ErrorIs(t, RestoreThumbnail(d, 0), ErrNotRestorable, "not removed yet")

	require.NoError(t, RemoveThumbnail(d, 0))
	require.NoError(t, RestoreThumbnail(d, 0))
	assert.False(t, d.Thumbnails[0].Removed)

	require.NoError(t, StageThumbnail(d, stagedImage("b"), 4))
	assert.ErrorIs(t, RestoreThumbnail(d, 1), ErrNotRestorable, "staged images cannot be restored")
}

func TestBannerLifecycle(t *testing.T) {
	d := &courseModels.CourseDraft{}

	assert.ErrorIs(t, RemoveBanner(d), ErrNoBannerStaged)

	SetBanner(d, stagedImage("banner"))
	require.NotNil(t, d.BannerImage)
	require.NoError(t, RemoveBanner(d))
	assert.Nil(t, d.BannerImage, "staged banner removal drops it")

	banner := persistedImage("https://cdn/banner")
	d.BannerImage = &banner
	require.NoError(t, RemoveBanner(d))
	assert.True(t, d.BannerImage.Removed, "persisted banner removal is a soft mark")

	require.NoError(t, RestoreBanner(d))
	assert.False(t, d.BannerImage.Removed)
	assert.ErrorIs(t, RestoreBanner(d), ErrNotRestorable)
}

func TestSetBannerReplacementIsDestructive(t *testing.T) {
	banner := persistedImage("https://cdn/banner")
	d := &courseModels.CourseDraft{BannerImage: &banner}

	SetBanner(d, stagedImage("replacement"))

	require.NotNil(t, d.BannerImage)
	assert.False(t, d.BannerImage.Persisted(), "the staged upload takes the banner slot")
	assert.ErrorIs(t, RestoreBanner(d), ErrNotRestorable, "the replaced banner is gone for good")
}
