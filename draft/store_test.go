package draft

import (
	"testing"
	"time"

	courseModels "lmsadmin/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGetDelete(t *testing.T) {
	s := NewStore()
	key := Key("course1", "user1")

	s.Put(key, &courseModels.CourseDraft{Title: "Draft"}, Labels{})
	assert.Equal(t, 1, s.Len())

	e, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, "Draft", e.Snapshot().Title)

	_, ok = s.Get(Key("course1", "user2"))
	assert.False(t, ok, "sessions are per editor")

	s.Delete(key)
	assert.Equal(t, 0, s.Len())
}

func TestStoreSweepDropsIdleSessions(t *testing.T) {
	s := NewStore()
	stale := s.Put(Key("c1", "u1"), &courseModels.CourseDraft{}, Labels{})
	fresh := s.Put(Key("c2", "u1"), &courseModels.CourseDraft{}, Labels{})

	stale.mu.Lock()
	stale.lastTouched = time.Now().Add(-time.Hour)
	stale.mu.Unlock()
	_ = fresh

	assert.Equal(t, 1, s.Sweep(30*time.Minute))
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(Key("c2", "u1"))
	assert.True(t, ok)
}

func TestEntryUpdateRefreshesIdleTimestamp(t *testing.T) {
	s := NewStore()
	e := s.Put(Key("c1", "u1"), &courseModels.CourseDraft{}, Labels{})

	e.mu.Lock()
	e.lastTouched = time.Now().Add(-time.Hour)
	e.mu.Unlock()

	require.NoError(t, e.Update(func(d *courseModels.CourseDraft) error {
		d.Title = "Touched"
		return nil
	}))

	assert.Equal(t, 0, s.Sweep(30*time.Minute), "an active session survives the sweep")
}

func TestEntryCompletionState(t *testing.T) {
	s := NewStore()
	e := s.Put(Key("c1", "u1"), &courseModels.CourseDraft{}, Labels{})

	assert.Empty(t, e.CompletedSteps())

	e.MarkCompleted(StepBasic)
	e.MarkCompleted(StepContent)

	done := e.CompletedSteps()
	assert.True(t, done[StepBasic])
	assert.True(t, done[StepContent])
	assert.False(t, done[StepMedia])
}

func TestSnapshotIsolatesModules(t *testing.T) {
	s := NewStore()
	d := &courseModels.CourseDraft{}
	setModules(d, sampleModules())
	e := s.Put(Key("c1", "u1"), d, Labels{})

	snap := e.Snapshot()
	require.NoError(t, e.Update(func(d *courseModels.CourseDraft) error {
		return DeleteLesson(d, "m1", "l1")
	}))

	assert.Len(t, snap.Modules[0].Lessons, 2, "snapshot is unaffected by later edits")
	assert.Len(t, e.Snapshot().Modules[0].Lessons, 1)
}

func TestSnapshotIsolatesMedia(t *testing.T) {
	s := NewStore()
	banner := courseModels.ImagePayload{URL: "https://cdn/banner"}
	d := &courseModels.CourseDraft{
		Thumbnails:  []courseModels.ImagePayload{{URL: "https://cdn/a"}},
		BannerImage: &banner,
	}
	e := s.Put(Key("c1", "u1"), d, Labels{})

	snap := e.Snapshot()
	require.NoError(t, e.Update(func(d *courseModels.CourseDraft) error {
		if err := RemoveThumbnail(d, 0); err != nil {
			return err
		}
		return RemoveBanner(d)
	}))

	assert.False(t, snap.Thumbnails[0].Removed, "snapshot thumbnails are unaffected by later media edits")
	assert.False(t, snap.BannerImage.Removed, "snapshot banner is unaffected by later media edits")
	live := e.Snapshot()
	assert.True(t, live.Thumbnails[0].Removed)
	assert.True(t, live.BannerImage.Removed)
}

func TestReplaceDraftKeepsCompletion(t *testing.T) {
	s := NewStore()
	e := s.Put(Key("c1", "u1"), &courseModels.CourseDraft{Title: "Old"}, Labels{})
	e.MarkCompleted(StepBasic)

	e.ReplaceDraft(&courseModels.CourseDraft{Title: "From server"})

	assert.Equal(t, "From server", e.Snapshot().Title)
	assert.True(t, e.CompletedSteps()[StepBasic])
}
