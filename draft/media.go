package draft

import (
	"errors"
	"fmt"

	courseModels "lmsadmin/models/course"
)

var (
	ErrThumbnailCap   = errors.New("thumbnail limit reached")
	ErrImageNotFound  = errors.New("image not found")
	ErrNotRestorable  = errors.New("only removed persisted images can be restored")
	ErrNoBannerStaged = errors.New("no banner image set")
)

// ActiveThumbnails counts the thumbnails that would survive a submit:
// persisted ones not marked removed, plus everything newly staged.
func ActiveThumbnails(d *courseModels.CourseDraft) int {
	n := 0
	for _, t := range d.Thumbnails {
		if !(t.Persisted() && t.Removed) {
			n++
		}
	}
	return n
}

// StageThumbnail adds a newly uploaded thumbnail payload. The add is refused
// once the active count reaches the cap.
func StageThumbnail(d *courseModels.CourseDraft, img courseModels.ImagePayload, cap int) error {
	if ActiveThumbnails(d) >= cap {
		return fmt.Errorf("%w: at most %d thumbnails", ErrThumbnailCap, cap)
	}
	img.URL = ""
	img.Removed = false
	d.Thumbnails = append(d.Thumbnails, img)
	return nil
}

// RemoveThumbnail removes the thumbnail at index. A persisted image is only
// marked removed and stays restorable until submit; a staged one is dropped
// outright.
func RemoveThumbnail(d *courseModels.CourseDraft, index int) error {
	if index < 0 || index >= len(d.Thumbnails) {
		return ErrImageNotFound
	}
	if d.Thumbnails[index].Persisted() {
		d.Thumbnails[index].Removed = true
		return nil
	}
	d.Thumbnails = append(d.Thumbnails[:index], d.Thumbnails[index+1:]...)
	return nil
}

// RestoreThumbnail undoes the removal of a persisted thumbnail.
func RestoreThumbnail(d *courseModels.CourseDraft, index int) error {
	if index < 0 || index >= len(d.Thumbnails) {
		return ErrImageNotFound
	}
	t := &d.Thumbnails[index]
	if !t.Persisted() || !t.Removed {
		return ErrNotRestorable
	}
	t.Removed = false
	return nil
}

// SetBanner stages a new banner image, replacing whatever banner is there.
// Replacement is destructive; only an explicit RemoveBanner keeps a persisted
// banner restorable.
func SetBanner(d *courseModels.CourseDraft, img courseModels.ImagePayload) {
	img.URL = ""
	img.Removed = false
	d.BannerImage = &img
}

// RemoveBanner removes the banner. Persisted banners are marked removed and
// restorable; staged ones are dropped.
func RemoveBanner(d *courseModels.CourseDraft) error {
	if d.BannerImage == nil {
		return ErrNoBannerStaged
	}
	if d.BannerImage.Persisted() {
		d.BannerImage.Removed = true
		return nil
	}
	d.BannerImage = nil
	return nil
}

// RestoreBanner undoes the removal of a persisted banner.
func RestoreBanner(d *courseModels.CourseDraft) error {
	if d.BannerImage == nil || !d.BannerImage.Persisted() || !d.BannerImage.Removed {
		return ErrNotRestorable
	}
	d.BannerImage.Removed = false
	return nil
}
