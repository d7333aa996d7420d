package content

import (
	"encoding/json"
	"reflect"
	"testing"
)

// TestDraftLifecycle walks the Clean → Dirty → Saving → Clean cycle.
func TestDraftLifecycle(t *testing.T) {
	d := NewDraft(Default())

	if d.Status != StatusClean {
		t.Fatalf("new draft status: %s", d.Status)
	}
	if err := d.Discard(); err == nil {
		t.Error("Discard on a clean draft should fail")
	}
	if err := d.BeginSave(); err == nil {
		t.Error("BeginSave on a clean draft should fail")
	}

	if err := d.Apply(Update{Target: TargetLogoImage, URL: "/uploads/new-logo.png"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if d.Status != StatusDirty {
		t.Fatalf("status after update: %s", d.Status)
	}
	if d.Work.Site.LogoURL != "/uploads/new-logo.png" {
		t.Errorf("work logo: %q", d.Work.Site.LogoURL)
	}
	if d.Live.Site.LogoURL == "/uploads/new-logo.png" {
		t.Error("live state was mutated before save")
	}

	if err := d.BeginSave(); err != nil {
		t.Fatalf("BeginSave: %v", err)
	}
	if d.Status != StatusSaving {
		t.Fatalf("status after BeginSave: %s", d.Status)
	}
	if err := d.Apply(Update{Target: TargetLogoImage, URL: "/uploads/x.png"}); err == nil {
		t.Error("updates must be rejected while saving")
	}

	d.CompleteSave()
	if d.Status != StatusClean {
		t.Fatalf("status after CompleteSave: %s", d.Status)
	}
	if d.Live.Site.LogoURL != "/uploads/new-logo.png" {
		t.Error("live state not promoted on save")
	}
}

// TestDraftFailSave returns the draft to Dirty so the admin can retry.
func TestDraftFailSave(t *testing.T) {
	d := NewDraft(Default())
	if err := d.Apply(Update{Target: TargetLogoImage, URL: "/uploads/a.png"}); err != nil {
		t.Fatal(err)
	}
	if err := d.BeginSave(); err != nil {
		t.Fatal(err)
	}
	d.FailSave()
	if d.Status != StatusDirty {
		t.Errorf("status after FailSave: %s", d.Status)
	}
}

// TestDraftDiscard restores the working copy to the live state.
func TestDraftDiscard(t *testing.T) {
	d := NewDraft(Default())
	payload, _ := json.Marshal(Theme{Primary: "#000000"})
	if err := d.Apply(Update{Target: TargetTheme, Payload: payload}); err != nil {
		t.Fatal(err)
	}
	if d.Work.Theme.Primary != "#000000" {
		t.Fatalf("theme not applied: %q", d.Work.Theme.Primary)
	}

	if err := d.Discard(); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if d.Status != StatusClean {
		t.Errorf("status after discard: %s", d.Status)
	}
	if !reflect.DeepEqual(d.Work, d.Live) {
		t.Error("working copy differs from live after discard")
	}
}

// TestDraftSectionUpdateDoesNotLeakIntoLive: decoding into shared maps was
// a historical hazard; home edits must never reach the live copy.
func TestDraftSectionUpdateDoesNotLeakIntoLive(t *testing.T) {
	d := NewDraft(Default())

	home := d.Work.Home
	home.Sections = map[string]bool{SectionHighlights: false, SectionCTA: true}
	payload, _ := json.Marshal(home)
	if err := d.Apply(Update{Target: TargetHome, Payload: payload}); err != nil {
		t.Fatal(err)
	}

	if !d.Live.Home.Sections[SectionHighlights] {
		t.Error("live home.sections mutated by a draft update")
	}
	if d.Work.Home.Sections[SectionHighlights] {
		t.Error("draft update not applied to working copy")
	}
}

// TestDraftCourseImageByID splices the image into the addressed course only.
func TestDraftCourseImageByID(t *testing.T) {
	d := NewDraft(Default())
	target := d.Work.Courses.List[3].ID

	if err := d.Apply(Update{Target: TargetCourseImage, ID: target, URL: "/uploads/cover.jpg"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	for i, c := range d.Work.Courses.List {
		if c.ID == target {
			if c.ImageURL != "/uploads/cover.jpg" {
				t.Errorf("target course image: %q", c.ImageURL)
			}
			continue
		}
		if c.ImageURL != d.Live.Courses.List[i].ImageURL {
			t.Errorf("course %s image changed unexpectedly", c.ID)
		}
	}

	if err := d.Apply(Update{Target: TargetCourseImage, ID: "crs-does-not-exist", URL: "/x.jpg"}); err == nil {
		t.Error("expected error for unknown course id")
	}
}

// TestDraftTeamPhotoByID splices the photo into the addressed member only.
func TestDraftTeamPhotoByID(t *testing.T) {
	d := NewDraft(Default())

	if err := d.Apply(Update{Target: TargetTeamPhoto, ID: "tm-2", URL: "/uploads/photo.jpg"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for _, m := range d.Work.About.Team {
		want := d.liveTeamPhoto(m.ID)
		if m.ID == "tm-2" {
			want = "/uploads/photo.jpg"
		}
		if m.PhotoURL != want {
			t.Errorf("member %s photo: got %q, want %q", m.ID, m.PhotoURL, want)
		}
	}
}

func (d *Draft) liveTeamPhoto(id string) string {
	for _, m := range d.Live.About.Team {
		if m.ID == id {
			return m.PhotoURL
		}
	}
	return ""
}

// TestDraftGalleryAppend adds a new gallery item without touching the rest.
func TestDraftGalleryAppend(t *testing.T) {
	d := NewDraft(Default())
	before := len(d.Work.Gallery)

	if err := d.Apply(Update{Target: TargetGalleryImage, URL: "/uploads/fest.jpg", Title: "Annual fest", Category: "Events"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := len(d.Work.Gallery); got != before+1 {
		t.Fatalf("gallery length: got %d, want %d", got, before+1)
	}
	added := d.Work.Gallery[before]
	if added.ImageURL != "/uploads/fest.jpg" || added.Title != "Annual fest" {
		t.Errorf("appended item: %+v", added)
	}
	if len(d.Live.Gallery) != before {
		t.Error("live gallery changed")
	}
}

// TestReorderBounds: moving the first element up or the last down is a
// no-op; interior moves swap adjacent entries.
func TestReorderBounds(t *testing.T) {
	order := []string{"highlights", "notices"}

	got := reorder(order, 1, "up")
	if !reflect.DeepEqual(got, []string{"notices", "highlights"}) {
		t.Errorf("reorder up: %v", got)
	}

	if got := reorder(order, 0, "up"); !reflect.DeepEqual(got, order) {
		t.Errorf("first element up should be a no-op, got %v", got)
	}
	if got := reorder(order, 1, "down"); !reflect.DeepEqual(got, order) {
		t.Errorf("last element down should be a no-op, got %v", got)
	}
	if got := reorder(order, 5, "up"); !reflect.DeepEqual(got, order) {
		t.Errorf("out-of-range index should be a no-op, got %v", got)
	}
	if got := reorder(order, 0, "sideways"); !reflect.DeepEqual(got, order) {
		t.Errorf("unknown direction should be a no-op, got %v", got)
	}

	// The input slice itself is never modified.
	if !reflect.DeepEqual(order, []string{"highlights", "notices"}) {
		t.Errorf("input slice mutated: %v", order)
	}
}

// TestDraftUnknownTarget: invalid addressing is an error, not a silent no-op.
func TestDraftUnknownTarget(t *testing.T) {
	d := NewDraft(Default())
	if err := d.Apply(Update{Target: "about.faculty.members.tm-1"}); err == nil {
		t.Error("expected error for unknown target")
	}
	if d.Status != StatusClean {
		t.Errorf("failed update must not dirty the draft, status %s", d.Status)
	}
}
