package content

import (
	"encoding/json"
	"fmt"

	"skillforge/internal/catalog"
)

// Status is the draft lifecycle state. A draft starts Clean (working copy
// equals the live state), becomes Dirty on the first applied update, passes
// through Saving while a commit is in flight, and returns to Clean once the
// working copy has been promoted to live.
type Status string

const (
	StatusClean  Status = "clean"
	StatusDirty  Status = "dirty"
	StatusSaving Status = "saving"
)

// Target names the place in the state an Update applies to. Using an
// enumerated target instead of free-form path strings keeps invalid
// addresses a decode-time error rather than a silent no-op.
type Target string

const (
	// Section replacement targets. Payload carries the full new section.
	TargetSite           Target = "site"
	TargetTheme          Target = "theme"
	TargetHome           Target = "home"
	TargetAbout          Target = "about"
	TargetCourses        Target = "courses"
	TargetNotices        Target = "notices"
	TargetGallery        Target = "gallery"
	TargetFAQs           Target = "faqs"
	TargetPlacements     Target = "placements"
	TargetLegal          Target = "legal"
	TargetCareer         Target = "career"
	TargetEnrollmentForm Target = "enrollmentForm"
	TargetContactForm    Target = "contactForm"

	// Image attachment targets. URL carries the uploaded image location;
	// ID addresses an element inside an array where applicable.
	TargetLogoImage    Target = "logoImage"
	TargetCourseImage  Target = "courseImage"
	TargetTeamPhoto    Target = "teamPhoto"
	TargetGalleryImage Target = "galleryImage"

	// Homepage section reordering. Index and Direction select the move.
	TargetHomeReorder Target = "homeReorder"
)

// Update is a single draft mutation.
type Update struct {
	Target Target `json:"target"`

	// Payload is the replacement value for section targets.
	Payload json.RawMessage `json:"payload,omitempty"`

	// ID selects an array element for by-id image targets (course id,
	// team member id). URL is the new image location. Title and Category
	// describe a newly attached gallery item.
	ID       string `json:"id,omitempty"`
	URL      string `json:"url,omitempty"`
	Title    string `json:"title,omitempty"`
	Category string `json:"category,omitempty"`

	// Index and Direction drive homepage reordering. Direction is
	// "up" or "down".
	Index     int    `json:"index,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// Draft pairs the live state with an admin's working copy. It is stored
// as JSON (in Valkey, keyed by user) between requests, so all fields are
// exported.
type Draft struct {
	Live   State  `json:"live"`
	Work   State  `json:"work"`
	Status Status `json:"status"`
}

// NewDraft starts a clean draft over the given live state. The working
// copy is a deep clone so edits never reach the live state through shared
// maps or slices.
func NewDraft(live State) *Draft {
	return &Draft{Live: live, Work: live.Clone(), Status: StatusClean}
}

// Apply mutates the working copy with the given update and marks the draft
// dirty. Sibling data is shared with the previous working copy where
// possible: only the slice containing a by-id replacement is copied.
func (d *Draft) Apply(u Update) error {
	if d.Status == StatusSaving {
		return fmt.Errorf("draft is being saved")
	}

	if err := d.apply(u); err != nil {
		return err
	}
	d.Status = StatusDirty
	return nil
}

func (d *Draft) apply(u Update) error {
	switch u.Target {
	case TargetSite:
		return decodeInto(u.Payload, &d.Work.Site)
	case TargetTheme:
		return decodeInto(u.Payload, &d.Work.Theme)
	case TargetHome:
		return decodeInto(u.Payload, &d.Work.Home)
	case TargetAbout:
		return decodeInto(u.Payload, &d.Work.About)
	case TargetCourses:
		return decodeInto(u.Payload, &d.Work.Courses)
	case TargetNotices:
		return decodeInto(u.Payload, &d.Work.Notices)
	case TargetGallery:
		return decodeInto(u.Payload, &d.Work.Gallery)
	case TargetFAQs:
		return decodeInto(u.Payload, &d.Work.FAQs)
	case TargetPlacements:
		return decodeInto(u.Payload, &d.Work.Placements)
	case TargetLegal:
		return decodeInto(u.Payload, &d.Work.Legal)
	case TargetCareer:
		return decodeInto(u.Payload, &d.Work.Career)
	case TargetEnrollmentForm:
		return decodeInto(u.Payload, &d.Work.EnrollmentForm)
	case TargetContactForm:
		return decodeInto(u.Payload, &d.Work.ContactForm)

	case TargetLogoImage:
		if u.URL == "" {
			return fmt.Errorf("logo image: url is required")
		}
		d.Work.Site.LogoURL = u.URL
		return nil

	case TargetCourseImage:
		return d.setCourseImage(u.ID, u.URL)

	case TargetTeamPhoto:
		return d.setTeamPhoto(u.ID, u.URL)

	case TargetGalleryImage:
		if u.URL == "" {
			return fmt.Errorf("gallery image: url is required")
		}
		gallery := append([]GalleryItem(nil), d.Work.Gallery...)
		gallery = append(gallery, GalleryItem{
			ID:       fmt.Sprintf("gal-%d", len(gallery)+1),
			Title:    u.Title,
			ImageURL: u.URL,
			Category: u.Category,
		})
		d.Work.Gallery = gallery
		return nil

	case TargetHomeReorder:
		d.Work.Home.SectionOrder = reorder(d.Work.Home.SectionOrder, u.Index, u.Direction)
		return nil

	default:
		return fmt.Errorf("unknown update target %q", u.Target)
	}
}

// setCourseImage replaces the cover image of the course with the given id.
// The course list is copied so the previous working copy's slice is left
// untouched.
func (d *Draft) setCourseImage(id, imgURL string) error {
	if id == "" || imgURL == "" {
		return fmt.Errorf("course image: id and url are required")
	}
	list := append([]catalog.Course(nil), d.Work.Courses.List...)
	for i := range list {
		if list[i].ID == id {
			list[i].ImageURL = imgURL
			d.Work.Courses.List = list
			return nil
		}
	}
	return fmt.Errorf("course image: no course with id %q", id)
}

// setTeamPhoto replaces the photo of the team member with the given id.
func (d *Draft) setTeamPhoto(id, photoURL string) error {
	if id == "" || photoURL == "" {
		return fmt.Errorf("team photo: id and url are required")
	}
	team := append([]TeamMember(nil), d.Work.About.Team...)
	for i := range team {
		if team[i].ID == id {
			team[i].PhotoURL = photoURL
			d.Work.About.Team = team
			return nil
		}
	}
	return fmt.Errorf("team photo: no team member with id %q", id)
}

// Discard resets the working copy to the live state. It is only valid on
// a dirty draft.
func (d *Draft) Discard() error {
	if d.Status != StatusDirty {
		return fmt.Errorf("nothing to discard: draft is %s", d.Status)
	}
	d.Work = d.Live.Clone()
	d.Status = StatusClean
	return nil
}

// BeginSave transitions a dirty draft into Saving. Updates are rejected
// until the commit completes or fails.
func (d *Draft) BeginSave() error {
	if d.Status != StatusDirty {
		return fmt.Errorf("nothing to save: draft is %s", d.Status)
	}
	d.Status = StatusSaving
	return nil
}

// CompleteSave promotes the working copy to live after a successful commit.
func (d *Draft) CompleteSave() {
	d.Live = d.Work.Clone()
	d.Status = StatusClean
}

// FailSave returns a Saving draft to Dirty so the admin can retry.
func (d *Draft) FailSave() {
	if d.Status == StatusSaving {
		d.Status = StatusDirty
	}
}

// reorder moves the element at index one position up or down, bounds
// checked: moving the first element up or the last element down is a no-op.
// The input slice is never modified.
func reorder(order []string, index int, direction string) []string {
	j := index
	switch direction {
	case "up":
		j = index - 1
	case "down":
		j = index + 1
	default:
		return order
	}

	if index < 0 || index >= len(order) || j < 0 || j >= len(order) {
		return order
	}

	out := append([]string(nil), order...)
	out[index], out[j] = out[j], out[index]
	return out
}

// decodeInto strictly decodes a section payload into dst.
func decodeInto(payload json.RawMessage, dst any) error {
	if len(payload) == 0 {
		return fmt.Errorf("update payload is required")
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decode update payload: %w", err)
	}
	return nil
}
