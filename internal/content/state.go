// Package content defines the site content state, the single serializable
// object holding every editable section of the institute's website, plus
// the reconcile merge that combines a stored snapshot with the canonical
// default, and the draft/commit cycle used by the admin API.
package content

import (
	"encoding/json"

	"skillforge/internal/catalog"
)

// State is the full site content object. It is created once from the
// canonical default, loaded and reconciled at startup, mutated only through
// admin drafts, and persisted in full on every save.
type State struct {
	Site           Site          `json:"site"`
	Theme          Theme         `json:"theme"`
	Home           Home          `json:"home"`
	About          About         `json:"about"`
	Courses        Courses       `json:"courses"`
	Notices        []Notice      `json:"notices"`
	Gallery        []GalleryItem `json:"gallery"`
	FAQs           []FAQ         `json:"faqs"`
	Placements     Placements    `json:"placements"`
	Legal          Legal         `json:"legal"`
	Career         Career        `json:"career"`
	EnrollmentForm FormSchema    `json:"enrollmentForm"`
	ContactForm    FormSchema    `json:"contactForm"`
}

// Clone returns a deep copy of the state via a JSON round trip, so the
// copy shares no maps or slices with the original.
func (s State) Clone() State {
	raw, err := json.Marshal(s)
	if err != nil {
		return s
	}
	var out State
	if err := json.Unmarshal(raw, &out); err != nil {
		return s
	}
	return out
}

// Store abstracts the persistence medium for the state snapshot. Load
// returns the raw stored JSON (nil when nothing has been saved yet); Save
// replaces the snapshot in full.
type Store interface {
	Load() ([]byte, error)
	Save(raw []byte) error
}

// Site holds branding, navigation, and contact information.
type Site struct {
	Name               string      `json:"name"`
	Tagline            string      `json:"tagline"`
	LogoURL            string      `json:"logoUrl"`
	Nav                []NavItem   `json:"nav"`
	Contact            Contact     `json:"contact"`
	Social             Social      `json:"social"`
	AlertBanner        AlertBanner `json:"alertBanner"`
	Footer             Footer      `json:"footer"`
	NotificationEmails []string    `json:"notificationEmails"`
}

// NavItem is a single navigation link.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Contact holds the institute's contact details.
type Contact struct {
	Email       string   `json:"email"`
	Phones      []string `json:"phones"`
	Address     string   `json:"address"`
	MapEmbedURL string   `json:"mapEmbedUrl"`
}

// Social holds the institute's social media profile links.
type Social struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
	LinkedIn  string `json:"linkedin"`
}

// AlertBanner is the dismissible announcement strip at the top of the site.
type AlertBanner struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
	Link    string `json:"link"`
}

// Footer holds the site footer content.
type Footer struct {
	Text       string    `json:"text"`
	QuickLinks []NavItem `json:"quickLinks"`
}

// Theme holds the site's color palette and corner radius.
type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Radius     string `json:"radius"`
}

// Home holds the homepage content. Sections maps section ids to their
// visibility; SectionOrder is a permutation of the Sections keys and only
// controls relative position.
type Home struct {
	Hero          Hero              `json:"hero"`
	Highlights    []Highlight       `json:"highlights"`
	Sections      map[string]bool   `json:"sections"`
	SectionOrder  []string          `json:"sectionOrder"`
	SectionLabels map[string]string `json:"sectionLabels"`
	CTABlock      CTABlock          `json:"ctaBlock"`
	BigShowcase   BigShowcase       `json:"bigShowcase"`
}

// Hero is the homepage banner.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	CTAText  string `json:"ctaText"`
	CTALink  string `json:"ctaLink"`
}

// Highlight is a short icon-plus-text feature card on the homepage.
type Highlight struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// CTABlock is the call-to-action strip near the bottom of the homepage.
type CTABlock struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
}

// BigShowcase is the large promotional block with image and link.
type BigShowcase struct {
	Enabled  bool   `json:"enabled"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link"`
}

// About holds the about-page narrative, team, values, and statistics.
type About struct {
	Intro    string       `json:"intro"`
	Chapters []Chapter    `json:"chapters"`
	Team     []TeamMember `json:"team"`
	Values   []ValueItem  `json:"values"`
	Stats    []Stat       `json:"stats"`
}

// Chapter is one narrative block on the about page.
type Chapter struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// TeamMember is a faculty or staff profile.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl"`
	Bio      string `json:"bio"`
}

// ValueItem is one of the institute's stated values.
type ValueItem struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Stat is a headline figure such as "5,000+ students trained".
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Courses carries the generated course list and the courses page header.
type Courses struct {
	List     []catalog.Course `json:"list"`
	PageMeta PageMeta         `json:"pageMeta"`
}

// PageMeta is the header block shared by listing pages.
type PageMeta struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	HeroURL  string `json:"heroUrl"`
}

// Notice is a dated announcement. Body is Markdown.
type Notice struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Date   string `json:"date"`
	Pinned bool   `json:"pinned"`
}

// GalleryItem is a single photo in the campus gallery.
type GalleryItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Placements holds placement partners and success stories.
type Placements struct {
	Intro    string    `json:"intro"`
	Partners []Partner `json:"partners"`
	Stories  []Story   `json:"stories"`
}

// Partner is a hiring partner's name and logo.
type Partner struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

// Story is a placed student's success story.
type Story struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	PhotoURL string `json:"photoUrl"`
	Quote    string `json:"quote"`
}

// Legal holds the legal page texts. All fields are Markdown.
type Legal struct {
	Privacy string `json:"privacy"`
	Terms   string `json:"terms"`
	Refund  string `json:"refund"`
}

// Career holds the careers page content.
type Career struct {
	Intro    string    `json:"intro"`
	Openings []Opening `json:"openings"`
}

// Opening is a single job opening at the institute.
type Opening struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// FormSchema declares the fields of a public form (enrollment or contact).
type FormSchema struct {
	Title          string      `json:"title"`
	SubmitLabel    string      `json:"submitLabel"`
	SuccessMessage string      `json:"successMessage"`
	Fields         []FormField `json:"fields"`
}

// FormField is one declarative field in a form schema.
type FormField struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder"`
	Options     []string `json:"options,omitempty"`
}
