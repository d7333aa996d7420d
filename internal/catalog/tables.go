// Package catalog generates the institute's course list from fixed
// industry, level, and track tables. Generation is pure and deterministic:
// the same tables always produce the same courses in the same order.
package catalog

// Level represents an academic tier offered by the institute.
type Level string

const (
	LevelCertificate   Level = "Certificate"
	LevelUGCertificate Level = "UG Certificate"
	LevelUGDiploma     Level = "UG Diploma"
	LevelUGDegree      Level = "UG Degree"
	LevelMaster        Level = "Master"
)

// levels is the fixed generation order. Changing this order changes
// course ids, so it must stay stable across releases.
var levels = []Level{
	LevelCertificate,
	LevelUGCertificate,
	LevelUGDiploma,
	LevelUGDegree,
	LevelMaster,
}

// displayName maps a level to the prefix used in course names.
var displayName = map[Level]string{
	LevelCertificate:   "Certificate",
	LevelUGCertificate: "UG Certificate",
	LevelUGDiploma:     "Diploma",
	LevelUGDegree:      "B. Voc.",
	LevelMaster:        "M. Voc.",
}

// certificateIndustries are the industries offered at the Certificate level.
var certificateIndustries = []string{
	"Healthcare",
	"IT-ITeS",
	"Automotive",
	"Beauty & Wellness",
	"Retail",
	"Electronics",
	"Tourism & Hospitality",
	"Apparel",
}

// ugIndustries are the industries offered at the three undergraduate levels
// (UG Certificate, UG Diploma, UG Degree).
var ugIndustries = []string{
	"Healthcare",
	"IT-ITeS",
	"Automotive",
	"Beauty & Wellness",
	"Retail",
	"Electronics",
	"Construction",
	"Agriculture",
	"Tourism & Hospitality",
	"Media & Entertainment",
	"Banking & Finance",
	"Logistics",
}

// masterIndustries are the industries considered at the Master level.
// Only industries with an explicit entry in masterNames produce a course;
// the rest are skipped.
var masterIndustries = []string{
	"Healthcare",
	"IT-ITeS",
	"Management",
	"Media & Entertainment",
}

// vocationalTracks maps an industry to its named specializations.
// Industries absent from this map emit a single course per level, using
// the industry itself as the track.
var vocationalTracks = map[string][]string{
	"Healthcare": {
		"General Duty Assistant",
		"Medical Lab Technician",
		"Emergency Medical Technician",
	},
	"IT-ITeS": {
		"Software Development",
		"Data Entry & Office Automation",
		"Networking & Hardware",
	},
	"Automotive": {
		"Automobile Service Technician",
		"Auto Electrician",
	},
	"Beauty & Wellness": {
		"Cosmetology",
		"Spa Therapy",
	},
	"Electronics": {
		"Field Technician",
		"Solar Panel Installation",
	},
	"Agriculture": {
		"Organic Farming",
		"Dairy Farming",
	},
	"Tourism & Hospitality": {
		"Food & Beverage Service",
		"Front Office Management",
	},
	"Media & Entertainment": {
		"Multimedia",
		"Animation",
	},
}

// certificateAutomotiveTracks overrides the generic Automotive mapping at
// the Certificate level, expanding it into the NSDC job-role catalogue.
var certificateAutomotiveTracks = []string{
	"Two-Wheeler Service Technician",
	"Four-Wheeler Service Technician",
	"Auto Electrician",
	"Denting & Painting Technician",
	"Vehicle Diagnostics Technician",
	"CNC Machine Operator",
	"Welding Technician",
	"Automotive Sales Executive",
	"Spare Parts Operations Executive",
	"Driving & Telematics Operator",
}

// nameKey identifies a (level, industry) pair with an irregular course name.
type nameKey struct {
	level    Level
	industry string
}

// nameOverrides lists the handful of programmes whose marketing names do
// not follow the "<Level> in <Track> (NSDC)" template. The override applies
// to every track of the industry at that level.
var nameOverrides = map[nameKey]string{
	{LevelUGDegree, "Media & Entertainment"}:  "B. Voc. in Multimedia (NSDC)",
	{LevelUGDiploma, "Media & Entertainment"}: "Diploma in Multimedia (NSDC)",
}

// masterNames holds the per-industry names at the Master level. The Master
// level bypasses the track tables entirely; an industry with no entry here
// produces no course.
var masterNames = map[string]string{
	"Healthcare": "M. Voc. in Hospital Administration (NSDC)",
	"IT-ITeS":    "M. Voc. in Software Technology (NSDC)",
	"Management": "M. Voc. in Business Management (NSDC)",
}

// durations maps a level to the programme length shown on course cards.
var durations = map[Level]string{
	LevelCertificate:   "1 Year",
	LevelUGCertificate: "1 Year",
	LevelUGDiploma:     "2 Years",
	LevelUGDegree:      "3 Years",
	LevelMaster:        "1 Year",
}

// eligibility maps a level to the admission requirement string.
var eligibility = map[Level]string{
	LevelCertificate:   "10th pass or equivalent",
	LevelUGCertificate: "12th pass or equivalent",
	LevelUGDiploma:     "12th pass or equivalent",
	LevelUGDegree:      "12th pass or equivalent NSQF level",
	LevelMaster:        "Graduation in any discipline",
}

// prices maps a level to the displayed fee string.
var prices = map[Level]string{
	LevelCertificate:   "Rs. 15,000 / year",
	LevelUGCertificate: "Rs. 20,000 / year",
	LevelUGDiploma:     "Rs. 25,000 / year",
	LevelUGDegree:      "Rs. 30,000 / year",
	LevelMaster:        "Rs. 40,000 / year",
}

// industriesFor returns the industry list for a level, in generation order.
func industriesFor(level Level) []string {
	switch level {
	case LevelCertificate:
		return certificateIndustries
	case LevelMaster:
		return masterIndustries
	default:
		return ugIndustries
	}
}

// tracksFor returns the named tracks for an industry at a level. Industries
// with no mapping fall back to a single synthetic track named after the
// industry itself.
func tracksFor(level Level, industry string) []string {
	if level == LevelCertificate && industry == "Automotive" {
		return certificateAutomotiveTracks
	}
	if tracks, ok := vocationalTracks[industry]; ok && len(tracks) > 0 {
		return tracks
	}
	return []string{industry}
}
