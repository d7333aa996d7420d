package catalog

import (
	"fmt"
	"net/url"
)

// Course is a single generated programme. Courses live inside the site
// content state; they are never persisted on their own and are recreated
// from the tables whenever a fresh default state is built.
type Course struct {
	ID            string `json:"id"`
	Seq           int    `json:"seq"`
	Name          string `json:"name"`
	Industry      string `json:"industry"`
	AcademicLevel Level  `json:"academicLevel"`
	Track         string `json:"track"`
	Duration      string `json:"duration"`
	Mode          string `json:"mode"`
	Status        string `json:"status"`
	ImageURL      string `json:"imageUrl"`
	Description   string `json:"description"`
	Certification string `json:"certification"`
	Eligibility   string `json:"eligibility"`
	Price         string `json:"price"`
	Benefits      string `json:"benefits"`
}

const (
	modeOffline  = "Offline"
	statusActive = "Active"

	certification = "NSDC (National Skill Development Corporation) certified"

	benefits = "- NSDC certified programme\n" +
		"- Industry-aligned curriculum\n" +
		"- Hands-on practical training\n" +
		"- Placement assistance\n" +
		"- Experienced faculty"
)

// Generate expands the level, industry, and track tables into the full
// course list. Output is deterministic: ids are assigned by a counter that
// strictly increases in generation order, so two runs always produce
// identical slices. The Seq field is the authoritative creation order;
// display ordering must use it rather than parsing digits out of the id.
func Generate() []Course {
	var courses []Course
	seq := 0

	for _, level := range levels {
		for _, industry := range industriesFor(level) {
			if level == LevelMaster {
				// Master programmes are named per industry, not per track.
				// Industries with no explicit name produce no course.
				name, ok := masterNames[industry]
				if !ok {
					continue
				}
				seq++
				courses = append(courses, build(seq, level, industry, industry, name))
				continue
			}

			for _, track := range tracksFor(level, industry) {
				seq++
				courses = append(courses, build(seq, level, industry, track, courseName(level, industry, track)))
			}
		}
	}

	return courses
}

// courseName applies the standard name template, honouring the irregular
// per-(level, industry) overrides.
func courseName(level Level, industry, track string) string {
	if name, ok := nameOverrides[nameKey{level, industry}]; ok {
		return name
	}
	return fmt.Sprintf("%s in %s (NSDC)", displayName[level], track)
}

// build assembles a single course record from the level tables.
func build(seq int, level Level, industry, track, name string) Course {
	return Course{
		ID:            fmt.Sprintf("crs-%d", seq),
		Seq:           seq,
		Name:          name,
		Industry:      industry,
		AcademicLevel: level,
		Track:         track,
		Duration:      durations[level],
		Mode:          modeOffline,
		Status:        statusActive,
		ImageURL:      "https://placehold.co/800x500?text=" + url.QueryEscape(industry),
		Description: fmt.Sprintf(
			"%s programme in %s specializing in %s. Industry-aligned curriculum delivered with hands-on training and NSDC certification.",
			displayName[level], industry, track,
		),
		Certification: certification,
		Eligibility:   eligibility[level],
		Price:         prices[level],
		Benefits:      benefits,
	}
}

// ExpectedCount returns the number of courses the tables should produce:
// for every non-Master (level, industry) pair, max(1, tracks); for Master,
// one course per industry with an explicit name.
func ExpectedCount() int {
	total := 0
	for _, level := range levels {
		for _, industry := range industriesFor(level) {
			if level == LevelMaster {
				if _, ok := masterNames[industry]; ok {
					total++
				}
				continue
			}
			total += len(tracksFor(level, industry))
		}
	}
	return total
}
