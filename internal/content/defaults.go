package content

import "skillforge/internal/catalog"

// Section ids used by the homepage visibility map and ordering.
const (
	SectionHighlights = "highlights"
	SectionCourses    = "courses"
	SectionNotices    = "notices"
	SectionPlacements = "placements"
	SectionGallery    = "gallery"
	SectionFAQs       = "faqs"
	SectionCTA        = "cta"
)

// defaultSectionOrder is the canonical homepage section order.
var defaultSectionOrder = []string{
	SectionHighlights,
	SectionCourses,
	SectionNotices,
	SectionPlacements,
	SectionGallery,
	SectionFAQs,
	SectionCTA,
}

// Default returns the canonical site content state: full seed data for
// every section, with the course list produced by the catalog generator.
// Every call builds a fresh value so callers can mutate the result freely.
func Default() State {
	return State{
		Site: Site{
			Name:    "SkillForge Institute",
			Tagline: "Skill today. Succeed tomorrow.",
			LogoURL: "/uploads/logo.png",
			Nav: []NavItem{
				{Label: "Home", Path: "/"},
				{Label: "Courses", Path: "/courses"},
				{Label: "Notices", Path: "/notices"},
				{Label: "Gallery", Path: "/gallery"},
				{Label: "About", Path: "/about"},
				{Label: "FAQ", Path: "/faq"},
				{Label: "Enroll", Path: "/enroll"},
			},
			Contact: Contact{
				Email:       "info@skillforge.example",
				Phones:      []string{"+91 98765 43210", "+91 98765 43211"},
				Address:     "Plot 12, Industrial Estate Road, Sector 5",
				MapEmbedURL: "",
			},
			Social: Social{
				Facebook:  "https://facebook.com/skillforge",
				Instagram: "https://instagram.com/skillforge",
				YouTube:   "https://youtube.com/@skillforge",
				LinkedIn:  "https://linkedin.com/company/skillforge",
			},
			AlertBanner: AlertBanner{
				Enabled: true,
				Text:    "Admissions open for the new academic session.",
				Link:    "/enroll",
			},
			Footer: Footer{
				Text: "NSDC-affiliated vocational training institute.",
				QuickLinks: []NavItem{
					{Label: "Privacy Policy", Path: "/legal/privacy"},
					{Label: "Terms of Service", Path: "/legal/terms"},
					{Label: "Refund Policy", Path: "/legal/refund"},
				},
			},
			NotificationEmails: nil,
		},
		Theme: Theme{
			Primary:    "#1d4ed8",
			Secondary:  "#0f172a",
			Accent:     "#f59e0b",
			Background: "#ffffff",
			Text:       "#111827",
			Radius:     "0.5rem",
		},
		Home: Home{
			Hero: Hero{
				Title:    "Build a career with your hands and your head",
				Subtitle: "NSDC-certified vocational programmes from certificate to master's level.",
				ImageURL: "https://placehold.co/1600x700?text=Campus",
				CTAText:  "Explore Courses",
				CTALink:  "/courses",
			},
			Highlights: []Highlight{
				{Icon: "certificate", Title: "NSDC Certified", Text: "Every programme carries national skill certification."},
				{Icon: "tools", Title: "Hands-on Training", Text: "Workshops and labs, not just classrooms."},
				{Icon: "briefcase", Title: "Placement Support", Text: "Dedicated placement cell with industry partners."},
			},
			Sections: map[string]bool{
				SectionHighlights: true,
				SectionCourses:    true,
				SectionNotices:    true,
				SectionPlacements: true,
				SectionGallery:    false,
				SectionFAQs:       true,
				SectionCTA:        true,
			},
			SectionOrder: append([]string(nil), defaultSectionOrder...),
			SectionLabels: map[string]string{
				SectionHighlights: "Why SkillForge",
				SectionCourses:    "Popular Courses",
				SectionNotices:    "Latest Notices",
				SectionPlacements: "Placements",
				SectionGallery:    "Campus Life",
				SectionFAQs:       "Frequently Asked Questions",
				SectionCTA:        "Start Your Journey",
			},
			CTABlock: CTABlock{
				Title:      "Ready to get started?",
				Text:       "Seats fill fast. Submit your enrollment enquiry today.",
				ButtonText: "Enroll Now",
				ButtonLink: "/enroll",
			},
			BigShowcase: BigShowcase{
				Enabled:  false,
				Title:    "New Automotive Lab",
				Text:     "A fully equipped diagnostics and EV service workshop.",
				ImageURL: "https://placehold.co/1200x600?text=Workshop",
				Link:     "/gallery",
			},
		},
		About: About{
			Intro: "SkillForge Institute trains students for real jobs in real industries, combining NSDC-aligned curricula with workshop-first teaching.",
			Chapters: []Chapter{
				{Title: "Our Story", Body: "Founded by industry practitioners, the institute grew from a single automotive workshop into a multi-industry vocational campus."},
				{Title: "Our Approach", Body: "Seventy percent of every programme happens in the lab or on the shop floor."},
			},
			Team: []TeamMember{
				{ID: "tm-1", Name: "R. Sharma", Role: "Director", PhotoURL: "https://placehold.co/400x400?text=Director", Bio: "Two decades in vocational education and skill policy."},
				{ID: "tm-2", Name: "A. Fernandes", Role: "Head of Training", PhotoURL: "https://placehold.co/400x400?text=Training", Bio: "Master trainer for the automotive sector."},
			},
			Values: []ValueItem{
				{Title: "Employability first", Text: "Every module maps to a job role."},
				{Title: "Dignity of labour", Text: "Skilled trades deserve skilled teaching."},
			},
			Stats: []Stat{
				{Label: "Students trained", Value: "5,000+"},
				{Label: "Placement rate", Value: "82%"},
				{Label: "Industry partners", Value: "60+"},
			},
		},
		Courses: Courses{
			List: catalog.Generate(),
			PageMeta: PageMeta{
				Title:    "Our Courses",
				Subtitle: "Certificate to master's level, across twelve industries.",
				HeroURL:  "https://placehold.co/1600x500?text=Courses",
			},
		},
		Notices: []Notice{
			{
				ID:     "ntc-1",
				Title:  "Admissions open",
				Body:   "Applications for the new session are now open. Visit the **Enroll** page or the campus office.",
				Date:   "2025-06-01",
				Pinned: true,
			},
		},
		Gallery: []GalleryItem{
			{ID: "gal-1", Title: "Automotive workshop", ImageURL: "https://placehold.co/800x600?text=Workshop", Category: "Labs"},
			{ID: "gal-2", Title: "Convocation day", ImageURL: "https://placehold.co/800x600?text=Convocation", Category: "Events"},
		},
		FAQs: []FAQ{
			{ID: "faq-1", Question: "Are the courses government recognised?", Answer: "Yes. All programmes are NSDC certified and NSQF aligned."},
			{ID: "faq-2", Question: "Do you offer hostel facilities?", Answer: "Limited hostel seats are available; contact the office for availability."},
			{ID: "faq-3", Question: "Is placement guaranteed?", Answer: "We provide placement assistance through our partner network; outcomes depend on performance."},
		},
		Placements: Placements{
			Intro: "Our placement cell works with local and national employers across every industry we teach.",
			Partners: []Partner{
				{Name: "Apex Motors", LogoURL: "https://placehold.co/200x80?text=Apex"},
				{Name: "CareWell Hospitals", LogoURL: "https://placehold.co/200x80?text=CareWell"},
			},
			Stories: []Story{
				{ID: "ps-1", Name: "S. Kumar", Role: "Service Technician", Company: "Apex Motors", PhotoURL: "https://placehold.co/400x400?text=Alumni", Quote: "The workshop hours made the difference in my interview."},
			},
		},
		Legal: Legal{
			Privacy: "## Privacy Policy\n\nWe collect only the details submitted through our forms and use them to respond to enquiries.",
			Terms:   "## Terms of Service\n\nCourse content, fees, and schedules may change between sessions.",
			Refund:  "## Refund Policy\n\nRegistration fees are refundable within 7 days of payment, before classes begin.",
		},
		Career: Career{
			Intro: "Join a faculty that teaches by doing.",
			Openings: []Opening{
				{ID: "job-1", Title: "Trainer — Electronics", Location: "Main campus", Type: "Full-time", Description: "NSDC-certified trainer for the Field Technician track."},
			},
		},
		EnrollmentForm: FormSchema{
			Title:          "Enrollment Enquiry",
			SubmitLabel:    "Submit Enquiry",
			SuccessMessage: "Thank you! Our admissions team will contact you shortly.",
			Fields: []FormField{
				{Name: "fullName", Label: "Full Name", Type: "text", Required: true, Placeholder: "Your name"},
				{Name: "email", Label: "Email", Type: "email", Required: true, Placeholder: "you@example.com"},
				{Name: "phone", Label: "Phone", Type: "tel", Required: true, Placeholder: "+91"},
				{Name: "course", Label: "Course of Interest", Type: "select", Required: false},
				{Name: "message", Label: "Message", Type: "textarea", Required: false, Placeholder: "Anything we should know?"},
			},
		},
		ContactForm: FormSchema{
			Title:          "Contact Us",
			SubmitLabel:    "Send Message",
			SuccessMessage: "Message received. We usually reply within one working day.",
			Fields: []FormField{
				{Name: "fullName", Label: "Full Name", Type: "text", Required: true},
				{Name: "email", Label: "Email", Type: "email", Required: true},
				{Name: "phone", Label: "Phone", Type: "tel", Required: true},
				{Name: "message", Label: "Message", Type: "textarea", Required: false},
			},
		},
	}
}
