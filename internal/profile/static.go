// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package profile

// StaticEntries is the bundled fallback snapshot, keyed by section.
var StaticEntries = map[Section][]Row{
	SectionExperience: {
		{
			Title:     "Backend Engineer",
			Subtitle:  "Mekong Cloud Services",
			Period:    "July 2024 – Present",
			Detail:    "Building and operating Go services for a managed hosting platform. Owns the billing reconciliation pipeline and the internal deployment CLI.",
			SortOrder: 0,
		},
		{
			Title:     "Software Engineering Intern",
			Subtitle:  "VNG Corporation",
			Period:    "June 2023 – September 2023",
			Detail:    "Worked on log ingestion tooling; reduced index lag on the busiest cluster by batching writes.",
			SortOrder: 1,
		},
	},
	SectionSkill: {
		{Title: "Go", Subtitle: "Backend", Detail: "chi, pgx, Redis, profiling", SortOrder: 0},
		{Title: "PostgreSQL", Subtitle: "Storage", Detail: "Schema design, query tuning, migrations", SortOrder: 1},
		{Title: "TypeScript", Subtitle: "Frontend", Detail: "React, small design systems", SortOrder: 2},
	},
	SectionEducation: {
		{
			Title:     "B.Eng. Computer Science",
			Subtitle:  "HCMC University of Technology",
			Period:    "2020 – 2024",
			Detail:    "Graduated with honors. Thesis on incremental view maintenance for analytical dashboards.",
			SortOrder: 0,
		},
	},
	SectionCertification: {
		{
			Title:     "CKA: Certified Kubernetes Administrator",
			Subtitle:  "Cloud Native Computing Foundation",
			Period:    "2025",
			SortOrder: 0,
		},
	},
	SectionLeadership: {
		{
			Title:     "Google Developer Student Club — Core Team",
			Subtitle:  "HCMC University of Technology",
			Period:    "2022 – 2024",
			Detail:    "Organized two campus hackathons and a monthly study group on distributed systems.",
			SortOrder: 0,
		},
	},
}
