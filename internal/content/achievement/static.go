// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package achievement

import "github.com/longpd/folio/pkg/pointer"

// StaticRows is the bundled fallback snapshot served when the relational
// store is unconfigured or empty.
var StaticRows = []Row{
	{
		ID:           "0192f5a1-0000-7000-8000-000000000001",
		Type:         string(TypeAward),
		Title:        "Winner, University Hackathon",
		Organization: "HUST",
		Description:  "First place in the routing category with Campus Route Planner.",
		Month:        "November",
		Year:         2024,
		Image:        "https://res.cloudinary.com/folio/image/upload/v1741000000/achievements/hackathon.jpg",
		Tags:         []string{"hackathon", "go"},
	},
	{
		ID:           "0192f5a1-0000-7000-8000-000000000002",
		Type:         string(TypeCertificate),
		Title:        "Cloud Practitioner",
		Organization: "AWS",
		Description:  "Foundational cloud certification.",
		Month:        "February",
		Year:         2024,
		Image:        "https://res.cloudinary.com/folio/image/upload/v1741000000/achievements/aws.png",
		Link:         pointer.To("https://aws.amazon.com/certification/"),
		Tags:         []string{"cloud"},
	},
	{
		ID:           "0192f5a1-0000-7000-8000-000000000003",
		Type:         string(TypePublication),
		Title:        "Greedy Balancing for Masonry Layouts",
		Organization: "Student Research Journal",
		Description:  "Short paper on deterministic column balancing heuristics.",
		Month:        "December",
		Year:         2023,
		Image:        "https://res.cloudinary.com/folio/image/upload/v1741000000/achievements/paper.png",
		Tags:         []string{"research"},
	},
}
