// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package project

import "github.com/longpd/folio/pkg/pointer"

// StaticRows is the bundled fallback snapshot served when the relational
// store is unconfigured or empty. It is shaped identically to the remote
// row format and is strictly read-only.
var StaticRows = []Row{
	{
		ID:              "0192f5a0-0000-7000-8000-000000000001",
		Title:           "Folio",
		Description:     "Personal portfolio and blog platform with an admin panel.",
		LongDescription: pointer.To("Full content management system backing this site: projects, achievements, gallery and Markdown blog, with static fallback when the database is offline."),
		StartMonth:      "March",
		StartYear:       2025,
		IsOngoing:       true,
		Image:           "https://res.cloudinary.com/folio/image/upload/v1741000000/projects/folio.png",
		Tags:            []string{"Go", "PostgreSQL", "Redis"},
		Skills:          []string{"Backend", "API Design"},
		Category:        "web-development",
		IsFeatured:      true,
		GithubLink:      pointer.To("https://github.com/longpd/folio"),
		Role:            pointer.To("Solo developer"),
	},
	{
		ID:          "0192f5a0-0000-7000-8000-000000000002",
		Title:       "Campus Route Planner",
		Description: "Shortest-path navigation between university buildings.",
		Event:       pointer.To("University Hackathon 2024"),
		StartMonth:  "September",
		StartYear:   2024,
		EndMonth:    pointer.To("November"),
		EndYear:     pointer.To(2024),
		Image:       "https://res.cloudinary.com/folio/image/upload/v1741000000/projects/routes.png",
		Tags:        []string{"Go", "Graphs"},
		Skills:      []string{"Algorithms"},
		Categories:  []string{"ai-ml", "hackathon"},
		TeamSize:    pointer.To(4),
		Role:        pointer.To("Backend lead"),
		Achievements: []string{
			"First place, routing category",
		},
		TestimonialQuote:  pointer.To("The most polished routing demo of the event."),
		TestimonialAuthor: pointer.To("Jury panel"),
	},
	{
		ID:          "0192f5a0-0000-7000-8000-000000000003",
		Title:       "Sensor Dashboard",
		Description: "Realtime charts for a home-grown weather station.",
		StartMonth:  "January",
		StartYear:   2024,
		EndMonth:    pointer.To("June"),
		EndYear:     pointer.To(2024),
		Image:       "https://res.cloudinary.com/folio/image/upload/v1741000000/projects/sensors.png",
		Tags:        []string{"TypeScript", "MQTT"},
		Skills:      []string{"Frontend", "IoT"},
		Category:    "web-development",
		LiveLink:    pointer.To("https://sensors.folio.dev"),
	},
}
