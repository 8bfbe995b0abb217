// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package gallery

import "github.com/longpd/folio/pkg/pointer"

// StaticRows is the bundled fallback snapshot. Entries carry no identity
// (the admin panel cannot mutate them) and not every image has a date.
var StaticRows = []Row{
	{
		URL:        "https://res.cloudinary.com/folio/image/upload/v1741000000/gallery/hero.jpg",
		Caption:    "Workbench",
		Collection: string(CollectionHome),
	},
	{
		URL:        "https://res.cloudinary.com/folio/image/upload/v1741000000/gallery/hackathon-stage.jpg",
		Caption:    "Hackathon final pitch",
		Collection: string(CollectionMain),
		Month:      pointer.To("November"),
		Year:       pointer.To(2024),
	},
	{
		URL:        "https://res.cloudinary.com/folio/image/upload/v1741000000/gallery/graduation.jpg",
		Caption:    "Graduation day",
		Collection: string(CollectionMain),
		Month:      pointer.To("June"),
		Year:       pointer.To(2023),
	},
	{
		URL:        "https://res.cloudinary.com/folio/image/upload/v1741000000/gallery/trip.jpg",
		Caption:    "Mountain trip with the team",
		Collection: string(CollectionMoments),
		Month:      pointer.To("April"),
		Year:       pointer.To(2024),
	},
	{
		URL:        "https://res.cloudinary.com/folio/image/upload/v1741000000/gallery/meetup.jpg",
		Caption:    "Local Go meetup",
		Collection: string(CollectionMoments),
	},
}
