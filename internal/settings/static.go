// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package settings

// StaticRows is the bundled fallback snapshot of the singleton site values.
var StaticRows = []Row{
	{Key: "contact_email", Value: "pd.long.dev@gmail.com"},
	{Key: "github_url", Value: "https://github.com/longpd"},
	{Key: "linkedin_url", Value: "https://www.linkedin.com/in/longpd"},
	{Key: "resume_url", Value: "https://res.cloudinary.com/folio/raw/upload/v1741000000/resume.pdf"},
	{Key: "hero_tagline", Value: "Backend engineer who likes small, boring, reliable systems."},
}
