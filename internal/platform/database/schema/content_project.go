package schema

// ContentProjectTable represents the 'content.project' table
type ContentProjectTable struct {
	Table               string
	ID                  string
	Title               string
	Description         string
	LongDescription     string
	Event               string
	StartMonth          string
	StartYear           string
	EndMonth            string
	EndYear             string
	IsOngoing           string
	Image               string
	Images              string
	Tags                string
	Skills              string
	Categories          string
	IsFeatured          string
	Link                string
	GithubLink          string
	LiveLink            string
	TeamSize            string
	Role                string
	Achievements        string
	TestimonialQuote    string
	TestimonialAuthor   string
	TestimonialPosition string
	TestimonialCompany  string
	CreatedAt           string
	UpdatedAt           string
}

// ContentProject is the schema definition for content.project
var ContentProject = ContentProjectTable{
	Table:               "content.project",
	ID:                  "id",
	Title:               "title",
	Description:         "description",
	LongDescription:     "longdescription",
	Event:               "event",
	StartMonth:          "startmonth",
	StartYear:           "startyear",
	EndMonth:            "endmonth",
	EndYear:             "endyear",
	IsOngoing:           "isongoing",
	Image:               "image",
	Images:              "images",
	Tags:                "tags",
	Skills:              "skills",
	Categories:          "categories",
	IsFeatured:          "isfeatured",
	Link:                "link",
	GithubLink:          "githublink",
	LiveLink:            "livelink",
	TeamSize:            "teamsize",
	Role:                "role",
	Achievements:        "achievements",
	TestimonialQuote:    "testimonialquote",
	TestimonialAuthor:   "testimonialauthor",
	TestimonialPosition: "testimonialposition",
	TestimonialCompany:  "testimonialcompany",
	CreatedAt:           "createdat",
	UpdatedAt:           "updatedat",
}

func (t ContentProjectTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.LongDescription, t.Event,
		t.StartMonth, t.StartYear, t.EndMonth, t.EndYear, t.IsOngoing,
		t.Image, t.Images, t.Tags, t.Skills, t.Categories, t.IsFeatured,
		t.Link, t.GithubLink, t.LiveLink, t.TeamSize, t.Role, t.Achievements,
		t.TestimonialQuote, t.TestimonialAuthor, t.TestimonialPosition,
		t.TestimonialCompany, t.CreatedAt, t.UpdatedAt,
	}
}
