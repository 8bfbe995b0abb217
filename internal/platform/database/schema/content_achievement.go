package schema

// ContentAchievementTable represents the 'content.achievement' table
type ContentAchievementTable struct {
	Table        string
	ID           string
	Type         string
	Title        string
	Organization string
	Description  string
	Month        string
	Year         string
	Image        string
	Link         string
	Tags         string
	CreatedAt    string
	UpdatedAt    string
}

// ContentAchievement is the schema definition for content.achievement
var ContentAchievement = ContentAchievementTable{
	Table:        "content.achievement",
	ID:           "id",
	Type:         "type",
	Title:        "title",
	Organization: "organization",
	Description:  "description",
	Month:        "month",
	Year:         "year",
	Image:        "image",
	Link:         "link",
	Tags:         "tags",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t ContentAchievementTable) Columns() []string {
	return []string{
		t.ID, t.Type, t.Title, t.Organization, t.Description,
		t.Month, t.Year, t.Image, t.Link, t.Tags, t.CreatedAt, t.UpdatedAt,
	}
}
