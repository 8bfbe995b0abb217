package schema

// ContentBlogTable represents the 'content.blog' table
type ContentBlogTable struct {
	Table       string
	ID          string
	Slug        string
	Title       string
	Excerpt     string
	Content     string
	CoverImage  string
	Author      string
	Tags        string
	Published   string
	Featured    string
	PublishedAt string
	CreatedAt   string
	UpdatedAt   string
}

// ContentBlog is the schema definition for content.blog
var ContentBlog = ContentBlogTable{
	Table:       "content.blog",
	ID:          "id",
	Slug:        "slug",
	Title:       "title",
	Excerpt:     "excerpt",
	Content:     "content",
	CoverImage:  "coverimage",
	Author:      "author",
	Tags:        "tags",
	Published:   "published",
	Featured:    "featured",
	PublishedAt: "publishedat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t ContentBlogTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Excerpt, t.Content, t.CoverImage, t.Author,
		t.Tags, t.Published, t.Featured, t.PublishedAt, t.CreatedAt, t.UpdatedAt,
	}
}
