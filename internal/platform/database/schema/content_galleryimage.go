package schema

// ContentGalleryImageTable represents the 'content.gallery_image' table
type ContentGalleryImageTable struct {
	Table      string
	ID         string
	URL        string
	Caption    string
	Collection string
	Month      string
	Year       string
	CreatedAt  string
}

// ContentGalleryImage is the schema definition for content.gallery_image
var ContentGalleryImage = ContentGalleryImageTable{
	Table:      "content.gallery_image",
	ID:         "id",
	URL:        "url",
	Caption:    "caption",
	Collection: "collection",
	Month:      "month",
	Year:       "year",
	CreatedAt:  "createdat",
}

func (t ContentGalleryImageTable) Columns() []string {
	return []string{t.ID, t.URL, t.Caption, t.Collection, t.Month, t.Year, t.CreatedAt}
}
