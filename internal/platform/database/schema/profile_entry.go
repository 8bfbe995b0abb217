package schema

// ProfileEntryTable represents one of the five profile section tables.
//
// Experience, skills, education, certifications and leadership share an
// identical column shape (title/subtitle/period/detail plus a display
// sort_order), so a single definition is parameterized by table name.
type ProfileEntryTable struct {
	Table     string
	ID        string
	Title     string
	Subtitle  string
	Period    string
	Detail    string
	SortOrder string
}

func profileEntryTable(name string) ProfileEntryTable {
	return ProfileEntryTable{
		Table:     "profile." + name,
		ID:        "id",
		Title:     "title",
		Subtitle:  "subtitle",
		Period:    "period",
		Detail:    "detail",
		SortOrder: "sortorder",
	}
}

// Schema definitions for the five profile sections.
var (
	ProfileExperience    = profileEntryTable("experience")
	ProfileSkill         = profileEntryTable("skill")
	ProfileEducation     = profileEntryTable("education")
	ProfileCertification = profileEntryTable("certification")
	ProfileLeadership    = profileEntryTable("leadership")
)

func (t ProfileEntryTable) Columns() []string {
	return []string{t.ID, t.Title, t.Subtitle, t.Period, t.Detail, t.SortOrder}
}
