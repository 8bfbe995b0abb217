package schema

// StatsItemStatTable represents the 'stats.item_stat' table.
//
// The primary key is the (item_type, item_id) pair.
type StatsItemStatTable struct {
	Table     string
	ItemType  string
	ItemID    string
	ViewCount string
	UpdatedAt string
}

var StatsItemStat = StatsItemStatTable{
	Table:     "stats.item_stat",
	ItemType:  "itemtype",
	ItemID:    "itemid",
	ViewCount: "viewcount",
	UpdatedAt: "updatedat",
}
