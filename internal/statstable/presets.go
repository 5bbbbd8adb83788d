package statstable

// Column sets used by the site's tables.

// CeremonyTitleColumns lists films in a ceremony.
var CeremonyTitleColumns = []Column{
	{SortKey: "title", Name: "NAME", FullName: "Name", Align: AlignLeft, Default: Asc},
	{SortKey: "noms", Name: "NOMS", FullName: "Nominations", Align: AlignCenter, Default: Desc},
	{SortKey: "wins", Name: "WINS", FullName: "Wins", Align: AlignCenter, Default: Desc},
}

// CeremonyEntityColumns lists people and companies in a ceremony.
var CeremonyEntityColumns = []Column{
	{SortKey: "aliases", Name: "NAME", FullName: "Name", Align: AlignLeft, Default: Asc},
	{SortKey: "total_noms", Name: "NOMS", FullName: "Nominations", Align: AlignCenter, Default: Desc},
	{SortKey: "total_wins", Name: "WINS", FullName: "Wins", Align: AlignCenter, Default: Desc},
	{SortKey: "career_total_noms", Name: "C.NOMS", FullName: "Career Nominations", Align: AlignCenter, Default: Desc, Minor: true},
	{SortKey: "career_total_wins", Name: "C.WINS", FullName: "Career Wins", Align: AlignCenter, Default: Desc, Minor: true},
}

// CategoryEntityColumns lists people and companies across a category's
// history. Names are searched and sorted over all aliases.
var CategoryEntityColumns = []Column{
	{SortKey: "aliases", Name: "NAME", FullName: "Name", Align: AlignLeft, Default: Asc},
	{SortKey: "career_category_noms", Name: "CAT.NOMS", FullName: "Category Nominations", Align: AlignCenter, Default: Desc},
	{SortKey: "career_category_wins", Name: "CAT.WINS", FullName: "Category Wins", Align: AlignCenter, Default: Desc},
	{SortKey: "career_total_noms", Name: "C.NOMS", FullName: "Career Nominations", Align: AlignCenter, Default: Desc, Minor: true},
	{SortKey: "career_total_wins", Name: "C.WINS", FullName: "Career Wins", Align: AlignCenter, Default: Desc, Minor: true},
}
