package catalog

// ScienceItem is one exhibit in the little-lab game, each with a one-line
// fact the narrator reads aloud.
type ScienceItem struct {
	ID        string
	Name      string
	ImageFile string
	Fact      string
}

var scienceItems = []ScienceItem{
	{ID: "magnet", Name: "Magnet", ImageFile: "magnet.png", Fact: "Magnets pull on things made of iron."},
	{ID: "volcano", Name: "Volcano", ImageFile: "volcano.png", Fact: "Volcanoes are mountains that can erupt."},
	{ID: "butterfly", Name: "Butterfly", ImageFile: "butterfly.png", Fact: "Butterflies taste with their feet."},
	{ID: "snowflake", Name: "Snowflake", ImageFile: "snowflake.png", Fact: "Every snowflake has six sides."},
	{ID: "dinosaur_bone", Name: "Dinosaur Bone", ImageFile: "dinosaur_bone.png", Fact: "Dinosaur bones can be millions of years old."},
	{ID: "telescope", Name: "Telescope", ImageFile: "telescope.png", Fact: "Telescopes make far away things look close."},
	{ID: "seedling", Name: "Seedling", ImageFile: "seedling.png", Fact: "Plants grow from tiny seeds."},
	{ID: "lightning", Name: "Lightning", ImageFile: "lightning.png", Fact: "Lightning is hotter than the sun's surface."},
}

// ScienceItems returns the lab exhibits in display order.
func ScienceItems() []ScienceItem {
	out := make([]ScienceItem, len(scienceItems))
	copy(out, scienceItems)
	return out
}
