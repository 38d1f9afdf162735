package tip

// DefaultRSSURL is the Guardian food feed.
const DefaultRSSURL = "https://www.theguardian.com/food/rss"

// DescriptionLimit caps tips taken from an item description, in runes.
const DescriptionLimit = 160

// Curated rotates by day of month when the feed yields nothing.
var Curated = []string{
	"Include a variety of colorful vegetables to ensure diverse micronutrients.",
	"Choose whole grains over refined grains for better fiber and satiety.",
	"Aim for a palm-sized portion of protein at each meal to support muscle maintenance.",
}
