// Package vocabulary holds the static ocean-hazard term lists used by
// keyword matching and hazard categorization. Everything here is
// read-only after process start.
package vocabulary

// Keywords are the primary search terms.
var Keywords = []string{
	"ocean hazard", "tsunami", "storm surge", "hurricane", "cyclone", "typhoon",
	"flood", "coastal erosion", "sea level rise", "marine pollution", "oil spill",
	"red tide", "whirlpool", "rip current", "underwater earthquake",
}

// ExtendedKeywords broaden coverage to climate-adjacent phrasing.
var ExtendedKeywords = []string{
	"climate change ocean", "rising sea levels", "ocean warming", "coral bleaching",
	"marine heatwave", "coastal flooding", "beach erosion", "storm damage",
	"ocean acidification", "marine ecosystem",
}

// CategoryPriority fixes the order in which categories are scanned.
// A post matching terms from several categories lands in the earliest one.
var CategoryPriority = []string{
	"tsunami", "storms", "flooding", "pollution", "erosion", "currents", "climate", "general",
}

// CategoryToKeywords maps each hazard category to the terms that select it.
var CategoryToKeywords = map[string][]string{
	"tsunami": {
		"tsunami",
		"underwater earthquake",
	},
	"storms": {
		"hurricane",
		"cyclone",
		"typhoon",
		"storm surge",
		"storm damage",
	},
	"flooding": {
		"flood",
		"coastal flooding",
		"rising sea levels",
	},
	"erosion": {
		"coastal erosion",
		"beach erosion",
		"sea level rise",
	},
	"pollution": {
		"marine pollution",
		"oil spill",
		"red tide",
		"ocean acidification",
	},
	"currents": {
		"rip current",
		"whirlpool",
	},
	"climate": {
		"climate change ocean",
		"ocean warming",
		"coral bleaching",
		"marine heatwave",
	},
	"general": {
		"ocean hazard",
		"marine ecosystem",
	},
}

// All returns the full search vocabulary, primary terms first.
func All() []string {
	all := make([]string, 0, len(Keywords)+len(ExtendedKeywords))
	all = append(all, Keywords...)
	all = append(all, ExtendedKeywords...)
	return all
}
