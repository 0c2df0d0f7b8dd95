// Package corpus provides the built-in demo posts used when live
// collection comes back empty or short. Content is hand-written to
// cover every hazard category, with keywords and categories labeled
// up front; only sentiment and engagement are computed at runtime.
package corpus

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/spacesedan/tidewatch/internal/models"
	"github.com/spacesedan/tidewatch/internal/sentiment"
)

// Source tags demo posts so reports can tell them apart from
// collected ones.
const Source = "demo"

type seed struct {
	content  string
	username string
	handle   string
	keywords []string
	category string
}

var seeds = []seed{
	// Tsunami
	{
		content:  "🚨 URGENT: 7.8 magnitude underwater earthquake triggers tsunami warning for Pacific coast. Evacuations underway, please stay safe everyone! #Tsunami #Emergency",
		username: "EmergencyAlert", handle: "emergencyalert",
		keywords: []string{"tsunami", "underwater earthquake"}, category: "tsunami",
	},
	{
		content:  "Devastating tsunami aftermath: entire coastal villages wiped out. The destruction is beyond words. My heart goes out to all victims and their families. 💔",
		username: "NewsReporter", handle: "newsreporter",
		keywords: []string{"tsunami"}, category: "tsunami",
	},
	{
		content:  "Amazing how tsunami early warning systems saved thousands of lives today. Technology and preparedness make all the difference! 🙏",
		username: "DisasterExpert", handle: "disasterexpert",
		keywords: []string{"tsunami"}, category: "tsunami",
	},

	// Storms
	{
		content:  "Hurricane Category 5 approaching Florida coast with 180mph winds! This is going to be catastrophic. Storm surge could reach 20 feet. Evacuate NOW! 🌪️",
		username: "WeatherService", handle: "weatherservice",
		keywords: []string{"hurricane", "storm surge"}, category: "storms",
	},
	{
		content:  "Typhoon Mawar absolutely destroyed our island. No power, no water, homes flattened. This is the worst natural disaster we've ever experienced. #Typhoon",
		username: "IslandResident", handle: "islandresident",
		keywords: []string{"typhoon"}, category: "storms",
	},
	{
		content:  "Incredible footage of cyclone from space! Nature's power is both terrifying and beautiful. Stay safe everyone in the affected areas! 🌀",
		username: "AstronautMike", handle: "astronautmike",
		keywords: []string{"cyclone"}, category: "storms",
	},
	{
		content:  "Storm damage cleanup begins after hurricane passed. Community coming together to help rebuild. Amazing to see human resilience! 💪",
		username: "CommunityHelper", handle: "communityhelper",
		keywords: []string{"storm damage", "hurricane"}, category: "storms",
	},

	// Flooding
	{
		content:  "Coastal flooding getting worse every year due to rising sea levels. My neighborhood floods now with every high tide. Climate change is real! 🌊",
		username: "CoastalResident", handle: "coastalresident",
		keywords: []string{"coastal flooding", "rising sea levels"}, category: "flooding",
	},
	{
		content:  "Flash flood emergency! Water rising rapidly in coastal areas. If you're in evacuation zone GET OUT NOW! This is life threatening! ⚠️",
		username: "FloodWatch", handle: "floodwatch",
		keywords: []string{"flood"}, category: "flooding",
	},
	{
		content:  "New flood barriers working perfectly! Engineering solutions can protect communities from sea level rise. Great investment for the future! 🔧",
		username: "CivilEngineer", handle: "civilengineer",
		keywords: []string{"flood", "sea level rise"}, category: "flooding",
	},

	// Erosion
	{
		content:  "Our beach is disappearing! Coastal erosion has eaten away 50 feet of shoreline in just 5 years. Soon our house will be underwater 😢",
		username: "BeachOwner", handle: "beachowner",
		keywords: []string{"coastal erosion", "beach erosion"}, category: "erosion",
	},
	{
		content:  "Sea level rise is accelerating. Scientists predict 3 feet rise by 2100. Coastal cities need to start planning NOW for managed retreat.",
		username: "ClimateScientist", handle: "climatescientist",
		keywords: []string{"sea level rise"}, category: "erosion",
	},
	{
		content:  "Beach nourishment project restored 2 miles of coastline! Sand dunes are growing back and protecting homes from erosion. Nature-based solutions work! 🏖️",
		username: "CoastalManager", handle: "coastalmanager",
		keywords: []string{"beach erosion", "coastal erosion"}, category: "erosion",
	},

	// Pollution
	{
		content:  "MASSIVE oil spill in Gulf of Mexico! Thousands of barrels leaked, marine life dying. This environmental disaster will take decades to recover from 😡",
		username: "EcoActivist", handle: "ecoactivist",
		keywords: []string{"oil spill", "marine pollution"}, category: "pollution",
	},
	{
		content:  "Red tide bloom killing fish and sea turtles along the coast. The smell is unbearable. When will we stop polluting our oceans?? 🐢💔",
		username: "MarineBiologist", handle: "marinebiologist",
		keywords: []string{"red tide", "marine pollution"}, category: "pollution",
	},
	{
		content:  "Ocean acidification is making shells dissolve. Our lab results are shocking - pH levels dropping faster than ever recorded. Marine life in crisis! 🦪",
		username: "OceanChemist", handle: "oceanchemist",
		keywords: []string{"ocean acidification"}, category: "pollution",
	},
	{
		content:  "Beach cleanup collected 50 tons of plastic waste today! Amazing volunteers making a difference. Every piece of trash removed helps marine life! 🐋♻️",
		username: "CleanOcean", handle: "cleanocean",
		keywords: []string{"marine pollution"}, category: "pollution",
	},

	// Currents
	{
		content:  "WARNING: Dangerous rip currents at all beaches today! 3 people already rescued. If caught in rip current, swim parallel to shore then back to beach! 🏊‍♂️",
		username: "LifeguardService", handle: "lifeguardservice",
		keywords: []string{"rip current"}, category: "currents",
	},
	{
		content:  "Whirlpool near the lighthouse swallowed a small boat! All passengers rescued safely. Nature's power is incredible and terrifying. Stay away from that area! 🌊",
		username: "CoastGuard", handle: "coastguard",
		keywords: []string{"whirlpool"}, category: "currents",
	},

	// Climate
	{
		content:  "Ocean warming is killing coral reefs worldwide. Water temperatures 5°F above normal causing mass coral bleaching. We're losing paradise forever 🐠💔",
		username: "CoralScientist", handle: "coralscientist",
		keywords: []string{"ocean warming", "coral bleaching"}, category: "climate",
	},
	{
		content:  "Marine heatwave in Pacific Ocean breaking all records! Fish populations crashing, entire ecosystems collapsing. Climate change is accelerating! 🌡️",
		username: "FisheriesExpert", handle: "fisheriesexpert",
		keywords: []string{"marine heatwave", "climate change ocean"}, category: "climate",
	},
	{
		content:  "Incredible news! Coral restoration project shows 90% survival rate. Resilient corals adapting to warmer water. Hope for our reefs! 🪸✨",
		username: "ReefRestoration", handle: "reefrestoration",
		keywords: []string{"coral bleaching", "ocean warming"}, category: "climate",
	},

	// General
	{
		content:  "Ocean hazards increasing due to climate change. Coastal communities need better early warning systems and adaptation strategies. Science saves lives! 🔬",
		username: "NOAA_Official", handle: "noaa_official",
		keywords: []string{"ocean hazard"}, category: "general",
	},
	{
		content:  "Marine ecosystem collapse happening faster than predicted. Jellyfish taking over where fish used to thrive. The ocean food web is breaking down 😰",
		username: "EcosystemExpert", handle: "ecosystemexpert",
		keywords: []string{"marine ecosystem"}, category: "general",
	},
	{
		content:  "New research shows marine ecosystems are incredibly resilient when given a chance! Marine protected areas showing amazing recovery. Conservation works! 🐙",
		username: "MarineConservation", handle: "marineconservation",
		keywords: []string{"marine ecosystem"}, category: "general",
	},
}

var urgencyWords = []string{"emergency", "urgent", "disaster", "warning"}

// Generator builds annotated demo posts. The clock and RNG are
// injected so tests can pin timestamps and engagement numbers.
type Generator struct {
	scorer *sentiment.Scorer
	clock  clockwork.Clock
	rng    *rand.Rand
}

func NewGenerator(scorer *sentiment.Scorer, clock clockwork.Clock, rng *rand.Rand) *Generator {
	return &Generator{scorer: scorer, clock: clock, rng: rng}
}

// Annotated returns the demo corpus fully classified with the labeled
// keywords and categories, scoring sentiment through the shared
// scorer. This is the hand-labeled path: every post is kept, and
// labels like "beach erosion" apply even where the content does not
// spell the term out.
func (g *Generator) Annotated() []models.AnnotatedPost {
	posts := make([]models.AnnotatedPost, 0, len(seeds))
	for i, s := range seeds {
		result := g.scorer.Score(s.content)

		posts = append(posts, models.AnnotatedPost{
			RawPost:         g.rawPostScored(i, s, result),
			MatchedKeywords: append([]string(nil), s.keywords...),
			HazardCategory:  s.category,
			SentimentScore:  result.Score,
			SentimentLabel:  result.Label,
			Confidence:      result.Confidence,
		})
	}
	return posts
}

func (g *Generator) rawPostScored(i int, s seed, result sentiment.Result) models.RawPost {
	base := float64(50 + g.rng.Intn(251))
	multiplier := engagementMultiplier(s.content, result.Label)

	return models.RawPost{
		Username:  s.username,
		Handle:    s.handle,
		Content:   s.content,
		Timestamp: g.clock.Now().Format("2006-01-02 15:04"),
		Retweets:  int(base * multiplier * (0.3 + g.rng.Float64()*0.5)),
		Likes:     int(base * multiplier * (1.0 + g.rng.Float64()*1.5)),
		Replies:   int(base * multiplier * (0.1 + g.rng.Float64()*0.3)),
		PostID:    fmt.Sprintf("demo_%03d", i+1),
		Verified:  false,
		Source:    Source,
	}
}

// engagementMultiplier mirrors how posts actually spread: urgent
// disaster news travels fastest, good news moderately.
func engagementMultiplier(content, label string) float64 {
	lower := strings.ToLower(content)
	if label == models.LabelNegative {
		for _, word := range urgencyWords {
			if strings.Contains(lower, word) {
				return 3.0
			}
		}
	}
	if label == models.LabelPositive {
		return 1.5
	}
	return 1.0
}
