package runs

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"glossy", "matte", "silver", "mirrored", "polished", "frosted", "hazy",
		"bright", "dim", "soft", "sharp", "glassy", "velvet", "pale", "deep",
		"amber", "cobalt", "golden", "lunar", "solar", "quiet", "still", "rippled",
		"faded", "vivid", "misty", "shimmering", "gleaming", "dusky", "clear",
		"crystal", "opal", "pearly", "smoky", "wet", "calm", "blurred", "tilted",
	}

	nouns = []string{
		"lake", "pond", "puddle", "window", "lens", "prism", "mirror", "surface",
		"glass", "marble", "floor", "table", "screen", "card", "tile", "pane",
		"river", "ice", "chrome", "lacquer", "enamel", "shore", "harbor", "pool",
		"facet", "sheen", "glint", "echo", "shadow", "halo", "horizon", "print",
	}
)

// GenerateRunName creates a memorable run identifier in the format
// "adjective-noun"
func GenerateRunName() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return adjectives[r.Intn(len(adjectives))] + "-" + nouns[r.Intn(len(nouns))]
}

// GenerateRunID combines the memorable name with a timestamp
func GenerateRunID() string {
	return GenerateRunName() + "-" + time.Now().UTC().Format("20060102-150405.000")
}
