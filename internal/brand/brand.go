// Package brand is the static brand-theming table: colors, feature
// flags and upstream endpoints per brand. Pure lookup data, initialized
// once, never mutated.
package brand

// Endpoints are the upstream API locations for a brand.
type Endpoints struct {
	Base     string `json:"base"`
	Auth     string `json:"auth"`
	Profiles string `json:"profiles"`
}

// Config is the full configuration of one brand.
type Config struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	PrimaryColor    string    `json:"primaryColor"`
	SecondaryColor  string    `json:"secondaryColor"`
	BackgroundColor string    `json:"backgroundColor"`
	SurfaceColor    string    `json:"surfaceColor"`
	Features        []string  `json:"features"`
	Endpoints       Endpoints `json:"apiEndpoints"`
}

// Colors groups the theme colors of a brand.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
}

// Theme is the color view of a brand config.
type Theme struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Colors Colors `json:"colors"`
}

// Summary is the id/name pair used by brand listings.
type Summary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var order = []string{"match", "meetic", "okc", "pof"}

var configs = map[string]Config{
	"match": {
		ID:              "match",
		Name:            "Match",
		PrimaryColor:    "#11144C",
		SecondaryColor:  "#2A2D7C",
		BackgroundColor: "#FFFFFF",
		SurfaceColor:    "#F8F8F8",
		Features:        []string{"messaging", "likes", "super-likes", "boost"},
		Endpoints: Endpoints{
			Base:     "https://api.match.com",
			Auth:     "/v1/auth",
			Profiles: "/v1/profiles",
		},
	},
	"meetic": {
		ID:              "meetic",
		Name:            "Meetic",
		PrimaryColor:    "#E9006D",
		SecondaryColor:  "#FF4D9A",
		BackgroundColor: "#FFFFFF",
		SurfaceColor:    "#F5F4F9",
		Features:        []string{"messaging", "likes", "events", "boost"},
		Endpoints: Endpoints{
			Base:     "https://api.meetic.com",
			Auth:     "/v1/auth",
			Profiles: "/v1/profiles",
		},
	},
	"okc": {
		ID:              "okc",
		Name:            "OKCupid",
		PrimaryColor:    "#0046D5",
		SecondaryColor:  "#002A80",
		BackgroundColor: "#FFFFFF",
		SurfaceColor:    "#F0F9FF",
		Features:        []string{"messaging", "likes", "questions", "personality-match"},
		Endpoints: Endpoints{
			Base:     "https://api.okcupid.com",
			Auth:     "/v1/auth",
			Profiles: "/v1/profiles",
		},
	},
	"pof": {
		ID:              "pof",
		Name:            "Plenty of Fish",
		PrimaryColor:    "#000000",
		SecondaryColor:  "#4ECDC4",
		BackgroundColor: "#FFFFFF",
		SurfaceColor:    "#FFF5F0",
		Features:        []string{"messaging", "likes", "meet-me", "live-streams"},
		Endpoints: Endpoints{
			Base:     "https://api.pof.com",
			Auth:     "/v1/auth",
			Profiles: "/v1/profiles",
		},
	},
}

// IDs returns every known brand id in display order.
func IDs() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Summaries returns the id/name pair of every brand in display order.
func Summaries() []Summary {
	out := make([]Summary, 0, len(order))
	for _, id := range order {
		cfg := configs[id]
		out = append(out, Summary{ID: cfg.ID, Name: cfg.Name})
	}
	return out
}

// Get returns the configuration of one brand.
func Get(id string) (Config, bool) {
	cfg, ok := configs[id]
	return cfg, ok
}

// GetTheme returns the color view of one brand.
func GetTheme(id string) (Theme, bool) {
	cfg, ok := configs[id]
	if !ok {
		return Theme{}, false
	}
	return Theme{
		ID:   cfg.ID,
		Name: cfg.Name,
		Colors: Colors{
			Primary:    cfg.PrimaryColor,
			Secondary:  cfg.SecondaryColor,
			Background: cfg.BackgroundColor,
			Surface:    cfg.SurfaceColor,
		},
	}, true
}

// FeatureEnabled reports whether a feature is on for a brand.
func FeatureEnabled(id, feature string) (bool, bool) {
	cfg, ok := configs[id]
	if !ok {
		return false, false
	}
	for _, f := range cfg.Features {
		if f == feature {
			return true, true
		}
	}
	return false, true
}
