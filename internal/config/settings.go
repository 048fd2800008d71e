package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the page content and the player defaults, read from YAML.
type Settings struct {
	Title           string        `yaml:"title"`
	Tagline         string        `yaml:"tagline"`
	Track           string        `yaml:"track"`
	Volume          float64       `yaml:"volume"`
	BackgroundShift bool          `yaml:"background_shift"`
	Sections        []SectionSpec `yaml:"sections"`
}

type SectionSpec struct {
	ID    string     `yaml:"id"`
	Title string     `yaml:"title"`
	Text  []string   `yaml:"text"`
	Stats []StatSpec `yaml:"stats"`
	Cards []CardSpec `yaml:"cards"`
}

type StatSpec struct {
	Label string `yaml:"label"`
	Count int    `yaml:"count"`
}

// CardSpec is a product or download card. Link, when set, names the section
// the card's button scrolls to.
type CardSpec struct {
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Button string `yaml:"button"`
	Link   string `yaml:"link"`
}

func Default() Settings {
	return Settings{
		Title:   "nightglass",
		Tagline: "tools, presets and sound packs",
		Volume:  80,
		Sections: []SectionSpec{
			{
				ID:    "about",
				Title: "About",
				Text: []string{
					"Small tools for people who make things at night.",
					"Scroll down or use the links above.",
				},
			},
			{
				ID:    "stats",
				Title: "Numbers",
				Stats: []StatSpec{
					{Label: "members", Count: 1200},
					{Label: "downloads", Count: 48000},
					{Label: "presets", Count: 350},
				},
			},
			{
				ID:    "products",
				Title: "Products",
				Cards: []CardSpec{
					{Title: "Glass Pack", Body: "120 ambient presets", Button: "Buy", Link: "downloads"},
					{Title: "Drift", Body: "granular texture engine", Button: "Buy", Link: "downloads"},
					{Title: "Lumen", Body: "visual sync plugin", Button: "Buy", Link: "downloads"},
				},
			},
			{
				ID:    "downloads",
				Title: "Downloads",
				Cards: []CardSpec{
					{Title: "Free Sampler", Body: "24 presets, no account", Button: "Download"},
					{Title: "Community", Body: "join the server", Button: "Join", Link: "about"},
				},
			},
		},
	}
}

// Load reads a settings file. Keys missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

func (s Settings) Validate() error {
	if !(s.Volume >= 0 && s.Volume <= 100) {
		return fmt.Errorf("volume %v outside [0, 100]", s.Volume)
	}
	if len(s.Sections) == 0 {
		return errors.New("no sections")
	}

	ids := make(map[string]bool, len(s.Sections))
	for i, sec := range s.Sections {
		if sec.ID == "" {
			return fmt.Errorf("section %d: missing id", i)
		}
		if ids[sec.ID] {
			return fmt.Errorf("section %q: duplicate id", sec.ID)
		}
		ids[sec.ID] = true
		for _, st := range sec.Stats {
			if st.Count < 0 {
				return fmt.Errorf("section %q: stat %q: negative count", sec.ID, st.Label)
			}
		}
	}

	for _, sec := range s.Sections {
		for _, c := range sec.Cards {
			if c.Link != "" && !ids[c.Link] {
				return fmt.Errorf("section %q: card %q links to unknown section %q", sec.ID, c.Title, c.Link)
			}
		}
	}
	return nil
}
