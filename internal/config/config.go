package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Query struct {
	Text     string `yaml:"text"`
	Location string `yaml:"location"`
	MaxPages int    `yaml:"max_pages"`
}

type Config struct {
	App struct {
		Platform string `yaml:"platform"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"app"`

	HTTP struct {
		UserAgent      string `yaml:"user_agent"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		DelaySeconds   int    `yaml:"delay_seconds"`
	} `yaml:"http"`

	Queries []Query `yaml:"queries"`

	Scrape struct {
		// "card" skips a single malformed card, "page" drops the whole
		// page when any card is malformed.
		AnomalyPolicy string `yaml:"anomaly_policy"`
	} `yaml:"scrape"`

	Selectors struct {
		Card     []string `yaml:"card"`
		Title    []string `yaml:"title"`
		Company  []string `yaml:"company"`
		Location []string `yaml:"location"`
	} `yaml:"selectors"`

	Classify struct {
		MNC     []string `yaml:"mnc"`
		Startup []string `yaml:"startup"`
		MidSize []string `yaml:"mid_size"`
	} `yaml:"classify"`

	Tracker struct {
		Path string `yaml:"path"`
	} `yaml:"tracker"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
