package dictionary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"voice-listing-go/internal/types"
)

// Tables holds extra synonyms loaded from YAML, kept as ordered lists:
//
//	commodities:
//	  - {key: kanda, value: Onions}
//	locations:
//	  - {key: lasalgaon, value: "Lasalgaon, Maharashtra"}
//	qualities:
//	  - {key: ekdum mast, value: Premium}
type Tables struct {
	Commodities []Entry `yaml:"commodities"`
	Locations   []Entry `yaml:"locations"`
	Qualities   []Entry `yaml:"qualities"`
}

func LoadExtensions(path string) (Tables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read dictionary: %w", err)
	}
	return ParseExtensions(b)
}

func ParseExtensions(b []byte) (Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Tables{}, fmt.Errorf("parse dictionary: %w", err)
	}
	for _, e := range t.Qualities {
		if !types.Grade(e.Value).Valid() {
			return Tables{}, fmt.Errorf("parse dictionary: quality %q maps to unknown grade %q", e.Key, e.Value)
		}
	}
	for _, group := range [][]Entry{t.Commodities, t.Locations, t.Qualities} {
		for _, e := range group {
			if e.Key == "" || e.Value == "" {
				return Tables{}, fmt.Errorf("parse dictionary: empty key or value in %+v", e)
			}
		}
	}
	return t, nil
}
