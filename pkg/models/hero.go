package models

// Hero is one entry of the hero catalog. Heroes are loaded once at startup
// and never modified afterwards.
type Hero struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Image       string   `json:"image" yaml:"image"`
	About       string   `json:"about" yaml:"about"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Power       int      `json:"power" yaml:"power"`
	Month       string   `json:"month" yaml:"month"`
	Day         string   `json:"day" yaml:"day"`
	Family      []string `json:"family" yaml:"family"`
	Abilities   []string `json:"abilities" yaml:"abilities"`
	NatureTypes []string `json:"natureTypes" yaml:"natureTypes"`
}
