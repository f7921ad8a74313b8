package model

// InspirationIdea is a suggested bucket-list goal served from the
// content directory.
type InspirationIdea struct {
	Title      string `json:"title" yaml:"title"`
	Category   string `json:"category" yaml:"category"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
}

// InspirationSet groups ideas under one tab on the inspiration page.
type InspirationSet struct {
	Slug     string            `json:"slug"`
	Title    string            `json:"title"`
	Category string            `json:"category"`
	Ideas    []InspirationIdea `json:"ideas"`
}

type Quote struct {
	Quote  string `json:"quote" yaml:"quote"`
	Author string `json:"author" yaml:"author"`
}
