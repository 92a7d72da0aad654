package models

// Tag is an entry of the static tag list.
type Tag struct {
	Slug string `json:"slug"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url"`
}
