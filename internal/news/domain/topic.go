package domain

type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
