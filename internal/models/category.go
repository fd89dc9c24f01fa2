package models

// Category is an editorial grouping in the Audiothek catalog.
// It is only used to restrict which program sets get fetched.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
