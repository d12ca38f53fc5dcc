package domain

// Category groups items for margin selection.
type Category struct {
	CategoryID string
	Name       string
}
