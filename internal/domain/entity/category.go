package entity

// Category is an editorial section articles are filed under.
// Categories are managed by admins only.
type Category struct {
	ID   int64
	Slug string
	Name string
}
