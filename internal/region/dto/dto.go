package dto

// RegionNode is the language-resolved region tree projection.
type RegionNode struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	IsActive bool          `json:"isActive"`
	Children []*RegionNode `json:"children"`
}
