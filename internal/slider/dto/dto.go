package dto

type SliderView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}
