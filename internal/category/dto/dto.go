package dto

// CategoryNode is the presentation tree node. It is a derived, read-only
// projection rebuilt on every query; names are already language-resolved.
type CategoryNode struct {
	ID                int64                `json:"id"`
	Name              string               `json:"name"`
	IsActive          bool                 `json:"isActive"`
	Children          []*CategoryNode      `json:"children"`
	DynamicAttributes []AttributeSelection `json:"dynamicAttributes"`
}

// AttributeSelection is one catalog entry partitioned against a category's
// linked attributes.
type AttributeSelection struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	IsActive           bool   `json:"isActive"`
	AttributeValueType string `json:"attributeValueType"`
	IsSelected         bool   `json:"isSelected"`
}
