package dto

// AttributeView is the language-resolved catalog entry returned by the list
// endpoint.
type AttributeView struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	IsActive           bool   `json:"isActive"`
	AttributeValueType string `json:"attributeValueType"`
}
