package dto

import "strings"

// ItemColorCreateDTO is the request body for creating or replacing an item color.
type ItemColorCreateDTO struct {
	Name    string `json:"name" validate:"required,colorname"`
	HexCode string `json:"hexCode" validate:"required,hexcode"`
}

// Normalize canonicalizes the fields in place so that the unique name and hex code
// columns compare case-insensitively. It must run after validation: HexCode is only
// lowercased because the hexcode rule already rejects surrounding whitespace.
// Normalize is idempotent.
func (d *ItemColorCreateDTO) Normalize() {
	d.Name = strings.ToLower(strings.TrimSpace(d.Name))
	d.HexCode = strings.ToLower(d.HexCode)
}

// ItemColorDTO is the read model of a persisted item color.
type ItemColorDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	HexCode string `json:"hexCode"`
}
