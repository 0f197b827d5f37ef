// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type Artist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StageName *string   `json:"stage_name"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Track struct {
	ID              string    `json:"id"`
	CatalogID       string    `json:"catalog_id"`
	ArtistID        string    `json:"artist_id"`
	Title           string    `json:"title"`
	ISRC            *string   `json:"isrc"`
	DurationSeconds int       `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
