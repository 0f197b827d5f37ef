package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Distributor é a plataforma de distribuição que retém um percentual da receita
// bruta antes de qualquer outra divisão
type Distributor struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type Catalog struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	ArtistID      string     `json:"artist_id"`
	DistributorID string     `json:"distributor_id"`
	ReleaseDate   *time.Time `json:"release_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Project agrupa lançamentos de um artista com um orçamento em BRL
type Project struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ArtistID  string          `json:"artist_id"`
	Budget    decimal.Decimal `json:"budget"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
