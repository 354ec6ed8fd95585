package models

import (
	"time"
)

// Project defines the project model based on the 'projetos' table
type Project struct {
	ID              int64     `json:"id" db:"id"`
	UsuarioID       int64     `json:"usuario_id" db:"usuario_id"`
	Titulo          string    `json:"titulo" db:"titulo"`
	Descricao       *string   `json:"descricao,omitempty" db:"descricao"`
	ImagemURL       *string   `json:"imagem_url,omitempty" db:"imagem_url"`
	LinkRepositorio *string   `json:"link_repositorio,omitempty" db:"link_repositorio"`
	LinkProducao    *string   `json:"link_producao,omitempty" db:"link_producao"`
	DataCriacao     time.Time `json:"data_criacao" db:"data_criacao"`
}
