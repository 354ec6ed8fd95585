package models

import (
	"time"
)

// Post defines the post model based on the 'publicacoes' table. At least one
// of Conteudo and ImagemURL is present; the store enforces the check.
type Post struct {
	ID          int64     `json:"id" db:"id"`
	UsuarioID   int64     `json:"usuario_id" db:"usuario_id"`
	Conteudo    *string   `json:"conteudo,omitempty" db:"conteudo"`
	ImagemURL   *string   `json:"imagem_url,omitempty" db:"imagem_url"`
	DataCriacao time.Time `json:"data_criacao" db:"data_criacao"`
}

// FeedPost is a post joined with its author, as served by the public feed.
type FeedPost struct {
	Post
	NomeCompleto string  `json:"nome_completo" db:"nome_completo"`
	FotoPerfil   *string `json:"foto_perfil,omitempty" db:"foto_perfil"`
}
