package dto

// CreateProjectRequest represents a new portfolio project
type CreateProjectRequest struct {
	Titulo          string  `json:"titulo" binding:"required"`
	Descricao       *string `json:"descricao,omitempty"`
	ImagemURL       *string `json:"imagem_url,omitempty"`
	LinkRepositorio *string `json:"link_repositorio,omitempty"`
	LinkProducao    *string `json:"link_producao,omitempty"`
}

// UpdateProjectRequest carries the updatable project fields. Nil fields are
// left unchanged.
type UpdateProjectRequest struct {
	Titulo          *string `json:"titulo,omitempty"`
	Descricao       *string `json:"descricao,omitempty"`
	ImagemURL       *string `json:"imagem_url,omitempty"`
	LinkRepositorio *string `json:"link_repositorio,omitempty"`
	LinkProducao    *string `json:"link_producao,omitempty"`
}
