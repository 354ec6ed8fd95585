package dto

// CreatePostRequest represents a new feed post. At least one of the two
// fields must be non-empty; the service enforces it.
type CreatePostRequest struct {
	Conteudo  *string `json:"conteudo,omitempty"`
	ImagemURL *string `json:"imagem_url,omitempty"`
}
