package dto

// UpdateProfileRequest represents a profile edit. Only the skills list is
// editable through this endpoint.
type UpdateProfileRequest struct {
	Habilidades []string `json:"habilidades" binding:"required"`
}

// UploadPhotoResponse returns the stored photo reference
type UploadPhotoResponse struct {
	FotoPerfil string `json:"foto_perfil"`
}
