package dto

// UpdateProfileRequest borrador del formulario de perfil, persistido en el
// guardado explícito. Solo cubre los campos editables de la pantalla.
type UpdateProfileRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Bio       string `json:"bio" validate:"omitempty,max=1000"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// PreferenceToggleRequest un toggle de preferencia de notificación.
type PreferenceToggleRequest struct {
	Key     string `json:"key" validate:"required"`
	Enabled bool   `json:"enabled"`
}

// PreferencesResponse mapa de preferencias tal como quedó aplicado.
type PreferencesResponse struct {
	Preferences map[string]bool `json:"preferences"`
}

// ChangePasswordRequest entrada del modal de cambio de contraseña.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}
