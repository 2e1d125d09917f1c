package request

type UpdateProfileRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	PreferredLanguage *string `json:"preferred_language,omitempty" validate:"omitempty,min=1,max=50"`
}
