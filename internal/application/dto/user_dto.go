package dto

// CreateUserRequest entrada para dar de alta un usuario.
type CreateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	Status string `json:"status"`
}

// NavSectionDTO sección de la aplicación visible para el rol.
type NavSectionDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NavigationResponse respuesta de GET /api/navigation.
type NavigationResponse struct {
	Role     string          `json:"role"`
	Sections []NavSectionDTO `json:"sections"`
}
