package dto

// LoginRequest entrada do login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterCompanyRequest entrada do cadastro de oficina (cria Company + User ADMIN).
type RegisterCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1,max=200"`
	Document    string `json:"document" validate:"required,min=1,max=20"`
	OwnerName   string `json:"owner_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

// UserResponse usuário sem dados sensíveis.
type UserResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// SessionResponse sessão autenticada: token + usuário + snapshot da empresa e
// do seu estado de licença. Company e Entitlement ficam nulos para MASTER.
type SessionResponse struct {
	Token        string               `json:"token"`
	User         UserResponse         `json:"user"`
	Company      *CompanyResponse     `json:"company,omitempty"`
	Entitlement  *EntitlementResponse `json:"entitlement,omitempty"`
	Impersonated bool                 `json:"impersonated,omitempty"`
}
