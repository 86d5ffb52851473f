package user

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Username string `json:"username" doc:"Unique login, 3-32 characters"`
	Email    string `json:"email" doc:"Contact email, unique"`
	Password string `json:"password" maxLength:"72" doc:"Master password, at most 72 bytes"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type" example:"Bearer"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Message  string `json:"message"`
}
