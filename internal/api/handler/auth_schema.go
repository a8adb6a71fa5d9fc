package handler

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=5"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required,min=5"`
	Password string `json:"password" validate:"required,password"`
}

type socialLoginRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Provider    string `json:"provider"    validate:"required"`
	AccessToken string `json:"accessToken" validate:"required"`
}

// resultDto is the canonical envelope for the auth endpoints: a success
// flag, the opaque token string when issued, and zero or more
// human-readable error messages.
type resultDto struct {
	IsSuccess bool     `json:"isSuccess"`
	Response  string   `json:"response,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

func successResult(token string) resultDto {
	return resultDto{IsSuccess: true, Response: token}
}

func failureResult(messages ...string) resultDto {
	return resultDto{IsSuccess: false, Errors: messages}
}

type meResponse struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}
