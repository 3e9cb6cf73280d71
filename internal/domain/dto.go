package domain

// CreateUserRequest is the raw, untrusted input for creating or replacing a user.
// An empty string stands for an absent value.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Gender   string `json:"gender"`
}

// UserResponse is the externally visible projection of a User.
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Gender   Gender `json:"gender"`
}
