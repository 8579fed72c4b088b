package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterForm is the patient registration form as typed by the user.
// Age is free-form text and is coerced before reaching the backend.
type RegisterForm struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	// ConfirmPassword is checked only when the form carries it.
	ConfirmPassword string `json:"confirmPassword,omitempty" validate:"omitempty,eqfield=Password"`
	Age             string `json:"age"`
	Gender          string `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
}

// RegisterPayload is what the backend's registration endpoint accepts.
type RegisterPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      *int   `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

type UpdateProfile struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Gender   string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Age      *int   `json:"age,omitempty" validate:"omitempty,gt=0"`
}

type ChangePasswordForm struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type ChangePassword struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
