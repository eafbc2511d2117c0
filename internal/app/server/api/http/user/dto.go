package user

type credentials struct {
	Email    string `json:"email" doc:"Email пользователя" minLength:"3"`
	Password string `json:"password" doc:"Пароль" minLength:"4"`
}

type registerInput struct {
	Body credentials
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int    `json:"user_id"`
	Token  string `json:"token"`
	Status string `json:"status"`
}

type loginInput struct {
	Body credentials
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}
