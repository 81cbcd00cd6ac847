package dto

type LoginResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type GoogleAuthResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsNewUser bool   `json:"is_new_user"`
}

type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
