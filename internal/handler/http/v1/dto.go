package v1

import "time"

// CreateIncidentRequest DTO для создания red-flag
// @Description DTO для создания red-flag
type CreateIncidentRequest struct {
	Type     string   `json:"type" validate:"required,notblank"`
	Location string   `json:"location" validate:"required,notblank"`
	Comment  string   `json:"comment" validate:"required,notblank"`
	Images   []string `json:"images,omitempty" validate:"omitempty,dive,required"`
	Videos   []string `json:"videos,omitempty" validate:"omitempty,dive,required"`
}

// UpdateLocationRequest DTO для изменения location
type UpdateLocationRequest struct {
	Location string `json:"location" validate:"required,notblank"`
}

// UpdateCommentRequest DTO для изменения comment
type UpdateCommentRequest struct {
	Comment string `json:"comment" validate:"required,notblank"`
}

// UpdateStatusRequest DTO для изменения статуса администратором
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,notblank" example:"UNDER_INVESTIGATION"`
}

// IncidentResponse DTO для ответа с информацией о red-flag
// @Description DTO для ответа с информацией о red-flag
type IncidentResponse struct {
	ID        int64     `json:"id"`
	CreatedOn time.Time `json:"createdOn"`
	CreatedBy int64     `json:"createdBy"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	Images    []string  `json:"images"`
	Videos    []string  `json:"videos"`
	Comment   string    `json:"comment"`
}

// IncidentsResponse - обертка {status, data} со списком red-flag
type IncidentsResponse struct {
	Status int                 `json:"status"`
	Data   []*IncidentResponse `json:"data"`
}

// RecordMessage - подтверждение операции над записью
type RecordMessage struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// RecordResponse - обертка {status, data} с подтверждением операции
type RecordResponse struct {
	Status int             `json:"status"`
	Data   []RecordMessage `json:"data"`
}

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	FirstName   string `json:"firstname" validate:"required,notblank"`
	LastName    string `json:"lastname" validate:"required,notblank"`
	OtherNames  string `json:"othernames" validate:"required,notblank"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,notblank"`
	Username    string `json:"username" validate:"required,notblank,has_letter"`
	IsAdmin     *bool  `json:"isAdmin" validate:"required"`
	Password    string `json:"password" validate:"required,notblank"`
}

// LoginRequest DTO для входа
type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// RegisteredUser - данные, возвращаемые после регистрации
type RegisteredUser struct {
	ID           int64  `json:"id"`
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterResponse - обертка {status, data} для регистрации
type RegisterResponse struct {
	Status int              `json:"status"`
	Data   []RegisteredUser `json:"data"`
}

// TokenResponse - ответ на вход и обновление токена
type TokenResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserResponse DTO пользователя, без хэша пароля
type UserResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstname"`
	LastName    string    `json:"lastname"`
	OtherNames  string    `json:"othernames"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Username    string    `json:"username"`
	Registered  time.Time `json:"registered"`
	IsAdmin     bool      `json:"isAdmin"`
}

// UsersResponse - обертка {status, data} со списком пользователей
type UsersResponse struct {
	Status int             `json:"status"`
	Data   []*UserResponse `json:"data"`
}

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// AuthErrorResponse - тело ответа middleware аутентификации
type AuthErrorResponse struct {
	Msg string `json:"msg"`
}
