package models

import "time"

// User - зарегистрированный пользователь системы
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstname"`
	LastName     string    `json:"lastname"`
	OtherNames   string    `json:"othernames"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registered"`
	IsAdmin      bool      `json:"isAdmin"`
	PasswordHash string    `json:"-"`
}

// Clone возвращает копию пользователя
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// RegisterInput - данные для регистрации пользователя
type RegisterInput struct {
	FirstName   string
	LastName    string
	OtherNames  string
	Email       string
	PhoneNumber string
	Username    string
	IsAdmin     bool
	Password    string
}

// TokenPair - пара access/refresh токенов
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult - результат регистрации, входа или обновления токена
type AuthResult struct {
	User   *User
	Tokens TokenPair
}
