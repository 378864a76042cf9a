package domain

import (
	"errors"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login successful"
	MessageSuccessGetUser          = "success get user"
	MessageSuccessGetUsers         = "success get users"
	MessageSuccessSetPassword      = "password changed successfully"
	MessageSuccessSubscribe        = "subscribed successfully"
	MessageSuccessGetSubscriptions = "success get subscriptions"
	MessageFailedRegister          = "failed to register user"
	MessageFailedLogin             = "failed to login"
	MessageFailedGetUser           = "failed to get user"
	MessageFailedGetUsers          = "failed to get users"
	MessageFailedSetPassword       = "failed to change password"
	MessageFailedSubscribe         = "failed to subscribe"
	MessageFailedUnsubscribe       = "failed to unsubscribe"
	MessageFailedGetSubscriptions  = "failed to get subscriptions"

	ErrUserNotFound          = errors.New("Пользователь не найден.")
	ErrEmailAlreadyExists    = errors.New("Пользователь с такой почтой уже существует.")
	ErrUsernameAlreadyExists = errors.New("Пользователь с таким ником уже существует.")
	ErrInvalidCredentials    = errors.New("Неверная почта или пароль.")
	ErrWrongPassword         = errors.New("Неверный текущий пароль.")
	ErrPasswordHashingFailed = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Email     string `json:"email" validate:"required,email,max=254"`
		Username  string `json:"username" validate:"required,username,max=150"`
		FirstName string `json:"first_name" validate:"required,max=150"`
		LastName  string `json:"last_name" validate:"required,max=150"`
		Password  string `json:"password" validate:"required,min=8,max=128"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AuthToken string `json:"auth_token"`
	}

	SetPasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
	}

	UserResponse struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		Username     string `json:"username"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		IsSubscribed bool   `json:"is_subscribed"`
	}

	SubscriptionResponse struct {
		UserResponse
		Recipes      []RecipeMinifiedResponse `json:"recipes"`
		RecipesCount int64                    `json:"recipes_count"`
	}

	UserListResponse struct {
		Users      []UserResponse `json:"users"`
		Pagination Pagination     `json:"pagination"`
	}

	SubscriptionListResponse struct {
		Subscriptions []SubscriptionResponse `json:"subscriptions"`
		Pagination    Pagination             `json:"pagination"`
	}
)
