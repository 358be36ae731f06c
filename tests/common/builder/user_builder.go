//go:build unit || e2e

package builder

import (
	"wedding-console/internal/domain/session"
	"wedding-console/internal/domain/user"
	reqdto "wedding-console/internal/handler/dto/request"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Username string
	Email    string
	Password string
	IsAdmin  bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Username: "sana.malik",
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.Registration, error) {
	return user.NewRegistration(u.Username, u.Email, u.Password)
}

func (u *UserBuilder) BuildSessionUser() session.User {
	return session.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

func (u *UserBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithUsername(name string) *UserBuilder {
	u.Username = name
	return u
}

func (u *UserBuilder) WithPassword(pw string) *UserBuilder {
	u.Password = pw
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.IsAdmin = true
	return u
}
