package main

import (
	"fmt"
	"io"
)

type User struct {
	Active      bool   `yaml:"active"`
	Username    string `yaml:"username"`
	Email       string `yaml:"email"`
	SignInCount uint64 `yaml:"sign_in_count"`
}

// buildUser has no field-init shorthand to lean on; Go always names the
// field and the value, even when they match.
func buildUser(email, username string) User {
	return User{
		Active:      true,
		Username:    username,
		Email:       email,
		SignInCount: 1,
	}
}

// UserOption overrides one field of a copied User.
type UserOption func(*User)

func WithActive(active bool) UserOption {
	return func(u *User) { u.Active = active }
}

func WithUsername(username string) UserOption {
	return func(u *User) { u.Username = username }
}

func WithEmail(email string) UserOption {
	return func(u *User) { u.Email = email }
}

func WithSignInCount(n uint64) UserOption {
	return func(u *User) { u.SignInCount = n }
}

// With returns a copy of u with opts applied. u itself is never modified:
// the value receiver is already a copy.
func (u User) With(opts ...UserOption) User {
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func demoNamedFields(w io.Writer) {
	user1 := User{
		Active:      true,
		Username:    "someusername123",
		Email:       "someone@example.com",
		SignInCount: 1,
	}

	// Fields of an addressable struct value are assignable.
	user1.Email = "anotheremail@example.com"
	fmt.Fprintf(w, "  Hello, %s!\n", user1.Email)

	user2 := buildUser("someone@example.com", "someusername123")
	fmt.Fprintf(w, "  Hello, %s!\n", user2.Username)

	// Unset fields take their zero value.
	var zero User
	fmt.Fprintf(w, "  zero value: %+v\n", zero)
}

func demoUpdate(w io.Writer) {
	user1 := buildUser("someone@example.com", "someusername123")

	// Assignment copies every field; strings share their immutable bytes.
	user3 := user1
	user3.Email = "another@example.com"
	fmt.Fprintf(w, "  Hello, %s!\n", user3.Email)
	fmt.Fprintf(w, "  user1 untouched: %s\n", user1.Email)

	user4 := user1.With(WithEmail("b@x.com"), WithSignInCount(2))
	fmt.Fprintf(w, "  user4 = %+v\n", user4)
	fmt.Fprintf(w, "  user1 = %+v\n", user1)
}
