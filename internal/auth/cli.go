package auth

import (
	"errors"
	"fmt"

	"github.com/isaacjstriker/blockfall/internal/database"
	"github.com/isaacjstriker/blockfall/ui"
)

// ErrBadCredentials hides whether the username or the password was wrong.
var ErrBadCredentials = errors.New("invalid username or password")

// UserStore is the part of the database accounts need.
type UserStore interface {
	CreateUser(username, email, passwordHash string) (*database.User, error)
	GetUserByUsername(username string) (*database.User, string, error)
}

// Authenticate checks a username and password against the store.
func Authenticate(store UserStore, username, password string) (*database.User, error) {
	user, hash, err := store.GetUserByUsername(username)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if !CheckPassword(password, hash) {
		return nil, ErrBadCredentials
	}
	return user, nil
}

// Register validates the fields, hashes the password and creates the user.
func Register(store UserStore, username, email, password string) (*database.User, error) {
	if err := ValidateRegistration(username, email, password); err != nil {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return store.CreateUser(username, email, hash)
}

// CLIAuth runs login and registration in the terminal.
type CLIAuth struct {
	store   UserStore
	session *SessionManager
}

func NewCLIAuth(store UserStore, session *SessionManager) *CLIAuth {
	return &CLIAuth{store: store, session: session}
}

func (a *CLIAuth) Session() *SessionManager {
	return a.session
}

func pause() {
	fmt.Println("Press Enter to continue...")
	fmt.Scanln()
}

// ShowAuthMenu loops on the account menu until the player goes back.
func (a *CLIAuth) ShowAuthMenu() {
	for {
		var items []ui.MenuItem
		if a.session.IsLoggedIn() {
			items = []ui.MenuItem{
				{Label: a.session.Describe(), Value: "info"},
				{Label: "Switch Account", Value: "switch"},
				{Label: "Logout", Value: "logout"},
				{Label: "Back", Value: "back"},
			}
		} else {
			items = []ui.MenuItem{
				{Label: "Login", Value: "login"},
				{Label: "Register New Account", Value: "register"},
				{Label: "Back", Value: "back"},
			}
		}

		switch ui.NewMenu("Account", items).Show() {
		case "login":
			a.login()
		case "register":
			a.register()
		case "switch":
			if err := a.session.ClearSession(); err != nil {
				fmt.Printf("Error clearing session: %v\n", err)
			}
			a.login()
		case "logout":
			if err := a.session.ClearSession(); err != nil {
				fmt.Printf("Error clearing session: %v\n", err)
			} else {
				fmt.Println("You have been logged out.")
			}
			pause()
		case "info":
			fmt.Printf("\n%s\n", a.session.Describe())
			pause()
		default:
			return
		}
	}
}

func (a *CLIAuth) login() {
	fmt.Println("\nLogin")
	fmt.Println("=====")

	username, err := ReadInput("Username: ")
	if err != nil {
		fmt.Printf("Error reading username: %v\n", err)
		return
	}
	password, err := ReadPassword("Password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}

	user, err := Authenticate(a.store, username, password)
	if err != nil {
		fmt.Printf("Login failed: %v\n", err)
		pause()
		return
	}
	if err := a.session.SaveSession(user.ID, user.Username, user.Email); err != nil {
		fmt.Printf("Error saving session: %v\n", err)
		return
	}
	fmt.Printf("Welcome back, %s!\n", user.Username)
	pause()
}

func (a *CLIAuth) register() {
	fmt.Println("\nCreate New Account")
	fmt.Println("==================")

	username, err := ReadInput("Username (3-50 characters): ")
	if err != nil {
		fmt.Printf("Error reading username: %v\n", err)
		return
	}
	email, err := ReadInput("Email: ")
	if err != nil {
		fmt.Printf("Error reading email: %v\n", err)
		return
	}
	password, err := ReadPassword("Password (8+ characters): ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}
	confirm, err := ReadPassword("Confirm Password: ")
	if err != nil {
		fmt.Printf("Error reading confirmation: %v\n", err)
		return
	}
	if password != confirm {
		fmt.Println("Passwords do not match")
		pause()
		return
	}

	user, err := Register(a.store, username, email, password)
	if err != nil {
		fmt.Printf("Failed to create account: %v\n", err)
		if database.IsDuplicate(err) {
			fmt.Println("(Username or email is already taken)")
		}
		pause()
		return
	}
	if err := a.session.SaveSession(user.ID, user.Username, user.Email); err != nil {
		fmt.Printf("Error saving session: %v\n", err)
		return
	}
	fmt.Printf("Account created. Welcome, %s!\n", user.Username)
	pause()
}
