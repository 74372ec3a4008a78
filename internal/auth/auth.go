package auth

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLetter       = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
)

// ReadInput prints prompt and reads one trimmed line from stdin.
func ReadInput(prompt string) (string, error) {
	fmt.Print(prompt)
	input, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword reads a password without echoing it to the terminal
func ReadPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func ValidateUsername(username string) error {
	switch {
	case len(username) < 3:
		return fmt.Errorf("%w: must be at least 3 characters long", ErrInvalidUsername)
	case len(username) > 50:
		return fmt.Errorf("%w: must be no more than 50 characters long", ErrInvalidUsername)
	case !usernamePattern.MatchString(username):
		return fmt.Errorf("%w: only letters, numbers, and underscores are allowed", ErrInvalidUsername)
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: cannot be empty", ErrInvalidEmail)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: bad format", ErrInvalidEmail)
	}
	return nil
}

// ValidatePassword requires 8 to 72 characters with a letter and a digit.
// bcrypt ignores everything past 72 bytes.
func ValidatePassword(password string) error {
	switch {
	case len(password) < 8:
		return fmt.Errorf("%w: must be at least 8 characters long", ErrInvalidPassword)
	case len(password) > 72:
		return fmt.Errorf("%w: must be no more than 72 characters long", ErrInvalidPassword)
	case !hasLetter.MatchString(password):
		return fmt.Errorf("%w: must contain at least one letter", ErrInvalidPassword)
	case !hasDigit.MatchString(password):
		return fmt.Errorf("%w: must contain at least one number", ErrInvalidPassword)
	}
	return nil
}

// ValidateRegistration checks all three registration fields in order.
func ValidateRegistration(username, email, password string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
