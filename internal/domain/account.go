package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account identifies an actor on some system by home page and local name.
// It is used only when the actor's IFI strategy is "account" and is
// found-or-created by home page.
type Account struct {
	ID        uuid.UUID
	HomePage  string
	Name      *string
	CreatedAt time.Time
}

// Validate checks the account's required home page.
func (a *Account) Validate() error {
	if a.HomePage == "" {
		return NewStructuralError("account.homePage", "required")
	}
	if !IsAbsoluteHTTPURI(a.HomePage) {
		return NewFormatError("account.homePage", a.HomePage, "must be an absolute http(s) URI")
	}
	return nil
}
