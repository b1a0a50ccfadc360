package service

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
)

// AdminCredentials configures the single administrative identity.
// PasswordHash wins over Password; a plain Password is hashed once at boot.
type AdminCredentials struct {
	Name         string
	Email        string
	PhoneKey     string
	Password     string
	PasswordHash string
	APIKey       string
}

// AdminAuthenticator implements ports.AdminAuthenticator. Every admin
// credential form resolves to the same domain.AdminPrincipal.
type AdminAuthenticator struct {
	name         string
	email        string
	phoneKey     string
	passwordHash string
	apiKey       string
	hash         ports.HashService
}

func NewAdminAuthenticator(creds AdminCredentials, hash ports.HashService) (*AdminAuthenticator, error) {
	a := &AdminAuthenticator{
		name:         creds.Name,
		email:        domain.NormalizeEmail(creds.Email),
		phoneKey:     creds.PhoneKey,
		passwordHash: creds.PasswordHash,
		apiKey:       creds.APIKey,
		hash:         hash,
	}
	if a.name == "" {
		a.name = "ADMIN"
	}
	if a.passwordHash == "" && creds.Password != "" {
		h, err := hash.Hash(creds.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing admin password: %w", err)
		}
		a.passwordHash = h
	}
	return a, nil
}

func (a *AdminAuthenticator) principal(m domain.AdminMethod) *domain.AdminPrincipal {
	return &domain.AdminPrincipal{Name: a.name, Method: m}
}

// AuthenticatePassword matches the admin email and password. A hash error
// counts as a mismatch.
func (a *AdminAuthenticator) AuthenticatePassword(email, password string) (*domain.AdminPrincipal, bool) {
	if a.email == "" || a.passwordHash == "" || domain.NormalizeEmail(email) != a.email {
		return nil, false
	}
	ok, err := a.hash.Verify(password, a.passwordHash)
	if err != nil || !ok {
		return nil, false
	}
	return a.principal(domain.AdminMethodPassword), true
}

// AuthenticatePhone is consulted only after the OTP for phoneKey verified.
func (a *AdminAuthenticator) AuthenticatePhone(phoneKey string) (*domain.AdminPrincipal, bool) {
	if a.phoneKey == "" || strings.TrimSpace(phoneKey) != a.phoneKey {
		return nil, false
	}
	return a.principal(domain.AdminMethodOTP), true
}

func (a *AdminAuthenticator) AuthenticateAPIKey(key string) (*domain.AdminPrincipal, bool) {
	if a.apiKey == "" || key == "" {
		return nil, false
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(a.apiKey)) != 1 {
		return nil, false
	}
	return a.principal(domain.AdminMethodAPIKey), true
}

func (a *AdminAuthenticator) AuthenticateClaims(claims ports.Claims) (*domain.AdminPrincipal, bool) {
	if claims.Role() != domain.RoleAdmin {
		return nil, false
	}
	return a.principal(domain.AdminMethodToken), true
}

// Claims is the session claim set for an administrator.
func (a *AdminAuthenticator) Claims(domain.AdminPrincipal) ports.Claims {
	return ports.Claims{ports.ClaimRole: domain.RoleAdmin}
}
