package domain

// AdminMethod records how administrative authority was proven.
type AdminMethod string

const (
	AdminMethodPassword AdminMethod = "password"
	AdminMethodOTP      AdminMethod = "otp"
	AdminMethodAPIKey   AdminMethod = "api_key"
	AdminMethodToken    AdminMethod = "token"
)

// RoleAdmin is the session claim value carried by administrator tokens.
const RoleAdmin = "admin"

// AdminPrincipal is the single internal representation of administrative
// authority, whichever credential form produced it.
type AdminPrincipal struct {
	Name   string      `json:"name"`
	Method AdminMethod `json:"method"`
}
