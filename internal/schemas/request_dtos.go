// Package schemas defines the request structures for the API operations.
package schemas

// FavoriteKind tags the target of a favorite. The two relations
// (favorites_characters, favorites_planets) are dispatched on this tag.
type FavoriteKind string

const (
	FavoriteCharacter FavoriteKind = "character"
	FavoritePlanet    FavoriteKind = "planet"
)

// Valid reports whether the kind is one of the two recognized values.
func (k FavoriteKind) Valid() bool {
	return k == FavoriteCharacter || k == FavoritePlanet
}

// RegistrationRequest is a struct that represents a registration request
// All four fields are required; mail doubles as the login key.
type RegistrationRequest struct {
	Name     string `json:"name" validate:"required"`
	Lastname string `json:"lastname" validate:"required"`
	Mail     string `json:"mail" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MissingFieldResponse renders the register-specific 400 body, which carries
// an exists flag alongside the message and status.
func (r *RegistrationRequest) MissingFieldResponse(field string) any {
	return &RegisterResponse{
		Message: "Invalid client request, " + field + " is required",
		Status:  false,
		Exists:  false,
	}
}

// LoginRequest is a struct that represents a login request
// Mail and password are both required.
type LoginRequest struct {
	Mail     string `json:"mail" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MissingFieldResponse keeps the source's login validation body, which uses
// the same message whichever field is missing.
func (r *LoginRequest) MissingFieldResponse(string) any {
	return &ErrorDTO{Message: "User name is required", Status: false}
}

// AddFavoriteRequest is a struct that represents an add-favorite request
// Type selects the target kind; exactly one of the uid fields is expected,
// matching the type. Presence checks are handler-level because the required
// uid depends on the type.
type AddFavoriteRequest struct {
	Type         FavoriteKind `json:"type"`
	CharacterUID *int         `json:"character_uid"`
	PlanetUID    *int         `json:"planet_uid"`
}

// RemoveFavoriteRequest is a struct that represents a remove-favorite request
// The target uid travels in the URL; the body only disambiguates the kind.
type RemoveFavoriteRequest struct {
	Type FavoriteKind `json:"type"`
}
