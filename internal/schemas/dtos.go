package schemas

// ErrorDTO is a struct that represents an error response
// Message is the human-readable error text; Status mirrors request success
// and is always false here.
type ErrorDTO struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

// ResponseDTO is a struct that represents a generic success envelope
// Message holds either an acknowledgment string or the result payload;
// Status mirrors request success.
type ResponseDTO struct {
	Message any  `json:"message"`
	Status  bool `json:"status"`
}

// RegisterResponse is a struct that represents the register response
// Exists reports whether the mail was already taken.
type RegisterResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
	Exists  bool   `json:"exists"`
}

// UserDTO is a struct that represents the public serialization of a user
// The password hash is never included.
type UserDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Mail     string `json:"mail"`
}

// LoginResponse is a struct that represents a successful login
// Expiry is the token validity window in milliseconds.
type LoginResponse struct {
	Message string  `json:"message"`
	Status  bool    `json:"status"`
	User    UserDTO `json:"user"`
	Token   string  `json:"token"`
	Expiry  int64   `json:"expiry"`
}

// UserListDTO is a struct that represents the /users listing
// It deliberately has no status flag, matching the original contract.
type UserListDTO struct {
	Message []UserDTO `json:"message"`
}

// CharacterFavoriteDTO is a struct that represents a hydrated character favorite
type CharacterFavoriteDTO struct {
	UserID       int          `json:"user_id"`
	CharacterUID int          `json:"character_uid"`
	Type         FavoriteKind `json:"type"`
	Name         string       `json:"name"`
}

// PlanetFavoriteDTO is a struct that represents a hydrated planet favorite
type PlanetFavoriteDTO struct {
	UserID    int          `json:"user_id"`
	PlanetUID int          `json:"planet_uid"`
	Type      FavoriteKind `json:"type"`
	Name      string       `json:"name"`
}

// RouteDTO is a struct that represents one sitemap entry
type RouteDTO struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}
