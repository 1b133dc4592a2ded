package schemas

// CustomError is an API-visible error. Only the message crosses the wire;
// internal detail stays in the logs.
type CustomError struct {
	Message string `json:"message"`
}

// DTO wraps the error in the response envelope with the status flag down.
func (e *CustomError) DTO() *ErrorDTO {
	return &ErrorDTO{Message: e.Message, Status: false}
}

var (
	// BadRequest covers malformed request shapes the field-specific
	// messages don't reach (unparsable JSON, bad path parameters).
	BadRequest = &CustomError{Message: "Invalid client request"}

	// UserAlreadyExists maps to 409 on registration, the one conflict that
	// doesn't use 400.
	UserAlreadyExists = &CustomError{Message: "User already exists"}

	// InvalidCredentials is deliberately identical for unknown mail and
	// wrong password so accounts can't be enumerated.
	InvalidCredentials = &CustomError{Message: "Username/Password are incorrect"}

	// InvalidToken covers bad, expired, and orphaned bearer tokens.
	InvalidToken = &CustomError{Message: "Invalid token"}

	UserNotFound      = &CustomError{Message: "User not found"}
	CharacterNotFound = &CustomError{Message: "Character not found"}
	PlanetNotFound    = &CustomError{Message: "Planet not found"}
	FavoriteNotFound  = &CustomError{Message: "Favorite not found"}

	NoFavoriteType  = &CustomError{Message: "Invalid client request, has no favorite type"}
	NoValidType     = &CustomError{Message: "Invalid client request, no valid type found"}
	NoCharacterUID  = &CustomError{Message: "Invalid client request, has no favorite character_uid"}
	NoPlanetUID     = &CustomError{Message: "Invalid client request, has no favorite planet_uid"}
	FavoriteExists  = &CustomError{Message: "Invalid client request, favorite already exists"}
	DanglingTarget  = &CustomError{Message: "Favorite references a missing catalog entity"}

	DatabaseError       = &CustomError{Message: "A database error occurred"}
	InternalServerError = &CustomError{Message: "An internal error occurred"}
)
