package utils

const (
	// PageKey is the key for the page number used in routing parameters.
	PageKey = "page"

	// CharacterIdKey is the key for the character uid used in routing parameters.
	CharacterIdKey = "characterId"

	// PlanetIdKey is the key for the planet uid used in routing parameters.
	PlanetIdKey = "planetId"

	// FavoriteIdKey is the key for the favorite target uid used in routing parameters.
	FavoriteIdKey = "favoriteId"
)

// PageSize is the fixed catalog page size. The page path parameter is used
// as a literal row offset, not multiplied by the page size.
const PageSize = 10
