package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"starwars-blog/internal/managers"
	"starwars-blog/internal/schemas"
	"starwars-blog/internal/utils"
)

type CatalogHdl interface {
	ListCharacters(c *gin.Context)
	GetCharacter(c *gin.Context)
	ListPlanets(c *gin.Context)
	GetPlanet(c *gin.Context)
}

type CatalogHandler struct {
	DatabaseManager managers.DatabaseMgr
}

func NewCatalogHandler(databaseManager *managers.DatabaseMgr) CatalogHdl {
	return &CatalogHandler{DatabaseManager: *databaseManager}
}

const listCharactersQuery = "SELECT uid, height, mass, hair_color, skin_color, eye_color, birth_year, gender, created, edited, name, homeworld " +
	"FROM characters ORDER BY uid OFFSET $1 LIMIT $2"

const getCharacterQuery = "SELECT uid, height, mass, hair_color, skin_color, eye_color, birth_year, gender, created, edited, name, homeworld " +
	"FROM characters WHERE uid = $1"

const listPlanetsQuery = "SELECT uid, diameter, rotation_period, orbital_period, gravity, population, climate, terrain, surface_water, created, edited, name " +
	"FROM planets ORDER BY uid OFFSET $1 LIMIT $2"

const getPlanetQuery = "SELECT uid, diameter, rotation_period, orbital_period, gravity, population, climate, terrain, surface_water, created, edited, name " +
	"FROM planets WHERE uid = $1"

// ListCharacters returns up to one page of characters in primary-key order.
// The page parameter is a literal row offset. An empty page is not an error:
// the status flag flips to false and the list stays empty.
func (handler *CatalogHandler) ListCharacters(c *gin.Context) {
	offset, err := parsePageOffset(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	rows, err := handler.DatabaseManager.GetPool().Query(c, listCharactersQuery, offset, utils.PageSize)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}
	defer rows.Close()

	characters := make([]schemas.Character, 0, utils.PageSize)
	for rows.Next() {
		character, err := scanCharacter(rows)
		if err != nil {
			utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
			return
		}
		characters = append(characters, character)
	}

	utils.WriteAndLogResponse(c, &schemas.ResponseDTO{Message: characters, Status: len(characters) > 0}, http.StatusOK)
}

// GetCharacter returns the full serialization of one character.
func (handler *CatalogHandler) GetCharacter(c *gin.Context) {
	uid, err := strconv.Atoi(c.Param(utils.CharacterIdKey))
	if err != nil {
		utils.WriteAndLogError(c, schemas.CharacterNotFound, http.StatusNotFound, err)
		return
	}

	row := handler.DatabaseManager.GetPool().QueryRow(c, getCharacterQuery, uid)
	character, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteAndLogError(c, schemas.CharacterNotFound, http.StatusNotFound, err)
			return
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.ResponseDTO{Message: character, Status: true}, http.StatusOK)
}

// ListPlanets returns up to one page of planets, with the same offset and
// empty-page semantics as ListCharacters.
func (handler *CatalogHandler) ListPlanets(c *gin.Context) {
	offset, err := parsePageOffset(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	rows, err := handler.DatabaseManager.GetPool().Query(c, listPlanetsQuery, offset, utils.PageSize)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}
	defer rows.Close()

	planets := make([]schemas.Planet, 0, utils.PageSize)
	for rows.Next() {
		planet, err := scanPlanet(rows)
		if err != nil {
			utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
			return
		}
		planets = append(planets, planet)
	}

	utils.WriteAndLogResponse(c, &schemas.ResponseDTO{Message: planets, Status: len(planets) > 0}, http.StatusOK)
}

// GetPlanet returns the full serialization of one planet.
func (handler *CatalogHandler) GetPlanet(c *gin.Context) {
	uid, err := strconv.Atoi(c.Param(utils.PlanetIdKey))
	if err != nil {
		utils.WriteAndLogError(c, schemas.PlanetNotFound, http.StatusNotFound, err)
		return
	}

	row := handler.DatabaseManager.GetPool().QueryRow(c, getPlanetQuery, uid)
	planet, err := scanPlanet(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteAndLogError(c, schemas.PlanetNotFound, http.StatusNotFound, err)
			return
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.ResponseDTO{Message: planet, Status: true}, http.StatusOK)
}

func parsePageOffset(c *gin.Context) (int, error) {
	offset, err := strconv.Atoi(c.Param(utils.PageKey))
	if err != nil {
		return 0, err
	}
	if offset < 0 {
		return 0, errors.New("page must be zero or positive")
	}
	return offset, nil
}

func scanCharacter(row pgx.Row) (schemas.Character, error) {
	character := schemas.Character{}
	var created, edited pgtype.Timestamptz
	err := row.Scan(&character.UID, &character.Height, &character.Mass, &character.HairColor, &character.SkinColor,
		&character.EyeColor, &character.BirthYear, &character.Gender, &created, &edited, &character.Name, &character.Homeworld)
	if err != nil {
		return schemas.Character{}, err
	}

	if created.Valid {
		character.Created = &created.Time
	}
	if edited.Valid {
		character.Edited = &edited.Time
	}
	return character, nil
}

func scanPlanet(row pgx.Row) (schemas.Planet, error) {
	planet := schemas.Planet{}
	var created, edited pgtype.Timestamptz
	err := row.Scan(&planet.UID, &planet.Diameter, &planet.RotationPeriod, &planet.OrbitalPeriod, &planet.Gravity,
		&planet.Population, &planet.Climate, &planet.Terrain, &planet.SurfaceWater, &created, &edited, &planet.Name)
	if err != nil {
		return schemas.Planet{}, err
	}

	if created.Valid {
		planet.Created = &created.Time
	}
	if edited.Valid {
		planet.Edited = &edited.Time
	}
	return planet, nil
}
