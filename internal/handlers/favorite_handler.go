package handlers

import (
	"context"
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

type FavoriteHdl interface {
	AddFavorite(c *gin.Context)
	ListFavorites(c *gin.Context)
	RemoveFavorite(c *gin.Context)
}

type FavoriteHandler struct {
	DatabaseManager managers.DatabaseMgr
}

func NewFavoriteHandler(databaseManager *managers.DatabaseMgr) FavoriteHdl {
	return &FavoriteHandler{DatabaseManager: *databaseManager}
}

// rowQuerier is satisfied by both the pool and a transaction, so the user
// existence check can run against either.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

const listCharacterFavoritesQuery = "SELECT f.user_id, f.character_uid, c.name FROM favorites_characters f " +
	"LEFT JOIN characters c ON f.character_uid = c.uid WHERE f.user_id = $1 ORDER BY f.character_uid"

const listPlanetFavoritesQuery = "SELECT f.user_id, f.planet_uid, p.name FROM favorites_planets f " +
	"LEFT JOIN planets p ON f.planet_uid = p.uid WHERE f.user_id = $1 ORDER BY f.planet_uid"

// AddFavorite bookmarks a character or planet for the authenticated user.
// The whole flow runs in one transaction so the duplicate check and the
// insert can't interleave with a concurrent identical request; the composite
// primary key on the favorites tables backs the check up.
func (handler *FavoriteHandler) AddFavorite(c *gin.Context) {
	userId, err := utils.UserIdFromContext(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
		return
	}

	addFavoriteRequest := c.MustGet(utils.SanitizedPayloadKey.String()).(*schemas.AddFavoriteRequest)

	tx := utils.BeginTransaction(c, handler.DatabaseManager.GetPool())
	if tx == nil {
		return
	}
	defer utils.RollbackTransaction(c, tx)

	if !handler.checkUserExists(c, tx, userId) {
		return
	}

	if addFavoriteRequest.Type == "" {
		utils.WriteAndLogError(c, schemas.NoFavoriteType, http.StatusBadRequest, errors.New("favorite type missing"))
		return
	}

	switch addFavoriteRequest.Type {
	case schemas.FavoriteCharacter:
		if addFavoriteRequest.CharacterUID == nil {
			utils.WriteAndLogError(c, schemas.NoCharacterUID, http.StatusBadRequest, errors.New("character_uid missing"))
			return
		}
		if !handler.insertFavorite(c, tx, userId, *addFavoriteRequest.CharacterUID, schemas.FavoriteCharacter) {
			return
		}
	case schemas.FavoritePlanet:
		if addFavoriteRequest.PlanetUID == nil {
			utils.WriteAndLogError(c, schemas.NoPlanetUID, http.StatusBadRequest, errors.New("planet_uid missing"))
			return
		}
		if !handler.insertFavorite(c, tx, userId, *addFavoriteRequest.PlanetUID, schemas.FavoritePlanet) {
			return
		}
	default:
		utils.WriteAndLogError(c, schemas.NoValidType, http.StatusBadRequest, errors.New("unknown favorite type"))
		return
	}

	if err := utils.CommitTransaction(c, tx); err != nil {
		return
	}

	utils.WriteAndLogResponse(c, &schemas.ResponseDTO{Message: "Favorite successfully added", Status: true}, http.StatusOK)
}

// insertFavorite verifies the target exists, rejects duplicates, and inserts
// the favorite row. Returns false after having written an error response.
// The duplicate ConflictError deliberately maps to 400, not 409.
func (handler *FavoriteHandler) insertFavorite(c *gin.Context, tx pgx.Tx, userId, targetUid int, kind schemas.FavoriteKind) bool {
	var targetQuery, duplicateQuery, insertQuery string
	var notFound *schemas.CustomError

	switch kind {
	case schemas.FavoriteCharacter:
		targetQuery = "SELECT uid FROM characters WHERE uid = $1"
		duplicateQuery = "SELECT 1 FROM favorites_characters WHERE user_id = $1 AND character_uid = $2"
		insertQuery = "INSERT INTO favorites_characters (user_id, character_uid) VALUES ($1, $2)"
		notFound = schemas.CharacterNotFound
	case schemas.FavoritePlanet:
		targetQuery = "SELECT uid FROM planets WHERE uid = $1"
		duplicateQuery = "SELECT 1 FROM favorites_planets WHERE user_id = $1 AND planet_uid = $2"
		insertQuery = "INSERT INTO favorites_planets (user_id, planet_uid) VALUES ($1, $2)"
		notFound = schemas.PlanetNotFound
	}

	var uid int
	if err := tx.QueryRow(c, targetQuery, targetUid).Scan(&uid); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteAndLogError(c, notFound, http.StatusNotFound, err)
			return false
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return false
	}

	var one int
	err := tx.QueryRow(c, duplicateQuery, userId, targetUid).Scan(&one)
	if err == nil {
		utils.WriteAndLogError(c, schemas.FavoriteExists, http.StatusBadRequest, errors.New("favorite already exists"))
		return false
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return false
	}

	if _, err := tx.Exec(c, insertQuery, userId, targetUid); err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return false
	}

	return true
}

// ListFavorites returns the user's favorites, character favorites first and
// planet favorites after, each hydrated with the target's name. A favorite
// whose catalog row has vanished is a consistency fault, not a skip.
func (handler *FavoriteHandler) ListFavorites(c *gin.Context) {
	userId, err := utils.UserIdFromContext(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
		return
	}

	pool := handler.DatabaseManager.GetPool()
	if !handler.checkUserExists(c, pool, userId) {
		return
	}

	results := make([]any, 0)

	rows, err := pool.Query(c, listCharacterFavoritesQuery, userId)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		favorite := schemas.CharacterFavoriteDTO{Type: schemas.FavoriteCharacter}
		var name pgtype.Text
		if err := rows.Scan(&favorite.UserID, &favorite.CharacterUID, &name); err != nil {
			utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
			return
		}
		if !name.Valid {
			utils.WriteAndLogError(c, schemas.DanglingTarget, http.StatusInternalServerError, errors.New("character favorite references missing character"))
			return
		}
		favorite.Name = name.String
		results = append(results, favorite)
	}
	rows.Close()

	rows, err = pool.Query(c, listPlanetFavoritesQuery, userId)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		favorite := schemas.PlanetFavoriteDTO{Type: schemas.FavoritePlanet}
		var name pgtype.Text
		if err := rows.Scan(&favorite.UserID, &favorite.PlanetUID, &name); err != nil {
			utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
			return
		}
		if !name.Valid {
			utils.WriteAndLogError(c, schemas.DanglingTarget, http.StatusInternalServerError, errors.New("planet favorite references missing planet"))
			return
		}
		favorite.Name = name.String
		results = append(results, favorite)
	}

	utils.WriteAndLogResponse(c, &schemas.ResponseDTO{Message: results, Status: true}, http.StatusOK)
}

// RemoveFavorite deletes one favorite row. The path id is interpreted as a
// character or planet uid depending on the type in the body.
func (handler *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userId, err := utils.UserIdFromContext(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
		return
	}

	favoriteId, err := strconv.Atoi(c.Param(utils.FavoriteIdKey))
	if err != nil {
		utils.WriteAndLogError(c, schemas.FavoriteNotFound, http.StatusNotFound, err)
		return
	}

	removeFavoriteRequest := c.MustGet(utils.SanitizedPayloadKey.String()).(*schemas.RemoveFavoriteRequest)

	tx := utils.BeginTransaction(c, handler.DatabaseManager.GetPool())
	if tx == nil {
		return
	}
	defer utils.RollbackTransaction(c, tx)

	if !handler.checkUserExists(c, tx, userId) {
		return
	}

	if removeFavoriteRequest.Type == "" {
		utils.WriteAndLogError(c, schemas.NoFavoriteType, http.StatusBadRequest, errors.New("favorite type missing"))
		return
	}

	var deleteQuery string
	switch removeFavoriteRequest.Type {
	case schemas.FavoriteCharacter:
		deleteQuery = "DELETE FROM favorites_characters WHERE user_id = $1 AND character_uid = $2"
	case schemas.FavoritePlanet:
		deleteQuery = "DELETE FROM favorites_planets WHERE user_id = $1 AND planet_uid = $2"
	default:
		utils.WriteAndLogError(c, schemas.NoValidType, http.StatusBadRequest, errors.New("unknown favorite type"))
		return
	}

	commandTag, err := tx.Exec(c, deleteQuery, userId, favoriteId)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}
	if commandTag.RowsAffected() == 0 {
		utils.WriteAndLogError(c, schemas.FavoriteNotFound, http.StatusNotFound, errors.New("favorite not found"))
		return
	}

	if err := utils.CommitTransaction(c, tx); err != nil {
		return
	}

	utils.WriteAndLogResponse(c, &schemas.ResponseDTO{Message: "favorite successfully deleted", Status: true}, http.StatusOK)
}

// checkUserExists resolves the token's subject to a user row. Returns false
// after having written the 404 response.
func (handler *FavoriteHandler) checkUserExists(c *gin.Context, q rowQuerier, userId int) bool {
	var id int
	queryString := "SELECT id FROM users WHERE id = $1"
	if err := q.QueryRow(c, queryString, userId).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteAndLogError(c, schemas.UserNotFound, http.StatusNotFound, err)
			return false
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return false
	}
	return true
}
