// Package handlers implements the HTTP handlers behind the API routes.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"starwars-blog/internal/managers"
	"starwars-blog/internal/schemas"
	"starwars-blog/internal/utils"
)

type AuthHdl interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	CheckSession(c *gin.Context)
}

type AuthHandler struct {
	DatabaseManager managers.DatabaseMgr
	JWTManager      managers.JWTMgr
}

func NewAuthHandler(databaseManager *managers.DatabaseMgr, jwtManager *managers.JWTMgr) AuthHdl {
	return &AuthHandler{
		DatabaseManager: *databaseManager,
		JWTManager:      *jwtManager,
	}
}

// Register creates a new user. The mail-taken check runs inside the insert
// transaction, with the unique constraint on users.mail as the backstop for
// concurrent registrations.
func (handler *AuthHandler) Register(c *gin.Context) {
	registrationRequest := c.MustGet(utils.SanitizedPayloadKey.String()).(*schemas.RegistrationRequest)

	tx := utils.BeginTransaction(c, handler.DatabaseManager.GetPool())
	if tx == nil {
		return
	}
	defer utils.RollbackTransaction(c, tx)

	// Check if the mail is already registered
	var existingId int
	queryString := "SELECT id FROM users WHERE mail = $1"
	if err := tx.QueryRow(c, queryString, registrationRequest.Mail).Scan(&existingId); err == nil {
		utils.LogMessageWithFields(c, "info", "Registration rejected, mail already exists")
		utils.WriteAndLogResponse(c, &schemas.RegisterResponse{
			Message: schemas.UserAlreadyExists.Message,
			Status:  false,
			Exists:  true,
		}, http.StatusConflict)
		return
	} else if !errors.Is(err, pgx.ErrNoRows) {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registrationRequest.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	// Insert the user into the database
	queryString = "INSERT INTO users (name, lastname, mail, password) VALUES ($1, $2, $3, $4)"
	if _, err = tx.Exec(c, queryString, registrationRequest.Name, registrationRequest.Lastname, registrationRequest.Mail, hashedPassword); err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	if err = utils.CommitTransaction(c, tx); err != nil {
		return
	}

	utils.WriteAndLogResponse(c, &schemas.RegisterResponse{
		Message: "Successful register",
		Status:  true,
		Exists:  false,
	}, http.StatusOK)
}

// Login verifies the credentials and issues a session token. Unknown mail
// and wrong password return the same body so accounts can't be enumerated.
func (handler *AuthHandler) Login(c *gin.Context) {
	loginRequest := c.MustGet(utils.SanitizedPayloadKey.String()).(*schemas.LoginRequest)

	user := schemas.User{}
	queryString := "SELECT id, name, lastname, mail, password FROM users WHERE mail = $1"
	row := handler.DatabaseManager.GetPool().QueryRow(c, queryString, loginRequest.Mail)
	if err := row.Scan(&user.ID, &user.Name, &user.Lastname, &user.Mail, &user.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteAndLogError(c, schemas.InvalidCredentials, http.StatusUnauthorized, err)
			return
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginRequest.Password)); err != nil {
		utils.WriteAndLogError(c, schemas.InvalidCredentials, http.StatusUnauthorized, err)
		return
	}

	claims := handler.JWTManager.GenerateClaims(user.ID)
	token, err := handler.JWTManager.GenerateJWT(claims)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.LoginResponse{
		Message: "Successful login",
		Status:  true,
		User: schemas.UserDTO{
			ID:       user.ID,
			Name:     user.Name,
			Lastname: user.Lastname,
			Mail:     user.Mail,
		},
		Token:  token,
		Expiry: managers.TokenValidityMillis,
	}, http.StatusOK)
}

// CheckSession acknowledges a valid token. The token has already passed the
// JWT middleware; what remains is confirming the subject still resolves to
// a user.
func (handler *AuthHandler) CheckSession(c *gin.Context) {
	userId, err := utils.UserIdFromContext(c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
		return
	}

	var id int
	queryString := "SELECT id FROM users WHERE id = $1"
	if err := handler.DatabaseManager.GetPool().QueryRow(c, queryString, userId).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
			return
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.ResponseDTO{Message: "Session ok", Status: true}, http.StatusOK)
}
