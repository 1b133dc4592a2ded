package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars-blog/internal/managers"
	"starwars-blog/internal/schemas"
	"starwars-blog/internal/utils"
)

type UserHdl interface {
	ListUsers(c *gin.Context)
}

type UserHandler struct {
	DatabaseManager managers.DatabaseMgr
}

func NewUserHandler(databaseManager *managers.DatabaseMgr) UserHdl {
	return &UserHandler{DatabaseManager: *databaseManager}
}

// ListUsers returns the public serialization of every user. The password
// hash is never selected.
func (handler *UserHandler) ListUsers(c *gin.Context) {
	queryString := "SELECT id, name, lastname, mail FROM users ORDER BY id"
	rows, err := handler.DatabaseManager.GetPool().Query(c, queryString)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}
	defer rows.Close()

	users := make([]schemas.UserDTO, 0)
	for rows.Next() {
		user := schemas.UserDTO{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Lastname, &user.Mail); err != nil {
			utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
			return
		}
		users = append(users, user)
	}

	utils.WriteAndLogResponse(c, &schemas.UserListDTO{Message: users}, http.StatusOK)
}
