package Controllers

import (
	"net/http"

	"github.com/rdclab2001/rdc-backend/Models"
	"github.com/rdclab2001/rdc-backend/Utils/Token"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := Models.LoginCheck(input.Email, input.Password)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Email or Password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login Successful", "jwt": token})
}

func CurrentUser(c *gin.Context) {
	admin_id, err := Token.ExtractTokenID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin Models.Admin
	if err := Models.DB.First(&admin, admin_id).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "admin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": gin.H{"id": admin.ID, "email": admin.Email}})
}

// Logout is a formality with stateless tokens; the client drops its JWT and
// the token ages out on its own.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged Out"})
}
