package Controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/rdclab2001/rdc-backend/Models"
	"github.com/rdclab2001/rdc-backend/Notifications"
	"github.com/rdclab2001/rdc-backend/Otp"

	"github.com/gin-gonic/gin"
)

func (api *API) Forgot(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := Models.GetAdminByEmail(input.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email not registered"})
		return
	}

	otp, err := api.OtpStore.Issue(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to send OTP. Please try again later."})
		return
	}

	// Sent inline, not through the queue: the requester needs to know the
	// code is on its way before being pointed at the verify step.
	if err := api.Mailer.Send(input.Email, "Admin", "RDC Admin Password Reset - OTP",
		Notifications.OtpEmailBody(otp), nil, ""); err != nil {
		log.Println("OTP email error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to send OTP. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

func (api *API) VerifyOtp(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
		Otp   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resetToken, err := api.OtpStore.Verify(input.Email, input.Otp)
	if err != nil {
		switch {
		case errors.Is(err, Otp.ErrExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP expired"})
		case errors.Is(err, Otp.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP not found"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified", "reset_token": resetToken})
}

func (api *API) ResetPassword(c *gin.Context) {
	var input struct {
		ResetToken string `json:"reset_token" binding:"required"`
		Password   string `json:"password" binding:"required"`
		Confirm    string `json:"confirm" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Password != input.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	email, ok := api.OtpStore.ConsumeReset(input.ResetToken)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Reset not allowed"})
		return
	}

	if err := Models.UpdateAdminPassword(email, input.Password); err != nil {
		log.Println("password reset error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}
