package Controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/rdclab2001/rdc-backend/Models"
	"github.com/rdclab2001/rdc-backend/Notifications"
	"github.com/rdclab2001/rdc-backend/SSE"

	"github.com/gin-gonic/gin"
)

type BookingInput struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	TestName string `json:"test_name"`
	Message  string `json:"message"`
}

func (in *BookingInput) trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Email = strings.TrimSpace(in.Email)
	in.TestName = strings.TrimSpace(in.TestName)
	in.Message = strings.TrimSpace(in.Message)
}

// BookTest takes a public booking from the website form, stores it as a lead
// and kicks off the telegram alert plus, when an email was left, the booking
// confirmation. Both ride the background queue; the response never waits on
// them.
func (api *API) BookTest(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Missing required fields"})
		return
	}
	input.trim()

	if input.Name == "" || input.Mobile == "" || input.TestName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Missing required fields"})
		return
	}

	lead := Models.Lead{
		Name:     input.Name,
		Mobile:   input.Mobile,
		Email:    input.Email,
		TestName: input.TestName,
		Message:  input.Message,
	}
	if err := Models.CreateLead(&lead); err != nil {
		log.Println("book-test error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Server error"})
		return
	}

	name, mobile, testName := input.Name, input.Mobile, input.TestName
	api.Notifier.Enqueue(Notifications.Job{
		Name: "lead-alert",
		Run: func() error {
			return api.Telegram.SendAlert(Notifications.LeadAlertText(name, mobile, testName))
		},
	})

	if input.Email != "" {
		email := input.Email
		api.Notifier.Enqueue(Notifications.Job{
			Name: "booking-confirmation",
			Run: func() error {
				return api.Mailer.Send(email, name, "RDC Booking Confirmation",
					Notifications.BookingEmailBody(name, testName), nil, "")
			},
		})
	}

	SSE.Broadcaster.NotifyRefresh("website_leads")

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Booking saved successfully!"})
}

// AddAppointment records a walk-in or staff-entered appointment. No outbound
// notifications for these; the staff member is already on the phone.
func AddAppointment(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
		return
	}
	input.trim()

	if input.Name == "" || input.Mobile == "" || input.TestName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
		return
	}

	appointment := Models.Appointment{
		Name:     input.Name,
		Mobile:   input.Mobile,
		Email:    input.Email,
		TestName: input.TestName,
		Message:  input.Message,
	}
	if err := Models.CreateAppointment(&appointment); err != nil {
		log.Println("add-appointment error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	SSE.Broadcaster.NotifyRefresh("appointments")

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type StatusInput struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

func UpdateLeadStatus(c *gin.Context) {
	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	if err := Models.UpdateLeadStatus(input.ID, input.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func UpdateAppointmentStatus(c *gin.Context) {
	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	if err := Models.UpdateAppointmentStatus(input.ID, input.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
