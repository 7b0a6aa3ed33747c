package main

import (
	"log"
	"os"

	"github.com/rdclab2001/rdc-backend/Constants"
	"github.com/rdclab2001/rdc-backend/Controllers"
	"github.com/rdclab2001/rdc-backend/CronJobs"
	"github.com/rdclab2001/rdc-backend/Models"
	"github.com/rdclab2001/rdc-backend/Notifications"
	"github.com/rdclab2001/rdc-backend/Otp"
	"github.com/rdclab2001/rdc-backend/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()

	os.MkdirAll(Constants.UploadFolder, os.ModePerm)
	os.MkdirAll(Constants.PdfFolder, os.ModePerm)

	mailer := Notifications.NewMailer(os.Getenv("BREVO_API_KEY"), os.Getenv("ADMIN_EMAIL"))
	telegram := Notifications.NewTelegram(os.Getenv("BOT_TOKEN"), os.Getenv("CHAT_ID"))
	notifier := Notifications.NewNotifier(64)
	notifier.Start()
	defer notifier.Stop()

	otpStore := Otp.NewStore()
	api := Controllers.NewAPI(otpStore, notifier, mailer, telegram)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://rdclab.in", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	Routes.ConfigRoutes(router, api)

	housekeeper := CronJobs.NewHousekeeper(otpStore)
	scheduler := housekeeper.Start()
	_ = scheduler

	port := os.Getenv("PORT")
	if port == "" {
		port = "3005"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
