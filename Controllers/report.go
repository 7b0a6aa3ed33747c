package Controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rdclab2001/rdc-backend/Constants"
	"github.com/rdclab2001/rdc-backend/Notifications"
	"github.com/rdclab2001/rdc-backend/Reports"

	"github.com/gin-gonic/gin"
)

// ConvertAndSendReport takes uploaded report images, concatenates them into
// one PDF and mails it to the patient in the background. Files with a
// disallowed extension are skipped; an image that fails to stage or decode
// fails the whole request so no partial report ever goes out.
func (api *API) ConvertAndSendReport(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		name = "Patient"
	}
	email := strings.TrimSpace(c.PostForm("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email required"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No images uploaded"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No images uploaded"})
		return
	}

	var imagePaths []string
	for _, file := range files {
		if !Reports.AllowedImage(file.Filename) {
			continue
		}
		path := filepath.Join(Constants.UploadFolder, Reports.StagedName(file.Filename))
		if err := c.SaveUploadedFile(file, path); err != nil {
			log.Println("failed to stage image:", err)
			Reports.CleanupImages(imagePaths)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		imagePaths = append(imagePaths, path)
	}

	if len(imagePaths) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid images"})
		return
	}

	pdfFilename := Reports.ReportFilename()
	pdfPath := filepath.Join(Constants.PdfFolder, pdfFilename)

	if err := Reports.ConvertImagesToPDF(imagePaths, pdfPath); err != nil {
		log.Println("convert-and-send-report error:", err)
		Reports.CleanupImages(imagePaths)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	Reports.CleanupImages(imagePaths)

	api.Notifier.Enqueue(Notifications.Job{
		Name: "report-email",
		Run: func() error {
			pdfBytes, err := os.ReadFile(pdfPath)
			if err != nil {
				return err
			}
			return api.Mailer.Send(email, name, "Your Lab Test Report - Ragavendra Diagnosis Center",
				Notifications.ReportEmailBody(name), pdfBytes, pdfFilename)
		},
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Report sent to patient email successfully",
		"pdf_url": "/download-pdf/" + pdfFilename,
	})
}

func DownloadPdf(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	pdfPath := filepath.Join(Constants.PdfFolder, filename)

	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.FileAttachment(pdfPath, filename)
}
