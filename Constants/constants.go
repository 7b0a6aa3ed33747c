package Constants

const (
	BrevoEndpoint    = "https://api.brevo.com/v3/smtp/email"
	TelegramEndpoint = "https://api.telegram.org"

	UploadFolder = "uploads"
	PdfFolder    = "pdfs"

	SenderName = "Ragavendra Diagnosis Center"
)

// AllowedImageExtensions is the upload allow-list for report images.
var AllowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}
