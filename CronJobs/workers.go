package CronJobs

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/rdclab2001/rdc-backend/Constants"
	"github.com/rdclab2001/rdc-backend/Otp"
)

// Housekeeper owns the periodic cleanup jobs: dropping abandoned OTP entries
// and deleting generated report PDFs nobody downloaded.
type Housekeeper struct {
	OtpStore  *Otp.Store
	PdfMaxAge time.Duration
}

func NewHousekeeper(otpStore *Otp.Store) *Housekeeper {
	return &Housekeeper{
		OtpStore:  otpStore,
		PdfMaxAge: 7 * 24 * time.Hour,
	}
}

func (h *Housekeeper) Start() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Minutes().Do(func() {
		if removed := h.OtpStore.SweepExpired(); removed > 0 {
			log.Printf("swept %d expired OTP entries", removed)
		}
	})

	scheduler.Every(24).Hours().Do(func() {
		if err := h.CleanupOldArtifacts(); err != nil {
			log.Printf("artifact cleanup error: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("housekeeping cron jobs started")

	return scheduler
}

// CleanupOldArtifacts deletes stale PDFs and any staged images left behind
// by a crashed conversion. Best-effort, per-file failures are logged only.
func (h *Housekeeper) CleanupOldArtifacts() error {
	cutoff := time.Now().Add(-h.PdfMaxAge)

	for _, folder := range []string{Constants.PdfFolder, Constants.UploadFolder} {
		entries, err := os.ReadDir(folder)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil || info.IsDir() {
				continue
			}
			if info.ModTime().Before(cutoff) {
				path := filepath.Join(folder, entry.Name())
				if err := os.Remove(path); err != nil {
					log.Printf("failed to remove %s: %v", path, err)
				}
			}
		}
	}
	return nil
}
