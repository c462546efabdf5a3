package jobs

import (
	"log"
	"time"

	"debt_flow_app_go/config"
	"debt_flow_app_go/models"
	"debt_flow_app_go/services"

	"gorm.io/gorm"
)

// SweepSLABreaches marks actions whose deadline has passed without
// completion as breached, and emails a digest to operations when any
// row changed. The derived-status resolver never writes the flag; this
// job is the only writer.
func SweepSLABreaches(database *gorm.DB, cfg *config.Config) {
	log.Println("Starting SLA breach sweep...")

	now := time.Now().UTC()

	result := database.Model(&models.Action{}).
		Where("sla_deadline IS NOT NULL AND sla_deadline < ?", now).
		Where("completed_at IS NULL").
		Where("sla_breached IS NULL OR sla_breached = ?", false).
		Update("sla_breached", true)

	if result.Error != nil {
		log.Printf("Error sweeping SLA breaches: %v", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		log.Println("SLA breach sweep completed, no new breaches")
		return
	}

	log.Printf("SLA breach sweep completed, %d new breach(es)", result.RowsAffected)

	if cfg.OpsAlertEmail == "" {
		return
	}

	email := services.BuildBreachDigestEmail(cfg.OpsAlertEmail, services.BreachDigestEmailData{
		BreachCount: int(result.RowsAffected),
		SweptAt:     now.Format(time.RFC3339),
	})
	if err := services.SendEmail(cfg, email); err != nil {
		log.Printf("Failed to send breach digest: %v", err)
	}
}
