package utils

import (
	"time"

	"saboserver/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func CronCleaner(db *gorm.DB, logger *zap.Logger) {
	c := cron.New()

	// 古い対戦記録を削除するジョブ（毎日3時に実行）
	c.AddFunc("0 3 * * *", func() {
		logger.Info("古い対戦記録を削除する処理を開始")
		result := db.Unscoped().
			Where("created_at <= ?", time.Now().Add(-30*24*time.Hour)).
			Delete(&models.MatchRecord{})
		if result.Error != nil {
			logger.Error("対戦記録の削除に失敗しました", zap.Error(result.Error))
		} else {
			logger.Info("対戦記録の削除完了", zap.Int("records_deleted", int(result.RowsAffected)))
		}
	})

	c.Start()
}
