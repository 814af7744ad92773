package job

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
	"github.com/kim0hyeon/CRUDBoard/internal/service"
)

const defaultRetentionDays = 30

// CleanupJob permanently removes soft deleted rows once they age past the
// retention window, together with any stored post images.
type CleanupJob struct {
	db            *gorm.DB
	images        service.ImageClient
	retentionDays int
	logger        *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(db *gorm.DB, images service.ImageClient, retentionDays int, logger *zap.Logger) *CleanupJob {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &CleanupJob{
		db:            db,
		images:        images,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// Run executes one cleanup pass. It satisfies cron.Job.
func (j *CleanupJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().AddDate(0, 0, -j.retentionDays)

	j.logger.Info("Starting cleanup of soft deleted rows",
		zap.Time("cutoff", cutoff),
	)

	imagesDeleted := j.purgeImages(ctx, cutoff)

	// Children before parents so foreign keys stay consistent mid-purge.
	targets := []struct {
		table string
		model interface{}
	}{
		{"comments", &domain.Comment{}},
		{"posts", &domain.Post{}},
		{"boards", &domain.Board{}},
		{"users", &domain.User{}},
	}

	purged := make(map[string]int64, len(targets))
	for _, target := range targets {
		result := j.db.WithContext(ctx).Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Delete(target.model)
		if result.Error != nil {
			j.logger.Error("Failed to purge soft deleted rows",
				zap.String("table", target.table),
				zap.Error(result.Error),
			)
			continue
		}
		purged[target.table] = result.RowsAffected
	}

	j.logger.Info("Cleanup job completed",
		zap.Int64("comments", purged["comments"]),
		zap.Int64("posts", purged["posts"]),
		zap.Int64("boards", purged["boards"]),
		zap.Int64("users", purged["users"]),
		zap.Int("images_deleted", imagesDeleted),
	)
}

// purgeImages deletes the stored images of posts that are about to be purged.
// Failures are logged and skipped so one bad object never blocks the pass.
func (j *CleanupJob) purgeImages(ctx context.Context, cutoff time.Time) int {
	if j.images == nil {
		return 0
	}

	var posts []*domain.Post
	err := j.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Where("image_url IS NOT NULL").
		Find(&posts).Error
	if err != nil {
		j.logger.Error("Failed to load purgeable posts", zap.Error(err))
		return 0
	}

	deleted := 0
	for _, post := range posts {
		if post.ImageURL == nil || *post.ImageURL == "" {
			continue
		}
		if err := j.images.DeleteFile(ctx, *post.ImageURL); err != nil {
			j.logger.Warn("Failed to delete stored image",
				zap.String("post_id", post.ID.String()),
				zap.String("image_url", *post.ImageURL),
				zap.Error(err),
			)
			continue
		}
		deleted++
	}
	return deleted
}
