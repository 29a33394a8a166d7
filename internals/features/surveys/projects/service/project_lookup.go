package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	projectModel "surveyku_backend/internals/features/surveys/projects/model"
)

// FindProjectByKey: resolver tunggal id-atau-code. Semua komponen pipeline
// yang menerima "project key" lewat sini — jangan duplikasi logika dual
// lookup di controller.
func FindProjectByKey(ctx context.Context, db *gorm.DB, key string) (*projectModel.ProjectModel, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var p projectModel.ProjectModel
	if id, err := uuid.Parse(key); err == nil {
		err := db.WithContext(ctx).First(&p, "project_id = ?", id).Error
		if err == nil {
			return &p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := db.WithContext(ctx).First(&p, "project_code = ?", key).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
