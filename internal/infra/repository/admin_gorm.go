package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type AdminGormRepository struct {
	db *gorm.DB
}

// DI
func NewAdminGormRepository(db *gorm.DB) *AdminGormRepository {
	return &AdminGormRepository{db: db}
}

func (r *AdminGormRepository) Create(ctx context.Context, a model.Admin) (model.Admin, error) {
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return model.Admin{}, err
	}
	return a, nil
}

func (r *AdminGormRepository) FindByID(ctx context.Context, adminID int64) (model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).Where("id = ?", adminID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Admin{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Admin{}, err
	}
	return a, nil
}

func (r *AdminGormRepository) FindByAdminName(ctx context.Context, adminName string) (model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).Where("adminname = ?", adminName).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Admin{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Admin{}, err
	}
	return a, nil
}

func (r *AdminGormRepository) List(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	if err := r.db.WithContext(ctx).Order("id asc").Find(&admins).Error; err != nil {
		return []model.Admin{}, err
	}
	return admins, nil
}

func (r *AdminGormRepository) DeleteByID(ctx context.Context, adminID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Admin{}, adminID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
