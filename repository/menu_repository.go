package repository

import (
	"github.com/DonAdhyatma/fe-final-project/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// List filters by category and a name search, paginated. Empty filters mean
// everything.
func (r *MenuRepository) List(category, search string, page, limit int) ([]entity.Menu, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	q := r.DB.Model(&entity.Menu{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var menus []entity.Menu
	err := q.Order("category, name").Offset((page - 1) * limit).Limit(limit).Find(&menus).Error
	return menus, total, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	if err := r.DB.First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

func (r *MenuRepository) Update(menu *entity.Menu) error {
	return r.DB.Save(menu).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}

func (r *MenuRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).Update("status", status).Error
}

func (r *MenuRepository) SaveImage(id uint, data []byte, mimeType string) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).Updates(map[string]any{
		"image":      data,
		"image_type": mimeType,
		"image_size": int64(len(data)),
	}).Error
}
