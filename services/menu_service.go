package services

import (
	"errors"

	"github.com/DonAdhyatma/fe-final-project/entity"
	"github.com/DonAdhyatma/fe-final-project/repository"
)

var (
	ErrInvalidCategory   = errors.New("category must be foods, beverages or desserts")
	ErrInvalidMenuStatus = errors.New("status must be active, inactive or out_of_stock")
	ErrNegativePrice     = errors.New("price must not be negative")
	ErrImageTooLarge     = errors.New("image exceeds 5MB")
	ErrImageType         = errors.New("image must be jpeg, png or webp")
)

// Image upload limits, matching what the catalog UI accepts.
const MaxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuIn struct {
	Name        string `json:"name" binding:"required,min=2"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price"`
}

// ValidateMenuIn checks the fields shared by create and update.
func ValidateMenuIn(in *MenuIn) error {
	if !ValidCategory(in.Category) {
		return ErrInvalidCategory
	}
	if in.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func ValidCategory(c string) bool {
	switch c {
	case entity.CategoryFoods, entity.CategoryBeverages, entity.CategoryDesserts:
		return true
	}
	return false
}

func ValidMenuStatus(s string) bool {
	switch s {
	case entity.MenuStatusActive, entity.MenuStatusInactive, entity.MenuStatusOutOfStock:
		return true
	}
	return false
}

func (s *MenuService) List(category, search string, page, limit int) ([]entity.Menu, int64, error) {
	return s.Repo.List(category, search, page, limit)
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(in *MenuIn) (*entity.Menu, error) {
	if err := ValidateMenuIn(in); err != nil {
		return nil, err
	}
	menu := &entity.Menu{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Status:      entity.MenuStatusActive,
	}
	if err := s.Repo.Create(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Update(id uint, in *MenuIn) (*entity.Menu, error) {
	if err := ValidateMenuIn(in); err != nil {
		return nil, err
	}
	menu, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	menu.Name = in.Name
	menu.Description = in.Description
	menu.Category = in.Category
	menu.Price = in.Price
	if err := s.Repo.Update(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *MenuService) UpdateStatus(id uint, status string) error {
	if !ValidMenuStatus(status) {
		return ErrInvalidMenuStatus
	}
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.UpdateStatus(id, status)
}

func (s *MenuService) SaveImage(id uint, data []byte, mimeType string) error {
	if len(data) > MaxImageSize {
		return ErrImageTooLarge
	}
	if !allowedImageTypes[mimeType] {
		return ErrImageType
	}
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.SaveImage(id, data, mimeType)
}
