package services

import (
	"fmt"

	"github.com/rosterhq/roster-backend/internal/dto"
	"github.com/rosterhq/roster-backend/internal/models"
	"github.com/rosterhq/roster-backend/internal/schema"
	"gorm.io/gorm"
)

// AttributeService manages the operator-defined attribute schema.
type AttributeService struct {
	db *gorm.DB
}

func NewAttributeService(db *gorm.DB) *AttributeService {
	return &AttributeService{db: db}
}

// ListAttributes returns all definitions, most recently created first.
func (s *AttributeService) ListAttributes() ([]models.AttributeDefinition, error) {
	var defs []models.AttributeDefinition
	if err := s.db.Order("attribute_id DESC").Find(&defs).Error; err != nil {
		return nil, storeErr("list attributes", "", err)
	}
	return defs, nil
}

func (s *AttributeService) CreateAttribute(req *dto.AttributeRequest) (*models.AttributeDefinition, error) {
	attrType, err := schema.ParseAttributeType(req.AttributeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAttributeType, req.AttributeType)
	}

	def := models.AttributeDefinition{
		AttributeName: req.AttributeName,
		AttributeType: attrType,
		IsRequired:    req.IsRequired,
	}
	if err := s.db.Create(&def).Error; err != nil {
		return nil, storeErr("create attribute", "", err)
	}
	return &def, nil
}

// UpdateAttribute replaces all three mutable fields. There is no
// partial-field update.
func (s *AttributeService) UpdateAttribute(id uint, req *dto.AttributeRequest) (*models.AttributeDefinition, error) {
	attrType, err := schema.ParseAttributeType(req.AttributeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAttributeType, req.AttributeType)
	}

	result := s.db.Model(&models.AttributeDefinition{}).
		Where("attribute_id = ?", id).
		Updates(map[string]interface{}{
			"attribute_name": req.AttributeName,
			"attribute_type": attrType,
			"is_required":    req.IsRequired,
		})
	if result.Error != nil {
		return nil, storeErr("update attribute", "", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrAttributeNotFound
	}

	var def models.AttributeDefinition
	if err := s.db.First(&def, "attribute_id = ?", id).Error; err != nil {
		return nil, storeErr("update attribute", "reload", err)
	}
	return &def, nil
}

// DeleteAttribute removes a definition. Value rows referencing it are
// retained: they persist in user_attribute_values but drop out of joined
// reads (see UserService.GetUserValues).
func (s *AttributeService) DeleteAttribute(id uint) error {
	if err := s.db.Delete(&models.AttributeDefinition{}, "attribute_id = ?", id).Error; err != nil {
		return storeErr("delete attribute", "", err)
	}
	return nil
}
