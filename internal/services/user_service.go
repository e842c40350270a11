package services

import (
	"fmt"
	"time"

	"github.com/rosterhq/roster-backend/internal/dto"
	"github.com/rosterhq/roster-backend/internal/models"
	"github.com/rosterhq/roster-backend/internal/schema"
	"gorm.io/gorm"
)

// UserService composes the user_records and user_attribute_values tables
// into user-centric operations. Multi-step mutations run inside a store
// transaction, so a failed step never leaves a user half written.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetAllUsers() ([]models.UserRecord, error) {
	var users []models.UserRecord
	if err := s.db.Find(&users).Error; err != nil {
		return nil, storeErr("list users", "", err)
	}
	return users, nil
}

// GetUserValues returns the user's value rows joined with their attribute
// definitions. The join is inner: a row whose definition was deleted still
// exists in the table but does not appear here.
func (s *UserService) GetUserValues(userID uint) ([]models.UserAttributeValue, error) {
	var values []models.UserAttributeValue
	err := s.db.InnerJoins("Attribute").
		Where("user_attribute_values.user_id = ?", userID).
		Order("user_attribute_values.attribute_id").
		Find(&values).Error
	if err != nil {
		return nil, storeErr("get user values", "", err)
	}
	return values, nil
}

// CreateUser inserts an empty user record and one value row per input, all
// in one transaction. Returns the record together with its freshly read
// values so the caller can render without a separate fetch.
func (s *UserService) CreateUser(inputs []dto.UserAttributeInput) (*models.UserRecord, []models.UserAttributeValue, error) {
	var record models.UserRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return storeErr("create user", "insert record", err)
		}
		rows, err := buildValueRows(record.UserID, inputs)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return storeErr("create user", "insert values", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	values, err := s.GetUserValues(record.UserID)
	if err != nil {
		return nil, nil, err
	}
	return &record, values, nil
}

// UpdateUser fully replaces the user's value rows: delete all, insert all.
// The target user is derived from the first input element. Replaying the
// same input set is idempotent.
func (s *UserService) UpdateUser(inputs []dto.UserAttributeInput) (uint, []models.UserAttributeValue, error) {
	if len(inputs) == 0 {
		return 0, nil, ErrNoAttributes
	}
	userID := inputs[0].UserID
	if userID == 0 {
		return 0, nil, ErrNoUserID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserAttributeValue{}).Error; err != nil {
			return storeErr("update user", "delete values", err)
		}
		rows, err := buildValueRows(userID, inputs)
		if err != nil {
			return err
		}
		if err := tx.Create(&rows).Error; err != nil {
			return storeErr("update user", "insert values", err)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	values, err := s.GetUserValues(userID)
	if err != nil {
		return 0, nil, err
	}
	return userID, values, nil
}

// DeleteUser removes the user's value rows and the record itself in one
// transaction. Deleting an unknown id is a no-op success.
func (s *UserService) DeleteUser(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserAttributeValue{}).Error; err != nil {
			return storeErr("delete user", "delete values", err)
		}
		if err := tx.Delete(&models.UserRecord{}, "user_id = ?", userID).Error; err != nil {
			return storeErr("delete user", "delete record", err)
		}
		return nil
	})
}

// Stats backs the console dashboard counters.
func (s *UserService) Stats() (*dto.StatsResponse, error) {
	var stats dto.StatsResponse
	if err := s.db.Model(&models.UserRecord{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, storeErr("user stats", "", err)
	}
	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	if err := s.db.Model(&models.UserRecord{}).
		Where("created_at >= ?", midnight).
		Count(&stats.NewToday).Error; err != nil {
		return nil, storeErr("user stats", "", err)
	}
	return &stats, nil
}

// buildValueRows dispatches each raw input value into the typed column
// matching its declared attribute type. An unrecognized type aborts the
// whole batch.
func buildValueRows(userID uint, inputs []dto.UserAttributeInput) ([]models.UserAttributeValue, error) {
	rows := make([]models.UserAttributeValue, 0, len(inputs))
	for _, in := range inputs {
		attrType, err := schema.ParseAttributeType(in.AttributeType)
		if err != nil {
			return nil, fmt.Errorf("%w: %q for attribute %d", ErrInvalidAttributeType, in.AttributeType, in.AttributeID)
		}
		v := attrType.BindValue(in.Value)
		rows = append(rows, models.UserAttributeValue{
			UserID:      userID,
			AttributeID: in.AttributeID,
			ValueText:   v.Text,
			ValueNumber: v.Number,
			ValueDate:   v.Date,
		})
	}
	return rows, nil
}
