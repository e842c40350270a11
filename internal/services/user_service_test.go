package services

import (
	"testing"
	"time"

	"github.com/rosterhq/roster-backend/internal/dto"
	"github.com/rosterhq/roster-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedAttributes creates one definition per type and returns them keyed by
// type name.
func seedAttributes(t *testing.T, svc *AttributeService) map[string]*models.AttributeDefinition {
	t.Helper()
	out := make(map[string]*models.AttributeDefinition)
	for name, typ := range map[string]string{
		"Full Name":       "text",
		"Graduation Year": "number",
		"Enrollment Date": "date",
	} {
		def, err := svc.CreateAttribute(&dto.AttributeRequest{
			AttributeName: name,
			AttributeType: typ,
			IsRequired:    typ == "number",
		})
		require.NoError(t, err)
		out[typ] = def
	}
	return out
}

func TestCreateUserStoresTypedValues(t *testing.T) {
	db := newTestDB(t)
	attrs := NewAttributeService(db)
	users := NewUserService(db)
	defs := seedAttributes(t, attrs)

	record, values, err := users.CreateUser([]dto.UserAttributeInput{
		{AttributeID: defs["text"].AttributeID, AttributeType: "text", Value: "Taro Yamada"},
		{AttributeID: defs["number"].AttributeID, AttributeType: "number", Value: "2027"},
		{AttributeID: defs["date"].AttributeID, AttributeType: "date", Value: "2026-04-01"},
	})
	require.NoError(t, err)
	assert.NotZero(t, record.UserID)
	assert.False(t, record.CreatedAt.IsZero())
	require.Len(t, values, 3)

	byAttr := make(map[uint]models.UserAttributeValue)
	for _, v := range values {
		byAttr[v.AttributeID] = v
	}

	text := byAttr[defs["text"].AttributeID]
	require.NotNil(t, text.ValueText)
	assert.Equal(t, "Taro Yamada", *text.ValueText)
	assert.Nil(t, text.ValueNumber)
	assert.Nil(t, text.ValueDate)

	number := byAttr[defs["number"].AttributeID]
	require.NotNil(t, number.ValueNumber)
	assert.Equal(t, float64(2027), *number.ValueNumber)
	assert.Nil(t, number.ValueText)
	assert.Nil(t, number.ValueDate)

	date := byAttr[defs["date"].AttributeID]
	require.NotNil(t, date.ValueDate)
	assert.True(t, date.ValueDate.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, date.ValueText)
	assert.Nil(t, date.ValueNumber)

	// joined read returns the same set
	fetched, err := users.GetUserValues(record.UserID)
	require.NoError(t, err)
	assert.Len(t, fetched, 3)
}

func TestCreateUserBlankValues(t *testing.T) {
	db := newTestDB(t)
	attrs := NewAttributeService(db)
	users := NewUserService(db)
	defs := seedAttributes(t, attrs)

	// blank form fields still produce one row per attribute: empty string
	// for text, null for number and date
	record, values, err := users.CreateUser([]dto.UserAttributeInput{
		{AttributeID: defs["text"].AttributeID, AttributeType: "text", Value: ""},
		{AttributeID: defs["number"].AttributeID, AttributeType: "number", Value: ""},
		{AttributeID: defs["date"].AttributeID, AttributeType: "date", Value: ""},
	})
	require.NoError(t, err)
	require.Len(t, values, 3)

	var rowCount int64
	db.Model(&models.UserAttributeValue{}).
		Where("user_id = ?", record.UserID).
		Count(&rowCount)
	assert.Equal(t, int64(3), rowCount)

	for _, v := range values {
		switch v.AttributeID {
		case defs["text"].AttributeID:
			require.NotNil(t, v.ValueText)
			assert.Equal(t, "", *v.ValueText)
		case defs["number"].AttributeID:
			assert.Nil(t, v.ValueNumber)
		case defs["date"].AttributeID:
			assert.Nil(t, v.ValueDate)
		}
	}
}

func TestCreateUserUnknownTypeRollsBack(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	_, _, err := users.CreateUser([]dto.UserAttributeInput{
		{AttributeID: 1, AttributeType: "boolean", Value: "true"},
	})
	assert.ErrorIs(t, err, ErrInvalidAttributeType)

	// the transaction rolled back: no orphan user record
	var count int64
	db.Model(&models.UserRecord{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateUserReplaceIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	attrs := NewAttributeService(db)
	users := NewUserService(db)
	defs := seedAttributes(t, attrs)

	record, _, err := users.CreateUser([]dto.UserAttributeInput{
		{AttributeID: defs["text"].AttributeID, AttributeType: "text", Value: "before"},
	})
	require.NoError(t, err)

	update := []dto.UserAttributeInput{
		{UserID: record.UserID, AttributeID: defs["text"].AttributeID, AttributeType: "text", Value: "after"},
		{UserID: record.UserID, AttributeID: defs["number"].AttributeID, AttributeType: "number", Value: "2028"},
	}

	for i := 0; i < 2; i++ {
		userID, values, err := users.UpdateUser(update)
		require.NoError(t, err)
		assert.Equal(t, record.UserID, userID)
		require.Len(t, values, 2, "replace must not accumulate rows (pass %d)", i+1)
	}

	values, err := users.GetUserValues(record.UserID)
	require.NoError(t, err)
	require.Len(t, values, 2)
	for _, v := range values {
		if v.AttributeID == defs["text"].AttributeID {
			require.NotNil(t, v.ValueText)
			assert.Equal(t, "after", *v.ValueText)
		}
	}
}

func TestUpdateUserInvalidArguments(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	_, _, err := users.UpdateUser(nil)
	assert.ErrorIs(t, err, ErrNoAttributes)

	_, _, err = users.UpdateUser([]dto.UserAttributeInput{
		{AttributeID: 1, AttributeType: "text", Value: "x"},
	})
	assert.ErrorIs(t, err, ErrNoUserID)

	// nothing was written on either failure
	var count int64
	db.Model(&models.UserAttributeValue{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteUserRemovesValuesAndRecord(t *testing.T) {
	db := newTestDB(t)
	attrs := NewAttributeService(db)
	users := NewUserService(db)
	defs := seedAttributes(t, attrs)

	record, _, err := users.CreateUser([]dto.UserAttributeInput{
		{AttributeID: defs["text"].AttributeID, AttributeType: "text", Value: "to be removed"},
		{AttributeID: defs["number"].AttributeID, AttributeType: "number", Value: "2029"},
	})
	require.NoError(t, err)

	require.NoError(t, users.DeleteUser(record.UserID))

	var valueCount, userCount int64
	db.Model(&models.UserAttributeValue{}).Where("user_id = ?", record.UserID).Count(&valueCount)
	db.Model(&models.UserRecord{}).Where("user_id = ?", record.UserID).Count(&userCount)
	assert.Zero(t, valueCount)
	assert.Zero(t, userCount)

	values, err := users.GetUserValues(record.UserID)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestDeleteUnknownUserIsNoOp(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	assert.NoError(t, users.DeleteUser(424242))
}

func TestGetAllUsersAndStats(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	for i := 0; i < 3; i++ {
		_, _, err := users.CreateUser(nil)
		require.NoError(t, err)
	}

	all, err := users.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	stats, err := users.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.NewToday)
}
