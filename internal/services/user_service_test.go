package services

import (
	"testing"

	"jewelry_shop/internal/auth"
	"jewelry_shop/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	createFunc          func(user *models.User) error
	getByIDFunc         func(id uint) (*models.User, error)
	getByTelegramIDFunc func(telegramID int64) (*models.User, error)
	updateFunc          func(user *models.User) error
}

func (m *mockUserRepository) Create(user *models.User) error { return m.createFunc(user) }
func (m *mockUserRepository) GetByID(id uint) (*models.User, error) {
	return m.getByIDFunc(id)
}
func (m *mockUserRepository) GetByTelegramID(telegramID int64) (*models.User, error) {
	return m.getByTelegramIDFunc(telegramID)
}
func (m *mockUserRepository) Update(user *models.User) error { return m.updateFunc(user) }
func (m *mockUserRepository) CountActive() (int64, error)    { return 0, nil }

func TestUserService_UpsertFromTelegram_CreatesNewUser(t *testing.T) {
	var created *models.User
	userRepo := &mockUserRepository{
		getByTelegramIDFunc: func(telegramID int64) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createFunc: func(user *models.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}

	svc := NewUserService(userRepo)
	user, err := svc.UpsertFromTelegram(&auth.InitDataUser{
		ID:        123456789,
		FirstName: "Aziza",
		Username:  "aziza_uz",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, int64(123456789), user.TelegramID)
	assert.Equal(t, "Aziza", user.FirstName)
	assert.Equal(t, models.LanguageUzbek, user.Language, "new users default to Uzbek")
	assert.True(t, user.IsActive)
}

func TestUserService_UpsertFromTelegram_RefreshesExisting(t *testing.T) {
	existing := &models.User{
		ID:         1,
		TelegramID: 123456789,
		FirstName:  "Old",
		Username:   "old_name",
		Language:   models.LanguageRussian,
		Phone:      "+998901234567",
	}
	userRepo := &mockUserRepository{
		getByTelegramIDFunc: func(telegramID int64) (*models.User, error) {
			return existing, nil
		},
		updateFunc: func(user *models.User) error { return nil },
	}

	svc := NewUserService(userRepo)
	user, err := svc.UpsertFromTelegram(&auth.InitDataUser{
		ID:        123456789,
		FirstName: "New",
		Username:  "new_name",
	})

	assert.NoError(t, err)
	assert.Equal(t, "New", user.FirstName)
	assert.Equal(t, "new_name", user.Username)
	// locally managed fields survive the refresh
	assert.Equal(t, models.LanguageRussian, user.Language)
	assert.Equal(t, "+998901234567", user.Phone)
}

func TestUserService_UpdateProfile(t *testing.T) {
	stored := &models.User{ID: 1, TelegramID: 123, FirstName: "Aziza", Language: models.LanguageUzbek}
	userRepo := &mockUserRepository{
		getByIDFunc: func(id uint) (*models.User, error) { return stored, nil },
		updateFunc:  func(user *models.User) error { return nil },
	}

	phone := "+998977654321"
	lang := models.LanguageRussian
	svc := NewUserService(userRepo)
	user, err := svc.UpdateProfile(1, ProfileUpdate{Phone: &phone, Language: &lang})

	assert.NoError(t, err)
	assert.Equal(t, phone, user.Phone)
	assert.Equal(t, lang, user.Language)
	// untouched fields keep their values
	assert.Equal(t, "Aziza", user.FirstName)
}

func TestUserService_UpdateProfile_RejectsUnknownLanguage(t *testing.T) {
	userRepo := &mockUserRepository{
		getByIDFunc: func(id uint) (*models.User, error) {
			return &models.User{ID: 1}, nil
		},
	}

	lang := "fr"
	svc := NewUserService(userRepo)
	_, err := svc.UpdateProfile(1, ProfileUpdate{Language: &lang})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_GetByTelegramID_NotFound(t *testing.T) {
	userRepo := &mockUserRepository{
		getByTelegramIDFunc: func(telegramID int64) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewUserService(userRepo)
	_, err := svc.GetByTelegramID(999)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_SetLanguage(t *testing.T) {
	stored := &models.User{ID: 1, TelegramID: 123, Language: models.LanguageUzbek}
	userRepo := &mockUserRepository{
		getByTelegramIDFunc: func(telegramID int64) (*models.User, error) { return stored, nil },
		getByIDFunc:         func(id uint) (*models.User, error) { return stored, nil },
		updateFunc:          func(user *models.User) error { return nil },
	}

	svc := NewUserService(userRepo)
	err := svc.SetLanguage(123, models.LanguageRussian)

	assert.NoError(t, err)
	assert.Equal(t, models.LanguageRussian, stored.Language)
}
