package services

import (
	"errors"

	"jewelry_shop/internal/auth"
	"jewelry_shop/internal/models"
	"jewelry_shop/internal/repository"

	"gorm.io/gorm"
)

type UserService interface {
	UpsertFromTelegram(profile *auth.InitDataUser) (*models.User, error)
	GetByTelegramID(telegramID int64) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error)
	SetLanguage(telegramID int64, language string) error
	CountActive() (int64, error)
}

// ProfileUpdate carries the fields a user may change. Nil means "keep".
// The Telegram ID is immutable and deliberately absent.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Language  *string
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// UpsertFromTelegram creates the user on first authentication and refreshes
// name and username on every subsequent one.
func (s *userService) UpsertFromTelegram(profile *auth.InitDataUser) (*models.User, error) {
	user, err := s.userRepo.GetByTelegramID(profile.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &models.User{
			TelegramID: profile.ID,
			FirstName:  profile.FirstName,
			LastName:   profile.LastName,
			Username:   profile.Username,
			Language:   models.LanguageUzbek,
			IsActive:   true,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, err
		}
		return user, nil
	}
	if err != nil {
		return nil, err
	}

	user.FirstName = profile.FirstName
	user.LastName = profile.LastName
	user.Username = profile.Username
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByTelegramID(telegramID int64) (*models.User, error) {
	user, err := s.userRepo.GetByTelegramID(telegramID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *userService) UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Language != nil {
		if *update.Language != models.LanguageUzbek && *update.Language != models.LanguageRussian {
			return nil, ErrInvalidInput
		}
		user.Language = *update.Language
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetLanguage is the bot's language-select path, keyed by Telegram ID.
func (s *userService) SetLanguage(telegramID int64, language string) error {
	user, err := s.GetByTelegramID(telegramID)
	if err != nil {
		return err
	}
	_, err = s.UpdateProfile(user.ID, ProfileUpdate{Language: &language})
	return err
}

// CountActive backs the admin dashboard badge.
func (s *userService) CountActive() (int64, error) {
	return s.userRepo.CountActive()
}
