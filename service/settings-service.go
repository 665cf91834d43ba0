package service

import (
	"pitchside/repository"
)

type SettingsService struct {
	settingsRepository *repository.SettingsRepository
}

func NewSettingsService(store repository.Store) *SettingsService {
	return &SettingsService{
		settingsRepository: repository.NewSettingsRepository(store),
	}
}

func (e *SettingsService) GetSettings() (*repository.TeamSettings, error) {
	return e.settingsRepository.Get()
}

func (e *SettingsService) UpdateSettings(update *repository.TeamSettingsUpdate) (*repository.TeamSettings, error) {
	return e.settingsRepository.Update(update)
}

// CheckPasscode compares the submitted PIN against the configured one.
func (e *SettingsService) CheckPasscode(pin string) (bool, error) {
	settings, err := e.settingsRepository.Get()
	if err != nil {
		return false, err
	}
	return pin != "" && pin == settings.CoachPasscode, nil
}

func (e *SettingsService) SetAPIKey(key string) error {
	return e.settingsRepository.SetAPIKey(key)
}

func (e *SettingsService) HasAPIKey() (bool, error) {
	key, err := e.settingsRepository.GetAPIKey()
	if err != nil {
		return false, err
	}
	return key != "", nil
}
