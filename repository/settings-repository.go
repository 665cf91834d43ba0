package repository

import "encoding/json"

// TeamSettings is a singleton record driving authentication and branding.
type TeamSettings struct {
	TeamName      string `json:"teamName"`
	Season        string `json:"season"`
	CoachName     string `json:"coachName"`
	CoachPasscode string `json:"coachPasscode"`
	TeamColor     string `json:"teamColor"`
}

type TeamSettingsUpdate struct {
	TeamName      *string `json:"teamName"`
	Season        *string `json:"season"`
	CoachName     *string `json:"coachName"`
	CoachPasscode *string `json:"coachPasscode"`
	TeamColor     *string `json:"teamColor"`
}

var DefaultSettings = TeamSettings{
	TeamName:      "Stars FC",
	Season:        "Spring 2026",
	CoachName:     "Coach",
	CoachPasscode: "1234",
	TeamColor:     "#16a34a",
}

type SettingsRepository struct {
	store Store
}

func NewSettingsRepository(store Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

func (r *SettingsRepository) Get() (*TeamSettings, error) {
	data, ok, err := r.store.Get(KeySettings)
	if err != nil {
		return nil, err
	}
	if !ok {
		settings := DefaultSettings
		return &settings, nil
	}
	var settings TeamSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Update(update *TeamSettingsUpdate) (*TeamSettings, error) {
	settings, err := r.Get()
	if err != nil {
		return nil, err
	}
	if update.TeamName != nil {
		settings.TeamName = *update.TeamName
	}
	if update.Season != nil {
		settings.Season = *update.Season
	}
	if update.CoachName != nil {
		settings.CoachName = *update.CoachName
	}
	if update.CoachPasscode != nil {
		settings.CoachPasscode = *update.CoachPasscode
	}
	if update.TeamColor != nil {
		settings.TeamColor = *update.TeamColor
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	if err := r.store.Set(KeySettings, data); err != nil {
		return nil, err
	}
	return settings, nil
}

// GetAPIKey returns the stored remote assessment credential, empty when the
// coach has not configured one.
func (r *SettingsRepository) GetAPIKey() (string, error) {
	data, ok, err := r.store.Get(KeyAPIKey)
	if err != nil || !ok {
		return "", err
	}
	var key string
	if err := json.Unmarshal(data, &key); err != nil {
		return "", err
	}
	return key, nil
}

func (r *SettingsRepository) SetAPIKey(key string) error {
	data, err := json.Marshal(key)
	if err != nil {
		return err
	}
	return r.store.Set(KeyAPIKey, data)
}
