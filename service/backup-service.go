package service

import (
	"encoding/json"

	"pitchside/metrics"
	"pitchside/repository"
)

type BackupService struct {
	store repository.Store
}

func NewBackupService(store repository.Store) *BackupService {
	return &BackupService{store: store}
}

// Export snapshots every backup key into a single JSON document. Keys with no
// stored value are omitted so an import reproduces the store exactly.
func (e *BackupService) Export() (map[string]json.RawMessage, error) {
	document := make(map[string]json.RawMessage)
	for _, key := range repository.BackupKeys {
		value, ok, err := e.store.Get(key)
		if err != nil {
			return nil, err
		}
		if ok {
			document[key] = json.RawMessage(value)
		}
	}
	metrics.BackupCounter.WithLabelValues("export").Inc()
	return document, nil
}

// Import overwrites the backup keys wholesale. Only known keys are applied;
// no validation beyond JSON parsing is performed on the snapshots.
func (e *BackupService) Import(document map[string]json.RawMessage) error {
	for _, key := range repository.BackupKeys {
		value, ok := document[key]
		if !ok {
			continue
		}
		if err := e.store.Set(key, value); err != nil {
			return err
		}
	}
	metrics.BackupCounter.WithLabelValues("import").Inc()
	return nil
}
