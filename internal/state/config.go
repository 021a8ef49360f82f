package state

import "github.com/glfs/glfs-client/internal/api"

// ConfigStore mirrors the last configuration record synchronised with the
// backend. The record is only ever replaced as a whole.
type ConfigStore interface {
	Record() (api.ConfigRecord, bool)
	Replace(api.ConfigRecord)
}

type configStore struct {
	record api.ConfigRecord
	loaded bool
}

func NewConfigStore() ConfigStore {
	return &configStore{}
}

func (s *configStore) Record() (api.ConfigRecord, bool) {
	return s.record, s.loaded
}

func (s *configStore) Replace(record api.ConfigRecord) {
	s.record = record.Normalized()
	s.loaded = true
}
