package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bitemeapp/biteme/internal/domain"
)

// Setting reads the value stored under key into out (a pointer), reporting
// whether the key exists. Values round-trip through JSON.
func (s *Store) Setting(ctx context.Context, key string, out any) (bool, error) {
	var record domain.Setting
	err := s.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("reading setting %q: %w", key, err)
	}

	if err := json.Unmarshal(record.Value, out); err != nil {
		return false, fmt.Errorf("decoding setting %q: %w", key, err)
	}
	return true, nil
}

// SetSetting writes a single key.
func (s *Store) SetSetting(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding setting %q: %w", key, err)
	}

	record := domain.Setting{Key: key, Value: raw}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("writing setting %q: %w", key, err)
	}
	return nil
}

// SetSettings writes several keys in one transaction, all or nothing. The
// catalog loader relies on this to replace its cached payload and version
// atomically.
func (s *Store) SetSettings(ctx context.Context, values map[string]any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			raw, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("encoding setting %q: %w", key, err)
			}
			record := domain.Setting{Key: key, Value: raw}
			if err := tx.Save(&record).Error; err != nil {
				return fmt.Errorf("writing setting %q: %w", key, err)
			}
		}
		return nil
	})
}

// DeleteSetting removes a key. Deleting an absent key is a no-op.
func (s *Store) DeleteSetting(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&domain.Setting{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("deleting setting %q: %w", key, err)
	}
	return nil
}
