package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/ContactsApp/internal/domain"
	"gorm.io/gorm"
)

// AddressStorage реализует интерфейс ports.AddressStorage с использованием GORM
type AddressStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewAddressStorage создает новый экземпляр AddressStorage
func NewAddressStorage(db *gorm.DB, logger *slog.Logger) *AddressStorage {
	return &AddressStorage{db: db, logger: logger}
}

// Create сохраняет новый адрес. Внешний ключ contact_id -> contacts
// гарантирует, что адрес не появится под удаленным контактом.
func (s *AddressStorage) Create(ctx context.Context, address *domain.Address) error {
	start := time.Now()

	result := s.db.WithContext(ctx).Create(address)
	if result.Error != nil {
		s.logger.Error("failed to create address", "contact_id", address.ContactID, "error", result.Error)
		return fmt.Errorf("ошибка при сохранении адреса в БД: %w", result.Error)
	}

	s.logger.Info("address created successfully",
		"address_id", address.ID,
		"contact_id", address.ContactID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// FindByIDAndContactID получает адрес по id и contact_id.
// (nil, nil), если адреса под этим контактом нет.
func (s *AddressStorage) FindByIDAndContactID(ctx context.Context, id, contactID int64) (*domain.Address, error) {
	var address domain.Address
	result := s.db.WithContext(ctx).First(&address, "id = ? AND contact_id = ?", id, contactID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to find address", "address_id", id, "contact_id", contactID, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении адреса по ID: %w", result.Error)
	}
	return &address, nil
}

// Update полностью перезаписывает поля адреса под предикатом (id, contact_id).
func (s *AddressStorage) Update(ctx context.Context, address *domain.Address) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&domain.Address{}).
		Where("id = ? AND contact_id = ?", address.ID, address.ContactID).
		Select("street", "city", "province", "country", "postal_code").
		Updates(address)
	if result.Error != nil {
		s.logger.Error("failed to update address", "address_id", address.ID, "error", result.Error)
		return false, fmt.Errorf("ошибка при обновлении адреса: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete удаляет адрес по id и contact_id
func (s *AddressStorage) Delete(ctx context.Context, id, contactID int64) (bool, error) {
	start := time.Now()

	result := s.db.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		Delete(&domain.Address{})
	if result.Error != nil {
		s.logger.Error("failed to delete address", "address_id", id, "error", result.Error)
		return false, fmt.Errorf("ошибка при удалении адреса: %w", result.Error)
	}

	s.logger.Info("address deleted",
		"address_id", id,
		"contact_id", contactID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result.RowsAffected > 0, nil
}

// ListByContactID получает все адреса контакта (без пагинации)
func (s *AddressStorage) ListByContactID(ctx context.Context, contactID int64) ([]domain.Address, error) {
	var addresses []domain.Address
	result := s.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("id").
		Find(&addresses)
	if result.Error != nil {
		s.logger.Error("failed to list addresses", "contact_id", contactID, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении списка адресов: %w", result.Error)
	}
	return addresses, nil
}
