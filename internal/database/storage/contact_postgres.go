package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/ContactsApp/internal/core/ports"
	"github.com/GoArmGo/ContactsApp/internal/domain"
	"gorm.io/gorm"
)

// ContactStorage реализует интерфейс ports.ContactStorage с использованием GORM
type ContactStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewContactStorage создает новый экземпляр ContactStorage
func NewContactStorage(db *gorm.DB, logger *slog.Logger) *ContactStorage {
	return &ContactStorage{db: db, logger: logger}
}

// Create сохраняет новый контакт в базе данных
func (s *ContactStorage) Create(ctx context.Context, contact *domain.Contact) error {
	start := time.Now()

	result := s.db.WithContext(ctx).Create(contact)
	if result.Error != nil {
		s.logger.Error("failed to create contact", "username", contact.Username, "error", result.Error)
		return fmt.Errorf("ошибка при сохранении контакта в БД: %w", result.Error)
	}

	s.logger.Info("contact created successfully",
		"contact_id", contact.ID,
		"username", contact.Username,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// FindByIDAndUsername получает контакт по id и владельцу.
// (nil, nil), если контакта нет или он принадлежит другому пользователю.
func (s *ContactStorage) FindByIDAndUsername(ctx context.Context, id int64, username string) (*domain.Contact, error) {
	var contact domain.Contact
	result := s.db.WithContext(ctx).First(&contact, "id = ? AND username = ?", id, username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to find contact", "contact_id", id, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении контакта по ID: %w", result.Error)
	}
	return &contact, nil
}

// Update полностью перезаписывает валидируемые поля контакта.
// Предикат включает владельца, поэтому проверка и запись атомарны
// в рамках одного UPDATE: чужую или исчезнувшую запись не тронем.
func (s *ContactStorage) Update(ctx context.Context, contact *domain.Contact) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("id = ? AND username = ?", contact.ID, contact.Username).
		Select("first_name", "last_name", "email", "phone").
		Updates(contact)
	if result.Error != nil {
		s.logger.Error("failed to update contact", "contact_id", contact.ID, "error", result.Error)
		return false, fmt.Errorf("ошибка при обновлении контакта: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete удаляет контакт по id и владельцу (немедленно, без soft delete).
func (s *ContactStorage) Delete(ctx context.Context, id int64, username string) (bool, error) {
	start := time.Now()

	result := s.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&domain.Contact{})
	if result.Error != nil {
		s.logger.Error("failed to delete contact", "contact_id", id, "error", result.Error)
		return false, fmt.Errorf("ошибка при удалении контакта: %w", result.Error)
	}

	s.logger.Info("contact deleted",
		"contact_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result.RowsAffected > 0, nil
}

// applyContactFilter навешивает фильтры списка на запрос.
// Фильтры комбинируются по AND; name сравнивается
// с first_name ИЛИ last_name как подстрока.
func applyContactFilter(query *gorm.DB, filter ports.ContactFilter) *gorm.DB {
	query = query.Where("username = ?", filter.Username)

	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		query = query.Where("(first_name LIKE ? OR last_name LIKE ?)", pattern, pattern)
	}
	if filter.Email != "" {
		query = query.Where("email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}
	return query
}

// List получает страницу контактов владельца с учетом фильтров
func (s *ContactStorage) List(ctx context.Context, filter ports.ContactFilter, page, limit int) ([]domain.Contact, error) {
	start := time.Now()

	offset := (page - 1) * limit
	var contacts []domain.Contact

	query := applyContactFilter(s.db.WithContext(ctx).Model(&domain.Contact{}), filter)
	result := query.
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&contacts)
	if result.Error != nil {
		s.logger.Error("failed to list contacts",
			"username", filter.Username,
			"page", page,
			"limit", limit,
			"error", result.Error,
		)
		return nil, fmt.Errorf("ошибка при получении списка контактов: %w", result.Error)
	}

	s.logger.Info("contacts listed successfully",
		"username", filter.Username,
		"page", page,
		"limit", limit,
		"count", len(contacts),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return contacts, nil
}

// Count считает контакты под тем же фильтром, что и List
func (s *ContactStorage) Count(ctx context.Context, filter ports.ContactFilter) (int64, error) {
	var total int64

	query := applyContactFilter(s.db.WithContext(ctx).Model(&domain.Contact{}), filter)
	if result := query.Count(&total); result.Error != nil {
		s.logger.Error("failed to count contacts", "username", filter.Username, "error", result.Error)
		return 0, fmt.Errorf("ошибка при подсчете контактов: %w", result.Error)
	}
	return total, nil
}
