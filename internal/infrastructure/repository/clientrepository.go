package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/infrastructure/persistence/mappers"
	"shieldtrack/internal/infrastructure/persistence/models"
	db "shieldtrack/internal/shared/db"
	"shieldtrack/internal/shared/errors"
)

// allowedClientOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedClientOrderByFields = map[string]bool{
	"id":         true,
	"sid":        true,
	"name":       true,
	"tenant_id":  true,
	"created_at": true,
	"updated_at": true,
}

type ClientRepository struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{
		db:     db,
		mapper: mappers.NewClientMapper(),
	}
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ClientModel{}).
		Where("id = ?", model.ID).
		Select("name", "tenant_id", "is_active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}

	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("client not found")
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ClientRepository) FindBySID(ctx context.Context, sid string) (*client.Client, error) {
	var model models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("client not found")
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ClientRepository) FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*client.Client, error) {
	var model models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(scopeClients(scope)).
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		// Out-of-scope rows are indistinguishable from missing ones.
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("client not found")
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ClientModel{}).Scopes(scopeClients(filter.Scope))

	if filter.Name != nil {
		query = query.Where("name LIKE ?", "%"+*filter.Name+"%")
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query = applyOrder(query, filter.SortBy, filter.SortOrder, allowedClientOrderByFields)
	query = query.Limit(filter.Limit()).Offset(filter.Offset())

	var clientModels []models.ClientModel
	if err := query.Find(&clientModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*client.Client, len(clientModels))
	for i, model := range clientModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		clients[i] = c
	}

	return clients, total, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ClientModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("client not found")
	}
	return nil
}

// applyOrder applies sorting with whitelist validation to prevent SQL
// injection. Shared by every repository in this package.
func applyOrder(query *gorm.DB, sortBy, sortOrder string, allowed map[string]bool) *gorm.DB {
	field := strings.ToLower(sortBy)
	if field != "" && allowed[field] {
		order := strings.ToUpper(sortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		return query.Order(field + " " + order)
	}
	return query.Order("created_at DESC")
}
