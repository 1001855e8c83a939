package implementation

import (
	"context"
	"errors"

	"customer-notes-be/internal/entity"
	"customer-notes-be/internal/mapper"
	"customer-notes-be/internal/model"
	"customer-notes-be/internal/repository/contract"
	"customer-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) contract.CustomerRepository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mapper.NewCustomerMapper(),
	}
}

func (r *CustomerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	m := r.mapper.ToModel(customer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*customer = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *entity.Customer) error {
	m := r.mapper.ToModel(customer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*customer = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Customer{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CustomerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	var m model.Customer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CustomerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error) {
	var models []*model.Customer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CustomerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Customer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
