package mapper

import (
	"customer-notes-be/internal/entity"
	"customer-notes-be/internal/model"
)

type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	return &entity.Customer{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CustomerMapper) ToModel(c *entity.Customer) *model.Customer {
	if c == nil {
		return nil
	}
	return &model.Customer{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CustomerMapper) ToEntities(customers []*model.Customer) []*entity.Customer {
	entities := make([]*entity.Customer, len(customers))
	for i, c := range customers {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
