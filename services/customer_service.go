package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hotel-admin/models"
)

type CustomerService struct {
	DB *gorm.DB
}

// NewCustomerService constructor for dependency injection
func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// CustomerPatch carries the fields of a partial update. Nil fields are left untouched.
type CustomerPatch struct {
	Name        *string
	ContactName *string
	Phone       *string
	Email       *string
	Address     *string
	State       *string
}

func (p CustomerPatch) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = strings.TrimSpace(*p.Name)
	}
	if p.ContactName != nil {
		fields["contact_name"] = strings.TrimSpace(*p.ContactName)
	}
	if p.Phone != nil {
		fields["phone"] = strings.TrimSpace(*p.Phone)
	}
	if p.Email != nil {
		fields["email"] = strings.TrimSpace(*p.Email)
	}
	if p.Address != nil {
		fields["address"] = *p.Address
	}
	if p.State != nil {
		fields["state"] = strings.TrimSpace(*p.State)
	}
	return fields
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return listAll[models.Customer](ctx, s.DB, "customers.list", "id ASC")
}

func (s *CustomerService) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	return getByID[models.Customer](ctx, s.DB, "customers.get", id)
}

// Create inserts the customer; GORM writes the generated ID back into it.
func (s *CustomerService) Create(ctx context.Context, customer *models.Customer) error {
	customer.ID = 0
	if strings.TrimSpace(customer.State) == "" {
		customer.State = models.CustomerActive
	}
	return createRecord(ctx, s.DB, "customers.create", customer)
}

func (s *CustomerService) Update(ctx context.Context, id uint, patch CustomerPatch) (*models.Customer, error) {
	return updateByID[models.Customer](ctx, s.DB, "customers.update", id, patch.fields())
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.Customer](ctx, s.DB, "customers.delete", id)
}
