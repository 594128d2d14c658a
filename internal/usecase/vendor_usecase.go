package usecase

import (
	"strings"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/repository"

	"gorm.io/gorm"
)

type CreateVendorInput struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

type UpdateVendorInput struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Contact *string `json:"contact"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

type VendorUsecase struct {
	db *gorm.DB
}

func NewVendorUsecase(db *gorm.DB) *VendorUsecase {
	return &VendorUsecase{db: db}
}

// Create registers a vendor in the actor's own unit.
func (u *VendorUsecase) Create(in CreateVendorInput, actor *model.Personnel) (*model.Vendor, error) {
	vendor := &model.Vendor{
		Name:     strings.TrimSpace(in.Name),
		Contact:  in.Contact,
		Phone:    in.Phone,
		Email:    in.Email,
		Address:  in.Address,
		UnitID:   actor.UnitID,
		IsActive: true,
	}

	repo := repository.NewVendorRepository(u.db)
	exists, err := repo.ExistsByNameInUnit(vendor.Name, vendor.UnitID)
	if err != nil {
		return nil, dbErr(err)
	}
	if exists {
		return nil, apperror.Conflict("Vendor with this name already exists in this unit")
	}
	if err := repo.Create(vendor); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperror.Conflict("Vendor with this name already exists in this unit")
		}
		return nil, dbErr(err)
	}
	return u.Get(vendor.ID, actor)
}

func (u *VendorUsecase) Update(id uint, in UpdateVendorInput, actor *model.Personnel) (*model.Vendor, error) {
	repo := repository.NewVendorRepository(u.db)
	vendor, err := u.Get(id, actor)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name != vendor.Name {
			exists, err := repo.ExistsByNameInUnit(name, vendor.UnitID)
			if err != nil {
				return nil, dbErr(err)
			}
			if exists {
				return nil, apperror.Conflict("Another vendor with this name already exists")
			}
		}
		vendor.Name = name
	}
	if in.Contact != nil {
		vendor.Contact = *in.Contact
	}
	if in.Phone != nil {
		vendor.Phone = *in.Phone
	}
	if in.Email != nil {
		vendor.Email = *in.Email
	}
	if in.Address != nil {
		vendor.Address = *in.Address
	}

	if err := repo.Update(vendor); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperror.Conflict("Another vendor with this name already exists")
		}
		return nil, dbErr(err)
	}
	return u.Get(id, actor)
}

func (u *VendorUsecase) SetActive(id uint, active bool, actor *model.Personnel) (*model.Vendor, error) {
	if _, err := u.Get(id, actor); err != nil {
		return nil, err
	}
	if err := repository.NewVendorRepository(u.db).SetActive(id, active); err != nil {
		return nil, dbErr(err)
	}
	return u.Get(id, actor)
}

func (u *VendorUsecase) List(actor *model.Personnel, showInactive bool) ([]model.Vendor, error) {
	vendors, err := repository.NewVendorRepository(u.db).GetAll(scopeUnit(actor), showInactive)
	if err != nil {
		return nil, dbErr(err)
	}
	return vendors, nil
}

func (u *VendorUsecase) Get(id uint, actor *model.Personnel) (*model.Vendor, error) {
	vendor, err := repository.NewVendorRepository(u.db).GetByID(id)
	if err != nil {
		return nil, lookupErr(err, "Vendor not found")
	}
	if !inScope(scopeUnit(actor), vendor.UnitID) {
		return nil, apperror.Forbidden("Vendor does not belong to your unit")
	}
	return vendor, nil
}
