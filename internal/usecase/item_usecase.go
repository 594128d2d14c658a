package usecase

import (
	"strings"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/repository"

	"gorm.io/gorm"
)

type CreateItemInput struct {
	Name          string             `json:"name" validate:"required"`
	Category      model.ItemCategory `json:"category" validate:"required,oneof=tools spare_parts consumables equipment furniture stationery"`
	UOM           string             `json:"uom" validate:"required"`
	MinStockLevel int                `json:"minStockLevel" validate:"gte=0"`
}

type UpdateItemInput struct {
	Name          *string             `json:"name" validate:"omitempty,min=1"`
	Category      *model.ItemCategory `json:"category" validate:"omitempty,oneof=tools spare_parts consumables equipment furniture stationery"`
	UOM           *string             `json:"uom" validate:"omitempty,min=1"`
	MinStockLevel *int                `json:"minStockLevel" validate:"omitempty,gte=0"`
	IsActive      *bool               `json:"isActive"`
}

type ItemUsecase struct {
	db *gorm.DB
}

func NewItemUsecase(db *gorm.DB) *ItemUsecase {
	return &ItemUsecase{db: db}
}

// Create catalogs a new item in the actor's unit with zero stock.
func (u *ItemUsecase) Create(in CreateItemInput, actor *model.Personnel) (*model.Item, error) {
	item := &model.Item{
		Name:          strings.TrimSpace(in.Name),
		Category:      in.Category,
		UOM:           in.UOM,
		MinStockLevel: in.MinStockLevel,
		UnitID:        actor.UnitID,
		CurrentStock:  0,
		IsActive:      true,
	}

	err := u.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewItemRepository(tx)
		exists, err := repo.ExistsByNameInUnit(item.Name, item.UnitID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.Conflict("Item with this name already exists in this unit")
		}

		item.ItemCode, err = repository.NewCounterRepository(tx).Mint(model.PrefixItem)
		if err != nil {
			return err
		}
		if err := repo.Create(item); err != nil {
			if repository.IsDuplicate(err) {
				return apperror.Conflict("Item with this name already exists in this unit")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, dbErr(err)
	}
	return u.Get(item.ID, scopeUnit(actor))
}

func (u *ItemUsecase) Update(id uint, in UpdateItemInput, actor *model.Personnel) (*model.Item, error) {
	scope := scopeUnit(actor)
	err := u.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewItemRepository(tx)
		item, err := repo.GetByID(id)
		if err != nil {
			return lookupErr(err, "Item not found")
		}
		if !inScope(scope, item.UnitID) {
			return apperror.Forbidden("Item does not belong to your unit")
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name != item.Name {
				exists, err := repo.ExistsByNameInUnit(name, item.UnitID)
				if err != nil {
					return err
				}
				if exists {
					return apperror.Conflict("Another item with this name already exists")
				}
			}
			item.Name = name
		}
		if in.Category != nil {
			item.Category = *in.Category
		}
		if in.UOM != nil {
			item.UOM = *in.UOM
		}
		if in.MinStockLevel != nil {
			item.MinStockLevel = *in.MinStockLevel
		}
		if in.IsActive != nil {
			item.IsActive = *in.IsActive
		}
		return repo.UpdateDetails(item)
	})
	if err != nil {
		return nil, dbErr(err)
	}
	return u.Get(id, scope)
}

func (u *ItemUsecase) SetActive(id uint, active bool, actor *model.Personnel) (*model.Item, error) {
	scope := scopeUnit(actor)
	if _, err := u.Get(id, scope); err != nil {
		return nil, err
	}
	if err := repository.NewItemRepository(u.db).SetActive(id, active); err != nil {
		return nil, dbErr(err)
	}
	return u.Get(id, scope)
}

// Get reads one item; a non-nil unit must own it.
func (u *ItemUsecase) Get(id uint, unitID *uint) (*model.Item, error) {
	item, err := repository.NewItemRepository(u.db).GetByID(id)
	if err != nil {
		return nil, lookupErr(err, "Item not found")
	}
	if !inScope(unitID, item.UnitID) {
		return nil, apperror.Forbidden("Item does not belong to your unit")
	}
	return item, nil
}
