package usecase

import (
	"strings"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/repository"

	"gorm.io/gorm"
)

type CreateUnitInput struct {
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code" validate:"required,max=32"`
	Location string `json:"location"`
}

type UpdateUnitInput struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Code     *string `json:"code" validate:"omitempty,min=1,max=32"`
	Location *string `json:"location"`
}

type UnitUsecase struct {
	db *gorm.DB
}

func NewUnitUsecase(db *gorm.DB) *UnitUsecase {
	return &UnitUsecase{db: db}
}

func (u *UnitUsecase) Create(in CreateUnitInput) (*model.Unit, error) {
	unit := &model.Unit{
		Name:     in.Name,
		Code:     strings.ToUpper(strings.TrimSpace(in.Code)),
		Location: in.Location,
		IsActive: true,
	}

	err := u.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewUnitRepository(tx)
		exists, err := repo.ExistsByCode(unit.Code)
		if err != nil {
			return err
		}
		if exists {
			return apperror.Conflict("Unit code already exists")
		}

		unit.UnitCode, err = repository.NewCounterRepository(tx).Mint(model.PrefixUnit)
		if err != nil {
			return err
		}
		if err := repo.Create(unit); err != nil {
			if repository.IsDuplicate(err) {
				return apperror.Conflict("Unit code already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, dbErr(err)
	}
	return unit, nil
}

func (u *UnitUsecase) Update(id uint, in UpdateUnitInput) (*model.Unit, error) {
	var unit *model.Unit
	err := u.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewUnitRepository(tx)
		var err error
		unit, err = repo.GetByID(id)
		if err != nil {
			return lookupErr(err, "Unit not found")
		}

		if in.Code != nil {
			code := strings.ToUpper(strings.TrimSpace(*in.Code))
			if code != unit.Code {
				exists, err := repo.ExistsByCode(code)
				if err != nil {
					return err
				}
				if exists {
					return apperror.Conflict("Unit code already exists")
				}
			}
			unit.Code = code
		}
		if in.Name != nil {
			unit.Name = *in.Name
		}
		if in.Location != nil {
			unit.Location = *in.Location
		}
		return repo.Update(unit)
	})
	if err != nil {
		return nil, dbErr(err)
	}
	return unit, nil
}

func (u *UnitUsecase) SetActive(id uint, active bool) (*model.Unit, error) {
	repo := repository.NewUnitRepository(u.db)
	if _, err := repo.GetByID(id); err != nil {
		return nil, lookupErr(err, "Unit not found")
	}
	if err := repo.SetActive(id, active); err != nil {
		return nil, dbErr(err)
	}
	return u.Get(id)
}

func (u *UnitUsecase) List(showInactive bool) ([]model.Unit, error) {
	units, err := repository.NewUnitRepository(u.db).GetAll(showInactive)
	if err != nil {
		return nil, dbErr(err)
	}
	return units, nil
}

func (u *UnitUsecase) Get(id uint) (*model.Unit, error) {
	unit, err := repository.NewUnitRepository(u.db).GetByID(id)
	if err != nil {
		return nil, lookupErr(err, "Unit not found")
	}
	return unit, nil
}
