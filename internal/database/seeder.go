package database

import (
	"fmt"
	"log/slog"
	"strings"

	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/repository"
	"hr-inventory-backend/internal/security"

	"gorm.io/gorm"
)

const (
	HQUnitCode = "HQ"
	hqUnitName = "Head Quarters"
)

// SeedAll creates the HQ unit and the first super admin. Running it again is a no-op.
func SeedAll(db *gorm.DB, adminEmail, adminPassword string, log *slog.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// 1. Seed Unit HQ
		unit, err := seedHQUnit(tx)
		if err != nil {
			return err
		}
		log.Info("unit ready", "code", unit.Code, "unitCode", unit.UnitCode)

		// 2. Seed Akun Super Admin pertama
		admin, created, err := seedSuperAdmin(tx, unit, adminEmail, adminPassword)
		if err != nil {
			return err
		}
		if created {
			log.Info("super admin created", "email", admin.Email, "employeeCode", admin.EmployeeCode)
		} else {
			log.Info("super admin already exists", "email", admin.Email)
		}
		return nil
	})
}

func seedHQUnit(tx *gorm.DB) (*model.Unit, error) {
	units := repository.NewUnitRepository(tx)
	unit, err := units.GetByCode(HQUnitCode)
	if err == nil {
		return unit, nil
	}
	if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("lookup HQ unit: %w", err)
	}

	code, err := repository.NewCounterRepository(tx).Mint(model.PrefixUnit)
	if err != nil {
		return nil, fmt.Errorf("mint unit code: %w", err)
	}
	unit = &model.Unit{UnitCode: code, Code: HQUnitCode, Name: hqUnitName, IsActive: true}
	if err := units.Create(unit); err != nil {
		return nil, fmt.Errorf("create HQ unit: %w", err)
	}
	return unit, nil
}

func seedSuperAdmin(tx *gorm.DB, unit *model.Unit, email, password string) (*model.Personnel, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	people := repository.NewPersonnelRepository(tx)
	existing, err := people.FindByEmail(email)
	if err == nil {
		return existing, false, nil
	}
	if !repository.IsNotFound(err) {
		return nil, false, fmt.Errorf("lookup super admin: %w", err)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	code, err := repository.NewCounterRepository(tx).Mint(model.PrefixEmployee)
	if err != nil {
		return nil, false, fmt.Errorf("mint employee code: %w", err)
	}

	admin := &model.Personnel{
		EmployeeCode: code,
		FirstName:    "Super",
		LastName:     "Admin",
		Email:        email,
		Password:     hash,
		Role:         rbac.RoleSuperAdmin,
		UnitID:       unit.ID,
		Status:       model.PersonnelActive,
		Designation:  "System Administrator",
	}
	if err := people.Create(admin); err != nil {
		return nil, false, fmt.Errorf("create super admin: %w", err)
	}
	return admin, true, nil
}
