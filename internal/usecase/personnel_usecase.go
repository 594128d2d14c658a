package usecase

import (
	"strings"
	"time"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/repository"
	"hr-inventory-backend/internal/security"

	"gorm.io/gorm"
)

type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignUpInput struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	UnitCode  string `json:"unitCode" validate:"required"`
	Phone     string `json:"phone"`
}

type CreatePersonnelInput struct {
	FirstName    string     `json:"firstName" validate:"required,min=2"`
	LastName     string     `json:"lastName" validate:"required,min=2"`
	Email        string     `json:"email" validate:"required,email"`
	Password     string     `json:"password" validate:"required,min=6"`
	Gender       string     `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone        string     `json:"phone"`
	Designation  string     `json:"designation"`
	Department   string     `json:"department"`
	UnitID       *uint      `json:"unit"`
	Role         rbac.Role  `json:"role" validate:"required,role"`
	EmployeeType string     `json:"employeeType" validate:"omitempty,oneof=permanent contract"`
	JoiningDate  *time.Time `json:"joiningDate"`
	SupervisorID *uint      `json:"supervisor"`
}

type UpdatePersonnelInput struct {
	FirstName    *string                `json:"firstName" validate:"omitempty,min=2"`
	LastName     *string                `json:"lastName" validate:"omitempty,min=2"`
	Gender       *string                `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone        *string                `json:"phone"`
	Designation  *string                `json:"designation"`
	Department   *string                `json:"department"`
	UnitID       *uint                  `json:"unit"`
	Role         *rbac.Role             `json:"role" validate:"omitempty,role"`
	EmployeeType *string                `json:"employeeType" validate:"omitempty,oneof=permanent contract"`
	JoiningDate  *time.Time             `json:"joiningDate"`
	SupervisorID *uint                  `json:"supervisor"`
	Status       *model.PersonnelStatus `json:"status" validate:"omitempty,oneof=active on_leave terminated inactive"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type AuthResult struct {
	Personnel    *model.Personnel `json:"personnel"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
}

type PersonnelUsecase struct {
	db     *gorm.DB
	tokens *security.TokenManager
	authz  *rbac.Authorizer
}

func NewPersonnelUsecase(db *gorm.DB, tokens *security.TokenManager, authz *rbac.Authorizer) *PersonnelUsecase {
	return &PersonnelUsecase{db: db, tokens: tokens, authz: authz}
}

func (u *PersonnelUsecase) SignIn(in SignInInput) (*AuthResult, error) {
	repo := repository.NewPersonnelRepository(u.db)

	// 1. Cari personnel berdasarkan email
	p, err := repo.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.Unauthenticated("User not found")
		}
		return nil, dbErr(err)
	}

	// 2. Bandingkan password
	if !security.CheckPassword(p.Password, in.Password) {
		return nil, apperror.Unauthenticated("Password incorrect")
	}
	if !p.IsActive() {
		return nil, apperror.Unauthenticated("Account is not active")
	}

	// 3. Terbitkan token, simpan refresh token (satu slot)
	return u.issue(repo, p)
}

func (u *PersonnelUsecase) SignUp(in SignUpInput) (*model.Personnel, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var created *model.Personnel
	err := u.db.Transaction(func(tx *gorm.DB) error {
		unit, err := repository.NewUnitRepository(tx).GetByCode(strings.ToUpper(strings.TrimSpace(in.UnitCode)))
		if err != nil {
			return lookupErr(err, "Unit not found")
		}
		if !unit.IsActive {
			return apperror.Validation("Unit is not active")
		}

		p := &model.Personnel{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     email,
			Phone:     in.Phone,
			Role:      rbac.RoleEmployee,
			UnitID:    unit.ID,
			Status:    model.PersonnelActive,
		}
		if err := u.insert(tx, p, in.Password); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, dbErr(err)
	}
	return u.Profile(created.ID)
}

// Refresh rotates both tokens when the presented refresh token is the one on file.
func (u *PersonnelUsecase) Refresh(refreshToken string) (*AuthResult, error) {
	id, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, apperror.Unauthenticated("Invalid refresh token")
	}

	repo := repository.NewPersonnelRepository(u.db)
	p, err := repo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.Unauthenticated("Invalid refresh token")
		}
		return nil, dbErr(err)
	}
	if !p.IsActive() || p.RefreshToken == "" || p.RefreshToken != refreshToken {
		return nil, apperror.Unauthenticated("Refresh token is expired or used")
	}
	return u.issue(repo, p)
}

func (u *PersonnelUsecase) Logout(actor *model.Personnel) error {
	if err := repository.NewPersonnelRepository(u.db).UpdateRefreshToken(actor.ID, ""); err != nil {
		return dbErr(err)
	}
	return nil
}

// Authenticate resolves an access token to a live, active personnel record.
func (u *PersonnelUsecase) Authenticate(accessToken string) (*model.Personnel, error) {
	if accessToken == "" {
		return nil, apperror.Unauthenticated("Unauthorized request")
	}
	id, err := u.tokens.ParseAccess(accessToken)
	if err != nil {
		return nil, apperror.Unauthenticated("Invalid access token")
	}

	p, err := repository.NewPersonnelRepository(u.db).FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.Unauthenticated("Invalid access token")
		}
		return nil, dbErr(err)
	}
	if !p.IsActive() {
		return nil, apperror.Unauthenticated("Account is not active")
	}
	return p.Sanitize(), nil
}

func (u *PersonnelUsecase) Profile(id uint) (*model.Personnel, error) {
	p, err := repository.NewPersonnelRepository(u.db).FindByID(id)
	if err != nil {
		return nil, lookupErr(err, "Personnel not found")
	}
	return p.Sanitize(), nil
}

func (u *PersonnelUsecase) ChangePassword(actor *model.Personnel, in ChangePasswordInput) error {
	repo := repository.NewPersonnelRepository(u.db)
	p, err := repo.FindByID(actor.ID)
	if err != nil {
		return lookupErr(err, "Personnel not found")
	}
	if !security.CheckPassword(p.Password, in.OldPassword) {
		return apperror.Validation("Old password is incorrect")
	}
	hash, err := security.HashPassword(in.NewPassword)
	if err != nil {
		return apperror.Internal("Failed to hash password", err)
	}
	if err := repo.UpdatePassword(p.ID, hash); err != nil {
		return dbErr(err)
	}
	return nil
}

func (u *PersonnelUsecase) Create(in CreatePersonnelInput, actor *model.Personnel) (*model.Personnel, error) {
	// 1. Tentukan unit tujuan sesuai peran pembuat
	unitID := actor.UnitID
	switch actor.Role {
	case rbac.RoleSuperAdmin:
		if in.UnitID == nil {
			return nil, apperror.Validation("Super Admin must specify a unit for the new personnel")
		}
		unitID = *in.UnitID
	default:
		if in.UnitID != nil && *in.UnitID != actor.UnitID {
			return nil, apperror.Forbidden("You can only create personnel in your own unit")
		}
		if in.Role == rbac.RoleSuperAdmin {
			return nil, apperror.Forbidden("Only a super admin can assign the super_admin role")
		}
	}

	var created *model.Personnel
	err := u.db.Transaction(func(tx *gorm.DB) error {
		// 2. Validasi unit dan atasan
		if _, err := repository.NewUnitRepository(tx).GetByID(unitID); err != nil {
			return lookupErr(err, "Unit not found")
		}
		if in.SupervisorID != nil {
			if _, err := repository.NewPersonnelRepository(tx).FindByID(*in.SupervisorID); err != nil {
				return lookupErr(err, "Supervisor not found")
			}
		}

		employeeType := in.EmployeeType
		if employeeType == "" {
			employeeType = "permanent"
		}
		p := &model.Personnel{
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        strings.ToLower(strings.TrimSpace(in.Email)),
			Gender:       in.Gender,
			Phone:        in.Phone,
			Designation:  in.Designation,
			Department:   in.Department,
			Role:         in.Role,
			UnitID:       unitID,
			Status:       model.PersonnelActive,
			SupervisorID: in.SupervisorID,
			EmployeeType: employeeType,
			JoiningDate:  in.JoiningDate,
		}
		// 3. Simpan dengan kode pegawai baru
		if err := u.insert(tx, p, in.Password); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, dbErr(err)
	}
	return u.Profile(created.ID)
}

// List returns the unit's personnel for viewers and only the caller for view_own holders.
func (u *PersonnelUsecase) List(actor *model.Personnel) ([]model.Personnel, error) {
	if !u.authz.Allowed(actor.Role, rbac.ResourceEmployee, rbac.ActionView) {
		self, err := u.Profile(actor.ID)
		if err != nil {
			return nil, err
		}
		return []model.Personnel{*self}, nil
	}

	list, err := repository.NewPersonnelRepository(u.db).List(scopeUnit(actor))
	if err != nil {
		return nil, dbErr(err)
	}
	for i := range list {
		list[i].Sanitize()
	}
	return list, nil
}

func (u *PersonnelUsecase) Get(id uint, actor *model.Personnel) (*model.Personnel, error) {
	if !u.authz.Allowed(actor.Role, rbac.ResourceEmployee, rbac.ActionView) && id != actor.ID {
		return nil, apperror.Forbidden("You can only view your own record")
	}
	p, err := u.Profile(id)
	if err != nil {
		return nil, err
	}
	if !inScope(scopeUnit(actor), p.UnitID) {
		return nil, apperror.Forbidden("Personnel does not belong to your unit")
	}
	return p, nil
}

// Update applies a partial edit. A change of role, unit or designation closes the
// current assignment into the service history.
func (u *PersonnelUsecase) Update(id uint, in UpdatePersonnelInput, actor *model.Personnel) (*model.Personnel, error) {
	scope := scopeUnit(actor)
	if scope != nil {
		if in.UnitID != nil && *in.UnitID != *scope {
			return nil, apperror.Forbidden("You can only assign personnel to your own unit")
		}
		if in.Role != nil && *in.Role == rbac.RoleSuperAdmin {
			return nil, apperror.Forbidden("Only a super admin can assign the super_admin role")
		}
	}

	err := u.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewPersonnelRepository(tx)
		p, err := repo.FindByID(id)
		if err != nil {
			return lookupErr(err, "Personnel not found")
		}
		if !inScope(scope, p.UnitID) {
			return apperror.Forbidden("Personnel does not belong to your unit")
		}

		if in.UnitID != nil && *in.UnitID != p.UnitID {
			if _, err := repository.NewUnitRepository(tx).GetByID(*in.UnitID); err != nil {
				return lookupErr(err, "Unit not found")
			}
		}
		if in.SupervisorID != nil {
			if *in.SupervisorID == p.ID {
				return apperror.Validation("Personnel cannot supervise themselves")
			}
			if _, err := repo.FindByID(*in.SupervisorID); err != nil {
				return lookupErr(err, "Supervisor not found")
			}
		}

		if assignmentChanged(p, in) {
			rec := closeAssignment(p, time.Now())
			if err := repo.AddServiceRecord(rec); err != nil {
				return err
			}
		}

		applyPersonnelUpdate(p, in)
		return repo.Update(p)
	})
	if err != nil {
		return nil, dbErr(err)
	}
	return u.Profile(id)
}

func (u *PersonnelUsecase) insert(tx *gorm.DB, p *model.Personnel, password string) error {
	repo := repository.NewPersonnelRepository(tx)
	exists, err := repo.ExistsByEmail(p.Email)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Conflict("Personnel with this email already exists")
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return apperror.Internal("Failed to hash password", err)
	}
	p.Password = hash

	code, err := repository.NewCounterRepository(tx).Mint(model.PrefixEmployee)
	if err != nil {
		return err
	}
	p.EmployeeCode = code

	if err := repo.Create(p); err != nil {
		if repository.IsDuplicate(err) {
			return apperror.Conflict("Personnel with this email already exists")
		}
		return err
	}
	return nil
}

func (u *PersonnelUsecase) issue(repo repository.PersonnelRepository, p *model.Personnel) (*AuthResult, error) {
	pair, err := u.tokens.Issue(p.ID, string(p.Role))
	if err != nil {
		return nil, apperror.Internal("Failed to issue tokens", err)
	}
	if err := repo.UpdateRefreshToken(p.ID, pair.RefreshToken); err != nil {
		return nil, dbErr(err)
	}
	return &AuthResult{
		Personnel:    p.Sanitize(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func assignmentChanged(p *model.Personnel, in UpdatePersonnelInput) bool {
	return (in.Role != nil && *in.Role != p.Role) ||
		(in.UnitID != nil && *in.UnitID != p.UnitID) ||
		(in.Designation != nil && *in.Designation != p.Designation)
}

// closeAssignment records the assignment held until now; it started where the
// previous history entry ended, or at joining/creation.
func closeAssignment(p *model.Personnel, now time.Time) *model.ServiceRecord {
	start := p.CreatedAt
	if p.JoiningDate != nil {
		start = *p.JoiningDate
	}
	if n := len(p.ServiceHistory); n > 0 && p.ServiceHistory[n-1].EndDate != nil {
		start = *p.ServiceHistory[n-1].EndDate
	}
	return &model.ServiceRecord{
		PersonnelID: p.ID,
		Designation: p.Designation,
		Role:        p.Role,
		UnitID:      p.UnitID,
		StartDate:   &start,
		EndDate:     &now,
	}
}

func applyPersonnelUpdate(p *model.Personnel, in UpdatePersonnelInput) {
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Designation != nil {
		p.Designation = *in.Designation
	}
	if in.Department != nil {
		p.Department = *in.Department
	}
	if in.UnitID != nil {
		p.UnitID = *in.UnitID
	}
	if in.Role != nil {
		p.Role = *in.Role
	}
	if in.EmployeeType != nil {
		p.EmployeeType = *in.EmployeeType
	}
	if in.JoiningDate != nil {
		p.JoiningDate = in.JoiningDate
	}
	if in.SupervisorID != nil {
		p.SupervisorID = in.SupervisorID
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
}
