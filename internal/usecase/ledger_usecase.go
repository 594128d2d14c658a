package usecase

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/notify"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/repository"

	"gorm.io/gorm"
)

type StockInInput struct {
	ItemID   uint   `json:"item" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	VendorID *uint  `json:"vendor"`
	Remarks  string `json:"remarks"`
}

type StockRequestInput struct {
	ItemID   uint   `json:"item" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Purpose  string `json:"purpose" validate:"required"`
	Remarks  string `json:"remarks"`
}

type RejectStockRequestInput struct {
	RejectionReason string `json:"rejectionReason" validate:"required"`
}

type StockReturnInput struct {
	ItemID       uint               `json:"item" validate:"required"`
	Quantity     int                `json:"quantity" validate:"required,min=1"`
	ReturnedByID uint               `json:"returnedBy" validate:"required"`
	ReturnReason model.ReturnReason `json:"returnReason" validate:"required,oneof=damaged excess"`
	Remarks      string             `json:"remarks"`
}

type StockHistoryQuery struct {
	Type      string `query:"type" validate:"omitempty,oneof=in out return"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// StockHistory holds only the lists selected by the query type.
type StockHistory struct {
	StockIn      *[]model.StockIn     `json:"stockIn,omitempty"`
	StockOut     *[]model.StockOut    `json:"stockOut,omitempty"`
	StockReturns *[]model.StockReturn `json:"stockReturns,omitempty"`
}

// LedgerUsecase owns every operation that moves item stock.
type LedgerUsecase struct {
	db       *gorm.DB
	notifier notify.Notifier
	log      *slog.Logger
	pending  sync.WaitGroup
}

func NewLedgerUsecase(db *gorm.DB, notifier notify.Notifier, log *slog.Logger) *LedgerUsecase {
	return &LedgerUsecase{db: db, notifier: notifier, log: log}
}

// StockIn receives goods into an item of the given unit (nil: any unit).
func (u *LedgerUsecase) StockIn(in StockInInput, operator *model.Personnel, unitID *uint) (*model.StockIn, error) {
	var receipt model.StockIn
	err := u.db.Transaction(func(tx *gorm.DB) error {
		// 1. Validasi item dan unit
		item, err := u.itemInUnit(tx, in.ItemID, unitID)
		if err != nil {
			return err
		}
		if in.VendorID != nil {
			vendor, err := repository.NewVendorRepository(tx).GetByID(*in.VendorID)
			if err != nil {
				return lookupErr(err, "Vendor not found")
			}
			if vendor.UnitID != item.UnitID {
				return apperror.Forbidden("Vendor does not belong to your unit")
			}
		}

		// 2. Catat penerimaan dengan nomor baru
		code, err := repository.NewCounterRepository(tx).Mint(model.PrefixStockIn)
		if err != nil {
			return err
		}
		receipt = model.StockIn{
			ReceiptCode:  code,
			ItemID:       item.ID,
			Quantity:     in.Quantity,
			VendorID:     in.VendorID,
			ReceivedByID: operator.ID,
			UnitID:       item.UnitID,
			Remarks:      in.Remarks,
		}
		if err := repository.NewStockRepository(tx).CreateStockIn(&receipt); err != nil {
			return err
		}

		// 3. Tambah stok
		return repository.NewItemRepository(tx).IncrementStock(item.ID, in.Quantity)
	})
	if err != nil {
		return nil, dbErr(err)
	}

	out, err := repository.NewStockRepository(u.db).GetStockIn(receipt.ID)
	if err != nil {
		return nil, dbErr(err)
	}
	return out, nil
}

func (u *LedgerUsecase) CreateStockRequest(in StockRequestInput, requester *model.Personnel, unitID *uint) (*model.StockRequest, error) {
	var req model.StockRequest
	err := u.db.Transaction(func(tx *gorm.DB) error {
		item, err := u.itemInUnit(tx, in.ItemID, unitID)
		if err != nil {
			return err
		}
		if !item.IsActive {
			return apperror.Validation("Item is not active")
		}

		code, err := repository.NewCounterRepository(tx).Mint(model.PrefixRequest)
		if err != nil {
			return err
		}
		req = model.StockRequest{
			RequestCode:   code,
			ItemID:        item.ID,
			Quantity:      in.Quantity,
			Purpose:       in.Purpose,
			RequestedByID: requester.ID,
			UnitID:        item.UnitID,
			Status:        model.StockRequestPending,
			Remarks:       in.Remarks,
		}
		return repository.NewStockRequestRepository(tx).Create(&req)
	})
	if err != nil {
		return nil, dbErr(err)
	}
	return u.GetStockRequest(req.ID)
}

func (u *LedgerUsecase) MyStockRequests(requester *model.Personnel) ([]model.StockRequest, error) {
	list, err := repository.NewStockRequestRepository(u.db).GetByRequester(requester.ID, requester.UnitID)
	if err != nil {
		return nil, dbErr(err)
	}
	return list, nil
}

func (u *LedgerUsecase) ListStockRequests(unitID *uint, status string) ([]model.StockRequest, error) {
	list, err := repository.NewStockRequestRepository(u.db).GetAll(unitID, status)
	if err != nil {
		return nil, dbErr(err)
	}
	return list, nil
}

func (u *LedgerUsecase) GetStockRequest(id uint) (*model.StockRequest, error) {
	req, err := repository.NewStockRequestRepository(u.db).GetByID(id)
	if err != nil {
		return nil, lookupErr(err, "Stock request not found")
	}
	return req, nil
}

// ApproveStockRequest issues the requested stock. The status flip, the StockOut
// row and the decrement commit together or not at all.
func (u *LedgerUsecase) ApproveStockRequest(id uint, operator *model.Personnel, unitID *uint) (*model.StockRequest, error) {
	var item *model.Item
	err := u.db.Transaction(func(tx *gorm.DB) error {
		requests := repository.NewStockRequestRepository(tx)
		items := repository.NewItemRepository(tx)

		// 1. Prasyarat: request ada, unit cocok, masih pending, stok cukup
		req, err := requests.GetByID(id)
		if err != nil {
			return lookupErr(err, "Stock request not found")
		}
		if !inScope(unitID, req.UnitID) {
			return apperror.Forbidden("Request does not belong to your unit")
		}
		if req.Status != model.StockRequestPending {
			return apperror.InvalidState(fmt.Sprintf("Request already %s", req.Status))
		}
		item, err = items.GetByID(req.ItemID)
		if err != nil {
			return lookupErr(err, "Item not found")
		}
		if item.CurrentStock < req.Quantity {
			return apperror.InsufficientStock(item.CurrentStock, req.Quantity)
		}

		// 2. Ubah status hanya jika masih pending
		ok, err := requests.MarkApproved(req.ID, operator.ID, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return apperror.InvalidState("Request already reviewed")
		}

		// 3. Kurangi stok hanya jika masih cukup
		ok, err = items.DecrementStock(item.ID, req.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			fresh, err := items.GetByID(item.ID)
			if err != nil {
				return err
			}
			return apperror.InsufficientStock(fresh.CurrentStock, req.Quantity)
		}

		// 4. Catat barang keluar
		code, err := repository.NewCounterRepository(tx).Mint(model.PrefixStockOut)
		if err != nil {
			return err
		}
		requestID := req.ID
		out := model.StockOut{
			ReceiptCode:    code,
			ItemID:         item.ID,
			Quantity:       req.Quantity,
			Purpose:        req.Purpose,
			IssuedToID:     req.RequestedByID,
			IssuedByID:     operator.ID,
			StockRequestID: &requestID,
			UnitID:         req.UnitID,
			Remarks:        "Approved from request " + req.RequestCode,
		}
		if err := repository.NewStockRepository(tx).CreateStockOut(&out); err != nil {
			if repository.IsDuplicate(err) {
				return apperror.InvalidState("Request already issued")
			}
			return err
		}

		item.CurrentStock -= req.Quantity
		return nil
	})
	if err != nil {
		return nil, dbErr(err)
	}

	if item.LowStock() {
		u.alertLowStock(*item)
	}
	return u.GetStockRequest(id)
}

func (u *LedgerUsecase) RejectStockRequest(id uint, operator *model.Personnel, unitID *uint, reason string) (*model.StockRequest, error) {
	if reason == "" {
		return nil, apperror.Validation("Rejection reason is required")
	}

	repo := repository.NewStockRequestRepository(u.db)
	req, err := repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, "Stock request not found")
	}
	if !inScope(unitID, req.UnitID) {
		return nil, apperror.Forbidden("Request does not belong to your unit")
	}
	if req.Status != model.StockRequestPending {
		return nil, apperror.InvalidState(fmt.Sprintf("Request already %s", req.Status))
	}

	ok, err := repo.MarkRejected(id, operator.ID, reason, time.Now())
	if err != nil {
		return nil, dbErr(err)
	}
	if !ok {
		return nil, apperror.InvalidState("Request already reviewed")
	}
	return u.GetStockRequest(id)
}

// ProcessStockReturn records goods coming back. Excess goes back on the shelf,
// damaged goods are written off.
func (u *LedgerUsecase) ProcessStockReturn(in StockReturnInput, operator *model.Personnel, unitID *uint) (*model.StockReturn, error) {
	var ret model.StockReturn
	err := u.db.Transaction(func(tx *gorm.DB) error {
		item, err := u.itemInUnit(tx, in.ItemID, unitID)
		if err != nil {
			return err
		}
		if _, err := repository.NewPersonnelRepository(tx).FindByID(in.ReturnedByID); err != nil {
			return lookupErr(err, "Returning personnel not found")
		}

		code, err := repository.NewCounterRepository(tx).Mint(model.PrefixStockReturn)
		if err != nil {
			return err
		}
		ret = model.StockReturn{
			ReturnCode:   code,
			ItemID:       item.ID,
			Quantity:     in.Quantity,
			ReturnedByID: in.ReturnedByID,
			ReceivedByID: operator.ID,
			ReturnReason: in.ReturnReason,
			UnitID:       item.UnitID,
			Remarks:      in.Remarks,
		}
		if err := repository.NewStockRepository(tx).CreateStockReturn(&ret); err != nil {
			return err
		}

		switch in.ReturnReason {
		case model.ReturnExcess:
			return repository.NewItemRepository(tx).IncrementStock(item.ID, in.Quantity)
		case model.ReturnDamaged:
			return nil
		default:
			return apperror.Validation("Return reason must be 'damaged' or 'excess'")
		}
	})
	if err != nil {
		return nil, dbErr(err)
	}

	out, err := repository.NewStockRepository(u.db).GetStockReturn(ret.ID)
	if err != nil {
		return nil, dbErr(err)
	}
	return out, nil
}

// GetInventory lists active items of one unit, or of every unit when unitID is nil.
func (u *LedgerUsecase) GetInventory(unitID *uint) ([]model.Item, error) {
	items, err := repository.NewItemRepository(u.db).GetInventory(unitID)
	if err != nil {
		return nil, dbErr(err)
	}
	return items, nil
}

func (u *LedgerUsecase) GetStockHistory(unitID *uint, q StockHistoryQuery) (*StockHistory, error) {
	f := repository.HistoryFilter{UnitID: unitID}
	if q.StartDate != "" {
		from, err := parseDate(q.StartDate, "startDate")
		if err != nil {
			return nil, err
		}
		f.From = &from
	}
	if q.EndDate != "" {
		to, err := parseDate(q.EndDate, "endDate")
		if err != nil {
			return nil, err
		}
		// inklusif sampai akhir hari
		to = to.Add(24*time.Hour - time.Nanosecond)
		f.To = &to
	}

	repo := repository.NewStockRepository(u.db)
	history := &StockHistory{}
	if q.Type == "" || q.Type == "in" {
		list, err := repo.ListStockIns(f)
		if err != nil {
			return nil, dbErr(err)
		}
		history.StockIn = &list
	}
	if q.Type == "" || q.Type == "out" {
		list, err := repo.ListStockOuts(f)
		if err != nil {
			return nil, dbErr(err)
		}
		history.StockOut = &list
	}
	if q.Type == "" || q.Type == "return" {
		list, err := repo.ListStockReturns(f)
		if err != nil {
			return nil, dbErr(err)
		}
		history.StockReturns = &list
	}
	return history, nil
}

// Wait blocks until queued low-stock alerts have been handed to the notifier.
func (u *LedgerUsecase) Wait() {
	u.pending.Wait()
}

func (u *LedgerUsecase) itemInUnit(tx *gorm.DB, itemID uint, unitID *uint) (*model.Item, error) {
	item, err := repository.NewItemRepository(tx).GetByID(itemID)
	if err != nil {
		return nil, lookupErr(err, "Item not found")
	}
	if !inScope(unitID, item.UnitID) {
		return nil, apperror.Forbidden("Item does not belong to your unit")
	}
	return item, nil
}

func (u *LedgerUsecase) alertLowStock(item model.Item) {
	recipients, err := repository.NewPersonnelRepository(u.db).GetByRoleAndUnit(rbac.RoleStoreManager, item.UnitID)
	if err != nil {
		u.log.Error("load low stock recipients", "item", item.ItemCode, "error", err)
		return
	}

	u.pending.Add(1)
	go func() {
		defer u.pending.Done()
		if err := u.notifier.LowStock(item, recipients); err != nil {
			u.log.Error("low stock alert failed", "item", item.ItemCode, "error", err)
		}
	}()
}
