package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionRow is the SQL shape of a ledger record.
type TransactionRow struct {
	ID                   string                   `gorm:"primaryKey;size:64"`
	OrderID              string                   `gorm:"size:100;index;not null"`
	Description          string                   `gorm:"type:text"`
	LocationID           string                   `gorm:"size:100"`
	CustomerID           string                   `gorm:"size:100"`
	OperatorID           string                   `gorm:"size:100"`
	PaymentMethod        string                   `gorm:"size:20;not null"`
	Type                 string                   `gorm:"size:10;not null"`
	Amount               decimal.Decimal          `gorm:"type:decimal(14,2);not null"`
	Revenue              decimal.Decimal          `gorm:"type:decimal(14,2);not null"`
	GatewayTransactionID string                   `gorm:"size:100"`
	Response             entities.GatewayResponse `gorm:"type:text;serializer:json"`
	RefundMethod         string                   `gorm:"size:20"`
	RefundGiftcardID     string                   `gorm:"size:100"`
	RefundStorecreditID  string                   `gorm:"size:100"`
	CreatedAt            time.Time                `gorm:"not null"`
}

func (TransactionRow) TableName() string {
	return "financial_transactions"
}

// TransactionGormRepository is the SQL (postgres/sqlite) ledger.
type TransactionGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ILedgerRepository = (*TransactionGormRepository)(nil)

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

// Append inserts only: a duplicate id fails on the primary key instead of
// overwriting the existing record.
func (r *TransactionGormRepository) Append(ctx context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error) {
	row := toTransactionRow(rec)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[ledger][gorm] insert failed id=%s order_id=%s err=%v", rec.ID, rec.OrderID, err)
		return entities.TransactionRecord{}, err
	}
	return rec, nil
}

func (r *TransactionGormRepository) GetByID(ctx context.Context, id string) (entities.TransactionRecord, error) {
	var row TransactionRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.TransactionRecord{}, nil
	}
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	return fromTransactionRow(row), nil
}

func (r *TransactionGormRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.TransactionRecord, error) {
	var rows []TransactionRow
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromTransactionRow(row))
	}
	return out, nil
}

func toTransactionRow(rec entities.TransactionRecord) TransactionRow {
	return TransactionRow{
		ID:                   rec.ID,
		OrderID:              rec.OrderID,
		Description:          rec.Description,
		LocationID:           rec.LocationID,
		CustomerID:           rec.CustomerID,
		OperatorID:           rec.OperatorID,
		PaymentMethod:        string(rec.PaymentMethod),
		Type:                 string(rec.TransactionType),
		Amount:               rec.Amount,
		Revenue:              rec.Revenue,
		GatewayTransactionID: rec.GatewayTransactionID,
		Response:             rec.Response,
		RefundMethod:         string(rec.RefundMethod),
		RefundGiftcardID:     rec.RefundGiftcardID,
		RefundStorecreditID:  rec.RefundStorecreditID,
		CreatedAt:            rec.CreatedAt.UTC(),
	}
}

func fromTransactionRow(row TransactionRow) entities.TransactionRecord {
	return entities.TransactionRecord{
		ID:                   row.ID,
		OrderID:              row.OrderID,
		Description:          row.Description,
		LocationID:           row.LocationID,
		CustomerID:           row.CustomerID,
		OperatorID:           row.OperatorID,
		PaymentMethod:        entities.InstrumentType(row.PaymentMethod),
		TransactionType:      entities.TransactionType(row.Type),
		Amount:               row.Amount,
		Revenue:              row.Revenue,
		GatewayTransactionID: row.GatewayTransactionID,
		Response:             row.Response,
		RefundMethod:         entities.InstrumentType(row.RefundMethod),
		RefundGiftcardID:     row.RefundGiftcardID,
		RefundStorecreditID:  row.RefundStorecreditID,
		CreatedAt:            row.CreatedAt,
	}
}
