package repository

import (
	"errors"
	"time"

	"reimbursement-backend/internal/models"

	"gorm.io/gorm"
)

// ErrMultipleRows reports more than one row for a supposedly-unique id.
// Structurally impossible with an intact primary key, but surfaced distinctly
// from not-found rather than disguised as it.
var ErrMultipleRows = errors.New("multiple rows for primary key")

type ReimbursementRepository struct {
	db *gorm.DB
}

func NewReimbursementRepository(db *gorm.DB) *ReimbursementRepository {
	return &ReimbursementRepository{db: db}
}

// Expose DB if needed
func (r *ReimbursementRepository) DB() *gorm.DB {
	return r.db
}

func (r *ReimbursementRepository) Create(item *models.Reimbursement) error {
	return r.db.Create(item).Error
}

// GetOne fetches a single reimbursement by primary key. It reads up to two
// rows so a duplicated id surfaces as ErrMultipleRows.
func (r *ReimbursementRepository) GetOne(id int64) (*models.Reimbursement, error) {
	var rows []models.Reimbursement
	if err := r.db.Limit(2).Find(&rows, "id = ?", id).Error; err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, gorm.ErrRecordNotFound
	case 1:
		return &rows[0], nil
	default:
		return nil, ErrMultipleRows
	}
}

// SearchFilters are conjunctive; nil/empty fields are not applied.
type SearchFilters struct {
	CreatedAtDate *time.Time
	Status        models.Status
	BankID        *int64
}

func (r *ReimbursementRepository) Search(f SearchFilters) ([]models.Reimbursement, error) {
	query := r.db.Model(&models.Reimbursement{})

	if f.CreatedAtDate != nil {
		query = query.Where("created_at::date = ?", f.CreatedAtDate.Format("2006-01-02"))
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.BankID != nil {
		query = query.Where("bank_id = ?", *f.BankID)
	}

	items := []models.Reimbursement{}
	err := query.Find(&items).Error
	return items, err
}

// Decide applies the pending -> approved/rejected transition as a single
// conditional update. When two callers race on the same record, exactly one
// sees RowsAffected == 1; the loser's guard matches zero rows.
func (r *ReimbursementRepository) Decide(id int64, status models.Status, decidedBy int64, at time.Time) (int64, error) {
	result := r.db.Model(&models.Reimbursement{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":           status,
			"decision_by_id":   decidedBy,
			"decision_made_at": at,
		})

	return result.RowsAffected, result.Error
}

// Delete removes the row. Hard delete: DeletedAt is a reserved column, not a
// soft-delete hook.
func (r *ReimbursementRepository) Delete(id int64) error {
	return r.db.Delete(&models.Reimbursement{}, id).Error
}
