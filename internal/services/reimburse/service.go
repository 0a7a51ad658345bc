package reimburse

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"reimbursement-backend/internal/models"
	"reimbursement-backend/internal/repository"
	"reimbursement-backend/internal/services/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	reimbursements *repository.ReimbursementRepository
	members        *repository.MemberRepository
	sender         notification.Sender
	db             *gorm.DB
	log            *slog.Logger
}

func NewService(
	reimbursements *repository.ReimbursementRepository,
	members *repository.MemberRepository,
	sender notification.Sender,
	log *slog.Logger,
) *Service {
	return &Service{
		reimbursements: reimbursements,
		members:        members,
		sender:         sender,
		db:             reimbursements.DB(),
		log:            log,
	}
}

// Create inserts a new reimbursement. Status is forced to pending regardless
// of caller input; decision fields start null. Foreign keys are not
// existence-checked here, the storage layer surfaces violations.
func (s *Service) Create(bankAccountID, bankID, amount int64, description string) (*models.Reimbursement, error) {
	now := time.Now().UTC()
	item := &models.Reimbursement{
		BankResource: models.BankResource{
			Resource: models.Resource{CreatedAt: now, UpdatedAt: now},
			BankID:   bankID,
		},
		BankAccountID: bankAccountID,
		Status:        models.StatusPending,
		Amount:        amount,
		Description:   description,
	}

	if err := s.reimbursements.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Get(id int64) (*models.Reimbursement, error) {
	item, err := s.reimbursements.GetOne(id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case errors.Is(err, repository.ErrMultipleRows):
		return nil, ErrMultipleFound
	case err != nil:
		return nil, err
	}
	return item, nil
}

func (s *Service) List(filters repository.SearchFilters) ([]models.Reimbursement, error) {
	return s.reimbursements.Search(filters)
}

// Decide transitions a pending reimbursement to approved or rejected. The
// write is a conditional update guarded on the current status, so of two
// racing callers exactly one succeeds. Notification dispatch runs after the
// commit, off the request path; its failures are logged and swallowed.
func (s *Service) Decide(id int64, status models.Status, decidedBy int64) (*models.Reimbursement, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if item.Status != models.StatusPending {
		return nil, ErrNotPending
	}

	affected, err := s.reimbursements.Decide(id, status, decidedBy, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// lost the race to a concurrent decision
		return nil, ErrNotPending
	}

	updated, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	go s.dispatchDecision(updated)

	return updated, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.reimbursements.Delete(id)
}

// dispatchDecision resolves the member's email through the account row,
// sends the status notification and records the audit trail. Every failure
// here is terminal for the dispatch only; the decision is already durable.
func (s *Service) dispatchDecision(item *models.Reimbursement) {
	email, err := s.members.EmailForAccount(item.BankAccountID)
	outcome := "sent"
	if err != nil {
		s.log.Warn("member email lookup failed",
			"reimbursement_id", item.ID, "bank_account_id", item.BankAccountID, "error", err)
		outcome = "lookup_failed"
	} else if err := s.sender.Send(
		email,
		"Reimbursement Status Update",
		"Your reimbursement has been "+string(item.Status),
	); err != nil {
		s.log.Warn("notification send failed", "reimbursement_id", item.ID, "error", err)
		outcome = "send_failed"
	}

	s.recordDecisionLog(item, email, outcome)
}

func (s *Service) recordDecisionLog(item *models.Reimbursement, email, outcome string) {
	details, _ := json.Marshal(map[string]interface{}{
		"previous_status": models.StatusPending,
		"new_status":      item.Status,
		"notified_email":  email,
		"dispatch":        outcome,
	})

	row := &models.DecisionLog{
		ID:              uuid.New(),
		ReimbursementID: item.ID,
		Action:          "decision",
		Details:         details,
		CreatedAt:       time.Now().UTC(),
	}
	if item.DecisionByID != nil {
		row.DecidedBy = *item.DecisionByID
	}

	if err := s.db.Create(row).Error; err != nil {
		s.log.Warn("decision log write failed", "reimbursement_id", item.ID, "error", err)
	}
}
