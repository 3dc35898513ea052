package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"ideaforge/config"
	"ideaforge/internal/domain/entity"
	domainerrors "ideaforge/internal/domain/errors"
	"ideaforge/internal/domain/repository"
	"ideaforge/internal/domain/service"
	"ideaforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultCurrency = "usd"

type transactionService struct {
	logger           *slog.Logger
	transactionRepo  repository.TransactionRepository
	projectRepo      repository.ProjectRepository
	notificationRepo repository.NotificationRepository
	paymentSvc       service.PaymentService
	adminChecker     service.AdminChecker
	txManager        repository.TransactionManager
	currency         string
}

// NewTransactionService creates a new transaction service instance.
func NewTransactionService(
	logger *slog.Logger,
	cfg *config.Config,
	transactionRepo repository.TransactionRepository,
	projectRepo repository.ProjectRepository,
	notificationRepo repository.NotificationRepository,
	paymentSvc service.PaymentService,
	adminChecker service.AdminChecker,
	txManager repository.TransactionManager,
) usecase.TransactionUsecase {
	currency := defaultCurrency
	if cfg.Stripe != nil && cfg.Stripe.Currency != "" {
		currency = cfg.Stripe.Currency
	}

	return &transactionService{
		logger:           logger,
		transactionRepo:  transactionRepo,
		projectRepo:      projectRepo,
		notificationRepo: notificationRepo,
		paymentSvc:       paymentSvc,
		adminChecker:     adminChecker,
		txManager:        txManager,
		currency:         currency,
	}
}

// CreateTransaction starts a purchase. The payment intent is created at the
// processor before anything is persisted; a processor failure leaves no
// partial state behind.
func (s *transactionService) CreateTransaction(ctx context.Context, callerID uuid.UUID, input *usecase.CreateTransactionInput) (*usecase.CreateTransactionOutput, error) {
	if callerID != input.BuyerID {
		return nil, domainerrors.ErrForbidden.WithDetails("you can only create transactions for yourself")
	}

	project, err := s.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch project")
	}

	if project.OwnerID == input.BuyerID {
		return nil, domainerrors.ErrSelfPurchase
	}

	if project.Visibility == entity.VisibilityPrivate {
		return nil, domainerrors.ErrProjectNotPurchasable
	}

	if project.Price != nil && input.Amount != *project.Price {
		return nil, domainerrors.ErrAmountMismatch
	}

	intent, err := s.paymentSvc.CreatePaymentIntent(ctx, &service.CreatePaymentIntentInput{
		AmountCents: int64(math.Round(input.Amount * 100)),
		Currency:    s.currency,
		Description: fmt.Sprintf("Purchase of project: %s", project.Title),
		Metadata: map[string]string{
			"projectId": input.ProjectID.String(),
			"buyerId":   input.BuyerID.String(),
			"sellerId":  project.OwnerID.String(),
		},
	})
	if err != nil {
		return nil, domainerrors.ErrPaymentFailed.WrapMessage(err.Error())
	}

	transaction := &entity.Transaction{
		ID:        uuid.New(),
		ProjectID: input.ProjectID,
		BuyerID:   input.BuyerID,
		Amount:    input.Amount,
		Status:    entity.TransactionPending,
		StripeID:  &intent.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	return &usecase.CreateTransactionOutput{
		Transaction:  transaction,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// UpdateTransaction transitions a transaction's status. The read-guard-update
// sequence runs in one database transaction. Once terminal, the only permitted
// transition is a reset back to pending; that reset is available to the buyer
// or an admin unconditionally, which does allow unwinding a completed sale.
func (s *transactionService) UpdateTransaction(ctx context.Context, callerID uuid.UUID, input *usecase.UpdateTransactionInput) (*entity.Transaction, error) {
	status := entity.TransactionStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be pending, success or failed")
	}

	var updated *entity.Transaction

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		transactionRepo := factory.NewTransactionRepository()

		transaction, err := transactionRepo.FindByID(ctx, input.TransactionID)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return domainerrors.ErrTransactionNotFound
			}

			return errors.Wrap(err, "failed to fetch transaction")
		}

		if callerID != transaction.BuyerID {
			isAdmin, err := s.adminChecker.IsAdmin(ctx, callerID)
			if err != nil {
				return errors.Wrap(err, "failed to check admin capability")
			}
			if !isAdmin {
				return domainerrors.ErrForbidden.WithDetails("not authorized to update this transaction")
			}
		}

		if transaction.Status.IsTerminal() && status != entity.TransactionPending {
			return domainerrors.ErrInvalidState.WithDetails("cannot update a completed transaction")
		}

		updated, err = transactionRepo.UpdateStatus(ctx, transaction.ID, status, input.StripeID)
		if err != nil {
			return errors.Wrap(err, "failed to update transaction")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if status == entity.TransactionSuccess {
		s.notifyPurchase(ctx, updated)
	}

	return updated, nil
}

// notifyPurchase fans out the two success notifications best-effort: one to
// the project owner, one to the buyer. Failures are logged, never surfaced.
func (s *transactionService) notifyPurchase(ctx context.Context, transaction *entity.Transaction) {
	now := time.Now()

	project, err := s.projectRepo.FindByID(ctx, transaction.ProjectID)
	if err != nil {
		s.logger.Warn("failed to fetch project for purchase notification",
			slog.String("projectID", transaction.ProjectID.String()),
			slog.Any("error", err),
		)
	} else {
		ownerLink := fmt.Sprintf("/transactions/%s", transaction.ID)
		ownerNotification := &entity.Notification{
			ID:        uuid.New(),
			UserID:    project.OwnerID,
			Message:   "Your project has been purchased",
			Type:      entity.NotificationTypeTransaction,
			Link:      &ownerLink,
			CreatedAt: now,
		}
		if err := s.notificationRepo.Create(ctx, ownerNotification); err != nil {
			s.logger.Warn("failed to create seller notification",
				slog.String("transactionID", transaction.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	buyerLink := fmt.Sprintf("/projects/%s", transaction.ProjectID)
	buyerNotification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    transaction.BuyerID,
		Message:   "Your purchase was successful",
		Type:      entity.NotificationTypeTransaction,
		Link:      &buyerLink,
		CreatedAt: now,
	}
	if err := s.notificationRepo.Create(ctx, buyerNotification); err != nil {
		s.logger.Warn("failed to create buyer notification",
			slog.String("transactionID", transaction.ID.String()),
			slog.Any("error", err),
		)
	}
}

// ListUserTransactions retrieves the caller's purchases and sales.
func (s *transactionService) ListUserTransactions(ctx context.Context, callerID, userID uuid.UUID) (*usecase.UserTransactions, error) {
	if callerID != userID {
		return nil, domainerrors.ErrForbidden.WithDetails("you can only view your own transactions")
	}

	purchases, err := s.transactionRepo.FindByBuyer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch purchase transactions")
	}

	sales, err := s.transactionRepo.FindByProjectOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch sales transactions")
	}

	return &usecase.UserTransactions{Purchases: purchases, Sales: sales}, nil
}
