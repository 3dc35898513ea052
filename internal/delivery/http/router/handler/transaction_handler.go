package handler

import (
	"log/slog"
	"net/http"

	"ideaforge/internal/delivery/http/response"
	"ideaforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TransactionHandler holds dependencies for purchase transaction handlers.
type TransactionHandler struct {
	uc     usecase.TransactionUsecase
	logger *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(uc usecase.TransactionUsecase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateTransaction handles starting a purchase. The payment intent is
// created at the processor before anything is persisted.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	var input *usecase.CreateTransactionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid transaction input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateTransaction(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Transaction created successfully")
}

// UpdateTransaction handles transitioning a transaction's status.
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	var input *usecase.UpdateTransactionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid transaction update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	transaction, err := h.uc.UpdateTransaction(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transaction, "Transaction updated successfully")
}

// ListUserTransactions handles listing the caller's purchases and sales.
func (h *TransactionHandler) ListUserTransactions(c echo.Context) error {
	callerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid user ID")
	}

	transactions, err := h.uc.ListUserTransactions(c.Request().Context(), callerID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transactions, "Transactions retrieved successfully")
}
