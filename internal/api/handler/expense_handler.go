package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-system/internal/api/metrics"
	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// ExpenseHandler handles HTTP requests for expenses and the credit-card
// summary.
type ExpenseHandler struct {
	service ports.ExpenseService
}

func NewExpenseHandler(service ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

type createExpenseRequest struct {
	Date         string  `json:"date"          validate:"required"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"        validate:"required,gt=0"`
	Type         string  `json:"type"          validate:"required,oneof=INCOME EXPENSE"`
	CreditCard   bool    `json:"credit_card"`
}

type creditCardLimitRequest struct {
	Limit float64 `json:"limit" validate:"gte=0"`
}

// List returns the authenticated user's expenses.
func (h *ExpenseHandler) List(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	expenses, err := h.service.List(c.Request().Context(), p.Username)
	if err != nil {
		return err
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return c.JSON(http.StatusOK, expenses)
}

// Create records an expense for the authenticated user. The category is
// referenced by id or by name; a named category that does not exist yet is
// created on the fly.
func (h *ExpenseHandler) Create(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expense, err := h.service.Create(c.Request().Context(), p.Username, ports.CreateExpenseInput{
		Date:         req.Date,
		CategoryID:   req.CategoryID,
		CategoryName: req.CategoryName,
		Description:  req.Description,
		Amount:       req.Amount,
		Type:         req.Type,
		CreditCard:   req.CreditCard,
	})
	if err != nil {
		return err
	}

	metrics.ExpensesCreatedTotal.WithLabelValues(string(expense.Type)).Inc()
	return c.JSON(http.StatusCreated, expense)
}

// CreditCardSummary reports the authenticated user's credit-card limit,
// spending, and remaining budget.
func (h *ExpenseHandler) CreditCardSummary(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	summary, err := h.service.CreditCardSummary(c.Request().Context(), p.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// SetCreditCardLimit updates the authenticated user's credit-card limit.
func (h *ExpenseHandler) SetCreditCardLimit(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req creditCardLimitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SetCreditCardLimit(c.Request().Context(), p.Username, req.Limit); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
