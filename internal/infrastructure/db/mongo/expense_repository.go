package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fintrack/finance-system/internal/core/domain"
)

const expensesCollection = "expenses"

// ExpenseRepository persists expenses.
type ExpenseRepository struct {
	coll *mongo.Collection
}

func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{coll: db.Collection(expensesCollection)}
}

type expenseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Date        string             `bson:"date"`
	CategoryID  string             `bson:"category_id"`
	Description string             `bson:"description,omitempty"`
	Amount      float64            `bson:"amount"`
	Type        string             `bson:"type"`
	CreditCard  bool               `bson:"credit_card"`
	UserID      string             `bson:"user_id"`
	CreatedAt   int64              `bson:"created_at"`
}

func (d expenseDoc) toDomain() domain.Expense {
	return domain.Expense{
		ID:          d.ID.Hex(),
		Date:        d.Date,
		CategoryID:  d.CategoryID,
		Description: d.Description,
		Amount:      d.Amount,
		Type:        domain.ExpenseType(d.Type),
		CreditCard:  d.CreditCard,
		UserID:      d.UserID,
		CreatedAt:   unixToTime(d.CreatedAt),
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := expenseDoc{
		Date:        expense.Date,
		CategoryID:  expense.CategoryID,
		Description: expense.Description,
		Amount:      expense.Amount,
		Type:        string(expense.Type),
		CreditCard:  expense.CreditCard,
		UserID:      expense.UserID,
		CreatedAt:   expense.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}

	created := *expense
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ExpenseRepository) FindByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var expenses []domain.Expense
	for cursor.Next(ctx) {
		var doc expenseDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode expense: %w", err)
		}
		expenses = append(expenses, doc.toDomain())
	}
	return expenses, cursor.Err()
}

// SumCreditCardSpent aggregates the total amount of the user's credit-card
// expenses of type EXPENSE.
func (r *ExpenseRepository) SumCreditCardSpent(ctx context.Context, userID string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"user_id":     userID,
			"credit_card": true,
			"type":        string(domain.TypeExpense),
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum credit card spent: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("decode credit card total: %w", err)
		}
	}
	return result.Total, cursor.Err()
}

// EnsureIndexes creates the owner index used by every query.
func (r *ExpenseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
