package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName   = "budgets"
	budgetsOrderComponentIndex = "order_component-index"
)

type budgetItem struct {
	ID             string `dynamodbav:"id"`
	Number         string `dynamodbav:"number"`
	OrderID        string `dynamodbav:"order_id"`
	ComponentKey   string `dynamodbav:"component_key"`
	OrderComponent string `dynamodbav:"order_component"`

	LaborHours    string `dynamodbav:"labor_hours"`
	LaborRate     string `dynamodbav:"labor_rate"`
	LaborTotal    string `dynamodbav:"labor_total"`
	PartsTotal    string `dynamodbav:"parts_total"`
	Discount      string `dynamodbav:"discount"`
	TaxPercentage string `dynamodbav:"tax_percentage"`
	TaxAmount     string `dynamodbav:"tax_amount"`
	TotalAmount   string `dynamodbav:"total_amount"`

	Status                string `dynamodbav:"status"`
	EstimatedDeliveryDays int    `dynamodbav:"estimated_delivery_days"`
	WarrantyMonths        int    `dynamodbav:"warranty_months"`

	ServicesDetail string `dynamodbav:"services_detail,omitempty"`
	PartsDetail    string `dynamodbav:"parts_detail,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_component-index (PK: order_component)
//
// The one-live-budget-per-order+component rule is enforced by the use case
// through GetActiveByOrderComponent followed by a conditional Create; the
// lookup and the insert are not atomic across concurrent writers.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := toBudgetItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// GetActiveByOrderComponent returns the newest non-cancelled budget of the
// pair, or an empty Budget when every budget was cancelled or none exists.
func (r *BudgetDynamoRepository) GetActiveByOrderComponent(ctx context.Context, orderID, componentKey string) (entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsOrderComponentIndex),
		KeyConditionExpression: aws.String("order_component = :oc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oc": &types.AttributeValueMemberS{Value: orderID + "#" + componentKey},
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}

	var active entities.Budget
	for _, raw := range out.Items {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Budget{}, err
		}
		b := fromBudgetItem(it)
		if b.Status == entities.BudgetStatusCancelado {
			continue
		}
		if active.ID == "" || b.CreatedAt.After(active.CreatedAt) {
			active = b
		}
	}
	return active, nil
}

func (r *BudgetDynamoRepository) UpdateStatusByOrderComponent(ctx context.Context, orderID, componentKey string, status entities.BudgetStatus) (entities.Budget, error) {
	budget, err := r.GetActiveByOrderComponent(ctx, orderID, componentKey)
	if err != nil {
		return entities.Budget{}, err
	}
	if budget.ID == "" {
		return entities.Budget{}, nil
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: budget.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:             b.ID,
		Number:         b.Number,
		OrderID:        b.OrderID,
		ComponentKey:   b.ComponentKey,
		OrderComponent: b.OrderComponent(),

		LaborHours:    floatToString(b.LaborHours),
		LaborRate:     floatToString(b.LaborRate),
		LaborTotal:    floatToString(b.LaborTotal),
		PartsTotal:    floatToString(b.PartsTotal),
		Discount:      floatToString(b.Discount),
		TaxPercentage: floatToString(b.TaxPercentage),
		TaxAmount:     floatToString(b.TaxAmount),
		TotalAmount:   floatToString(b.TotalAmount),

		Status:                string(b.Status),
		EstimatedDeliveryDays: b.EstimatedDeliveryDays,
		WarrantyMonths:        b.WarrantyMonths,

		ServicesDetail: b.ServicesDetail,
		PartsDetail:    b.PartsDetail,

		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Budget{
		ID:           it.ID,
		Number:       it.Number,
		OrderID:      it.OrderID,
		ComponentKey: it.ComponentKey,

		LaborHours:    stringToFloat(it.LaborHours),
		LaborRate:     stringToFloat(it.LaborRate),
		LaborTotal:    stringToFloat(it.LaborTotal),
		PartsTotal:    stringToFloat(it.PartsTotal),
		Discount:      stringToFloat(it.Discount),
		TaxPercentage: stringToFloat(it.TaxPercentage),
		TaxAmount:     stringToFloat(it.TaxAmount),
		TotalAmount:   stringToFloat(it.TotalAmount),

		Status:                entities.BudgetStatus(it.Status),
		EstimatedDeliveryDays: it.EstimatedDeliveryDays,
		WarrantyMonths:        it.WarrantyMonths,

		ServicesDetail: it.ServicesDetail,
		PartsDetail:    it.PartsDetail,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
