package pricing

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase/interfaces"
)

type servicePriceItem struct {
	ServiceCode string `dynamodbav:"service_code"`
	Description string `dynamodbav:"description,omitempty"`
	LaborHours  string `dynamodbav:"labor_hours"`
	LaborRate   string `dynamodbav:"labor_rate"`
}

// DynamoDBPriceTable resolves labor hours and rate per service code from the
// service_prices table. Unknown codes fall back to the default price so a
// missing table row never blocks a diagnostic submission.
type DynamoDBPriceTable struct {
	client    *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingResolver = (*DynamoDBPriceTable)(nil)

func NewDynamoDBPriceTable(client *dynamodb.Client) *DynamoDBPriceTable {
	tableName := os.Getenv("SERVICE_PRICES_TABLE_NAME")
	if tableName == "" {
		tableName = "service_prices"
	}
	return &DynamoDBPriceTable{client: client, tableName: tableName}
}

func (p *DynamoDBPriceTable) Resolve(ctx context.Context, candidate entities.ServiceCandidate) (float64, float64, error) {
	code := candidate.Template.Code
	out, err := p.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(p.tableName),
		Key: map[string]types.AttributeValue{
			"service_code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		log.Printf("[pricing][dynamodb] get item failed service_code=%s err=%v", code, err)
		return 0, 0, err
	}
	if out.Item == nil {
		log.Printf("[pricing][dynamodb] no price for service_code=%s, using defaults", code)
		return interfaces.DefaultLaborHours, interfaces.DefaultLaborRate, nil
	}

	var item servicePriceItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		log.Printf("[pricing][dynamodb] unmarshal failed service_code=%s err=%v", code, err)
		return 0, 0, err
	}

	hours := parsePriceField(item.LaborHours, interfaces.DefaultLaborHours)
	rate := parsePriceField(item.LaborRate, interfaces.DefaultLaborRate)
	return hours, rate, nil
}

func parsePriceField(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
