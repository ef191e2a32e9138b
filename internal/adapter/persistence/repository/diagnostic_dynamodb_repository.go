package repository

import (
	"context"
	"encoding/json"
	"time"

	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultDiagnosticsTableName = "diagnostic_results"
	diagnosticsOrderIDIndex     = "order_id-index"

	recordTypeChecklist      = "checklist"
	recordTypePartsServices  = "parts_services"
)

// diagnosticResultItem flattens the result for DynamoDB. Nested collections
// are stored as JSON blobs: they are written once, read back whole, and never
// queried by attribute.
type diagnosticResultItem struct {
	ID           string `dynamodbav:"id"`
	OrderID      string `dynamodbav:"order_id"`
	RecordType   string `dynamodbav:"record_type"`
	ChecklistID  string `dynamodbav:"checklist_id,omitempty"`
	ComponentKey string `dynamodbav:"component_key"`
	DiagnosedBy  string `dynamodbav:"diagnosed_by"`

	Responses          string `dynamodbav:"responses,omitempty"`
	Photos             string `dynamodbav:"photos,omitempty"`
	GeneratedServices  string `dynamodbav:"generated_services,omitempty"`
	AdditionalParts    string `dynamodbav:"additional_parts,omitempty"`
	AdditionalServices string `dynamodbav:"additional_services,omitempty"`

	TechnicalObservations string `dynamodbav:"technical_observations,omitempty"`
	ExtraServices         string `dynamodbav:"extra_services,omitempty"`
	FinalOpinion          string `dynamodbav:"final_opinion,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
}

// DiagnosticDynamoRepository persists DiagnosticResult records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Records are write-once: the conditional put rejects id reuse.

type DiagnosticDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDiagnosticRepository = (*DiagnosticDynamoRepository)(nil)

func NewDiagnosticDynamoRepository(ddb *dynamodb.Client) *DiagnosticDynamoRepository {
	return &DiagnosticDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DIAGNOSTICS_TABLE", defaultDiagnosticsTableName),
	}
}

func (r *DiagnosticDynamoRepository) SaveChecklistResponse(ctx context.Context, result entities.DiagnosticResult) (entities.DiagnosticResult, error) {
	return r.save(ctx, result, recordTypeChecklist)
}

func (r *DiagnosticDynamoRepository) SaveAdditionalPartsAndServices(ctx context.Context, result entities.DiagnosticResult) (entities.DiagnosticResult, error) {
	return r.save(ctx, result, recordTypePartsServices)
}

func (r *DiagnosticDynamoRepository) save(ctx context.Context, result entities.DiagnosticResult, recordType string) (entities.DiagnosticResult, error) {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	normalizeLineItemIDs(&result)

	it, err := toDiagnosticResultItem(result, recordType)
	if err != nil {
		return entities.DiagnosticResult{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DiagnosticResult{}, err
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
		return entities.DiagnosticResult{}, err
	}
	return result, nil
}

// FetchPartsAndServicesFor re-reads the line items of a saved record. The
// services side combines the manually added services with the priced
// trigger-generated ones, so the budget step sees one flat selection.
func (r *DiagnosticDynamoRepository) FetchPartsAndServicesFor(ctx context.Context, resultID string) ([]entities.Part, []entities.Service, error) {
	result, err := r.getByID(ctx, resultID)
	if err != nil {
		return nil, nil, err
	}
	if result.ID == "" {
		return nil, nil, nil
	}

	services := append([]entities.Service(nil), result.AdditionalServices...)
	for _, gs := range result.GeneratedServices {
		sv := entities.Service{
			ID:          result.ID + "#" + gs.Code,
			Description: gs.Description,
			Quantity:    gs.LaborHours,
			UnitPrice:   gs.LaborRate,
			TriggeredBy: gs.TriggeredBy,
		}
		sv.Recalculate()
		services = append(services, sv)
	}
	return result.AdditionalParts, services, nil
}

func (r *DiagnosticDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.DiagnosticResult, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(diagnosticsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	results := make([]entities.DiagnosticResult, 0, len(out.Items))
	for _, raw := range out.Items {
		var it diagnosticResultItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		result, err := fromDiagnosticResultItem(it)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *DiagnosticDynamoRepository) getByID(ctx context.Context, id string) (entities.DiagnosticResult, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DiagnosticResult{}, err
	}
	if len(out.Item) == 0 {
		return entities.DiagnosticResult{}, nil
	}

	var it diagnosticResultItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DiagnosticResult{}, err
	}
	return fromDiagnosticResultItem(it)
}

// normalizeLineItemIDs assigns storage ids to parts/services the session
// created without one.
func normalizeLineItemIDs(result *entities.DiagnosticResult) {
	for i := range result.AdditionalParts {
		if result.AdditionalParts[i].ID == "" {
			result.AdditionalParts[i].ID = uuid.NewString()
		}
	}
	for i := range result.AdditionalServices {
		if result.AdditionalServices[i].ID == "" {
			result.AdditionalServices[i].ID = uuid.NewString()
		}
	}
}

func toDiagnosticResultItem(result entities.DiagnosticResult, recordType string) (diagnosticResultItem, error) {
	it := diagnosticResultItem{
		ID:           result.ID,
		OrderID:      result.OrderID,
		RecordType:   recordType,
		ChecklistID:  result.ChecklistID,
		ComponentKey: result.ComponentKey,
		DiagnosedBy:  result.DiagnosedBy,

		TechnicalObservations: result.TechnicalObservations,
		ExtraServices:         result.ExtraServices,
		FinalOpinion:          result.FinalOpinion,

		CreatedAt: result.CreatedAt.UTC().Format(time.RFC3339Nano),
	}

	var err error
	if it.Responses, err = marshalBlob(result.Responses); err != nil {
		return diagnosticResultItem{}, err
	}
	if it.Photos, err = marshalBlob(result.Photos); err != nil {
		return diagnosticResultItem{}, err
	}
	if it.GeneratedServices, err = marshalBlob(result.GeneratedServices); err != nil {
		return diagnosticResultItem{}, err
	}
	if it.AdditionalParts, err = marshalBlob(result.AdditionalParts); err != nil {
		return diagnosticResultItem{}, err
	}
	if it.AdditionalServices, err = marshalBlob(result.AdditionalServices); err != nil {
		return diagnosticResultItem{}, err
	}
	return it, nil
}

func fromDiagnosticResultItem(it diagnosticResultItem) (entities.DiagnosticResult, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	result := entities.DiagnosticResult{
		ID:           it.ID,
		OrderID:      it.OrderID,
		ChecklistID:  it.ChecklistID,
		ComponentKey: it.ComponentKey,
		DiagnosedBy:  it.DiagnosedBy,

		TechnicalObservations: it.TechnicalObservations,
		ExtraServices:         it.ExtraServices,
		FinalOpinion:          it.FinalOpinion,

		CreatedAt: createdAt,
	}

	if err := unmarshalBlob(it.Responses, &result.Responses); err != nil {
		return entities.DiagnosticResult{}, err
	}
	if err := unmarshalBlob(it.Photos, &result.Photos); err != nil {
		return entities.DiagnosticResult{}, err
	}
	if err := unmarshalBlob(it.GeneratedServices, &result.GeneratedServices); err != nil {
		return entities.DiagnosticResult{}, err
	}
	if err := unmarshalBlob(it.AdditionalParts, &result.AdditionalParts); err != nil {
		return entities.DiagnosticResult{}, err
	}
	if err := unmarshalBlob(it.AdditionalServices, &result.AdditionalServices); err != nil {
		return entities.DiagnosticResult{}, err
	}
	return result, nil
}

func marshalBlob(v interface{}) (string, error) {
	switch val := v.(type) {
	case map[string]entities.ChecklistResponse:
		if len(val) == 0 {
			return "", nil
		}
	case []entities.PhotoRef:
		if len(val) == 0 {
			return "", nil
		}
	case []entities.GeneratedService:
		if len(val) == 0 {
			return "", nil
		}
	case []entities.Part:
		if len(val) == 0 {
			return "", nil
		}
	case []entities.Service:
		if len(val) == 0 {
			return "", nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalBlob(s string, out interface{}) error {
	if s == "" {
		return nil
	}
	return json.Unmarshal([]byte(s), out)
}
