package repository

import (
	"context"
	"encoding/json"

	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChecklistsTableName  = "checklists"
	checklistsOrgComponentIndex = "org_component-index"
)

type checklistItemRecord struct {
	ID           string `dynamodbav:"id"`
	OrgID        string `dynamodbav:"org_id"`
	ComponentKey string `dynamodbav:"component_key"`
	OrgComponent string `dynamodbav:"org_component"`
	Items        string `dynamodbav:"items"`
}

// ChecklistDynamoRepository reads checklist schemas from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_component-index (PK: org_component = "<org_id>#<component_key>")
//
// Schemas are seeded by an admin tool outside this service; this repository
// is read-only.

type ChecklistDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChecklistProvider = (*ChecklistDynamoRepository)(nil)

func NewChecklistDynamoRepository(ddb *dynamodb.Client) *ChecklistDynamoRepository {
	return &ChecklistDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKLISTS_TABLE", defaultChecklistsTableName),
	}
}

func (r *ChecklistDynamoRepository) GetByComponent(ctx context.Context, orgID, componentKey string) (entities.Checklist, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checklistsOrgComponentIndex),
		KeyConditionExpression: aws.String("org_component = :oc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oc": &types.AttributeValueMemberS{Value: orgID + "#" + componentKey},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Checklist{}, err
	}
	if len(out.Items) == 0 {
		return entities.Checklist{}, nil
	}

	var rec checklistItemRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return entities.Checklist{}, err
	}

	cl := entities.Checklist{
		ID:           rec.ID,
		ComponentKey: rec.ComponentKey,
	}
	if rec.Items != "" {
		if err := json.Unmarshal([]byte(rec.Items), &cl.Items); err != nil {
			return entities.Checklist{}, err
		}
	}
	return cl, nil
}
