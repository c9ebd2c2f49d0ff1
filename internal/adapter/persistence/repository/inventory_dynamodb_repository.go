package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInventoryTableName = "inventory"

type inventoryItem struct {
	PaperType  string `dynamodbav:"paper_type"`
	StockLevel int    `dynamodbav:"stock_level"`
}

// InventoryDynamoRepository persists stock levels in DynamoDB.
//
// Table requirements:
//   - PK: paper_type (string)
//
// SetStock is a plain overwrite of the item's stock_level; the fulfillment
// use case owns check-then-decrement atomicity, so no conditional update is
// needed here.

type InventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVENTORY_TABLE", defaultInventoryTableName),
	}
}

func (r *InventoryDynamoRepository) GetStock(ctx context.Context, paperType string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"paper_type": &types.AttributeValueMemberS{Value: paperType},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}

	var it inventoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, err
	}
	return it.StockLevel, nil
}

func (r *InventoryDynamoRepository) SetStock(ctx context.Context, paperType string, quantity int) error {
	if quantity < 0 {
		return errors.New("stock level must be non-negative")
	}
	av, err := attributevalue.MarshalMap(inventoryItem{PaperType: paperType, StockLevel: quantity})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *InventoryDynamoRepository) ListAll(ctx context.Context) ([]entities.StockLevel, error) {
	var levels []entities.StockLevel
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []inventoryItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			levels = append(levels, entities.StockLevel{PaperType: it.PaperType, Quantity: it.StockLevel})
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].PaperType < levels[j].PaperType })
	return levels, nil
}

func intToString(v int64) string {
	return strconv.FormatInt(v, 10)
}
