package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionsTableName = "transactions"
	customerIndexName            = "customer_name-index"

	// counterSequence is the reserved key of the sequence counter item.
	// Real transactions start at sequence 1.
	counterSequence = 0

	appendRetries = 5
)

var errSequenceContention = errors.New("sequence counter contention")

type transactionItem struct {
	Sequence     int64  `dynamodbav:"sequence"`
	CreatedAt    string `dynamodbav:"created_at"`
	CustomerName string `dynamodbav:"customer_name"`
	PaperType    string `dynamodbav:"paper_type"`
	Quantity     int    `dynamodbav:"quantity"`
	UnitPrice    string `dynamodbav:"unit_price"`
	Total        string `dynamodbav:"total"`
	Discounts    string `dynamodbav:"discounts,omitempty"`
	Status       string `dynamodbav:"status"`
	Rationale    string `dynamodbav:"rationale"`
	CashDelta    string `dynamodbav:"cash_delta"`
}

// TransactionDynamoLedger persists the append-only transaction ledger in
// DynamoDB.
//
// Table requirements:
//   - PK: sequence (number)
//   - GSI1 (customer_name-index): customer_name, sort key sequence
//
// Gap-free sequence assignment uses a reserved counter item plus a
// TransactWriteItems pair: the counter only advances when the transaction
// row lands, and the row only lands when the counter advances. Contention
// shows up as a cancelled transaction and is retried with a fresh read.

type TransactionDynamoLedger struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionLedger = (*TransactionDynamoLedger)(nil)

func NewTransactionDynamoLedger(ddb *dynamodb.Client) *TransactionDynamoLedger {
	return &TransactionDynamoLedger{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (l *TransactionDynamoLedger) Append(ctx context.Context, tx entities.Transaction) (int64, error) {
	var lastErr error
	for attempt := 0; attempt < appendRetries; attempt++ {
		seq, err := l.tryAppend(ctx, tx)
		if err == nil {
			return seq, nil
		}
		if !errors.Is(err, errSequenceContention) {
			return 0, err
		}
		lastErr = err
	}
	return 0, lastErr
}

func (l *TransactionDynamoLedger) tryAppend(ctx context.Context, tx entities.Transaction) (int64, error) {
	current, err := l.currentSequence(ctx)
	if err != nil {
		return 0, err
	}
	next := current + 1

	tx.Sequence = next
	it, err := toTransactionItem(tx)
	if err != nil {
		return 0, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return 0, err
	}

	counterCondition := "#cur = :current"
	counterValues := map[string]types.AttributeValue{
		":current": &types.AttributeValueMemberN{Value: intToString(current)},
		":next":    &types.AttributeValueMemberN{Value: intToString(next)},
	}
	if current == 0 {
		counterCondition = "attribute_not_exists(#cur)"
		delete(counterValues, ":current")
	}

	_, err = l.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(l.tableName),
					Key: map[string]types.AttributeValue{
						"sequence": &types.AttributeValueMemberN{Value: intToString(counterSequence)},
					},
					UpdateExpression:          aws.String("SET #cur = :next"),
					ConditionExpression:       aws.String(counterCondition),
					ExpressionAttributeNames:  map[string]string{"#cur": "current_sequence"},
					ExpressionAttributeValues: counterValues,
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(l.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#seq)"),
					ExpressionAttributeNames: map[string]string{"#seq": "sequence"},
				},
			},
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return 0, errSequenceContention
		}
		return 0, err
	}
	return next, nil
}

func (l *TransactionDynamoLedger) currentSequence(ctx context.Context) (int64, error) {
	out, err := l.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(l.tableName),
		Key: map[string]types.AttributeValue{
			"sequence": &types.AttributeValueMemberN{Value: intToString(counterSequence)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}
	var counter struct {
		CurrentSequence int64 `dynamodbav:"current_sequence"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &counter); err != nil {
		return 0, err
	}
	return counter.CurrentSequence, nil
}

func (l *TransactionDynamoLedger) ReadAll(ctx context.Context) ([]entities.Transaction, error) {
	var txs []entities.Transaction
	var startKey map[string]types.AttributeValue
	for {
		out, err := l.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(l.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []transactionItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			if it.Sequence == counterSequence {
				continue
			}
			tx, err := fromTransactionItem(it)
			if err != nil {
				return nil, err
			}
			txs = append(txs, tx)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].Sequence < txs[j].Sequence })
	return txs, nil
}

func (l *TransactionDynamoLedger) ReadForCustomer(ctx context.Context, customerName string, limit int) ([]entities.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(l.tableName),
		IndexName:              aws.String(customerIndexName),
		KeyConditionExpression: aws.String("#customer = :customer"),
		ExpressionAttributeNames: map[string]string{
			"#customer": "customer_name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer": &types.AttributeValueMemberS{Value: customerName},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	out, err := l.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}
	var items []transactionItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	txs := make([]entities.Transaction, 0, len(items))
	for _, it := range items {
		tx, err := fromTransactionItem(it)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func toTransactionItem(tx entities.Transaction) (transactionItem, error) {
	it := transactionItem{
		Sequence:     tx.Sequence,
		CreatedAt:    tx.CreatedAt.UTC().Format(time.RFC3339Nano),
		CustomerName: tx.CustomerName,
		PaperType:    tx.PaperType,
		Quantity:     tx.Quantity,
		UnitPrice:    tx.UnitPrice.String(),
		Total:        tx.Total.String(),
		Status:       string(tx.Status),
		Rationale:    tx.Rationale,
		CashDelta:    tx.CashDelta.String(),
	}
	if len(tx.Discounts) > 0 {
		b, err := json.Marshal(tx.Discounts)
		if err != nil {
			return transactionItem{}, err
		}
		it.Discounts = string(b)
	}
	return it, nil
}

func fromTransactionItem(it transactionItem) (entities.Transaction, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	unitPrice, err := decimal.NewFromString(it.UnitPrice)
	if err != nil {
		return entities.Transaction{}, err
	}
	total, err := decimal.NewFromString(it.Total)
	if err != nil {
		return entities.Transaction{}, err
	}
	cashDelta, err := decimal.NewFromString(it.CashDelta)
	if err != nil {
		return entities.Transaction{}, err
	}
	var discounts []entities.DiscountLine
	if it.Discounts != "" {
		if err := json.Unmarshal([]byte(it.Discounts), &discounts); err != nil {
			return entities.Transaction{}, err
		}
	}
	return entities.Transaction{
		Sequence:     it.Sequence,
		CreatedAt:    createdAt,
		CustomerName: it.CustomerName,
		PaperType:    it.PaperType,
		Quantity:     it.Quantity,
		UnitPrice:    unitPrice,
		Total:        total,
		Discounts:    discounts,
		Status:       entities.TransactionStatus(it.Status),
		Rationale:    it.Rationale,
		CashDelta:    cashDelta,
	}, nil
}
