package repository

import (
	"bransfer_gateway/internal/domain/entities"
	"bransfer_gateway/internal/usecase/interfaces"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const DefaultOrdersTableName = "orders"

type orderNoteItem struct {
	ID        string `dynamodbav:"id"`
	Content   string `dynamodbav:"content"`
	CreatedAt string `dynamodbav:"created_at"`
}

type orderItem struct {
	ID            string            `dynamodbav:"id"`
	Key           string            `dynamodbav:"order_key"`
	Status        string            `dynamodbav:"status"`
	Total         string            `dynamodbav:"total"`
	Currency      string            `dynamodbav:"currency"`
	PaymentMethod string            `dynamodbav:"payment_method"`
	CartID        string            `dynamodbav:"cart_id,omitempty"`
	TransactionID string            `dynamodbav:"transaction_id,omitempty"`
	PaidAt        string            `dynamodbav:"paid_at,omitempty"`
	Meta          map[string]string `dynamodbav:"meta"`
	Notes         []orderNoteItem   `dynamodbav:"notes"`
	CreatedAt     string            `dynamodbav:"created_at"`
	UpdatedAt     string            `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string), the order number sent to the provider as metadata
//
// Meta and notes live on the order item so every write is a single
// UpdateItem on one key.
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IOrderStore = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultOrdersTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.Meta == nil {
		o.Meta = map[string]string{}
	}
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		if _, ok := conditionFailed(err); ok {
			return entities.Order{}, interfaces.ErrDuplicateOrder
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Get(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, note string) error {
	return r.SetStatusAndMeta(ctx, id, status, nil, note)
}

func (r *OrderDynamoRepository) SetMeta(ctx context.Context, id string, meta map[string]string) error {
	if len(meta) == 0 {
		return nil
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		sets := []string{"#updated_at = :updated_at"}
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		sets = appendMetaSets(sets, vals, names, meta)
		return "SET " + strings.Join(sets, ", "), vals, names
	})
}

// SetStatusAndMeta writes status, meta keys and the note in one UpdateItem.
func (r *OrderDynamoRepository) SetStatusAndMeta(ctx context.Context, id string, status entities.OrderStatus, meta map[string]string, note string) error {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		sets := []string{"#status = :status", "#updated_at = :updated_at"}
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		sets = appendMetaSets(sets, vals, names, meta)
		if note != "" {
			sets = append(sets, appendNoteExpr)
			vals[":note"] = r.noteValue(note, now)
			vals[":empty"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
			names["#notes"] = "notes"
		}
		return "SET " + strings.Join(sets, ", "), vals, names
	})
}

// appendMetaSets adds one "#meta.#mN = :mN" clause per key, in key order.
func appendMetaSets(sets []string, vals map[string]types.AttributeValue, names map[string]string, meta map[string]string) []string {
	if len(meta) == 0 {
		return sets
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names["#meta"] = "meta"
	for i, k := range keys {
		n, v := "#m"+strconv.Itoa(i), ":m"+strconv.Itoa(i)
		sets = append(sets, fmt.Sprintf("#meta.%s = %s", n, v))
		names[n] = k
		vals[v] = &types.AttributeValueMemberS{Value: meta[k]}
	}
	return sets
}

func (r *OrderDynamoRepository) GetMeta(ctx context.Context, id string, key string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.tableName),
		Key:                  idKey(id),
		ConsistentRead:       aws.Bool(true),
		ProjectionExpression: aws.String("#meta.#k"),
		ExpressionAttributeNames: map[string]string{
			"#meta": "meta",
			"#k":    key,
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it struct {
		Meta map[string]string `dynamodbav:"meta"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.Meta[key], nil
}

func (r *OrderDynamoRepository) AddNote(ctx context.Context, id string, note string) error {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at, " + appendNoteExpr
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":note":       r.noteValue(note, now),
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
			"#notes":      "notes",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) PaymentComplete(ctx context.Context, id string, transactionID string) error {
	now := formatTime(r.now())
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND NOT (#status IN (:processing, :completed))"),
		UpdateExpression:    aws.String("SET #status = :processing, #transaction_id = :txn, #paid_at = :now, #updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":processing": &types.AttributeValueMemberS{Value: string(entities.OrderStatusProcessing)},
			":completed":  &types.AttributeValueMemberS{Value: string(entities.OrderStatusCompleted)},
			":txn":        &types.AttributeValueMemberS{Value: transactionID},
			":now":        &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#transaction_id": "transaction_id",
			"#paid_at":        "paid_at",
			"#updated_at":     "updated_at",
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := conditionFailed(err); ok {
			if len(cfe.Item) == 0 {
				return interfaces.ErrUnknownOrder
			}
			// Already paid.
			return nil
		}
		return err
	}
	return nil
}

const appendNoteExpr = "#notes = list_append(if_not_exists(#notes, :empty), :note)"

func (r *OrderDynamoRepository) noteValue(content, now string) types.AttributeValue {
	return &types.AttributeValueMemberL{Value: []types.AttributeValue{
		&types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"id":         &types.AttributeValueMemberS{Value: uuid.NewString()},
			"content":    &types.AttributeValueMemberS{Value: content},
			"created_at": &types.AttributeValueMemberS{Value: now},
		}},
	}}
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) error {
	updateExpr, values, names := build(formatTime(r.now()))

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return interfaces.ErrUnknownOrder
		}
		return err
	}
	return nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:            o.ID,
		Key:           o.Key,
		Status:        string(o.Status),
		Total:         floatToString(o.Total),
		Currency:      o.Currency,
		PaymentMethod: o.PaymentMethod,
		CartID:        o.CartID,
		TransactionID: o.TransactionID,
		Meta:          o.Meta,
		Notes:         make([]orderNoteItem, 0, len(o.Notes)),
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
	if o.PaidAt != nil {
		it.PaidAt = formatTime(*o.PaidAt)
	}
	for _, n := range o.Notes {
		it.Notes = append(it.Notes, orderNoteItem{ID: n.ID, Content: n.Content, CreatedAt: formatTime(n.CreatedAt)})
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	total, _ := strconv.ParseFloat(it.Total, 64)
	o := entities.Order{
		ID:            it.ID,
		Key:           it.Key,
		Status:        entities.OrderStatus(it.Status),
		Total:         total,
		Currency:      it.Currency,
		PaymentMethod: it.PaymentMethod,
		CartID:        it.CartID,
		TransactionID: it.TransactionID,
		Meta:          it.Meta,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.PaidAt != "" {
		paidAt := parseTime(it.PaidAt)
		o.PaidAt = &paidAt
	}
	if o.Meta == nil {
		o.Meta = map[string]string{}
	}
	for _, n := range it.Notes {
		o.Notes = append(o.Notes, entities.OrderNote{ID: n.ID, Content: n.Content, CreatedAt: parseTime(n.CreatedAt)})
	}
	return o
}
