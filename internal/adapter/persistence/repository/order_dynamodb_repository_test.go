package repository

import (
	"bransfer_gateway/internal/domain/entities"
	"bransfer_gateway/internal/usecase/interfaces"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

// fakeDynamo records the last input of each call and returns canned results.
type fakeDynamo struct {
	put    *dynamodb.PutItemInput
	get    *dynamodb.GetItemInput
	update *dynamodb.UpdateItemInput

	getItem map[string]types.AttributeValue
	err     error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.put = in
	return &dynamodb.PutItemOutput{}, f.err
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.get = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.update = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newOrderRepo(f *fakeDynamo) *OrderDynamoRepository {
	r := NewOrderDynamoRepository(f, "")
	r.now = func() time.Time { return fixedNow }
	return r
}

func sampleOrder() entities.Order {
	return entities.Order{
		ID:            "1007",
		Key:           "wc_order_abc",
		Status:        entities.OrderStatusPending,
		Total:         25.5,
		Currency:      "USD",
		PaymentMethod: entities.GatewayID,
		CartID:        "cart-9",
		CreatedAt:     fixedNow,
		UpdatedAt:     fixedNow,
	}
}

func stringValue(t *testing.T, av types.AttributeValue) string {
	t.Helper()
	s, ok := av.(*types.AttributeValueMemberS)
	require.True(t, ok, "expected string attribute, got %T", av)
	return s.Value
}

func TestOrderDynamoRepository_Create(t *testing.T) {
	t.Run("writes item with empty meta", func(t *testing.T) {
		f := &fakeDynamo{}
		r := newOrderRepo(f)

		o, err := r.Create(context.Background(), sampleOrder())
		require.NoError(t, err)
		require.NotNil(t, o.Meta)

		require.Equal(t, "orders", aws.ToString(f.put.TableName))
		require.Equal(t, "attribute_not_exists(#id)", aws.ToString(f.put.ConditionExpression))
		require.Equal(t, "1007", stringValue(t, f.put.Item["id"]))
		require.Equal(t, "wc_order_abc", stringValue(t, f.put.Item["order_key"]))
		require.Equal(t, "25.5", stringValue(t, f.put.Item["total"]))
		require.IsType(t, &types.AttributeValueMemberM{}, f.put.Item["meta"])
		require.NotContains(t, f.put.Item, "paid_at")
	})

	t.Run("duplicate id", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		_, err := newOrderRepo(f).Create(context.Background(), sampleOrder())
		require.ErrorIs(t, err, interfaces.ErrDuplicateOrder)
	})
}

func TestOrderDynamoRepository_Get(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		f := &fakeDynamo{}
		o, err := newOrderRepo(f).Get(context.Background(), "404")
		require.NoError(t, err)
		require.Empty(t, o.ID)
		require.True(t, aws.ToBool(f.get.ConsistentRead))
	})

	t.Run("round trip", func(t *testing.T) {
		in := sampleOrder()
		paidAt := fixedNow.Add(time.Hour)
		in.PaidAt = &paidAt
		in.TransactionID = "P1"
		in.Meta = map[string]string{entities.MetaPaymentID: "P1"}
		in.Notes = []entities.OrderNote{{ID: "n1", Content: "hello", CreatedAt: fixedNow}}

		item, err := attributevalue.MarshalMap(toOrderItem(in))
		require.NoError(t, err)

		f := &fakeDynamo{getItem: item}
		out, err := newOrderRepo(f).Get(context.Background(), "1007")
		require.NoError(t, err)
		require.Equal(t, in, out)
	})

	t.Run("client error", func(t *testing.T) {
		f := &fakeDynamo{err: errors.New("throttled")}
		_, err := newOrderRepo(f).Get(context.Background(), "1007")
		require.EqualError(t, err, "throttled")
	})
}

func TestOrderDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("with note", func(t *testing.T) {
		f := &fakeDynamo{}
		err := newOrderRepo(f).UpdateStatus(context.Background(), "1007", entities.OrderStatusOnHold, "Awaiting Bransfer payment")
		require.NoError(t, err)

		require.Equal(t, "SET #status = :status, #updated_at = :updated_at, #notes = list_append(if_not_exists(#notes, :empty), :note)", aws.ToString(f.update.UpdateExpression))
		require.Equal(t, "attribute_exists(#id)", aws.ToString(f.update.ConditionExpression))
		require.Equal(t, "on-hold", stringValue(t, f.update.ExpressionAttributeValues[":status"]))

		notes := f.update.ExpressionAttributeValues[":note"].(*types.AttributeValueMemberL).Value
		require.Len(t, notes, 1)
		note := notes[0].(*types.AttributeValueMemberM).Value
		require.Equal(t, "Awaiting Bransfer payment", stringValue(t, note["content"]))
		require.NotEmpty(t, stringValue(t, note["id"]))
	})

	t.Run("without note", func(t *testing.T) {
		f := &fakeDynamo{}
		require.NoError(t, newOrderRepo(f).UpdateStatus(context.Background(), "1007", entities.OrderStatusFailed, ""))
		require.Equal(t, "SET #status = :status, #updated_at = :updated_at", aws.ToString(f.update.UpdateExpression))
		require.NotContains(t, f.update.ExpressionAttributeValues, ":note")
		require.NotContains(t, f.update.ExpressionAttributeNames, "#notes")
	})

	t.Run("missing order", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		err := newOrderRepo(f).UpdateStatus(context.Background(), "404", entities.OrderStatusFailed, "")
		require.ErrorIs(t, err, interfaces.ErrUnknownOrder)
	})
}

func TestOrderDynamoRepository_SetStatusAndMeta(t *testing.T) {
	t.Run("one update for status, meta and note", func(t *testing.T) {
		f := &fakeDynamo{}
		err := newOrderRepo(f).SetStatusAndMeta(context.Background(), "1007", entities.OrderStatusOnHold, map[string]string{
			entities.MetaPaymentStatus: "pending",
			entities.MetaPaymentID:     "P1",
		}, "Awaiting Bransfer payment")
		require.NoError(t, err)

		require.Equal(t, "SET #status = :status, #updated_at = :updated_at, #meta.#m0 = :m0, #meta.#m1 = :m1, #notes = list_append(if_not_exists(#notes, :empty), :note)", aws.ToString(f.update.UpdateExpression))
		require.Equal(t, "attribute_exists(#id)", aws.ToString(f.update.ConditionExpression))
		require.Equal(t, "on-hold", stringValue(t, f.update.ExpressionAttributeValues[":status"]))
		require.Equal(t, entities.MetaPaymentID, f.update.ExpressionAttributeNames["#m0"])
		require.Equal(t, "P1", stringValue(t, f.update.ExpressionAttributeValues[":m0"]))
		require.Equal(t, "pending", stringValue(t, f.update.ExpressionAttributeValues[":m1"]))
	})

	t.Run("missing order writes nothing", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		err := newOrderRepo(f).SetStatusAndMeta(context.Background(), "404", entities.OrderStatusOnHold, map[string]string{"k": "v"}, "")
		require.ErrorIs(t, err, interfaces.ErrUnknownOrder)
	})
}

func TestOrderDynamoRepository_Meta(t *testing.T) {
	t.Run("set meta in one update", func(t *testing.T) {
		f := &fakeDynamo{}
		err := newOrderRepo(f).SetMeta(context.Background(), "1007", map[string]string{
			entities.MetaPaymentStatus: "pending",
			entities.MetaPaymentID:     "P1",
		})
		require.NoError(t, err)

		require.Equal(t, "SET #updated_at = :updated_at, #meta.#m0 = :m0, #meta.#m1 = :m1", aws.ToString(f.update.UpdateExpression))
		require.Equal(t, entities.MetaPaymentID, f.update.ExpressionAttributeNames["#m0"])
		require.Equal(t, entities.MetaPaymentStatus, f.update.ExpressionAttributeNames["#m1"])
		require.Equal(t, "P1", stringValue(t, f.update.ExpressionAttributeValues[":m0"]))
		require.Equal(t, "pending", stringValue(t, f.update.ExpressionAttributeValues[":m1"]))
	})

	t.Run("empty meta is a no-op", func(t *testing.T) {
		f := &fakeDynamo{}
		require.NoError(t, newOrderRepo(f).SetMeta(context.Background(), "1007", nil))
		require.Nil(t, f.update)
	})

	t.Run("get meta", func(t *testing.T) {
		f := &fakeDynamo{getItem: map[string]types.AttributeValue{
			"meta": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				entities.MetaPaymentID: &types.AttributeValueMemberS{Value: "P1"},
			}},
		}}
		v, err := newOrderRepo(f).GetMeta(context.Background(), "1007", entities.MetaPaymentID)
		require.NoError(t, err)
		require.Equal(t, "P1", v)
		require.Equal(t, "#meta.#k", aws.ToString(f.get.ProjectionExpression))
		require.Equal(t, entities.MetaPaymentID, f.get.ExpressionAttributeNames["#k"])
	})

	t.Run("get meta of missing order", func(t *testing.T) {
		f := &fakeDynamo{}
		v, err := newOrderRepo(f).GetMeta(context.Background(), "404", entities.MetaPaymentID)
		require.NoError(t, err)
		require.Empty(t, v)
	})
}

func TestOrderDynamoRepository_AddNote(t *testing.T) {
	f := &fakeDynamo{}
	require.NoError(t, newOrderRepo(f).AddNote(context.Background(), "1007", "Bransfer Payment ID: P1"))
	require.Equal(t, "SET #updated_at = :updated_at, #notes = list_append(if_not_exists(#notes, :empty), :note)", aws.ToString(f.update.UpdateExpression))
	require.Equal(t, "2024-05-01T12:00:00Z", stringValue(t, f.update.ExpressionAttributeValues[":updated_at"]))
}

func TestOrderDynamoRepository_PaymentComplete(t *testing.T) {
	t.Run("marks processing", func(t *testing.T) {
		f := &fakeDynamo{}
		require.NoError(t, newOrderRepo(f).PaymentComplete(context.Background(), "1007", "P1"))
		require.Equal(t, "processing", stringValue(t, f.update.ExpressionAttributeValues[":processing"]))
		require.Equal(t, "P1", stringValue(t, f.update.ExpressionAttributeValues[":txn"]))
		require.Equal(t, types.ReturnValuesOnConditionCheckFailureAllOld, f.update.ReturnValuesOnConditionCheckFailure)
	})

	t.Run("already paid is a no-op", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{Item: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "1007"},
		}}}
		require.NoError(t, newOrderRepo(f).PaymentComplete(context.Background(), "1007", "P1"))
	})

	t.Run("missing order", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		err := newOrderRepo(f).PaymentComplete(context.Background(), "404", "P1")
		require.ErrorIs(t, err, interfaces.ErrUnknownOrder)
	})
}

func TestCartDynamoRepository_Empty(t *testing.T) {
	t.Run("clears items", func(t *testing.T) {
		f := &fakeDynamo{}
		r := NewCartDynamoRepository(f, "")
		require.NoError(t, r.Empty(context.Background(), "cart-9"))
		require.Equal(t, "carts", aws.ToString(f.update.TableName))
		require.Equal(t, "cart-9", stringValue(t, f.update.Key["id"]))
		require.Empty(t, f.update.ExpressionAttributeValues[":empty"].(*types.AttributeValueMemberL).Value)
	})

	t.Run("missing cart", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		require.NoError(t, NewCartDynamoRepository(f, "carts").Empty(context.Background(), "gone"))
	})

	t.Run("client error", func(t *testing.T) {
		f := &fakeDynamo{err: errors.New("throttled")}
		require.Error(t, NewCartDynamoRepository(f, "carts").Empty(context.Background(), "cart-9"))
	})
}
