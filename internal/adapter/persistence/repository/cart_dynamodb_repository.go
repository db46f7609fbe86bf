package repository

import (
	"bransfer_gateway/internal/usecase/interfaces"
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultCartsTableName = "carts"

// CartDynamoRepository clears storefront carts kept in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - items: list of cart lines
type CartDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ICartStore = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb DynamoAPI, tableName string) *CartDynamoRepository {
	if tableName == "" {
		tableName = DefaultCartsTableName
	}
	return &CartDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

// Empty removes every line from the cart. A missing cart is already empty.
func (r *CartDynamoRepository) Empty(ctx context.Context, cartID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(cartID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #items = :empty, #updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":now":   &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#items":      "items",
			"#updated_at": "updated_at",
		},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return nil
		}
		return err
	}
	return nil
}
