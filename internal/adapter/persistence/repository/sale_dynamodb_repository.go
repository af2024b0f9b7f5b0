package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"pdv_xpto/internal/domain/entities"
	"pdv_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSalesTableName     = "sales"
	defaultSaleItemsTableName = "sale_items"
	defaultCountersTableName  = "counters"

	saleNumberCounterID = "sale_number"
	saleNumberFormat    = "VND-%06d"
)

type saleRecord struct {
	ID                 string `dynamodbav:"id"`
	SaleNumber         string `dynamodbav:"sale_number"`
	TotalAmount        string `dynamodbav:"total_amount"`
	DiscountPercentage string `dynamodbav:"discount_percentage"`
	DiscountAmount     string `dynamodbav:"discount_amount"`
	FinalAmount        string `dynamodbav:"final_amount"`
	PaymentMethod      string `dynamodbav:"payment_method"`
	Notes              string `dynamodbav:"notes,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
}

type saleItemRecord struct {
	ID          string `dynamodbav:"id"`
	SaleID      string `dynamodbav:"sale_id"`
	ProductID   string `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Subtotal    string `dynamodbav:"subtotal"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// SaleDynamoRepository persists Sale and SaleItem entities in DynamoDB.
//
// Table requirements:
//   - sales:      PK id (string)
//   - sale_items: PK id (string), GSI sale_id-index (PK: sale_id)
//   - counters:   PK id (string), numeric attribute "value"
//
// Sale numbers come from an atomic counter increment, so they are unique and
// follow creation order even across concurrent commits.

type SaleDynamoRepository struct {
	ddb           *dynamodb.Client
	salesTable    string
	itemsTable    string
	countersTable string
	productsTable string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:           ddb,
		salesTable:    getenvDefault("SALES_TABLE", defaultSalesTableName),
		itemsTable:    getenvDefault("SALE_ITEMS_TABLE", defaultSaleItemsTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		productsTable: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *SaleDynamoRepository) NextSaleNumber(ctx context.Context) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: saleNumberCounterID},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", err
	}

	raw, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("counter %q returned no numeric value", saleNumberCounterID)
	}
	n, err := strconv.ParseInt(raw.Value, 10, 64)
	if err != nil {
		return "", fmt.Errorf("counter %q holds non-integer value %q: %w", saleNumberCounterID, raw.Value, err)
	}
	return fmt.Sprintf(saleNumberFormat, n), nil
}

func (r *SaleDynamoRepository) InsertSale(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	av, err := attributevalue.MarshalMap(toSaleRecord(s))
	if err != nil {
		return entities.Sale{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.salesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Sale{}, err
	}
	return s, nil
}

func (r *SaleDynamoRepository) InsertSaleItems(ctx context.Context, items []entities.SaleItem) error {
	for _, item := range items {
		av, err := attributevalue.MarshalMap(toSaleItemRecord(item))
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.itemsTable),
			Item:      av,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// CommitSaleAtomic writes the sale header, its items and every stock
// decrement in a single transaction. Each decrement is conditioned on the
// stock still covering the requested quantity, so a concurrent sale that
// drained the shelf cancels the whole transaction instead of driving stock
// negative.
func (r *SaleDynamoRepository) CommitSaleAtomic(ctx context.Context, s entities.Sale, items []entities.SaleItem, decrements []interfaces.StockDecrement) error {
	writes := make([]types.TransactWriteItem, 0, 1+len(items)+len(decrements))

	saleAV, err := attributevalue.MarshalMap(toSaleRecord(s))
	if err != nil {
		return err
	}
	writes = append(writes, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.salesTable),
			Item:                saleAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})

	for _, item := range items {
		itemAV, err := attributevalue.MarshalMap(toSaleItemRecord(item))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTable),
				Item:      itemAV,
			},
		})
	}

	for _, dec := range decrements {
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.productsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: dec.ProductID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #stock >= :qty"),
				UpdateExpression:    aws.String("SET #stock = #stock - :qty"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":qty": &types.AttributeValueMemberN{Value: floatToString(dec.Quantity)},
				},
				ExpressionAttributeNames: map[string]string{
					"#id":    "id",
					"#stock": "stock",
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func (r *SaleDynamoRepository) ListByPeriod(ctx context.Context, start, end time.Time) ([]entities.Sale, error) {
	raws, err := r.scanByCreatedAt(ctx, r.salesTable, start, end)
	if err != nil {
		return nil, err
	}

	sales := make([]entities.Sale, 0, len(raws))
	for _, raw := range raws {
		var rec saleRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		sales = append(sales, fromSaleRecord(rec))
	}
	return sales, nil
}

func (r *SaleDynamoRepository) ListItemsByPeriod(ctx context.Context, start, end time.Time) ([]entities.SaleItem, error) {
	raws, err := r.scanByCreatedAt(ctx, r.itemsTable, start, end)
	if err != nil {
		return nil, err
	}

	items := make([]entities.SaleItem, 0, len(raws))
	for _, raw := range raws {
		var rec saleItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromSaleItemRecord(rec))
	}
	return items, nil
}

// scanByCreatedAt pages through a table keeping only rows whose created_at
// falls inside [start, end]. RFC3339 timestamps compare lexicographically in
// UTC, so a plain BETWEEN on the string attribute is correct.
func (r *SaleDynamoRepository) scanByCreatedAt(ctx context.Context, table string, start, end time.Time) ([]map[string]types.AttributeValue, error) {
	raws := make([]map[string]types.AttributeValue, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(table),
			FilterExpression: aws.String("#created_at BETWEEN :start AND :end"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":start": &types.AttributeValueMemberS{Value: start.UTC().Format(time.RFC3339Nano)},
				":end":   &types.AttributeValueMemberS{Value: end.UTC().Format(time.RFC3339Nano)},
			},
			ExpressionAttributeNames: map[string]string{
				"#created_at": "created_at",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		raws = append(raws, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return raws, nil
}

func toSaleRecord(s entities.Sale) saleRecord {
	return saleRecord{
		ID:                 s.ID,
		SaleNumber:         s.SaleNumber,
		TotalAmount:        floatToString(s.TotalAmount),
		DiscountPercentage: floatToString(s.DiscountPercentage),
		DiscountAmount:     floatToString(s.DiscountAmount),
		FinalAmount:        floatToString(s.FinalAmount),
		PaymentMethod:      string(s.PaymentMethod),
		Notes:              s.Notes,
		CreatedAt:          s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSaleRecord(rec saleRecord) entities.Sale {
	totalAmount, _ := strconv.ParseFloat(rec.TotalAmount, 64)
	discountPercentage, _ := strconv.ParseFloat(rec.DiscountPercentage, 64)
	discountAmount, _ := strconv.ParseFloat(rec.DiscountAmount, 64)
	finalAmount, _ := strconv.ParseFloat(rec.FinalAmount, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.Sale{
		ID:                 rec.ID,
		SaleNumber:         rec.SaleNumber,
		TotalAmount:        totalAmount,
		DiscountPercentage: discountPercentage,
		DiscountAmount:     discountAmount,
		FinalAmount:        finalAmount,
		PaymentMethod:      entities.PaymentMethod(rec.PaymentMethod),
		Notes:              rec.Notes,
		CreatedAt:          createdAt,
	}
}

func toSaleItemRecord(item entities.SaleItem) saleItemRecord {
	return saleItemRecord{
		ID:          item.ID,
		SaleID:      item.SaleID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    floatToString(item.Quantity),
		UnitPrice:   floatToString(item.UnitPrice),
		Subtotal:    floatToString(item.Subtotal),
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSaleItemRecord(rec saleItemRecord) entities.SaleItem {
	quantity, _ := strconv.ParseFloat(rec.Quantity, 64)
	unitPrice, _ := strconv.ParseFloat(rec.UnitPrice, 64)
	subtotal, _ := strconv.ParseFloat(rec.Subtotal, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.SaleItem{
		ID:          rec.ID,
		SaleID:      rec.SaleID,
		ProductID:   rec.ProductID,
		ProductName: rec.ProductName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    subtotal,
		CreatedAt:   createdAt,
	}
}
