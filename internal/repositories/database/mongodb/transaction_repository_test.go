package mongodb

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestTransactionDocument_BSONRoundTrip(t *testing.T) {
	assert := require.New(t)
	at := time.Date(2024, 6, 10, 12, 0, 0, int(250*time.Millisecond), time.UTC)
	doc := transactionDocument{ID: 7, User: "Ana", Direction: "USD_TO_BRL", OccurredAt: at}

	raw, err := bson.Marshal(doc)
	assert.NoError(err)
	assert.Equal(int64(7), bson.Raw(raw).Lookup("_id").Int64())
	assert.Equal("Ana", bson.Raw(raw).Lookup("user").StringValue())

	var decoded transactionDocument
	assert.NoError(bson.Unmarshal(raw, &decoded))
	assert.Equal(domain.Transaction{ID: 7, User: "Ana", Direction: domain.USDToBRL, OccurredAt: at}, decoded.toDomain())
}

// TestMongoTransactionRepository_Integration runs against a real server when
// MONGODB_TEST_URI is set.
func TestMongoTransactionRepository_Integration(t *testing.T) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}
	assert := require.New(t)
	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	assert.NoError(err)
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database("fxq_test_" + faker.Word())
	defer func() { _ = db.Drop(ctx) }()

	repo := NewMongoTransactionRepository(db)
	assert.NoError(repo.Ping(ctx))
	assert.NoError(repo.EnsureIndexes(ctx))
	assert.NoError(repo.EnsureIndexes(ctx))

	empty, err := repo.ListTransactions(ctx)
	assert.NoError(err)
	assert.Empty(empty)

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.AppendTransaction(ctx, faker.Name(), domain.BRLToUSD); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	txns, err := repo.ListTransactions(ctx)
	assert.NoError(err)
	assert.Len(txns, 25)
	for i, txn := range txns {
		assert.Equal(int64(i+1), txn.ID)
		assert.Equal(domain.BRLToUSD, txn.Direction)
	}
}
