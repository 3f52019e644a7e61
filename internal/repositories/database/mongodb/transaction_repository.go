package mongodb

import (
	"context"
	"time"

	"github.com/SscSPs/fx_quote_app/internal/apperrors"
	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_quote_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// TransactionsCollection holds one document per recorded conversion.
	TransactionsCollection = "transactions"
	// CountersCollection holds sequence documents used to allocate integer IDs.
	CountersCollection = "counters"

	transactionSequence = "transactions"
)

type transactionDocument struct {
	ID         int64     `bson:"_id"`
	User       string    `bson:"user"`
	Direction  string    `bson:"direction"`
	OccurredAt time.Time `bson:"occurredAt"`
}

type counterDocument struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

func (d transactionDocument) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:         d.ID,
		User:       d.User,
		Direction:  domain.Direction(d.Direction),
		OccurredAt: d.OccurredAt.UTC(),
	}
}

// MongoTransactionRepository implements portsrepo.TransactionRepositoryFacade on MongoDB.
// IDs are allocated with an atomic $inc on a counter document, so concurrent
// appends never share an ID. A failed insert leaves a gap in the sequence.
type MongoTransactionRepository struct {
	db           *mongo.Database
	transactions *mongo.Collection
	counters     *mongo.Collection
	now          func() time.Time
}

// NewMongoTransactionRepository creates a repository on db.
func NewMongoTransactionRepository(db *mongo.Database) *MongoTransactionRepository {
	return &MongoTransactionRepository{
		db:           db,
		transactions: db.Collection(TransactionsCollection),
		counters:     db.Collection(CountersCollection),
		now:          time.Now,
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*MongoTransactionRepository)(nil)

// Ping verifies the primary is reachable.
func (r *MongoTransactionRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func (r *MongoTransactionRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter counterDocument
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": transactionSequence},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// AppendTransaction allocates the next ID and inserts the transaction.
func (r *MongoTransactionRepository) AppendTransaction(ctx context.Context, user string, direction domain.Direction) (*domain.Transaction, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, apperrors.NewStoreWriteError("failed to allocate transaction id", err)
	}

	// BSON dates keep millisecond precision
	doc := transactionDocument{
		ID:         id,
		User:       user,
		Direction:  string(direction),
		OccurredAt: r.now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.transactions.InsertOne(ctx, doc); err != nil {
		return nil, apperrors.NewStoreWriteError("failed to insert transaction", err)
	}

	txn := doc.toDomain()
	return &txn, nil
}

// ListTransactions retrieves all transactions ordered by ID.
func (r *MongoTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	cursor, err := r.transactions.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, apperrors.NewStoreReadError("failed to list transactions", err)
	}

	docs := make([]transactionDocument, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewStoreReadError("failed to decode transactions", err)
	}

	txns := make([]domain.Transaction, len(docs))
	for i, doc := range docs {
		txns[i] = doc.toDomain()
	}
	return txns, nil
}

// EnsureIndexes creates the secondary indexes the store expects. It is idempotent.
func (r *MongoTransactionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.transactions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "occurredAt", Value: 1}}},
		{Keys: bson.D{{Key: "user", Value: 1}}},
	})
	return err
}
