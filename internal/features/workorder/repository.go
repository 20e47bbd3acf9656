package workorder

import (
	"context"
	"fmt"
	"time"

	"go-worksync/internal/config"
	"go-worksync/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WorkOrderRepository interface {
	Upsert(ctx context.Context, wo *WorkOrder) error
	FindUnsynced(ctx context.Context) ([]WorkOrder, error)
	MarkSynced(ctx context.Context, number int64, syncedAt time.Time) error
}

type WorkOrderRepositoryImpl struct {
	collection *mongo.Collection
}

func NewWorkOrderRepository(db *database.MongodbDB, cfg *config.Config) WorkOrderRepository {
	return &WorkOrderRepositoryImpl{
		collection: db.DB.Collection(cfg.Collection),
	}
}

// Upsert replaces the document keyed by number, inserting it if absent.
// Re-processing the same order replaces the prior translation, never
// duplicates it.
func (r *WorkOrderRepositoryImpl) Upsert(ctx context.Context, wo *WorkOrder) error {
	// Write-time guard for the dual representation of deletion: the status
	// enum and the deleted boolean are one fact, not two settable fields.
	if wo.Status == StatusDeleted && !wo.Deleted {
		return fmt.Errorf("work order %d: status is deleted but deleted flag is false", wo.Number)
	}

	return database.Retry(ctx, func(ctx context.Context) error {
		opts := options.Replace().SetUpsert(true)
		_, err := r.collection.ReplaceOne(ctx, bson.M{"number": wo.Number}, wo, opts)
		return err
	})
}

// FindUnsynced returns every work order not yet exported, in deterministic
// order by number.
func (r *WorkOrderRepositoryImpl) FindUnsynced(ctx context.Context) ([]WorkOrder, error) {
	var orders []WorkOrder

	err := database.Retry(ctx, func(ctx context.Context) error {
		orders = nil

		opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})
		cursor, err := r.collection.Find(ctx, bson.M{"isSynced": bson.M{"$ne": true}}, opts)
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		return cursor.All(ctx, &orders)
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// MarkSynced flips the sync flag after a completed outbound write. Only the
// sync fields change; status and content stay untouched.
func (r *WorkOrderRepositoryImpl) MarkSynced(ctx context.Context, number int64, syncedAt time.Time) error {
	return database.Retry(ctx, func(ctx context.Context) error {
		res, err := r.collection.UpdateOne(
			ctx,
			bson.M{"number": number},
			bson.M{"$set": bson.M{"isSynced": true, "syncedAt": syncedAt}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("work order %d: %w", number, mongo.ErrNoDocuments)
		}
		return nil
	})
}
