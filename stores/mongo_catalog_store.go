package stores

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

type catalogDocument struct {
	ID        string           `bson:"_id"`
	Products  []models.Product `bson:"products"`
	Version   int64            `bson:"version"`
	UpdatedAt time.Time        `bson:"updatedAt"`
}

// MongoCatalogStore keeps the shared dev catalog as a single document.
// Replaces are guarded by the stored version so a concurrent writer that
// lost the race gets ErrStaleSnapshot instead of silently overwriting.
type MongoCatalogStore struct {
	coll  *mongo.Collection
	docID string
	now   func() time.Time
}

func NewMongoCatalogStore(coll *mongo.Collection) *MongoCatalogStore {
	return &MongoCatalogStore{coll: coll, docID: defaultCatalogRowID, now: time.Now}
}

func (s *MongoCatalogStore) Load(ctx context.Context) (*models.CatalogSnapshot, error) {
	var doc catalogDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": s.docID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find dev catalog")
	}

	return &models.CatalogSnapshot{
		Products:  doc.Products,
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt.UTC(),
	}, nil
}

func (s *MongoCatalogStore) Save(ctx context.Context, snapshot models.CatalogSnapshot) (*models.CatalogSnapshot, error) {
	current, err := s.Load(ctx)
	if err != nil && !errors.Is(err, ErrSnapshotNotFound) {
		return nil, err
	}

	next, err := nextSnapshot(current, snapshot, s.now())
	if err != nil {
		return nil, err
	}

	doc := catalogDocument{
		ID:        s.docID,
		Products:  next.Products,
		Version:   next.Version,
		UpdatedAt: next.UpdatedAt,
	}

	if current == nil {
		if _, err := s.coll.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrStaleSnapshot
			}
			return nil, errors.Wrap(err, "insert dev catalog")
		}
		return &next, nil
	}

	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": s.docID, "version": current.Version}, doc)
	if err != nil {
		return nil, errors.Wrap(err, "replace dev catalog")
	}
	if res.MatchedCount == 0 {
		return nil, ErrStaleSnapshot
	}
	return &next, nil
}
