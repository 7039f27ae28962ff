package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Thin interfaces over the official driver so repositories can be
// exercised against fakes in tests without a running mongod.

type Client interface {
	Database(string) Database
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
}

type Database interface {
	Collection(string) Collection
	Client() Client
}

type Collection interface {
	FindOne(context.Context, interface{}) SingleResult
	InsertOne(context.Context, interface{}) (interface{}, error)
	DeleteOne(context.Context, interface{}) (int64, error)
	DeleteMany(context.Context, interface{}) (int64, error)
	Find(context.Context, interface{}, ...*options.FindOptions) (Cursor, error)
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	Indexes() IndexView
	BulkWrite() BulkWrite
}

type SingleResult interface {
	Decode(interface{}) error
}

type Cursor interface {
	Close(context.Context) error
	Next(context.Context) bool
	Decode(interface{}) error
	All(context.Context, interface{}) error
}

type IndexView interface {
	CreateOne(ctx context.Context, model mongo.IndexModel) (string, error)
	ListSpecifications(ctx context.Context) ([]*mongo.IndexSpecification, error)
}

type BulkWriteResult interface {
	MatchedCount() int64
	ModifiedCount() int64
	UpsertedCount() int64
}

type BulkWrite interface {
	AddModel(models ...BulkModel)
	Execute(ctx context.Context) (BulkWriteResult, error)
}

type BulkModel interface{}

type mongoClient struct{ cl *mongo.Client }
type mongoDatabase struct{ db *mongo.Database }
type mongoCollection struct{ coll *mongo.Collection }
type mongoSingleResult struct{ sr *mongo.SingleResult }
type mongoCursor struct{ mc *mongo.Cursor }
type mongoIndexView struct{ iv *mongo.IndexView }

func NewClient(connection string) (Client, error) {
	time.Local = time.UTC
	c, err := mongo.NewClient(options.Client().ApplyURI(connection))
	return &mongoClient{cl: c}, err
}

func (mc *mongoClient) Database(dbName string) Database {
	return &mongoDatabase{db: mc.cl.Database(dbName)}
}

func (mc *mongoClient) Connect(ctx context.Context) error {
	return mc.cl.Connect(ctx)
}

func (mc *mongoClient) Disconnect(ctx context.Context) error {
	return mc.cl.Disconnect(ctx)
}

func (mc *mongoClient) Ping(ctx context.Context) error {
	return mc.cl.Ping(ctx, readpref.Primary())
}

func (md *mongoDatabase) Collection(name string) Collection {
	return &mongoCollection{coll: md.db.Collection(name)}
}

func (md *mongoDatabase) Client() Client {
	return &mongoClient{cl: md.db.Client()}
}

func (mc *mongoCollection) FindOne(ctx context.Context, filter interface{}) SingleResult {
	return &mongoSingleResult{sr: mc.coll.FindOne(ctx, filter)}
}

func (mc *mongoCollection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	res, err := mc.coll.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (mc *mongoCollection) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	res, err := mc.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (mc *mongoCollection) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	res, err := mc.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (mc *mongoCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error) {
	cursor, err := mc.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoCursor{mc: cursor}, nil
}

func (mc *mongoCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return mc.coll.CountDocuments(ctx, filter, opts...)
}

func (mc *mongoCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return mc.coll.UpdateOne(ctx, filter, update, opts...)
}

func (mc *mongoCollection) Indexes() IndexView {
	iv := mc.coll.Indexes()
	return &mongoIndexView{iv: &iv}
}

func (mc *mongoCollection) BulkWrite() BulkWrite {
	return &mongoBulkWrite{coll: mc.coll}
}

func (sr *mongoSingleResult) Decode(v interface{}) error {
	return sr.sr.Decode(v)
}

func (cr *mongoCursor) Close(ctx context.Context) error {
	return cr.mc.Close(ctx)
}

func (cr *mongoCursor) Next(ctx context.Context) bool {
	return cr.mc.Next(ctx)
}

func (cr *mongoCursor) Decode(v interface{}) error {
	return cr.mc.Decode(v)
}

func (cr *mongoCursor) All(ctx context.Context, result interface{}) error {
	return cr.mc.All(ctx, result)
}

func (iv *mongoIndexView) CreateOne(ctx context.Context, model mongo.IndexModel) (string, error) {
	return iv.iv.CreateOne(ctx, model)
}

func (iv *mongoIndexView) ListSpecifications(ctx context.Context) ([]*mongo.IndexSpecification, error) {
	return iv.iv.ListSpecifications(ctx)
}

type mongoBulkWrite struct {
	models []mongo.WriteModel
	coll   *mongo.Collection
}

func (mb *mongoBulkWrite) AddModel(models ...BulkModel) {
	for _, model := range models {
		mb.models = append(mb.models, model.(mongo.WriteModel))
	}
}

func (mb *mongoBulkWrite) Execute(ctx context.Context) (BulkWriteResult, error) {
	if len(mb.models) == 0 {
		return nil, errors.New("no operations to execute")
	}
	res, err := mb.coll.BulkWrite(ctx, mb.models)
	if err != nil {
		return nil, err
	}
	return &mongoBulkWriteResult{res: res}, nil
}

type mongoBulkWriteResult struct {
	res *mongo.BulkWriteResult
}

func (m *mongoBulkWriteResult) MatchedCount() int64  { return m.res.MatchedCount }
func (m *mongoBulkWriteResult) ModifiedCount() int64 { return m.res.ModifiedCount }
func (m *mongoBulkWriteResult) UpsertedCount() int64 { return m.res.UpsertedCount }
