/*
Package mongodb provides a way to read and write transaction
databases from and to a MongoDB database.

Transactions are stored as documents of the transactions collection
with their identifier as _id and the list of their items. The universe
of items is stored, in order, on the items collection.
*/
package mongodb

import (
	"context"
	"fmt"

	"github.com/pbanos/apriori/pkg/apriori"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	transactionsCollectionName = "transactions"
	itemsCollectionName        = "items"
	// MaxDocumentsPerInsert is the maximum number of documents sent on a single insert
	MaxDocumentsPerInsert = 1000
)

type transactionDoc struct {
	ID    string   `bson:"_id"`
	Items []string `bson:"items"`
}

type itemDoc struct {
	Ord  int    `bson:"_id"`
	Name string `bson:"name"`
}

/*
Store reads and writes transaction databases on the default
database of a MongoDB session.
*/
type Store struct {
	session *mgo.Session
}

/*
Open takes a context and a MongoDB database session and returns a Store
that works on the default database for that session or an error if the
indexes it needs cannot be ensured.
*/
func Open(ctx context.Context, session *mgo.Session) (*Store, error) {
	s := &Store{session}
	err := s.itemsCollection().EnsureIndex(mgo.Index{
		Key:        []string{"name"},
		Unique:     true,
		Background: true,
	})
	if err != nil {
		return nil, fmt.Errorf("ensuring index on items: %v", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

/*
Dial takes a MongoDB connection URL and returns a Store over its
default database or an error if it fails to connect to it.
*/
func Dial(ctx context.Context, url string) (*Store, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %v", url, err)
	}
	s, err := Open(ctx, session)
	if err != nil {
		session.Close()
		return nil, err
	}
	return s, nil
}

/*
ReadDatabase takes a context and returns the apriori.Database
stored on the MongoDB database or an error.
*/
func (s *Store) ReadDatabase(ctx context.Context) (*apriori.Database, error) {
	var universe []apriori.Item
	var item itemDoc
	iter := s.itemsCollection().Find(nil).Sort("_id").Iter()
	for iter.Next(&item) {
		universe = append(universe, apriori.Item(item.Name))
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading items: %v", err)
	}
	var transactions []apriori.Transaction
	var doc transactionDoc
	iter = s.transactionsCollection().Find(nil).Iter()
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		items := make([]apriori.Item, len(doc.Items))
		for i, name := range doc.Items {
			items[i] = apriori.Item(name)
		}
		transactions = append(transactions, apriori.Transaction{ID: doc.ID, Items: apriori.NewItemset(items...)})
		doc = transactionDoc{}
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading transactions: %v", err)
	}
	return apriori.NewDatabase(universe, transactions)
}

/*
WriteDatabase takes a context and an apriori.Database and stores it
on the MongoDB database. The collections are expected to be empty.
*/
func (s *Store) WriteDatabase(ctx context.Context, db *apriori.Database) error {
	var docs []interface{}
	for i, item := range db.Universe() {
		docs = append(docs, itemDoc{i, string(item)})
	}
	err := insertChunks(ctx, s.itemsCollection(), docs)
	if err != nil {
		return fmt.Errorf("storing items: %v", err)
	}
	docs = docs[:0]
	for _, t := range db.Transactions() {
		items := t.Items.Items()
		names := make([]string, len(items))
		for i, item := range items {
			names[i] = string(item)
		}
		docs = append(docs, transactionDoc{t.ID, names})
	}
	err = insertChunks(ctx, s.transactionsCollection(), docs)
	if err != nil {
		return fmt.Errorf("storing transactions: %v", err)
	}
	return nil
}

// Count returns the number of transactions stored
func (s *Store) Count(context.Context) (int, error) {
	return s.transactionsCollection().Find(bson.M{}).Count()
}

// Close closes the underlying session
func (s *Store) Close() {
	s.session.Close()
}

func insertChunks(ctx context.Context, c *mgo.Collection, docs []interface{}) error {
	for start := 0; start < len(docs); start += MaxDocumentsPerInsert {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := start + MaxDocumentsPerInsert
		if end > len(docs) {
			end = len(docs)
		}
		err := c.Insert(docs[start:end]...)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) transactionsCollection() *mgo.Collection {
	return s.session.DB("").C(transactionsCollectionName)
}

func (s *Store) itemsCollection() *mgo.Collection {
	return s.session.DB("").C(itemsCollectionName)
}
