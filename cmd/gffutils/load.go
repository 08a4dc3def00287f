package main

import (
	"io"
	"log"

	"github.com/boltdb/bolt"
	"github.com/roryk/gffutils"
	"gopkg.in/vmihailenco/msgpack.v2"
)

type cmdLoad struct {
	file   string
	dbfile string

	db *bolt.DB
}

func (c *cmdLoad) run() {
	db, err := bolt.Open(c.dbfile, 0600, nil)
	raiseError(err)
	defer db.Close()
	c.db = db

	c.db.Update(createBucket("feature"))
	c.db.Update(createBucket("type"))

	r, err := gffutils.Open(c.file, nil, nil)
	raiseError(err)
	defer r.Close()

	typeIDMap := make(map[string][]string)
	buffer := []featureRecord{}
	for {
		f, err := r.Read()
		if err != nil {
			if err != io.EOF {
				raiseError(err)
			}
			break
		}
		rec, err := newFeatureRecord(f)
		raiseError(err)
		typeIDMap[rec.Type] = append(typeIDMap[rec.Type], rec.ID)
		buffer = append(buffer, rec)
		if len(buffer) >= 1000 {
			c.loadRecords(buffer)
			buffer = []featureRecord{}
		}
	}
	c.loadRecords(buffer)
	c.loadTypeIndex(typeIDMap)

	// check number of written records.
	c.db.View(func(tx *bolt.Tx) error {
		s := tx.Bucket([]byte("feature")).Stats()
		log.Printf("Wrote %d records\n", s.KeyN)
		return nil
	})
}

func (c *cmdLoad) loadRecords(records []featureRecord) {
	err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte("feature"))
		for _, rec := range records {
			value, err := msgpack.Marshal(rec)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(rec.ID), value); err != nil {
				return err
			}
		}
		return nil
	})
	raiseError(err)
}

func (c *cmdLoad) loadTypeIndex(typeIDMap map[string][]string) {
	err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte("type"))
		for featuretype, ids := range typeIDMap {
			value, err := msgpack.Marshal(ids)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(featuretype), value); err != nil {
				return err
			}
		}
		return nil
	})
	raiseError(err)
}

func createBucket(name string) func(tx *bolt.Tx) error {
	return func(tx *bolt.Tx) error {
		_, err := tx.CreateBucket([]byte(name))
		if err == bolt.ErrBucketExists {
			tx.DeleteBucket([]byte(name))
			_, err = tx.CreateBucket([]byte(name))
		}
		return err
	}
}
