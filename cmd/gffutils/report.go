package main

import (
	"fmt"
	"sort"

	"github.com/boltdb/bolt"
	"github.com/montanaflynn/stats"
	"gopkg.in/vmihailenco/msgpack.v2"
)

type cmdReport struct {
	dbfile string
	prefix string

	db *bolt.DB
}

func (c *cmdReport) run() {
	db, err := bolt.Open(c.dbfile, 0600, &bolt.Options{ReadOnly: true})
	raiseError(err)
	defer db.Close()
	c.db = db

	lengthMap := c.collectLengths()
	c.writeTypeStats(lengthMap)
}

// collectLengths groups record lengths by feature type.
func (c *cmdReport) collectLengths() map[string][]float64 {
	lengthMap := make(map[string][]float64)
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte("feature"))
		return b.ForEach(func(k, v []byte) error {
			rec := featureRecord{}
			if err := msgpack.Unmarshal(v, &rec); err != nil {
				return err
			}
			length := float64(rec.End - rec.Start + 1)
			lengthMap[rec.Type] = append(lengthMap[rec.Type], length)
			return nil
		})
	})
	raiseError(err)
	return lengthMap
}

func (c *cmdReport) writeTypeStats(lengthMap map[string][]float64) {
	w := createFile(c.prefix + ".types.csv")
	defer w.Close()

	types := []string{}
	for featuretype := range lengthMap {
		types = append(types, featuretype)
	}
	sort.Strings(types)

	w.WriteString("type,n,mean,median,max\n")
	for _, featuretype := range types {
		lengths := lengthMap[featuretype]
		mean, err := stats.Mean(lengths)
		raiseError(err)
		median, err := stats.Median(lengths)
		raiseError(err)
		max, err := stats.Max(lengths)
		raiseError(err)
		w.WriteString(fmt.Sprintf("%s,%d,%g,%g,%g\n", featuretype, len(lengths), mean, median, max))
	}
}
