package main

import "github.com/roryk/gffutils"

// featureRecord is the msgpack form of one feature stored in the db.
type featureRecord struct {
	ID         string
	Chrom      string
	Source     string
	Type       string
	Start      int
	End        int
	Score      string
	Strand     string
	Frame      string
	Attributes string
}

// newFeatureRecord derives the db key for a feature and flattens it for
// storage. A gtf gene or mRNA has no intrinsic id, so the autogenerated
// id is assigned as its database id first.
func newFeatureRecord(f *gffutils.Feature) (featureRecord, error) {
	id, err := f.ID()
	if err != nil {
		return featureRecord{}, err
	}
	if id == "" {
		f.SetDBID(f.AutogeneratedID())
		id, _ = f.ID()
	}
	return featureRecord{
		ID:         id,
		Chrom:      f.Chrom,
		Source:     f.Source,
		Type:       f.Featuretype,
		Start:      f.Start,
		End:        f.Stop,
		Score:      f.Score,
		Strand:     f.Strand,
		Frame:      f.Frame,
		Attributes: f.RawAttributes(),
	}, nil
}
