// Package gffutils parses GFF and GTF genomic annotation files into
// features with order-preserving, round-trippable attributes.
package gffutils

import (
	"fmt"
	"strconv"
	"strings"
)

// Feature is one annotation record: eight fixed columns plus a lazily
// parsed attribute column. The zero string "." marks an unknown score,
// strand or frame. Start and Stop are 1-based inclusive; no coordinate
// validation is performed.
type Feature struct {
	Chrom       string
	Source      string
	Featuretype string
	Start       int
	Stop        int
	Score       string
	Strand      string
	Frame       string

	rawAttributes string
	attributes    *Attributes
	filetype      Filetype
	id            string
	idDone        bool
	dbid          string
}

// NewFeature builds a feature from its nine column values. The filetype
// is inferred lazily from the attribute string.
func NewFeature(chrom, source, featuretype string, start, stop int, score, strand, frame, attributes string) *Feature {
	return &Feature{
		Chrom:         chrom,
		Source:        source,
		Featuretype:   featuretype,
		Start:         start,
		Stop:          stop,
		Score:         score,
		Strand:        strand,
		Frame:         frame,
		rawAttributes: attributes,
	}
}

// ParseLine parses one 9-column tab-separated annotation line.
func ParseLine(line string) (*Feature, error) {
	trimmed := strings.TrimRight(line, "\r\n")
	fields := strings.Split(trimmed, "\t")
	if len(fields) != 9 {
		return nil, &MalformedRecordError{
			Line: trimmed,
			Err:  fmt.Errorf("expected 9 tab-separated fields, got %d", len(fields)),
		}
	}
	start, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, &MalformedRecordError{Line: trimmed, Err: err}
	}
	stop, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, &MalformedRecordError{Line: trimmed, Err: err}
	}
	return NewFeature(fields[0], fields[1], fields[2], start, stop, fields[5], fields[6], fields[7], fields[8]), nil
}

// detectFiletype guesses the dialect from attribute syntax: gff uses
// key=value pairs, gtf uses key "value" pairs. Attribute-less records
// default to gtf.
func detectFiletype(attributes string) Filetype {
	s := strings.TrimSpace(attributes)
	if s == "" || s == "." {
		return GTF
	}
	if strings.Count(s, "=") > strings.Count(s, ";")-1 {
		return GFF
	}
	return GTF
}

// Filetype returns the record's dialect, inferring it from the attribute
// string on first call. The result is cached for the feature's lifetime.
func (f *Feature) Filetype() Filetype {
	if f.filetype == "" {
		f.filetype = detectFiletype(f.rawAttributes)
	}
	return f.filetype
}

// SetFiletype overrides the inferred dialect.
func (f *Feature) SetFiletype(ft Filetype) error {
	if ft != GFF && ft != GTF {
		return fmt.Errorf("gffutils: unknown filetype %q", ft)
	}
	f.filetype = ft
	return nil
}

// Attributes parses the attribute column on first call. Once
// materialized, the returned Attributes is the source of truth for
// serialization; mutating it changes String output.
func (f *Feature) Attributes() (*Attributes, error) {
	if f.attributes == nil {
		a, err := ParseAttributes(f.rawAttributes, f.Filetype())
		if err != nil {
			return nil, err
		}
		f.attributes = a
	}
	return f.attributes, nil
}

// SetAttributes replaces the feature's attributes.
func (f *Feature) SetAttributes(a *Attributes) error {
	if a == nil {
		return ErrInvalidAttributes
	}
	f.attributes = a
	return nil
}

// RawAttributes returns the current attribute column text: the parsed
// attributes if materialized, otherwise the original string.
func (f *Feature) RawAttributes() string {
	if f.attributes != nil {
		return f.attributes.String()
	}
	return f.rawAttributes
}

// AutogeneratedID is the synthetic identifier used when a record carries
// no intrinsic id.
func (f *Feature) AutogeneratedID() string {
	return fmt.Sprintf("%s:%s:%d-%d:%s", f.Featuretype, f.Chrom, f.Start, f.Stop, f.Strand)
}

// ID derives a best-effort unique identifier, cached after the first
// call. For gff records the attribute keys ID, Name and gene_name are
// tried in order, falling back to the autogenerated id; the fallback
// ignores any database id. For gtf records every type except gene and
// mRNA gets the autogenerated id; gene and mRNA carry no intrinsic gtf
// id, so the externally assigned database id is returned uncached.
func (f *Feature) ID() (string, error) {
	if f.idDone {
		return f.id, nil
	}
	if f.Filetype() == GFF {
		attrs, err := f.Attributes()
		if err != nil {
			return "", err
		}
		for _, key := range []string{"ID", "Name", "gene_name"} {
			if v, ok := attrs.Get(key); ok {
				f.id = v.First()
				f.idDone = true
				return f.id, nil
			}
		}
		f.id = f.AutogeneratedID()
		f.idDone = true
		return f.id, nil
	}
	if f.Featuretype != "gene" && f.Featuretype != "mRNA" {
		f.id = f.AutogeneratedID()
		f.idDone = true
		return f.id, nil
	}
	return f.dbid, nil
}

// SetID overrides id derivation; the value is returned verbatim by ID
// from then on.
func (f *Feature) SetID(id string) {
	f.id = id
	f.idDone = true
}

// DBID returns the identifier assigned by an external feature database.
func (f *Feature) DBID() string { return f.dbid }

func (f *Feature) SetDBID(id string) { f.dbid = id }

// Length is Stop - Start + 1. Malformed coordinates pass through, so the
// result may be zero or negative.
func (f *Feature) Length() int { return f.Stop - f.Start + 1 }

// String serializes the feature back to its 9-column tab-joined form.
func (f *Feature) String() string {
	return strings.Join([]string{
		f.Chrom,
		f.Source,
		f.Featuretype,
		strconv.Itoa(f.Start),
		strconv.Itoa(f.Stop),
		f.Score,
		f.Strand,
		f.Frame,
		f.RawAttributes(),
	}, "\t")
}

// Equal reports whether two features serialize identically.
func (f *Feature) Equal(other *Feature) bool {
	return f.String() == other.String()
}

// Compare returns 0 for equal features and ErrUnsupportedComparison
// otherwise: features have no defined ordering.
func (f *Feature) Compare(other *Feature) (int, error) {
	if f.Equal(other) {
		return 0, nil
	}
	return 0, ErrUnsupportedComparison
}
