package gffutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesRoundTrip(t *testing.T) {
	cases := []struct {
		comment  string
		filetype Filetype
		input    string
	}{
		{
			comment:  "gff with trailing separator",
			filetype: GFF,
			input:    "ID=FBgn0001;Name=alpha;",
		},
		{
			comment:  "gff without trailing separator",
			filetype: GFF,
			input:    "ID=FBgn0001;Name=alpha",
		},
		{
			comment:  "gff single pair",
			filetype: GFF,
			input:    "ID=FBgn0001",
		},
		{
			comment:  "gff list value",
			filetype: GFF,
			input:    "Parent=FBtr0001,FBtr0002;Note=ok;",
		},
		{
			comment:  "gtf with trailing separator",
			filetype: GTF,
			input:    `gene_id "FBgn0001"; gene_name "alpha";`,
		},
		{
			comment:  "gtf without trailing separator",
			filetype: GTF,
			input:    `gene_id "FBgn0001"; transcript_id "FBtr0001"`,
		},
		{
			comment:  "gtf list value",
			filetype: GTF,
			input:    `gene_id "FBgn0001"; tags "a,b,c";`,
		},
		{
			comment:  "empty sentinel",
			filetype: GTF,
			input:    ".",
		},
		{
			comment:  "empty string",
			filetype: GFF,
			input:    "",
		},
	}

	for _, data := range cases {
		a, err := ParseAttributes(data.input, data.filetype)
		require.NoError(t, err, "case: "+data.comment)
		assert.Equal(t, data.input, a.String(), "case: "+data.comment)
	}
}

func TestAttributesParse(t *testing.T) {
	a, err := ParseAttributes("Parent=FBtr0001,FBtr0002;Note=ok;", GFF)
	require.NoError(t, err)

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, []string{"Parent", "Note"}, a.Keys())

	parent, ok := a.Get("Parent")
	require.True(t, ok)
	assert.True(t, parent.IsList())
	assert.Equal(t, []string{"FBtr0001", "FBtr0002"}, parent.Items())
	assert.Equal(t, "FBtr0001", parent.First())

	note, ok := a.Get("Note")
	require.True(t, ok)
	assert.False(t, note.IsList())
	assert.Equal(t, "ok", note.First())

	_, ok = a.Get("missing")
	assert.False(t, ok)
}

func TestAttributesQuoteStripping(t *testing.T) {
	a, err := ParseAttributes(`gene_id "FBgn0001"; gene_name "alpha";`, GTF)
	require.NoError(t, err)

	id, ok := a.Get("gene_id")
	require.True(t, ok)
	assert.Equal(t, "FBgn0001", id.First())
}

func TestAttributesDuplicateKey(t *testing.T) {
	a, err := ParseAttributes("ID=first;Name=beta;ID=last;", GFF)
	require.NoError(t, err)

	// Last value wins but the key keeps its first position.
	assert.Equal(t, []string{"ID", "Name"}, a.Keys())
	id, ok := a.Get("ID")
	require.True(t, ok)
	assert.Equal(t, "last", id.First())
}

func TestAttributesMalformed(t *testing.T) {
	cases := []struct {
		comment  string
		filetype Filetype
		input    string
	}{
		{
			comment:  "gff segment without separator",
			filetype: GFF,
			input:    "ID;Name=alpha;",
		},
		{
			comment:  "gff segment with two separators",
			filetype: GFF,
			input:    "ID=a=b;",
		},
		{
			comment:  "gtf value with internal space",
			filetype: GTF,
			input:    `product "hypothetical protein";`,
		},
	}

	for _, data := range cases {
		_, err := ParseAttributes(data.input, data.filetype)
		require.Error(t, err, "case: "+data.comment)
		var attrErr *MalformedAttributeError
		assert.ErrorAs(t, err, &attrErr, "case: "+data.comment)
	}
}

func TestAttributesSet(t *testing.T) {
	gff, err := ParseAttributes("ID=FBgn0001", GFF)
	require.NoError(t, err)
	gff.Set("Note", Scalar("ok"))
	assert.Equal(t, "ID=FBgn0001;Note=ok", gff.String())

	gff.Set("ID", Scalar("FBgn0002"))
	assert.Equal(t, "ID=FBgn0002;Note=ok", gff.String())

	gtf, err := ParseAttributes(`gene_id "FBgn0001";`, GTF)
	require.NoError(t, err)
	gtf.Set("gene_name", Scalar("alpha"))
	assert.Equal(t, `gene_id "FBgn0001"; gene_name "alpha";`, gtf.String())

	gtf.Set("tags", List("a", "b"))
	assert.Equal(t, `gene_id "FBgn0001"; gene_name "alpha"; tags "a,b";`, gtf.String())
}

func TestAttributesDel(t *testing.T) {
	a, err := ParseAttributes("ID=FBgn0001;Name=alpha;Note=ok;", GFF)
	require.NoError(t, err)

	a.Del("Name")
	assert.Equal(t, "ID=FBgn0001;Note=ok;", a.String())
	_, ok := a.Get("Name")
	assert.False(t, ok)

	note, ok := a.Get("Note")
	require.True(t, ok)
	assert.Equal(t, "ok", note.First())

	a.Del("missing")
	assert.Equal(t, 2, a.Len())
}
