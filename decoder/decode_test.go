package decoder_test

import (
	"testing"

	"github.com/arloliu/colex/codecerr"
	"github.com/arloliu/colex/decoder"
	"github.com/arloliu/colex/encoder"
	"github.com/arloliu/colex/schema"
	"github.com/stretchr/testify/require"
)

type statusVariant interface {
	schema.Variant
}

type okStatus struct{ Code int64 }

func (okStatus) VariantName() string { return "ok" }

type errStatus struct{ Message string }

func (errStatus) VariantName() string { return "err" }

func init() {
	schema.RegisterVariant[statusVariant](okStatus{})
	schema.RegisterVariant[statusVariant](errStatus{})
}

type withStatus struct {
	Name   string
	Status statusVariant
}

func TestSumVariantRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []withStatus{
		{Name: "a", Status: okStatus{Code: 200}},
		{Name: "b", Status: errStatus{Message: "boom"}},
		{Name: "c", Status: okStatus{Code: 404}},
	}

	data, err := encoder.Encode(values)
	require.NoError(err)

	out, err := decoder.Decode[[]withStatus](data)
	require.NoError(err)
	require.Equal(values, out)
}

type producerV1 struct {
	Name string
	Code int8
}

type consumerAddField struct {
	Name  string
	Code  int8
	Extra string
}

func TestSchemaBridgeFieldAddition(t *testing.T) {
	require := require.New(t)

	in := producerV1{Name: "a", Code: 5}
	data, err := encoder.Encode(in)
	require.NoError(err)

	out, err := decoder.Decode[consumerAddField](data)
	require.NoError(err)
	require.Equal(consumerAddField{Name: "a", Code: 5, Extra: ""}, out)
}

type consumerRemoveField struct {
	Name string
}

func TestSchemaBridgeFieldRemoval(t *testing.T) {
	require := require.New(t)

	in := producerV1{Name: "a", Code: 5}
	data, err := encoder.Encode(in)
	require.NoError(err)

	out, err := decoder.Decode[consumerRemoveField](data)
	require.NoError(err)
	require.Equal(consumerRemoveField{Name: "a"}, out)
}

func TestSchemaBridgeIntegerWidening(t *testing.T) {
	require := require.New(t)

	data, err := encoder.Encode(int8(-7))
	require.NoError(err)

	out, err := decoder.Decode[int64](data)
	require.NoError(err)
	require.Equal(int64(-7), out)
}

func TestSchemaBridgeIntegerNarrowingRejected(t *testing.T) {
	require := require.New(t)

	data, err := encoder.Encode(int64(-1000))
	require.NoError(err)

	_, err = decoder.Decode[int8](data)
	require.ErrorIs(err, codecerr.SchemaMismatch)
}

type producerPlain struct {
	Host string
}

type consumerOptional struct {
	Host *string
}

func TestOptionalUpgrade(t *testing.T) {
	require := require.New(t)

	in := producerPlain{Host: "db-1"}
	data, err := encoder.Encode(in)
	require.NoError(err)

	out, err := decoder.Decode[consumerOptional](data)
	require.NoError(err)
	require.NotNil(out.Host)
	require.Equal("db-1", *out.Host)
}

func TestSequenceFixedLengthMismatch(t *testing.T) {
	require := require.New(t)

	data, err := encoder.Encode([]int64{1, 2, 3})
	require.NoError(err)

	_, err = decoder.Decode[[4]int64](data)
	require.ErrorIs(err, codecerr.SchemaMismatch)
}

type limitedStatus interface {
	schema.Variant
}

func init() {
	schema.RegisterVariant[limitedStatus](okStatus{})
}

type withLimitedStatus struct {
	Name   string
	Status limitedStatus
}

func TestUnknownSumVariantRejected(t *testing.T) {
	require := require.New(t)

	data, err := encoder.Encode(withStatus{Name: "x", Status: errStatus{Message: "m"}})
	require.NoError(err)

	_, err = decoder.Decode[withLimitedStatus](data)
	require.ErrorIs(err, codecerr.SchemaMismatch)
}
