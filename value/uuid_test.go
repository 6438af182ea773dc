package value

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rrgmc/ucr"
	"gotest.tools/v3/assert"
)

func TestUUIDValue(t *testing.T) {
	input, err := ucr.LoadBytes([]byte(`users:
  user_id: {action: ID, value: !uuid "97d5a50d-d8ac-47b1-bbe1-daaa192f98ea"}
  name: !update "John"
`), ucr.WithLoadValueParser(ValueUUID{}))
	assert.NilError(t, err)

	assert.DeepEqual(t, ucr.FormInput{
		"users": ucr.SingleObject(ucr.Object{
			"user_id": ucr.ID(uuid.MustParse("97d5a50d-d8ac-47b1-bbe1-daaa192f98ea")),
			"name":    ucr.Update("John"),
		}),
	}, input)
}

func TestUUIDValueInvalid(t *testing.T) {
	_, err := ucr.LoadBytes([]byte(`users:
  user_id: {action: ID, value: !uuid "not-a-uuid"}
`), ucr.WithLoadValueParser(ValueUUID{}))
	var parseErr ucr.ParseError
	assert.Assert(t, errors.As(err, &parseErr))
}

func TestIDUUID(t *testing.T) {
	u := uuid.MustParse("97d5a50d-d8ac-47b1-bbe1-daaa192f98ea")

	payload, err := ucr.Transform(ucr.FormInput{
		"users": ucr.ManyObjects(
			ucr.Object{
				"user_id": ucr.ID("97d5a50d-d8ac-47b1-bbe1-daaa192f98ea"),
				"name":    ucr.Update("John"),
			},
			ucr.Object{
				"user_id": ucr.ID(u),
				"name":    ucr.Remove("Jane"),
			},
		),
	}, ucr.WithIDConverter(IDUUID()))
	assert.NilError(t, err)

	assert.DeepEqual(t, []ucr.Row{{"user_id": u, "name": "John"}}, payload.Update["users"])
	assert.DeepEqual(t, []any{u}, payload.Remove["users"])
}

func TestIDUUIDInvalid(t *testing.T) {
	_, err := ucr.Transform(ucr.FormInput{
		"users": ucr.SingleObject(ucr.Object{
			"user_id": ucr.ID(12),
			"name":    ucr.Update("John"),
		}),
	}, ucr.WithIDConverter(IDUUID()))
	assert.Assert(t, errors.Is(err, ucr.ErrIDConversion))
}
