package shared_test

import (
	"testing"

	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/dto"

	"github.com/stretchr/testify/assert"
)

type roomPatch struct {
	Number   string  `db:"number"`
	Type     string  `db:"type"`
	Price    float64 `db:"price"`
	Capacity int     `db:"capacity"`
	Ignored  string
}

func TestTransformFields(t *testing.T) {
	t.Run("only non-zero tagged fields are kept", func(t *testing.T) {
		patch := roomPatch{
			Number:  "101",
			Price:   150,
			Ignored: "skipped",
		}

		fields := shared.TransformFields(patch)

		assert.Equal(t, "101", fields["number"])
		assert.Equal(t, float64(150), fields["price"])
		assert.NotContains(t, fields, "type")
		assert.NotContains(t, fields, "capacity")
		assert.NotContains(t, fields, "Ignored")
	})

	t.Run("modified_at is always refreshed", func(t *testing.T) {
		fields := shared.TransformFields(roomPatch{})

		assert.Contains(t, fields, constant.FieldModifiedAt)
		assert.Len(t, fields, 1)
	})
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc-123", "id", "rooms")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, "abc-123", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:abc", shared.BuildCacheKey("room", "get", "abc"))
	assert.Equal(t, "room", shared.BuildCacheKey("room"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{SortBy: "rooms.created_at", SortDir: dto.SortDirDesc}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "available", Operator: dto.FilterOperatorEq, Table: "rooms"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, filter)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "room:gets:")

	other := shared.BuildCacheKeyWithQuery("room:gets", params, dto.FilterGroup{})
	assert.NotEqual(t, first, other)
}
