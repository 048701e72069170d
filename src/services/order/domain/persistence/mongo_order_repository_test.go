package persistence

import (
	"regexp"
	"shop-backoffice/src/services/order/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func searchRegex(t *testing.T, query bson.M) string {
	t.Helper()
	or, ok := query["$or"].([]bson.M)
	require.True(t, ok, "search must produce an $or clause")
	require.Len(t, or, 2)
	regex, ok := or[0]["order_number"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "i", regex["$options"])
	assert.Equal(t, regex, or[1]["customer.name"], "both fields share the same pattern")
	return regex["$regex"].(string)
}

func TestBuildFilter_Empty(t *testing.T) {
	assert.Empty(t, buildFilter(domain.ListFilter{}))
}

func TestBuildFilter_SearchMatchesBothFields(t *testing.T) {
	pattern := searchRegex(t, buildFilter(domain.ListFilter{Search: "rahim"}))
	assert.Equal(t, "rahim", pattern)
}

func TestBuildFilter_SearchTreatsMetacharactersAsLiterals(t *testing.T) {
	terms := []string{"C++", "(pending", "a.b*", "[draft]", "50%|60%"}

	for _, term := range terms {
		t.Run(term, func(t *testing.T) {
			pattern := searchRegex(t, buildFilter(domain.ListFilter{Search: term}))

			compiled, err := regexp.Compile(pattern)
			require.NoError(t, err, "quoted term must stay a valid pattern")
			assert.True(t, compiled.MatchString(term), "pattern must match the term itself")
			assert.Equal(t, regexp.QuoteMeta(term), pattern)
		})
	}
}

func TestBuildFilter_DateRange(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	query := buildFilter(domain.ListFilter{StartDate: start, EndDate: end})

	dateRange, ok := query["order_date"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, start, dateRange["$gte"])
	assert.Equal(t, end, dateRange["$lte"])

	query = buildFilter(domain.ListFilter{StartDate: start})
	dateRange = query["order_date"].(bson.M)
	assert.Equal(t, start, dateRange["$gte"])
	_, hasUpper := dateRange["$lte"]
	assert.False(t, hasUpper)
}
