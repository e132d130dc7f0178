package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homefinder-api/database"
	"homefinder-api/internal/domain/favorites"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&users.User{}, &properties.Property{}, &favorites.Favorite{}))
	database.DB = db
}

type summaryResponse struct {
	Total      int64                `json:"total"`
	Properties []FavoriteSummaryRow `json:"properties"`
}

func getSummary(t *testing.T) summaryResponse {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/favorites/summary", FavoritesSummary)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/favorites/summary", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestFavoritesSummaryTotalsMatchCounts(t *testing.T) {
	setupDB(t)

	var props []properties.Property
	for _, title := range []string{"Loft", "Villa", "Studio"} {
		p := properties.Property{OwnerID: 1, Title: title, City: "Lisbon", Status: properties.StatusApproved}
		require.NoError(t, database.DB.Create(&p).Error)
		props = append(props, p)
	}

	// 3 favorites on the first property, 1 on the second, none on the third.
	for userID := uint(10); userID < 13; userID++ {
		require.NoError(t, database.DB.Create(&favorites.Favorite{UserID: userID, PropertyID: props[0].ID}).Error)
	}
	require.NoError(t, database.DB.Create(&favorites.Favorite{UserID: 10, PropertyID: props[1].ID}).Error)

	resp := getSummary(t)

	var sum int64
	counts := map[uint]int64{}
	for _, row := range resp.Properties {
		sum += row.Count
		counts[row.PropertyID] = row.Count
	}
	assert.Equal(t, resp.Total, sum, "total must equal the sum of per-property counts")
	assert.EqualValues(t, 4, resp.Total)
	assert.EqualValues(t, 3, counts[props[0].ID])
	assert.EqualValues(t, 1, counts[props[1].ID])
	assert.NotContains(t, counts, props[2].ID)
}

func TestFavoritesSummaryLegacyFallback(t *testing.T) {
	setupDB(t)

	prop := properties.Property{OwnerID: 1, Title: "Loft", City: "Porto", Status: properties.StatusApproved}
	require.NoError(t, database.DB.Create(&prop).Error)

	// No rows in the favorites table; two users still carry the old id lists.
	u1 := users.User{Name: "Ana", Email: "ana@example.com", LegacyFavoriteIDs: users.IDList{prop.ID}}
	u2 := users.User{Name: "Bo", Email: "bo@example.com", LegacyFavoriteIDs: users.IDList{prop.ID}}
	require.NoError(t, database.DB.Create(&u1).Error)
	require.NoError(t, database.DB.Create(&u2).Error)

	resp := getSummary(t)

	require.Len(t, resp.Properties, 1)
	assert.EqualValues(t, 2, resp.Properties[0].Count)
	assert.EqualValues(t, 2, resp.Total)
}
