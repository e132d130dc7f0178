package admin

import (
	"net/http"

	"homefinder-api/database"
	"homefinder-api/internal/domain/favorites"
	"homefinder-api/internal/domain/properties"
	"homefinder-api/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type FavoriteSummaryRow struct {
	PropertyID uint   `json:"property_id"`
	Title      string `json:"title"`
	City       string `json:"city"`
	Count      int64  `json:"count"`
}

// GET /admin/favorites/summary
//
// Per-property favorite counts. The favorites table is the source of truth;
// when it is empty the legacy per-user id lists are scanned instead.
// Invariant either way: total equals the sum of the per-property counts.
func FavoritesSummary(c *gin.Context) {
	type countRow struct {
		PropertyID uint
		Count      int64
	}

	var counted []countRow
	if err := database.DB.Model(&favorites.Favorite{}).
		Select("property_id, COUNT(*) AS count").
		Group("property_id").
		Scan(&counted).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate favorites"})
		return
	}

	counts := map[uint]int64{}
	for _, row := range counted {
		counts[row.PropertyID] = row.Count
	}

	if len(counts) == 0 {
		// legacy fallback: favorites stored on the user rows
		var all []users.User
		if err := database.DB.Find(&all).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan users"})
			return
		}
		for _, u := range all {
			for _, propID := range u.LegacyFavoriteIDs {
				counts[propID]++
			}
		}
	}

	rows := make([]FavoriteSummaryRow, 0, len(counts))
	var total int64
	if len(counts) > 0 {
		ids := make([]uint, 0, len(counts))
		for id := range counts {
			ids = append(ids, id)
		}

		var props []properties.Property
		if err := database.DB.Where("id IN ?", ids).Find(&props).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load properties"})
			return
		}

		for _, p := range props {
			n := counts[p.ID]
			rows = append(rows, FavoriteSummaryRow{
				PropertyID: p.ID,
				Title:      p.Title,
				City:       p.City,
				Count:      n,
			})
			total += n
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":      total,
		"properties": rows,
	})
}
