package blog

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"homefinder-api/database"
	"homefinder-api/internal/domain/blog"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var ugcPolicy = bluemonday.UGCPolicy()

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// makeSlug turns "Why Spring Is Selling Season" into "why-spring-is-selling-season".
func makeSlug(title string) string {
	base := strings.ToLower(strings.TrimSpace(title))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "post"
	}
	return base
}

type postInput struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Published bool   `json:"published"`
}

// POST /admin/blog
func CreatePost(c *gin.Context) {
	var input postInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := blog.Post{
		AuthorID:  c.GetUint("user_id"),
		Title:     input.Title,
		Body:      ugcPolicy.Sanitize(input.Body),
		Published: input.Published,
	}
	post.Slug = makeSlug(input.Title)

	if err := database.DB.Create(&post).Error; err != nil {
		// slug collision: retry once with a numeric suffix
		post.ID = 0
		post.Slug = fmt.Sprintf("%s-%d", post.Slug, time.Now().UnixNano()%1000000)
		if err := database.DB.Create(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
			return
		}
	}

	c.JSON(http.StatusCreated, post)
}

// PUT /admin/blog/:slug
func UpdatePost(c *gin.Context) {
	var post blog.Post
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var input postInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":     input.Title,
		"body":      ugcPolicy.Sanitize(input.Body),
		"published": input.Published,
	}

	if err := database.DB.Model(&post).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post updated"})
}

// DELETE /admin/blog/:slug
func DeletePost(c *gin.Context) {
	res := database.DB.Where("slug = ?", c.Param("slug")).Delete(&blog.Post{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// GET /blog
func ListPosts(c *gin.Context) {
	var posts []blog.Post
	if err := database.DB.
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GET /blog/:slug
func GetPostBySlug(c *gin.Context) {
	var post blog.Post
	if err := database.DB.
		Where("slug = ? AND published = ?", c.Param("slug"), true).
		First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}
