package v1

import (
	"net/http"

	"github.com/finflow/backend/internal/httputil"
	"github.com/finflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// registerCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func (co Controller) registerCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, ok := co.ledger.Category(uri.ID.UUID); !ok {
		c.JSON(status(errNotFound), httpError{Error: errNotFound.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateCategory creates a new category. An icon that is not part of the
// icon set is replaced with the fallback icon.
func (co Controller) CreateCategory(c *gin.Context) {
	var editable models.CategoryEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category := co.ledger.AddCategory(editable)
	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// GetCategories returns all categories.
func (co Controller) GetCategories(c *gin.Context) {
	data := make([]Category, 0)
	for _, category := range co.ledger.Categories() {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// GetCategory returns a specific category.
func (co Controller) GetCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category, ok := co.ledger.Category(uri.ID.UUID)
	if !ok {
		e := errNotFound.Error()
		c.JSON(status(errNotFound), CategoryResponse{Error: &e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// UpdateCategory updates an existing category. The built-in Uncategorized
// category cannot be updated.
func (co Controller) UpdateCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	var patch models.CategoryPatch
	if err := httputil.BindData(c, &patch); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category, ok, err := co.ledger.UpdateCategory(uri.ID.UUID, patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}
	if !ok {
		e := errNotFound.Error()
		c.JSON(status(errNotFound), CategoryResponse{Error: &e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// DeleteCategory deletes a category. Its transactions are reassigned to
// the built-in Uncategorized category, which itself cannot be deleted.
func (co Controller) DeleteCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	ok, err := co.ledger.DeleteCategory(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(status(errNotFound), httpError{Error: errNotFound.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
