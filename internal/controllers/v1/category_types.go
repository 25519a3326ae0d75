package v1

import (
	"fmt"

	"github.com/finflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/categories/d430d7c3-d14c-4712-9336-ee56965a6673"`                  // The category itself
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?category=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions for this category
}

type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	return Category{
		Category: model,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", baseURL(c), model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", baseURL(c), model.ID),
		},
	}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of Categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
