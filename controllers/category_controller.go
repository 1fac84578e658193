package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/services"
	"github.com/roamly/api-go/utils"
)

type CategoryController struct {
	Categories *services.CategoryService
}

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{Categories: categories}
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := cc.Categories.Create(user.Actor(), req.Name, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "category": category})
}

func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := cc.Categories.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	user := utils.GetUser(c)
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		return
	}

	if err := cc.Categories.Delete(user.Actor(), categoryID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
