package menu

import (
	"strings"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type FoodRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	IsAvailable *bool    `json:"is_available"`
}

type FoodResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
}

func foodResponse(f models.Food) FoodResponse {
	return FoodResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Category:    f.Category,
		Price:       f.Price,
		IsAvailable: f.IsAvailable,
	}
}

// GET /api/menu?category=lunch (public)
func ListFoodsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Food{})
		if category := c.Query("category"); category != "" {
			dbq = dbq.Where("category = ?", category)
		}
		if c.Query("available") == "true" {
			dbq = dbq.Where("is_available = ?", true)
		}

		var foods []models.Food
		if err := dbq.Order("name asc").Find(&foods).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menu could not be listed")
		}

		resp := make([]FoodResponse, 0, len(foods))
		for _, f := range foods {
			resp = append(resp, foodResponse(f))
		}
		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}

// POST /api/menu
func CreateFoodHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body FoodRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}
		if body.Price == nil || *body.Price <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "price must be greater than zero")
		}

		var existing models.Food
		if err := database.DB.Where("name = ?", body.Name).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "A menu item with this name already exists")
		}

		food := models.Food{
			Name:        body.Name,
			Description: body.Description,
			Category:    strings.TrimSpace(body.Category),
			Price:       *body.Price,
			IsAvailable: true,
		}
		if body.IsAvailable != nil {
			food.IsAvailable = *body.IsAvailable
		}

		if err := database.DB.Create(&food).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menu item could not be created")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": foodResponse(food)})
	}
}

// PUT /api/menu/:id
func UpdateFoodHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var food models.Food
		if err := database.DB.First(&food, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menu item not found")
		}

		var body FoodRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if name := strings.TrimSpace(body.Name); name != "" {
			if name != food.Name {
				var count int64
				database.DB.Model(&models.Food{}).
					Where("name = ? AND id <> ?", name, food.ID).Count(&count)
				if count > 0 {
					return fiber.NewError(fiber.StatusBadRequest, "A menu item with this name already exists")
				}
			}
			food.Name = name
		}
		if body.Description != "" {
			food.Description = body.Description
		}
		if category := strings.TrimSpace(body.Category); category != "" {
			food.Category = category
		}
		if body.Price != nil {
			if *body.Price <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "price must be greater than zero")
			}
			food.Price = *body.Price
		}
		if body.IsAvailable != nil {
			food.IsAvailable = *body.IsAvailable
		}

		if err := database.DB.Save(&food).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menu item could not be updated")
		}
		return c.JSON(fiber.Map{"success": true, "data": foodResponse(food)})
	}
}

// DELETE /api/menu/:id
func DeleteFoodHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var food models.Food
		if err := database.DB.First(&food, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menu item not found")
		}

		if err := database.DB.Delete(&food).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menu item could not be deleted")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
