package feedback

import (
	"strings"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateFeedbackRequest struct {
	OrderNumber  string `json:"order_number"`
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

type FeedbackResponse struct {
	ID           uint   `json:"id"`
	OrderID      *uint  `json:"order_id"`
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"created_at"`
}

func feedbackResponse(f models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:           f.ID,
		OrderID:      f.OrderID,
		CustomerName: f.CustomerName,
		Rating:       f.Rating,
		Comment:      f.Comment,
		CreatedAt:    f.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/feedback (public). An order number is optional; when given it
// must resolve to an existing order.
func CreateFeedbackHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateFeedbackRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Rating < 1 || body.Rating > 5 {
			return fiber.NewError(fiber.StatusBadRequest, "Rating must be between 1 and 5")
		}

		var orderID *uint
		if number := strings.TrimSpace(body.OrderNumber); number != "" {
			var order models.Order
			err := database.DB.Where("order_number = ?", strings.ToUpper(number)).First(&order).Error
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Order not found")
			}
			orderID = &order.ID
		}

		fb := models.Feedback{
			OrderID:      orderID,
			CustomerName: strings.TrimSpace(body.CustomerName),
			Rating:       body.Rating,
			Comment:      strings.TrimSpace(body.Comment),
		}
		if err := database.DB.Create(&fb).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Feedback could not be saved")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": feedbackResponse(fb)})
	}
}

// GET /api/feedback?min_rating=4 (staff)
func ListFeedbackHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Feedback{})

		if min := c.QueryInt("min_rating"); min > 0 {
			dbq = dbq.Where("rating >= ?", min)
		}
		if max := c.QueryInt("max_rating"); max > 0 {
			dbq = dbq.Where("rating <= ?", max)
		}

		var feedbacks []models.Feedback
		if err := dbq.Order("created_at DESC").Find(&feedbacks).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Feedback could not be listed")
		}

		resp := make([]FeedbackResponse, 0, len(feedbacks))
		for _, f := range feedbacks {
			resp = append(resp, feedbackResponse(f))
		}
		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}
