package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaceOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	TableNumber   *int               `json:"table_number"`
	Note          string             `json:"note"`
	Items         []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	FoodID   uint `json:"food_id"`
	Quantity int  `json:"quantity"`
}

type OrderItemResponse struct {
	ID        uint    `json:"id"`
	FoodID    uint    `json:"food_id"`
	FoodName  string  `json:"food_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	OrderNumber   string              `json:"order_number"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	TableNumber   *int                `json:"table_number"`
	Status        models.OrderStatus  `json:"status"`
	Amount        float64             `json:"amount"`
	Note          string              `json:"note"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     string              `json:"created_at"`
}

func orderResponse(o models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:        it.ID,
			FoodID:    it.FoodID,
			FoodName:  it.Food.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		TableNumber:   o.TableNumber,
		Status:        o.Status,
		Amount:        o.Amount,
		Note:          o.Note,
		Items:         items,
		CreatedAt:     o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func newOrderNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:8])
}

// POST /api/orders (public)
func PlaceOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PlaceOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "At least one item is required")
		}

		var amount float64
		var orderItems []models.OrderItem
		for _, itemReq := range body.Items {
			if itemReq.FoodID == 0 || itemReq.Quantity <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Every item needs a food_id and a positive quantity")
			}

			var food models.Food
			if err := database.DB.First(&food, itemReq.FoodID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Menu item not found: %d", itemReq.FoodID))
			}
			if !food.IsAvailable {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Menu item is not available: %s", food.Name))
			}

			amount += float64(itemReq.Quantity) * food.Price
			orderItems = append(orderItems, models.OrderItem{
				FoodID:    food.ID,
				Quantity:  itemReq.Quantity,
				UnitPrice: food.Price,
			})
		}

		order := models.Order{
			OrderNumber:   newOrderNumber(),
			CustomerName:  strings.TrimSpace(body.CustomerName),
			CustomerPhone: strings.TrimSpace(body.CustomerPhone),
			TableNumber:   body.TableNumber,
			Status:        models.OrderPreparing,
			Amount:        amount,
			Note:          body.Note,
			Items:         orderItems,
		}
		if err := database.DB.Create(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Order could not be created")
		}

		if err := database.DB.Preload("Items.Food").First(&order, order.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Order could not be reloaded")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": orderResponse(order)})
	}
}

// GET /api/orders?status=Preparing&date=2026-08-28
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Order{}).Preload("Items.Food")

		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}
		if dateStr := c.Query("date"); dateStr != "" {
			d, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date must be 'YYYY-MM-DD'")
			}
			dbq = dbq.Where("created_at >= ? AND created_at < ?", d, d.AddDate(0, 0, 1))
		}

		var ordersList []models.Order
		if err := dbq.Order("created_at DESC").Find(&ordersList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Orders could not be listed")
		}

		resp := make([]OrderResponse, 0, len(ordersList))
		for _, o := range ordersList {
			resp = append(resp, orderResponse(o))
		}
		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}

// validTransitions: Preparing -> Ready -> Delivered; Cancelled only from
// Preparing.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPreparing: {models.OrderReady, models.OrderCancelled},
	models.OrderReady:     {models.OrderDelivered},
}

// PUT /api/orders/:id/status
func UpdateOrderStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body struct {
			Status models.OrderStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var order models.Order
		if err := database.DB.Preload("Items.Food").First(&order, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}

		allowed := false
		for _, next := range validTransitions[order.Status] {
			if next == body.Status {
				allowed = true
				break
			}
		}
		if !allowed {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Cannot change status from %s to %s", order.Status, body.Status))
		}

		if err := database.DB.Model(&order).Update("status", body.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Order could not be updated")
		}

		order.Status = body.Status
		return c.JSON(fiber.Map{"success": true, "data": orderResponse(order)})
	}
}

// GET /api/orders/:number (public: customers track their order)
func TrackOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		number := c.Params("number")

		var order models.Order
		err := database.DB.Preload("Items.Food").
			Where("order_number = ?", strings.ToUpper(number)).
			First(&order).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Order not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Order could not be loaded")
		}

		return c.JSON(fiber.Map{"success": true, "data": orderResponse(order)})
	}
}
